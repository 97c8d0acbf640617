package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshedit/pkg/math"
)

// PickResult is the outcome of a mesh raycast: the closest hit face plus the
// nearest vertex and edge of that face resolved against a tolerance.
type PickResult struct {
	T        float32
	FaceID   int
	VertexID int    // -1 when no face vertex lies within tolerance of the hit
	Edge     [2]int // vertex pair, defaults to the face's first edge
	Point    math.Vec3
}

const triEpsilon = 1e-7

// IntersectTriangle runs the Möller–Trumbore test against triangle (a, b, c).
// Only strictly positive t counts as a hit.
func (r Ray) IntersectTriangle(a, b, c math.Vec3) (float32, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if det > -triEpsilon && det < triEpsilon {
		return 0, false
	}
	inv := 1 / det
	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t <= triEpsilon {
		return 0, false
	}
	return t, true
}

// FaceAABB computes the bounding box of one face. Boxes are rebuilt on every
// raycast; callers that want caching must keep their own.
func FaceAABB(face []int, positions []float32) AABB {
	box := AABB{
		Min: math.FromSlice(positions, face[0]),
		Max: math.FromSlice(positions, face[0]),
	}
	for _, v := range face[1:] {
		p := math.FromSlice(positions, v)
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}

// RaycastMesh intersects a ray with every face of the mesh and returns the
// closest hit. Faces are rejected early by an AABB slab test, then
// fan-triangulated from their first vertex; the globally smallest positive t
// wins, with ties resolved by face iteration order. For the winning face the
// closest vertex within tolerance is resolved (VertexID -1 if none), and the
// closest edge by point-to-segment distance, defaulting to the face's first
// edge.
func RaycastMesh(faces [][]int, positions []float32, ray Ray, tolerance float32) (PickResult, bool) {
	best := PickResult{T: math32.MaxFloat32, FaceID: -1}

	for f, face := range faces {
		if len(face) < 3 {
			continue
		}
		if _, hit := ray.IntersectAABB(FaceAABB(face, positions)); !hit {
			continue
		}
		a := math.FromSlice(positions, face[0])
		for i := 1; i+1 < len(face); i++ {
			b := math.FromSlice(positions, face[i])
			c := math.FromSlice(positions, face[i+1])
			if t, ok := ray.IntersectTriangle(a, b, c); ok && t < best.T {
				best.T = t
				best.FaceID = f
			}
		}
	}

	if best.FaceID == -1 {
		return PickResult{}, false
	}
	best.Point = ray.At(best.T)

	face := faces[best.FaceID]
	best.VertexID = -1
	bestDist := tolerance
	for _, v := range face {
		d := best.Point.Distance(math.FromSlice(positions, v))
		if d <= bestDist {
			bestDist = d
			best.VertexID = v
		}
	}

	best.Edge = [2]int{face[0], face[1]}
	bestDist = tolerance
	for i := range face {
		a := face[i]
		b := face[(i+1)%len(face)]
		d := pointSegmentDistance(best.Point, math.FromSlice(positions, a), math.FromSlice(positions, b))
		if d <= bestDist {
			bestDist = d
			best.Edge = [2]int{a, b}
		}
	}

	return best, true
}

// pointSegmentDistance returns the distance from p to segment ab.
func pointSegmentDistance(p, a, b math.Vec3) float32 {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Scale(t)))
}
