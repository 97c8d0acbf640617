// Package mesh implements the editable-mesh core: a polygon soup over a flat
// position buffer, a derived half-edge topology, and the loop/ring/star
// selection traversals built on top of it.
package mesh

import (
	"fmt"

	"github.com/Faultbox/meshedit/pkg/math"
)

// LogicalMesh is a polygon mesh referencing a caller-owned position buffer.
// Faces hold vertex indices (arity >= 3); Positions is a flat xyz buffer.
// The derived topology is invalidated by any face/vertex topology change,
// not by pure position edits.
type LogicalMesh struct {
	Faces     [][]int
	Positions []float32

	topo *Topology
}

// NewLogicalMesh validates the face list against the position buffer and
// returns a mesh. Out-of-range face indices are a caller contract violation
// and panic.
func NewLogicalMesh(faces [][]int, positions []float32) *LogicalMesh {
	m := &LogicalMesh{Faces: faces, Positions: positions}
	validateFaces(faces, m.VertexCount())
	return m
}

// VertexCount returns the number of vertices in the position buffer.
func (m *LogicalMesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Position returns vertex v as a Vec3.
func (m *LogicalMesh) Position(v int) math.Vec3 {
	return math.FromSlice(m.Positions, v)
}

// Bounds returns the axis-aligned bounding box of the position buffer.
// An empty mesh returns zero vectors.
func (m *LogicalMesh) Bounds() (min, max math.Vec3) {
	if m.VertexCount() == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	min = m.Position(0)
	max = min
	for v := 1; v < m.VertexCount(); v++ {
		p := m.Position(v)
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max
}

// Topology returns the half-edge topology, building it on first use.
func (m *LogicalMesh) Topology() *Topology {
	if m.topo == nil {
		m.topo = BuildTopology(m.Faces, m.VertexCount())
	}
	return m.topo
}

// InvalidateTopology drops the derived topology. Call after any change to
// the face list or vertex count; position-only edits do not require it.
func (m *LogicalMesh) InvalidateTopology() {
	m.topo = nil
}

// FanTriangulate flattens the polygon list into a triangle index buffer,
// fanning each face from its first vertex.
func FanTriangulate(faces [][]int) []uint32 {
	var indices []uint32
	for _, face := range faces {
		for i := 1; i+1 < len(face); i++ {
			indices = append(indices, uint32(face[0]), uint32(face[i]), uint32(face[i+1]))
		}
	}
	return indices
}

func validateFaces(faces [][]int, vertexCount int) {
	for f, face := range faces {
		if len(face) < 3 {
			panic(fmt.Sprintf("mesh: face %d has %d vertices, need at least 3", f, len(face)))
		}
		for _, v := range face {
			if v < 0 || v >= vertexCount {
				panic(fmt.Sprintf("mesh: face %d references vertex %d, have %d vertices", f, v, vertexCount))
			}
		}
	}
}
