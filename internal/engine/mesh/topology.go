package mesh

import (
	"fmt"
	"strconv"

	"github.com/Faultbox/meshedit/internal/logger"
)

// None marks an absent half-edge link (boundary pair, isolated vertex).
const None = -1

// HalfEdge is one directed edge owned by a single face. Its origin vertex is
// the destination of the previous half-edge in the face loop.
type HalfEdge struct {
	ID   int
	Dest int    // vertex the half-edge points to
	Pair int    // opposite-direction half-edge, None at a boundary
	Next int    // next half-edge in the owning face's cyclic loop
	Prev int    // previous half-edge in the owning face's cyclic loop
	Face int    // owning face index
	Key  string // undirected "lo-hi" edge key, direction independent
}

// Topology is the half-edge graph derived from a face list. All links are
// indices into HalfEdges with None as the absent sentinel; the structure is
// immutable once built.
type Topology struct {
	HalfEdges      []HalfEdge
	VertexOutgoing []int // one arbitrary outgoing half-edge per vertex, None if isolated
	FaceStart      []int // half-edge of each face's first edge
}

type directedEdge struct {
	from, to int
}

// UndirectedKey returns the direction-independent identity of the edge a-b.
func UndirectedKey(a, b int) string {
	if a > b {
		a, b = b, a
	}
	return strconv.Itoa(a) + "-" + strconv.Itoa(b)
}

// BuildTopology converts a face list into a half-edge graph. Pairing is by
// exact directed-edge match and unconditional: if two faces emit the same
// directed edge (non-manifold input) the last registration wins, which is
// logged but never an error. Half-edges with no reverse-direction partner
// stay boundary edges with Pair == None.
func BuildTopology(faces [][]int, vertexCount int) *Topology {
	validateFaces(faces, vertexCount)

	topo := &Topology{
		VertexOutgoing: make([]int, vertexCount),
		FaceStart:      make([]int, len(faces)),
	}
	for v := range topo.VertexOutgoing {
		topo.VertexOutgoing[v] = None
	}

	byDirected := make(map[directedEdge]int)
	duplicates := 0

	for f, face := range faces {
		base := len(topo.HalfEdges)
		n := len(face)
		for i := 0; i < n; i++ {
			from := face[i]
			to := face[(i+1)%n]
			id := base + i
			topo.HalfEdges = append(topo.HalfEdges, HalfEdge{
				ID:   id,
				Dest: to,
				Pair: None,
				Next: base + (i+1)%n,
				Prev: base + (i+n-1)%n,
				Face: f,
				Key:  UndirectedKey(from, to),
			})
			if _, dup := byDirected[directedEdge{from, to}]; dup {
				duplicates++
			}
			byDirected[directedEdge{from, to}] = id
			if topo.VertexOutgoing[from] == None {
				topo.VertexOutgoing[from] = id
			}
		}
		topo.FaceStart[f] = base
	}

	for i := range topo.HalfEdges {
		he := &topo.HalfEdges[i]
		if pair, ok := byDirected[directedEdge{he.Dest, topo.Origin(i)}]; ok {
			he.Pair = pair
		}
	}

	if duplicates > 0 {
		logger.Sugar.Warnw("non-manifold mesh: duplicate directed edges, pairing kept last registration",
			"duplicates", duplicates, "faces", len(faces))
	}
	return topo
}

// Origin returns the origin vertex of half-edge he.
func (t *Topology) Origin(he int) int {
	return t.HalfEdges[t.HalfEdges[he].Prev].Dest
}

// FindHalfEdge resolves the vertex pair (a, b) to a half-edge traversing it
// in either direction, or None.
func (t *Topology) FindHalfEdge(a, b int) int {
	for i := range t.HalfEdges {
		o, d := t.Origin(i), t.HalfEdges[i].Dest
		if (o == a && d == b) || (o == b && d == a) {
			return i
		}
	}
	return None
}

// FaceSize counts the edges of the face owning half-edge he by walking Next
// until the loop closes.
func (t *Topology) FaceSize(he int) int {
	n := 1
	for cur := t.HalfEdges[he].Next; cur != he; cur = t.HalfEdges[cur].Next {
		n++
		if n > len(t.HalfEdges) {
			panic(fmt.Sprintf("mesh: face loop of half-edge %d does not close", he))
		}
	}
	return n
}
