package mesh

import "testing"

// gridFaces returns a cols x rows grid of quads over (cols+1)*(rows+1)
// vertices, vertex (x, y) at index y*(cols+1)+x.
func gridFaces(cols, rows int) [][]int {
	var faces [][]int
	stride := cols + 1
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := y*stride + x
			faces = append(faces, []int{v, v + 1, v + stride + 1, v + stride})
		}
	}
	return faces
}

func gridVertexCount(cols, rows int) int {
	return (cols + 1) * (rows + 1)
}

// splitCube returns a unit cube as 6 quads with 4 private vertices each
// (24 vertices total, split normals style: no vertex sharing between faces).
// Face 0 is the +Z face with corners (0,0,1) (1,0,1) (1,1,1) (0,1,1).
func splitCube() ([][]int, []float32) {
	corners := [][4][3]float32{
		{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, // +Z
		{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}, // -Z
		{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}, // +X
		{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, // -X
		{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}, // +Y
		{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, // -Y
	}
	var faces [][]int
	var positions []float32
	for f, quad := range corners {
		face := make([]int, 4)
		for i, c := range quad {
			face[i] = f*4 + i
			positions = append(positions, c[0], c[1], c[2])
		}
		faces = append(faces, face)
	}
	return faces, positions
}

func TestPairingSymmetry(t *testing.T) {
	topo := BuildTopology(gridFaces(3, 3), gridVertexCount(3, 3))
	for _, he := range topo.HalfEdges {
		if he.Pair == None {
			continue
		}
		pair := topo.HalfEdges[he.Pair]
		if pair.Pair != he.ID {
			t.Errorf("half-edge %d pair %d points back to %d", he.ID, he.Pair, pair.Pair)
		}
		if pair.Dest != topo.Origin(he.ID) || he.Dest != topo.Origin(pair.ID) {
			t.Errorf("half-edge %d and pair %d do not traverse the same vertices", he.ID, pair.ID)
		}
	}
}

func TestFaceLoopClosure(t *testing.T) {
	faces := gridFaces(2, 2)
	topo := BuildTopology(faces, gridVertexCount(2, 2))
	for f, face := range faces {
		he := topo.FaceStart[f]
		for range face {
			he = topo.HalfEdges[he].Next
		}
		if he != topo.FaceStart[f] {
			t.Errorf("face %d: walking Next %d times ends at %d, want %d",
				f, len(face), he, topo.FaceStart[f])
		}
		if got := topo.FaceSize(topo.FaceStart[f]); got != len(face) {
			t.Errorf("face %d: FaceSize = %d, want %d", f, got, len(face))
		}
	}
}

func TestBoundaryEdges(t *testing.T) {
	topo := BuildTopology([][]int{{0, 1, 2, 3}}, 4)
	for _, he := range topo.HalfEdges {
		if he.Pair != None {
			t.Errorf("half-edge %d of a lone quad should be boundary, pair = %d", he.ID, he.Pair)
		}
	}

	// An interior edge of a two-quad strip is paired, the rest stay boundary.
	topo = BuildTopology(gridFaces(2, 1), gridVertexCount(2, 1))
	paired := 0
	for _, he := range topo.HalfEdges {
		if he.Pair != None {
			paired++
		}
	}
	if paired != 2 {
		t.Errorf("two-quad strip has %d paired half-edges, want 2", paired)
	}
}

func TestVertexOutgoing(t *testing.T) {
	topo := BuildTopology(gridFaces(2, 2), gridVertexCount(2, 2))
	for v, he := range topo.VertexOutgoing {
		if he == None {
			t.Errorf("vertex %d has no outgoing half-edge", v)
			continue
		}
		if topo.Origin(he) != v {
			t.Errorf("vertex %d outgoing half-edge %d originates at %d", v, he, topo.Origin(he))
		}
	}
}

func TestBuildPanicsOnOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range face index")
		}
	}()
	BuildTopology([][]int{{0, 1, 9}}, 4)
}

func TestNonManifoldDuplicateEdgeNoCrash(t *testing.T) {
	// Faces 0 and 2 both emit the directed edge 0->1; pairing keeps the last
	// registration and must not crash.
	faces := [][]int{{0, 1, 2}, {1, 0, 3}, {0, 1, 4}}
	topo := BuildTopology(faces, 5)

	rev := topo.FindHalfEdge(1, 0)
	if rev == None {
		t.Fatal("reverse half-edge 1->0 not found")
	}
	for i := range topo.HalfEdges {
		if topo.HalfEdges[i].Pair == None {
			continue
		}
		pair := topo.HalfEdges[i].Pair
		if topo.HalfEdges[i].Key != topo.HalfEdges[pair].Key {
			t.Errorf("half-edge %d paired across different edges", i)
		}
	}
}

func TestUndirectedKey(t *testing.T) {
	if UndirectedKey(7, 3) != "3-7" || UndirectedKey(3, 7) != "3-7" {
		t.Errorf("UndirectedKey not direction independent: %q vs %q",
			UndirectedKey(7, 3), UndirectedKey(3, 7))
	}
}

func TestFindHalfEdge(t *testing.T) {
	topo := BuildTopology([][]int{{0, 1, 2, 3}}, 4)
	he := topo.FindHalfEdge(2, 1)
	if he == None {
		t.Fatal("edge 1-2 not found")
	}
	o, d := topo.Origin(he), topo.HalfEdges[he].Dest
	if !(o == 1 && d == 2) && !(o == 2 && d == 1) {
		t.Errorf("FindHalfEdge(2, 1) resolved %d->%d", o, d)
	}
	if topo.FindHalfEdge(0, 2) != None {
		t.Error("diagonal 0-2 should not resolve to a half-edge")
	}
}

func TestLogicalMeshTopologyCache(t *testing.T) {
	_, positions := splitCube()
	faces, _ := splitCube()
	m := NewLogicalMesh(faces, positions)

	t1 := m.Topology()
	if t1 != m.Topology() {
		t.Error("Topology() rebuilt without invalidation")
	}
	m.InvalidateTopology()
	if t1 == m.Topology() {
		t.Error("Topology() not rebuilt after InvalidateTopology()")
	}
}

func TestBounds(t *testing.T) {
	m := NewLogicalMesh([][]int{{0, 1, 2}}, []float32{
		-1, 0, 2,
		3, -2, 0,
		0, 5, -4,
	})
	min, max := m.Bounds()
	if min.X != -1 || min.Y != -2 || min.Z != -4 {
		t.Errorf("min = %v, want {-1 -2 -4}", min)
	}
	if max.X != 3 || max.Y != 5 || max.Z != 2 {
		t.Errorf("max = %v, want {3 5 2}", max)
	}

	empty := &LogicalMesh{}
	min, max = empty.Bounds()
	if min != max || min.X != 0 {
		t.Errorf("empty mesh bounds = %v %v, want zeros", min, max)
	}
}

func TestFanTriangulate(t *testing.T) {
	indices := FanTriangulate([][]int{{0, 1, 2, 3, 4}})
	want := []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4}
	if len(indices) != len(want) {
		t.Fatalf("got %d indices, want %d", len(indices), len(want))
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, indices[i], want[i])
		}
	}
}
