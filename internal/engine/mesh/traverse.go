package mesh

// maxStarSteps bounds vertex-star circulation against corrupt topology.
const maxStarSteps = 20

// EdgeLoop extends the edge (a, b) into an edge loop: the chain of opposite
// edges threading a strip of quads. The walk runs in both directions from
// the seed and stops at non-quad faces, boundaries, or when the loop closes
// on an already-selected edge. The result maps undirected edge keys; an
// unresolvable seed or missing topology yields the seed alone.
func EdgeLoop(t *Topology, a, b int) map[string]bool {
	sel := map[string]bool{UndirectedKey(a, b): true}
	if t == nil {
		return sel
	}
	seed := t.FindHalfEdge(a, b)
	if seed == None {
		return sel
	}
	t.walkLoop(seed, sel)
	if pair := t.HalfEdges[seed].Pair; pair != None {
		t.walkLoop(pair, sel)
	}
	return sel
}

// walkLoop records the quad-opposite edge of each face and crosses into the
// adjacent face through its pair.
func (t *Topology) walkLoop(he int, sel map[string]bool) {
	for he != None {
		if t.FaceSize(he) != 4 {
			return
		}
		opp := t.HalfEdges[t.HalfEdges[he].Next].Next
		key := t.HalfEdges[opp].Key
		if sel[key] {
			return
		}
		sel[key] = true
		he = t.HalfEdges[opp].Pair
	}
}

// EdgeRing extends the edge (a, b) into an edge ring: the parallel edges
// across a strip of quads, reached by crossing each quad's shared
// perpendicular edge. Termination rules match EdgeLoop.
func EdgeRing(t *Topology, a, b int) map[string]bool {
	sel := map[string]bool{UndirectedKey(a, b): true}
	if t == nil {
		return sel
	}
	seed := t.FindHalfEdge(a, b)
	if seed == None {
		return sel
	}
	t.walkRing(seed, sel)
	if pair := t.HalfEdges[seed].Pair; pair != None {
		t.walkRing(pair, sel)
	}
	return sel
}

// walkRing advances Next, crosses that edge's pair, then advances Next again
// to land on the parallel edge in the adjacent quad.
func (t *Topology) walkRing(he int, sel map[string]bool) {
	for {
		if t.FaceSize(he) != 4 {
			return
		}
		across := t.HalfEdges[t.HalfEdges[he].Next].Pair
		if across == None {
			return
		}
		parallel := t.HalfEdges[across].Next
		key := t.HalfEdges[parallel].Key
		if sel[key] {
			return
		}
		sel[key] = true
		he = parallel
	}
}

// VertexStar returns v plus its edge-adjacent neighbors, found by
// circulating the outgoing half-edges around v. When the circulation hits a
// boundary it sweeps the remaining fan in the other direction, so boundary
// and split vertices still report the neighbors inside their own faces.
// Missing topology or an isolated vertex yields the seed alone.
func VertexStar(t *Topology, v int) map[int]bool {
	sel := map[int]bool{v: true}
	if t == nil || v < 0 || v >= len(t.VertexOutgoing) {
		return sel
	}
	start := t.VertexOutgoing[v]
	if start == None {
		return sel
	}

	steps := 0
	he := start
	for {
		sel[t.HalfEdges[he].Dest] = true
		if steps++; steps >= maxStarSteps {
			return sel
		}
		pair := t.HalfEdges[he].Pair
		if pair == None {
			break
		}
		he = t.HalfEdges[pair].Next
		if he == start {
			return sel
		}
	}

	// Boundary hit: walk incoming half-edges the other way around the fan,
	// collecting their origins.
	he = t.HalfEdges[start].Prev
	for {
		sel[t.Origin(he)] = true
		if steps++; steps >= maxStarSteps {
			return sel
		}
		pair := t.HalfEdges[he].Pair
		if pair == None {
			return sel
		}
		he = t.HalfEdges[pair].Prev
	}
}
