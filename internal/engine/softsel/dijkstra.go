package softsel

import (
	"container/heap"

	"github.com/chewxy/math32"

	"github.com/Faultbox/meshedit/internal/logger"
	"github.com/Faultbox/meshedit/pkg/math"
)

// searchCapFactor bounds the Dijkstra search to vertexCount*10 pops as a
// failsafe against degenerate or disconnected geometry.
const searchCapFactor = 10

type vertexDist struct {
	vertex int
	dist   float32
}

// distQueue is a binary min-heap of vertices keyed by running distance.
type distQueue []vertexDist

func (q distQueue) Len() int           { return len(q) }
func (q distQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q distQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *distQueue) Push(x any)        { *q = append(*q, x.(vertexDist)) }
func (q *distQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// geodesicDistances runs a radius-bounded multi-source Dijkstra over the
// adjacency graph, seeded simultaneously from all seed vertices at distance
// zero. No distance beyond radius is ever pushed or written, which keeps the
// search local regardless of mesh size. Unreached vertices stay at +Inf.
// The search aborts after maxIters pops, keeping whatever distances were
// settled by then.
func geodesicDistances(seeds []int, radius float32, positions []float32, adj [][]int, maxIters int) []float32 {
	vertexCount := len(adj)
	dist := make([]float32, vertexCount)
	for v := range dist {
		dist[v] = math32.Inf(1)
	}

	queue := make(distQueue, 0, len(seeds))
	for _, s := range seeds {
		if s < 0 || s >= vertexCount || radius < 0 {
			continue
		}
		dist[s] = 0
		queue = append(queue, vertexDist{vertex: s, dist: 0})
	}
	heap.Init(&queue)

	iterations := 0
	for queue.Len() > 0 {
		if iterations++; iterations > maxIters {
			logger.Sugar.Warnw("soft-selection search hit iteration cap",
				"cap", maxIters, "vertices", vertexCount)
			break
		}
		cur := heap.Pop(&queue).(vertexDist)
		if cur.dist > dist[cur.vertex] {
			continue // stale entry, a shorter path was already settled
		}
		p := math.FromSlice(positions, cur.vertex)
		for _, n := range adj[cur.vertex] {
			d := cur.dist + p.Distance(math.FromSlice(positions, n))
			if d > radius || d >= dist[n] {
				continue
			}
			dist[n] = d
			heap.Push(&queue, vertexDist{vertex: n, dist: d})
		}
	}
	return dist
}
