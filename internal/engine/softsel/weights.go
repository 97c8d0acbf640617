// Package softsel computes smoothly-weighted per-vertex selection influence,
// either by straight-line distance or by geodesic distance along mesh edges.
package softsel

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/meshedit/pkg/math"
)

// Mode selects how seed-to-vertex distance is measured.
type Mode int

const (
	// Volume measures straight-line Euclidean distance.
	Volume Mode = iota
	// Surface approximates geodesic distance along mesh edges.
	Surface
)

// String returns the config name of the mode.
func (m Mode) String() string {
	if m == Surface {
		return "surface"
	}
	return "volume"
}

// ParseMode parses a config mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "volume":
		return Volume, nil
	case "surface":
		return Surface, nil
	}
	return Volume, fmt.Errorf("softsel: unknown mode %q", s)
}

// ComputeWeights returns one influence weight in [0, 1] per vertex. Seed
// vertices always weigh 1; vertices beyond radius weigh 0; in between the
// weight falls off as smoothstep(1 - distance/radius). Surface mode needs
// the triangle index buffer; indices are ignored in volume mode. The result
// is a pure function of the inputs: recompute on any change to seeds,
// radius, mode, or positions.
func ComputeWeights(mode Mode, seeds []int, radius float32, positions []float32, indices []uint32) []float32 {
	vertexCount := len(positions) / 3
	weights := make([]float32, vertexCount)

	switch mode {
	case Surface:
		adj := BuildAdjacency(vertexCount, indices)
		dist := geodesicDistances(seeds, radius, positions, adj, vertexCount*searchCapFactor)
		for v := 0; v < vertexCount; v++ {
			weights[v] = falloff(dist[v], radius)
		}
	default:
		for v := 0; v < vertexCount; v++ {
			weights[v] = falloff(minSeedDistance(v, seeds, positions), radius)
		}
	}

	// Seeds weigh 1 regardless of mode or radius.
	for _, s := range seeds {
		if s >= 0 && s < vertexCount {
			weights[s] = 1
		}
	}
	return weights
}

// falloff converts a seed distance into a weight.
func falloff(d, radius float32) float32 {
	if radius <= 0 {
		if d == 0 {
			return 1
		}
		return 0
	}
	if d > radius {
		return 0
	}
	return math.Smoothstep(1 - d/radius)
}

// minSeedDistance returns the smallest Euclidean distance from v to any
// seed. Out-of-range seeds are skipped; with no valid seed every vertex is
// effectively beyond any radius.
func minSeedDistance(v int, seeds []int, positions []float32) float32 {
	p := math.FromSlice(positions, v)
	vertexCount := len(positions) / 3
	min := float32(math32.MaxFloat32)
	for _, s := range seeds {
		if s < 0 || s >= vertexCount {
			continue
		}
		if d := p.Distance(math.FromSlice(positions, s)); d < min {
			min = d
		}
	}
	return min
}

// BuildAdjacency builds deduplicated per-vertex neighbor lists from a
// triangle index buffer. The graph depends only on indices, so callers may
// cache it across position edits.
func BuildAdjacency(vertexCount int, indices []uint32) [][]int {
	adj := make([][]int, vertexCount)
	link := func(a, b int) {
		for _, n := range adj[a] {
			if n == b {
				return
			}
		}
		adj[a] = append(adj[a], b)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := int(indices[i]), int(indices[i+1]), int(indices[i+2])
		if a >= vertexCount || b >= vertexCount || c >= vertexCount {
			continue
		}
		link(a, b)
		link(b, a)
		link(b, c)
		link(c, b)
		link(c, a)
		link(a, c)
	}
	return adj
}
