package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/meshedit/pkg/math"
)

// parseVec3 parses "x,y,z" into a vector.
func parseVec3(s string) (math.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var out [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("bad component %q: %w", p, err)
		}
		out[i] = float32(f)
	}
	return math.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}

// parseVertexArgs parses positional vertex indices.
func parseVertexArgs(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("bad vertex index %q: %w", a, err)
		}
		out = append(out, v)
	}
	return out, nil
}
