// Package obj reads and writes Wavefront OBJ polygon geometry. Only the
// vertex-position and face statements are handled; normals, texture
// coordinates, groups and materials are skipped.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads an OBJ file into a flat position buffer and a polygon face list.
func Load(path string) ([]float32, [][]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse reads OBJ statements from r. Face vertex references may use the
// v, v/vt, v//vn and v/vt/vn forms as well as negative (relative) indices;
// only the position index is kept.
func Parse(r io.Reader) ([]float32, [][]int, error) {
	var positions []float32
	var faces [][]int

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			for _, f := range fields[1:4] {
				x, err := strconv.ParseFloat(f, 32)
				if err != nil {
					return nil, nil, fmt.Errorf("line %d: bad coordinate %q: %w", line, f, err)
				}
				positions = append(positions, float32(x))
			}

		case "f":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			vertexCount := len(positions) / 3
			face := make([]int, 0, len(fields)-1)
			for _, f := range fields[1:] {
				ref := strings.SplitN(f, "/", 2)[0]
				idx, err := strconv.Atoi(ref)
				if err != nil {
					return nil, nil, fmt.Errorf("line %d: bad face index %q: %w", line, f, err)
				}
				if idx < 0 {
					idx = vertexCount + idx // relative to the vertices seen so far
				} else {
					idx-- // OBJ indices are 1-based
				}
				if idx < 0 || idx >= vertexCount {
					return nil, nil, fmt.Errorf("line %d: face index %q out of range", line, f)
				}
				face = append(face, idx)
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading obj: %w", err)
	}
	return positions, faces, nil
}

// Save writes positions and faces as an OBJ file.
func Save(path string, positions []float32, faces [][]int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()
	return Write(file, positions, faces)
}

// Write emits OBJ statements to w.
func Write(w io.Writer, positions []float32, faces [][]int) error {
	bw := bufio.NewWriter(w)
	for i := 0; i+2 < len(positions); i += 3 {
		fmt.Fprintf(bw, "v %g %g %g\n", positions[i], positions[i+1], positions[i+2])
	}
	for _, face := range faces {
		bw.WriteString("f")
		for _, v := range face {
			fmt.Fprintf(bw, " %d", v+1)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
