package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/meshedit/internal/engine/mesh"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.obj>",
	Short: "Display half-edge topology statistics for a mesh",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	topo := m.Topology()

	boundary := 0
	edges := map[string]bool{}
	quads := 0
	for _, he := range topo.HalfEdges {
		if he.Pair == mesh.None {
			boundary++
		}
		edges[he.Key] = true
	}
	for _, face := range m.Faces {
		if len(face) == 4 {
			quads++
		}
	}

	fmt.Printf("File: %s\n\n", args[0])
	fmt.Println("Mesh:")
	fmt.Printf("  Vertices:   %d\n", m.VertexCount())
	fmt.Printf("  Faces:      %d (%d quads)\n", len(m.Faces), quads)
	fmt.Printf("  Edges:      %d\n", len(edges))
	fmt.Println("Topology:")
	fmt.Printf("  Half-edges: %d\n", len(topo.HalfEdges))
	fmt.Printf("  Boundary:   %d\n", boundary)
	return nil
}
