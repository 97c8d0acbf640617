package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Faultbox/meshedit/internal/engine/mesh"
)

var loopCmd = &cobra.Command{
	Use:   "loop <file.obj> <v0> <v1>",
	Short: "Extend the edge v0-v1 into an edge loop",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdgeSelect(args, mesh.EdgeLoop)
	},
}

var ringCmd = &cobra.Command{
	Use:   "ring <file.obj> <v0> <v1>",
	Short: "Extend the edge v0-v1 into an edge ring",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdgeSelect(args, mesh.EdgeRing)
	},
}

var starCmd = &cobra.Command{
	Use:   "star <file.obj> <v>",
	Short: "Select the vertex v plus its edge-adjacent neighbors",
	Args:  cobra.ExactArgs(2),
	RunE:  runStar,
}

func init() {
	rootCmd.AddCommand(loopCmd, ringCmd, starCmd)
}

func runEdgeSelect(args []string, extend func(*mesh.Topology, int, int) map[string]bool) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	verts, err := parseVertexArgs(args[1:])
	if err != nil {
		return err
	}

	sel := extend(m.Topology(), verts[0], verts[1])
	keys := make([]string, 0, len(sel))
	for k := range sel {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("%d edges:\n", len(keys))
	for _, k := range keys {
		fmt.Println(" ", k)
	}
	return nil
}

func runStar(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	verts, err := parseVertexArgs(args[1:])
	if err != nil {
		return err
	}

	sel := mesh.VertexStar(m.Topology(), verts[0])
	ids := make([]int, 0, len(sel))
	for v := range sel {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	fmt.Printf("%d vertices:\n", len(ids))
	for _, v := range ids {
		p := m.Position(v)
		fmt.Printf("  %d (%g %g %g)\n", v, p.X, p.Y, p.Z)
	}
	return nil
}
