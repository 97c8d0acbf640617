package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/meshedit/internal/engine/mesh"
	"github.com/Faultbox/meshedit/internal/engine/softsel"
)

var (
	weightsRadius float32
	weightsMode   string
)

var weightsCmd = &cobra.Command{
	Use:   "weights <file.obj> <seed>...",
	Short: "Compute soft-selection weights around seed vertices",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runWeights,
}

func init() {
	weightsCmd.Flags().Float32Var(&weightsRadius, "radius", 0, "influence radius (0 uses config)")
	weightsCmd.Flags().StringVar(&weightsMode, "mode", "", "volume or surface (empty uses config)")
	rootCmd.AddCommand(weightsCmd)
}

func runWeights(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	seeds, err := parseVertexArgs(args[1:])
	if err != nil {
		return err
	}
	w, err := computeWeights(m, seeds)
	if err != nil {
		return err
	}

	nonzero := 0
	for v, weight := range w {
		if weight > 0 {
			nonzero++
			fmt.Printf("  %-6d %.4f\n", v, weight)
		}
	}
	fmt.Printf("%d of %d vertices influenced\n", nonzero, m.VertexCount())
	return nil
}

// computeWeights resolves the radius/mode flags against config defaults and
// runs the weight engine; surface mode triangulates the face list on the fly.
func computeWeights(m *mesh.LogicalMesh, seeds []int) ([]float32, error) {
	radius := weightsRadius
	if radius <= 0 {
		radius = cfg.SoftSelect.Radius
	}
	name := weightsMode
	if name == "" {
		name = cfg.SoftSelect.Mode
	}
	mode, err := softsel.ParseMode(name)
	if err != nil {
		return nil, err
	}

	var indices []uint32
	if mode == softsel.Surface {
		indices = mesh.FanTriangulate(m.Faces)
	}
	return softsel.ComputeWeights(mode, seeds, radius, m.Positions, indices), nil
}
