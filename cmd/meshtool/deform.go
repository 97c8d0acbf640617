package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/meshedit/internal/engine/deform"
	"github.com/Faultbox/meshedit/pkg/formats/obj"
)

var (
	deformDelta  string
	deformOutput string
)

var deformCmd = &cobra.Command{
	Use:   "deform <file.obj> <seed>...",
	Short: "Drag seed vertices by a delta with soft-selection falloff",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runDeform,
}

func init() {
	deformCmd.Flags().StringVar(&deformDelta, "delta", "0,1,0", "displacement as x,y,z")
	deformCmd.Flags().StringVarP(&deformOutput, "output", "o", "deformed.obj", "output OBJ path")
	deformCmd.Flags().Float32Var(&weightsRadius, "radius", 0, "influence radius (0 uses config)")
	deformCmd.Flags().StringVar(&weightsMode, "mode", "", "volume or surface (empty uses config)")
	rootCmd.AddCommand(deformCmd)
}

func runDeform(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	seeds, err := parseVertexArgs(args[1:])
	if err != nil {
		return err
	}
	delta, err := parseVec3(deformDelta)
	if err != nil {
		return fmt.Errorf("--delta: %w", err)
	}
	weights, err := computeWeights(m, seeds)
	if err != nil {
		return err
	}

	drag := deform.BeginDrag(m.Positions)
	drag.Apply(m.Positions, weights, delta, seeds)
	drag.End()

	if err := obj.Save(deformOutput, m.Positions, m.Faces); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", deformOutput)
	return nil
}
