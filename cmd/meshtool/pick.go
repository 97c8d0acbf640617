package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/meshedit/internal/engine/camera"
	"github.com/Faultbox/meshedit/internal/engine/mesh"
	"github.com/Faultbox/meshedit/internal/engine/picking"
)

var (
	pickOrigin    string
	pickDirection string
	pickScreen    string
	pickViewportW int
	pickViewportH int
	pickTolerance float32
)

var pickCmd = &cobra.Command{
	Use:   "pick <file.obj>",
	Short: "Raycast the mesh and resolve the picked face, vertex and edge",
	Args:  cobra.ExactArgs(1),
	RunE:  runPick,
}

func init() {
	pickCmd.Flags().StringVar(&pickOrigin, "origin", "0,0,10", "ray origin as x,y,z")
	pickCmd.Flags().StringVar(&pickDirection, "dir", "0,0,-1", "ray direction as x,y,z")
	pickCmd.Flags().StringVar(&pickScreen, "screen", "", "pick through pixel x,y of a fitted viewport instead of --origin/--dir")
	pickCmd.Flags().IntVar(&pickViewportW, "width", 800, "viewport width in pixels for --screen")
	pickCmd.Flags().IntVar(&pickViewportH, "height", 600, "viewport height in pixels for --screen")
	pickCmd.Flags().Float32Var(&pickTolerance, "tolerance", 0, "vertex/edge snap distance (0 uses config)")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	ray, err := buildPickRay(m)
	if err != nil {
		return err
	}
	tolerance := pickTolerance
	if tolerance <= 0 {
		tolerance = cfg.Picking.Tolerance
	}

	res, ok := picking.RaycastMesh(m.Faces, m.Positions, ray, tolerance)
	if !ok {
		fmt.Println("no hit")
		return nil
	}

	fmt.Printf("Face:   %d\n", res.FaceID)
	fmt.Printf("t:      %g\n", res.T)
	fmt.Printf("Point:  %g %g %g\n", res.Point.X, res.Point.Y, res.Point.Z)
	if res.VertexID >= 0 {
		fmt.Printf("Vertex: %d\n", res.VertexID)
	} else {
		fmt.Println("Vertex: none within tolerance")
	}
	fmt.Printf("Edge:   %d-%d\n", res.Edge[0], res.Edge[1])
	return nil
}

// buildPickRay produces the world-space ray from either the explicit
// --origin/--dir pair or, with --screen, by unprojecting a pixel through an
// orbit camera fitted to the mesh bounds.
func buildPickRay(m *mesh.LogicalMesh) (picking.Ray, error) {
	if pickScreen == "" {
		origin, err := parseVec3(pickOrigin)
		if err != nil {
			return picking.Ray{}, fmt.Errorf("--origin: %w", err)
		}
		dir, err := parseVec3(pickDirection)
		if err != nil {
			return picking.Ray{}, fmt.Errorf("--dir: %w", err)
		}
		return picking.Ray{Origin: origin, Direction: dir.Normalize()}, nil
	}

	var sx, sy float32
	if _, err := fmt.Sscanf(pickScreen, "%g,%g", &sx, &sy); err != nil {
		return picking.Ray{}, fmt.Errorf("--screen: expected x,y, got %q", pickScreen)
	}
	if pickViewportW <= 0 || pickViewportH <= 0 {
		return picking.Ray{}, fmt.Errorf("--width/--height must be positive")
	}

	cam := camera.NewOrbitCamera()
	min, max := m.Bounds()
	cam.FitToBounds(min, max)

	aspect := float32(pickViewportW) / float32(pickViewportH)
	invViewProj := cam.ViewProjection(aspect).Inverse()
	ray := picking.ScreenToRay(sx, sy, float32(pickViewportW), float32(pickViewportH), invViewProj)
	return ray, nil
}
