// meshtool runs the editor's mesh-topology queries against OBJ files:
// half-edge statistics, ray picking, loop/ring/star selection extension,
// soft-selection weight fields, and weighted deformation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/meshedit/internal/config"
	"github.com/Faultbox/meshedit/internal/engine/mesh"
	"github.com/Faultbox/meshedit/internal/logger"
	"github.com/Faultbox/meshedit/pkg/formats/obj"
)

var (
	flagConfig string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:          "meshtool",
	Short:        "Inspect and edit polygon mesh topology",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to meshtool.yaml")
}

func loadMesh(path string) (*mesh.LogicalMesh, error) {
	positions, faces, err := obj.Load(path)
	if err != nil {
		return nil, err
	}
	return mesh.NewLogicalMesh(faces, positions), nil
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
