package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gocad/brep"
	"github.com/gocad/brep/geom"
	"github.com/gocad/brep/mesh"
	"github.com/gocad/brep/models"
)

var previewCmd = &cobra.Command{
	Use:   "preview <model>",
	Short: "Build a model and render a PNG preview",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringP("output", "o", "", "output file (default <model>.png)")
	previewCmd.Flags().Int("width", 800, "image width in pixels")
	previewCmd.Flags().Int("height", 600, "image height in pixels")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	name := args[0]

	tolerance, err := geom.NewTolerance(viper.GetFloat64("tolerance"))
	if err != nil {
		return err
	}

	sv := brep.NewServices()
	solid, err := models.Build(name, viper.GetFloat64("size"), sv)
	if err != nil {
		return err
	}

	m := sv.Mesh(solid, tolerance)

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = name + ".png"
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	if err := mesh.WritePNG(f, m, width, height); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", output, width, height)
	return nil
}
