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

var exportCmd = &cobra.Command{
	Use:   "export <model>",
	Short: "Build a model and write it as an STL mesh",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output file (default <model>.stl)")
	exportCmd.Flags().Bool("binary", false, "write binary STL instead of ASCII")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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
		output = name + ".stl"
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	if binary, _ := cmd.Flags().GetBool("binary"); binary {
		err = mesh.WriteSTLBinary(f, m)
	} else {
		err = mesh.WriteSTL(f, m, name)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d triangles, %d vertices\n",
		output, m.TriangleCount(), len(m.Vertices))
	return nil
}
