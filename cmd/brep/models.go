package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gocad/brep/models"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the built-in models",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, name := range models.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
