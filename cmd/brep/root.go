package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gocad/brep"
)

var rootCmd = &cobra.Command{
	Use:   "brep",
	Short: "Build and export boundary-representation models",
	Long: "brep builds the built-in demo models with the topology kernel and\n" +
		"exports them as STL meshes or PNG previews.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default brep.yaml)")
	rootCmd.PersistentFlags().Float64("tolerance", 0.01, "approximation tolerance")
	rootCmd.PersistentFlags().Float64("size", 1.0, "model size")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	_ = viper.BindPFlag("tolerance", rootCmd.PersistentFlags().Lookup("tolerance"))
	_ = viper.BindPFlag("size", rootCmd.PersistentFlags().Lookup("size"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("brep")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("BREP")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and defaults apply.
	_ = viper.ReadInConfig()

	setupLogging(viper.GetString("log-level"))
}

func setupLogging(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}
	brep.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	})))
}
