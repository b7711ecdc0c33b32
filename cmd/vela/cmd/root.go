package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	traceFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "vela",
	Short: "Vela evaluates lowered intermediate-representation programs",
	Long: `Vela is a tree-walking evaluator for a small, multiple-dispatch
intermediate representation. It reads programs written in a minimal
textual IR notation and runs them through the core interpreter.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a vela.yaml configuration file")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "emit one JSON trace line with the program's result or error")
}
