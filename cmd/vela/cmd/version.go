package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags; it defaults to "dev" for
// local builds.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vela version",
	RunE: func(c *cobra.Command, args []string) error {
		fmt.Println("vela " + version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
