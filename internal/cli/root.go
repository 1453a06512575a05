// Package cli implements the mold command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moldgen/mold/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "mold",
	Short: "mold: scaffolding for Go web services",
	Long: `mold scaffolds Gin-based web services and grows them in place.

It creates new projects from embedded templates, then extends them by
generating CRUD resources and JWT authentication into the existing tree,
wiring routes and middleware through sentinel comment markers.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("mold %s\n", version.GetVersion()))
}
