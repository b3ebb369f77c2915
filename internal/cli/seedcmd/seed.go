// Package seedcmd holds the commands that move fixture data in and out of
// a session
//
// e.g., taskflow seed ...
package seedcmd

import (
	"github.com/spf13/cobra"
)

// SeedCmd returns the seed parent command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Export and inspect fixture data",
	}

	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(CheckCmd())

	return cmd
}

// Summary reports what a fixture file holds
type Summary struct {
	Path     string `json:"path,omitempty"`
	Format   string `json:"format"`
	Projects int    `json:"projects"`
	Tasks    int    `json:"tasks"`
}
