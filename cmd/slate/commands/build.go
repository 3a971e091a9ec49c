package commands

import (
	"github.com/slategen/slate/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile all template units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			return c.components.App.Build(cmd.Context(), app.BuildOptions{
				NoCache:     noCache,
				Parallelism: parallelism,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the artifact store and compile from source")
	cmd.Flags().IntP("parallelism", "p", 0, "Concurrent compilations (default: one per CPU)")
	return cmd
}
