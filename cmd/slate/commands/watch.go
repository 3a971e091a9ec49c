package commands

import (
	"github.com/slategen/slate/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Build, then rebuild on template changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			return c.components.App.Watch(cmd.Context(), app.BuildOptions{
				NoCache:     noCache,
				Parallelism: parallelism,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the artifact store and compile from source")
	cmd.Flags().IntP("parallelism", "p", 0, "Concurrent compilations (default: one per CPU)")
	return cmd
}
