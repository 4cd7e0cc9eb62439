package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huectl/huectl/internal/cache"
	"github.com/huectl/huectl/internal/hue"
	"github.com/huectl/huectl/internal/outfmt"
)

func newDiscoverCmd() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Find Hue bridges on the local network",
		Long:  "Query the Philips nupnp portal for bridges visible from this network.",
		Example: `  # Find bridges
  huectl discover

  # Skip the local result cache
  huectl discover --no-cache`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := cache.NewStore(cache.DefaultDir(), "discovery", "portal", "")

			var bridges []hue.BridgeInfo
			if noCache || !store.Get(&bridges) {
				var err error
				bridges, _, err = getPortal().Discover(cmd.Context())
				if err != nil {
					return fmt.Errorf("discovery failed: %w", err)
				}
				store.Put(bridges)
			}

			if outfmt.IsJSON(cmd.Context()) || flags.Query != "" {
				return printValue(cmd, bridges)
			}

			if len(bridges) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No bridges found")
				return nil
			}
			for _, b := range bridges {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.ID, b.InternalIPAddress)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Always query the portal")
	return cmd
}
