package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// statusReport is a cross-resource summary assembled from parallel fetches.
type statusReport struct {
	Bridge    json.RawMessage `json:"bridge"`
	Lights    json.RawMessage `json:"lights"`
	Groups    json.RawMessage `json:"groups"`
	Sensors   json.RawMessage `json:"sensors"`
	Schedules json.RawMessage `json:"schedules"`
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the bridge and its resources",
		Long:  "Fetches config, lights, groups, sensors and schedules concurrently and prints a combined report.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			var report statusReport
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() (err error) {
				report.Bridge, err = client.Config().Get(ctx)
				return err
			})
			g.Go(func() (err error) {
				report.Lights, err = client.Lights().List(ctx)
				return err
			})
			g.Go(func() (err error) {
				report.Groups, err = client.Groups().List(ctx)
				return err
			})
			g.Go(func() (err error) {
				report.Sensors, err = client.Sensors().List(ctx)
				return err
			})
			g.Go(func() (err error) {
				report.Schedules, err = client.Schedules().List(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("status fetch failed: %w", err)
			}
			if err := hueCheck(report.Bridge); err != nil {
				return err
			}

			return printValue(cmd, report)
		},
	}
}
