// Package cmd implements the huectl command tree.
package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/huectl/huectl/internal/config"
	"github.com/huectl/huectl/internal/debug"
	"github.com/huectl/huectl/internal/hue"
	"github.com/huectl/huectl/internal/iocontext"
	"github.com/huectl/huectl/internal/outfmt"
)

// version is set at build time via -ldflags.
var version = "dev"

// rootFlags holds global CLI flags. Package-level mutable state reset at the
// start of every Execute() call; tests depend on this reset.
type rootFlags struct {
	Output   string
	Query    string
	Compact  bool
	Debug    bool
	Timeout  time.Duration
	Bridge   string
	Username string
}

var flags = rootFlags{
	Output:  "json",
	Timeout: 30 * time.Second,
}

func resetFlags() {
	flags = rootFlags{
		Output:  "json",
		Timeout: 30 * time.Second,
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "huectl",
		Short:         "Control Philips Hue bridges from the command line",
		Long:          "huectl talks to a Philips Hue bridge's REST API: lights, groups, scenes, schedules, sensors, rules, and bridge configuration.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// .env is a convenience for HUECTL_BRIDGE / HUECTL_USERNAME;
			// a missing file is fine.
			_ = godotenv.Load()

			mode, err := outfmt.Parse(flags.Output)
			if err != nil {
				return err
			}
			debug.SetupLogger(flags.Debug)

			ctx := cmd.Context()
			ctx = debug.WithDebug(ctx, flags.Debug)
			ctx = outfmt.WithMode(ctx, mode)
			ctx = outfmt.WithCompact(ctx, flags.Compact)
			cmd.SetContext(ctx)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.Output, "output", "o", flags.Output, "Output format: json or text")
	pf.StringVarP(&flags.Query, "query", "q", "", "jq expression applied to the response document")
	pf.BoolVar(&flags.Compact, "compact", false, "Compact JSON output")
	pf.BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	pf.DurationVar(&flags.Timeout, "timeout", flags.Timeout, "HTTP timeout per request")
	pf.StringVar(&flags.Bridge, "bridge", "", "Bridge IP or hostname (overrides stored credentials)")
	pf.StringVar(&flags.Username, "username", "", "Whitelist username (overrides stored credentials)")

	root.AddCommand(newDiscoverCmd())
	root.AddCommand(newAuthCmd())
	root.AddCommand(newLightsCmd())
	root.AddCommand(newGroupsCmd())
	root.AddCommand(newScenesCmd())
	root.AddCommand(newSchedulesCmd())
	root.AddCommand(newSensorsCmd())
	root.AddCommand(newRulesCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newAPICmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the huectl command tree.
func Execute(ctx context.Context, args []string) error {
	resetFlags()
	root := newRootCmd()
	root.SetArgs(args)

	streams := iocontext.GetIO(ctx)
	root.SetOut(streams.Out)
	root.SetErr(streams.ErrOut)
	root.SetIn(streams.In)

	return root.ExecuteContext(ctx)
}

// ExitCode maps an error from Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, config.ErrNotConfigured) {
		return 2
	}
	var bridgeErr *hue.BridgeError
	if errors.As(err, &bridgeErr) {
		if bridgeErr.Type == hue.ErrTypeUnauthorized {
			return 4
		}
		return 3
	}
	return 1
}
