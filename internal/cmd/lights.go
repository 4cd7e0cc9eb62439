package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/huectl/huectl/internal/outfmt"
)

func newLightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lights",
		Aliases: []string{"light"},
		Short:   "Manage lights",
	}
	cmd.AddCommand(newLightsListCmd())
	cmd.AddCommand(newLightsGetCmd())
	cmd.AddCommand(newLightsSetCmd())
	cmd.AddCommand(newLightsRenameCmd())
	cmd.AddCommand(newLightsDeleteCmd())
	cmd.AddCommand(newLightsSearchCmd())
	cmd.AddCommand(newLightsNewCmd())
	return cmd
}

func newLightsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all lights",
		Example: `  # List all lights
  huectl lights list

  # Names of lights that are on
  huectl lights list -q '.[] | select(.state.on) | .name'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Lights().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list lights: %w", err)
			}

			if outfmt.IsJSON(cmd.Context()) || flags.Query != "" {
				return printDoc(cmd, doc)
			}

			var lights map[string]struct {
				Name  string `json:"name"`
				State struct {
					On        bool `json:"on"`
					Reachable bool `json:"reachable"`
				} `json:"state"`
			}
			if err := json.Unmarshal(doc, &lights); err != nil {
				// A non-object reply usually carries a bridge error; show it.
				if err := hueCheck(doc); err != nil {
					return err
				}
				return printDoc(cmd, doc)
			}
			if len(lights) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No lights found")
				return nil
			}
			for _, id := range sortedKeys(lights) {
				light := lights[id]
				state := "off"
				if light.State.On {
					state = "on"
				}
				if !light.State.Reachable {
					state += " (unreachable)"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", id, light.Name, state)
			}
			return nil
		},
	}
	return cmd
}

func newLightsGetCmd() *cobra.Command {
	var byName bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get one light's attributes and state",
		Example: `  # By id
  huectl lights get 3

  # By name
  huectl lights get "Desk Lamp" --name`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveID(cmd.Context(), client, "lights", args[0], byName)
			if err != nil {
				return err
			}
			doc, err := client.Lights().Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get light %s: %w", id, err)
			}
			return printDoc(cmd, doc)
		},
	}

	cmd.Flags().BoolVar(&byName, "name", false, "Treat the argument as a light name")
	return cmd
}

func newLightsSetCmd() *cobra.Command {
	var byName bool
	var on, off bool
	var bri, hue_, sat, ct int
	var transition int
	var stateJSON string

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Change a light's state",
		Example: `  # Turn a light on at half brightness
  huectl lights set 3 --on --bri 128

  # By name
  huectl lights set "Desk Lamp" --name --off

  # Raw state document
  huectl lights set 3 --state '{"on":true,"xy":[0.3,0.3]}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveID(cmd.Context(), client, "lights", args[0], byName)
			if err != nil {
				return err
			}

			state, err := buildState(cmd, stateJSON, on, off, map[string]int{
				"bri": bri, "hue": hue_, "sat": sat, "ct": ct, "transitiontime": transition,
			})
			if err != nil {
				return err
			}

			doc, err := client.Lights().SetState(cmd.Context(), id, state)
			if err != nil {
				return fmt.Errorf("failed to set light %s: %w", id, err)
			}
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().BoolVar(&byName, "name", false, "Treat the argument as a light name")
	cmd.Flags().BoolVar(&on, "on", false, "Turn the light on")
	cmd.Flags().BoolVar(&off, "off", false, "Turn the light off")
	cmd.Flags().IntVar(&bri, "bri", -1, "Brightness (1-254)")
	cmd.Flags().IntVar(&hue_, "hue", -1, "Hue (0-65535)")
	cmd.Flags().IntVar(&sat, "sat", -1, "Saturation (0-254)")
	cmd.Flags().IntVar(&ct, "ct", -1, "Color temperature in mirek (153-500)")
	cmd.Flags().IntVar(&transition, "transition", -1, "Transition time in 100ms steps")
	cmd.Flags().StringVar(&stateJSON, "state", "", "Raw JSON state document (overrides other state flags)")
	return cmd
}

func newLightsRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a light",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Lights().Rename(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to rename light %s: %w", args[0], err)
			}
			invalidateNames("lights")
			return checkAndPrint(cmd, doc)
		},
	}
	return cmd
}

func newLightsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a light from the bridge",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Lights().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete light %s: %w", args[0], err)
			}
			invalidateNames("lights")
			return checkAndPrint(cmd, doc)
		},
	}
	return cmd
}

func newLightsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Start a scan for new lights",
		Long:  "The bridge scans for roughly 40 seconds; check results with 'huectl lights new'.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Lights().Search(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to start search: %w", err)
			}
			return checkAndPrint(cmd, doc)
		},
	}
}

func newLightsNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Show lights found by the last search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Lights().New(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list new lights: %w", err)
			}
			return printDoc(cmd, doc)
		},
	}
}

// buildState assembles a light/group state body from flags. A raw --state
// document wins outright; otherwise only explicitly set values are included.
func buildState(cmd *cobra.Command, stateJSON string, on, off bool, numeric map[string]int) (map[string]any, error) {
	if stateJSON != "" {
		var state map[string]any
		if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
			return nil, fmt.Errorf("invalid --state document: %w", err)
		}
		return state, nil
	}

	if on && off {
		return nil, fmt.Errorf("--on and --off are mutually exclusive")
	}
	state := map[string]any{}
	if on {
		state["on"] = true
	}
	if off {
		state["on"] = false
	}
	for key, value := range numeric {
		if value >= 0 {
			state[key] = value
		}
	}
	if len(state) == 0 {
		return nil, fmt.Errorf("no state change requested")
	}
	return state, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Numeric ids sort numerically; everything else lexically.
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.Atoi(keys[i])
		b, berr := strconv.Atoi(keys[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		return keys[i] < keys[j]
	})
	return keys
}
