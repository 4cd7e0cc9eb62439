package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Manage groups of lights",
	}
	cmd.AddCommand(newGroupsListCmd())
	cmd.AddCommand(newGroupsGetCmd())
	cmd.AddCommand(newGroupsCreateCmd())
	cmd.AddCommand(newGroupsSetCmd())
	cmd.AddCommand(newGroupsUpdateCmd())
	cmd.AddCommand(newGroupsDeleteCmd())
	return cmd
}

func newGroupsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all groups",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Groups().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}
			return printDoc(cmd, doc)
		},
	}
}

func newGroupsGetCmd() *cobra.Command {
	var byName bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get one group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveID(cmd.Context(), client, "groups", args[0], byName)
			if err != nil {
				return err
			}
			doc, err := client.Groups().Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get group %s: %w", id, err)
			}
			return printDoc(cmd, doc)
		},
	}

	cmd.Flags().BoolVar(&byName, "name", false, "Treat the argument as a group name")
	return cmd
}

func newGroupsCreateCmd() *cobra.Command {
	var name string
	var lights []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a group",
		Example: `  # Group two lights
  huectl groups create --group-name "Living Room" --light 1 --light 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return fmt.Errorf("--group-name is required")
			}
			if len(lights) == 0 {
				return fmt.Errorf("at least one --light is required")
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Groups().Create(cmd.Context(), map[string]any{
				"name":   name,
				"lights": lights,
			})
			if err != nil {
				return fmt.Errorf("failed to create group: %w", err)
			}
			invalidateNames("groups")
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().StringVar(&name, "group-name", "", "Group name (required)")
	cmd.Flags().StringArrayVar(&lights, "light", nil, "Light id to include (repeatable)")
	return cmd
}

func newGroupsSetCmd() *cobra.Command {
	var byName bool
	var on, off bool
	var bri, hue_, sat, ct int
	var transition int
	var scene, stateJSON string

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Apply a state to every light in a group",
		Long:  "Group id 0 addresses all lights on the bridge.",
		Example: `  # All lights off
  huectl groups set 0 --off

  # Recall a scene in a group
  huectl groups set 1 --scene ab-12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveID(cmd.Context(), client, "groups", args[0], byName)
			if err != nil {
				return err
			}

			var action map[string]any
			if scene != "" {
				action = map[string]any{"scene": scene}
			} else {
				action, err = buildState(cmd, stateJSON, on, off, map[string]int{
					"bri": bri, "hue": hue_, "sat": sat, "ct": ct, "transitiontime": transition,
				})
				if err != nil {
					return err
				}
			}

			doc, err := client.Groups().SetState(cmd.Context(), id, action)
			if err != nil {
				return fmt.Errorf("failed to set group %s: %w", id, err)
			}
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().BoolVar(&byName, "name", false, "Treat the argument as a group name")
	cmd.Flags().BoolVar(&on, "on", false, "Turn the group on")
	cmd.Flags().BoolVar(&off, "off", false, "Turn the group off")
	cmd.Flags().IntVar(&bri, "bri", -1, "Brightness (1-254)")
	cmd.Flags().IntVar(&hue_, "hue", -1, "Hue (0-65535)")
	cmd.Flags().IntVar(&sat, "sat", -1, "Saturation (0-254)")
	cmd.Flags().IntVar(&ct, "ct", -1, "Color temperature in mirek (153-500)")
	cmd.Flags().IntVar(&transition, "transition", -1, "Transition time in 100ms steps")
	cmd.Flags().StringVar(&scene, "scene", "", "Scene id to recall in this group")
	cmd.Flags().StringVar(&stateJSON, "state", "", "Raw JSON action document")
	return cmd
}

func newGroupsUpdateCmd() *cobra.Command {
	var attrsJSON string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a group's attributes",
		Example: `  # Change membership
  huectl groups update 1 --attrs '{"lights":["1","2","3"]}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var attrs map[string]any
			if err := json.Unmarshal([]byte(attrsJSON), &attrs); err != nil {
				return fmt.Errorf("invalid --attrs document: %w", err)
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Groups().SetAttributes(cmd.Context(), args[0], attrs)
			if err != nil {
				return fmt.Errorf("failed to update group %s: %w", args[0], err)
			}
			invalidateNames("groups")
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().StringVar(&attrsJSON, "attrs", "", "JSON attributes document (required)")
	_ = cmd.MarkFlagRequired("attrs")
	return cmd
}

func newGroupsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a group",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Groups().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete group %s: %w", args[0], err)
			}
			invalidateNames("groups")
			return checkAndPrint(cmd, doc)
		},
	}
}
