package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newScenesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scenes",
		Aliases: []string{"scene"},
		Short:   "Manage scenes",
	}
	cmd.AddCommand(newScenesListCmd())
	cmd.AddCommand(newScenesGetCmd())
	cmd.AddCommand(newScenesCreateCmd())
	cmd.AddCommand(newScenesModifyCmd())
	cmd.AddCommand(newScenesRecallCmd())
	cmd.AddCommand(newScenesDeleteCmd())
	return cmd
}

func newScenesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all scenes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Scenes().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list scenes: %w", err)
			}
			return printDoc(cmd, doc)
		},
	}
}

func newScenesGetCmd() *cobra.Command {
	var byName bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get one scene including stored light states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveID(cmd.Context(), client, "scenes", args[0], byName)
			if err != nil {
				return err
			}
			doc, err := client.Scenes().Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get scene %s: %w", id, err)
			}
			return printDoc(cmd, doc)
		},
	}

	cmd.Flags().BoolVar(&byName, "name", false, "Treat the argument as a scene name")
	return cmd
}

func newScenesCreateCmd() *cobra.Command {
	var name string
	var lights []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a scene from the lights' current states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return fmt.Errorf("--scene-name is required")
			}
			if len(lights) == 0 {
				return fmt.Errorf("at least one --light is required")
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Scenes().Create(cmd.Context(), map[string]any{
				"name":    name,
				"lights":  lights,
				"recycle": false,
			})
			if err != nil {
				return fmt.Errorf("failed to create scene: %w", err)
			}
			invalidateNames("scenes")
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().StringVar(&name, "scene-name", "", "Scene name (required)")
	cmd.Flags().StringArrayVar(&lights, "light", nil, "Light id to include (repeatable)")
	return cmd
}

func newScenesModifyCmd() *cobra.Command {
	var attrsJSON string

	cmd := &cobra.Command{
		Use:   "modify <id>",
		Short: "Modify a scene's attributes or stored states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var attrs map[string]any
			if err := json.Unmarshal([]byte(attrsJSON), &attrs); err != nil {
				return fmt.Errorf("invalid --attrs document: %w", err)
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Scenes().Modify(cmd.Context(), args[0], attrs)
			if err != nil {
				return fmt.Errorf("failed to modify scene %s: %w", args[0], err)
			}
			invalidateNames("scenes")
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().StringVar(&attrsJSON, "attrs", "", "JSON attributes document (required)")
	_ = cmd.MarkFlagRequired("attrs")
	return cmd
}

func newScenesRecallCmd() *cobra.Command {
	var byName bool
	var group string

	cmd := &cobra.Command{
		Use:   "recall <id>",
		Short: "Recall a scene",
		Long:  "Recalls the scene through the group action endpoint. Defaults to group 0 (all lights).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveID(cmd.Context(), client, "scenes", args[0], byName)
			if err != nil {
				return err
			}
			doc, err := client.Groups().SetState(cmd.Context(), group, map[string]any{"scene": id})
			if err != nil {
				return fmt.Errorf("failed to recall scene %s: %w", id, err)
			}
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().BoolVar(&byName, "name", false, "Treat the argument as a scene name")
	cmd.Flags().StringVar(&group, "group", "0", "Group to recall the scene in")
	return cmd
}

func newScenesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a scene",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Scenes().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete scene %s: %w", args[0], err)
			}
			invalidateNames("scenes")
			return checkAndPrint(cmd, doc)
		},
	}
}
