package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newSchedulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedules",
		Aliases: []string{"schedule"},
		Short:   "Manage schedules",
	}
	cmd.AddCommand(newSchedulesListCmd())
	cmd.AddCommand(newSchedulesGetCmd())
	cmd.AddCommand(newSchedulesCreateCmd())
	cmd.AddCommand(newSchedulesUpdateCmd())
	cmd.AddCommand(newSchedulesDeleteCmd())
	return cmd
}

func newSchedulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all schedules",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Schedules().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list schedules: %w", err)
			}
			return printDoc(cmd, doc)
		},
	}
}

func newSchedulesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get one schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Schedules().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get schedule %s: %w", args[0], err)
			}
			return printDoc(cmd, doc)
		},
	}
}

func newSchedulesCreateCmd() *cobra.Command {
	var bodyJSON string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a schedule",
		Example: `  # Turn light 1 off at a fixed time
  huectl schedules create --body '{
    "name": "Bedtime",
    "command": {"address": "/api/<username>/lights/1/state", "method": "PUT", "body": {"on": false}},
    "localtime": "2026-09-01T22:30:00"
  }'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var body map[string]any
			if err := json.Unmarshal([]byte(bodyJSON), &body); err != nil {
				return fmt.Errorf("invalid --body document: %w", err)
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Schedules().Create(cmd.Context(), body)
			if err != nil {
				return fmt.Errorf("failed to create schedule: %w", err)
			}
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().StringVar(&bodyJSON, "body", "", "JSON schedule document (required)")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newSchedulesUpdateCmd() *cobra.Command {
	var bodyJSON string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a schedule",
		Example: `  # Disable a schedule
  huectl schedules update 2 --body '{"status":"disabled"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body map[string]any
			if err := json.Unmarshal([]byte(bodyJSON), &body); err != nil {
				return fmt.Errorf("invalid --body document: %w", err)
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Schedules().Set(cmd.Context(), args[0], body)
			if err != nil {
				return fmt.Errorf("failed to update schedule %s: %w", args[0], err)
			}
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().StringVar(&bodyJSON, "body", "", "JSON schedule document (required)")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newSchedulesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a schedule",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Schedules().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete schedule %s: %w", args[0], err)
			}
			return checkAndPrint(cmd, doc)
		},
	}
}
