package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		Aliases: []string{"rule"},
		Short:   "Manage rules",
	}
	cmd.AddCommand(newRulesListCmd())
	cmd.AddCommand(newRulesGetCmd())
	cmd.AddCommand(newRulesCreateCmd())
	cmd.AddCommand(newRulesUpdateCmd())
	cmd.AddCommand(newRulesDeleteCmd())
	return cmd
}

func newRulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all rules",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Rules().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list rules: %w", err)
			}
			return printDoc(cmd, doc)
		},
	}
}

func newRulesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get one rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Rules().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get rule %s: %w", args[0], err)
			}
			return printDoc(cmd, doc)
		},
	}
}

func newRulesCreateCmd() *cobra.Command {
	var bodyJSON string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a rule",
		Example: `  huectl rules create --body '{
    "name": "Motion night light",
    "conditions": [{"address": "/sensors/5/state/presence", "operator": "eq", "value": "true"}],
    "actions": [{"address": "/lights/3/state", "method": "PUT", "body": {"on": true}}]
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
			doc, err := client.Rules().Create(cmd.Context(), body)
			if err != nil {
				return fmt.Errorf("failed to create rule: %w", err)
			}
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().StringVar(&bodyJSON, "body", "", "JSON rule document (required)")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newRulesUpdateCmd() *cobra.Command {
	var bodyJSON string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body map[string]any
			if err := json.Unmarshal([]byte(bodyJSON), &body); err != nil {
				return fmt.Errorf("invalid --body document: %w", err)
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Rules().Update(cmd.Context(), args[0], body)
			if err != nil {
				return fmt.Errorf("failed to update rule %s: %w", args[0], err)
			}
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().StringVar(&bodyJSON, "body", "", "JSON rule document (required)")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newRulesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a rule",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Rules().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete rule %s: %w", args[0], err)
			}
			return checkAndPrint(cmd, doc)
		},
	}
}
