package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and modify the bridge configuration",
	}
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigDeleteUserCmd())
	cmd.AddCommand(newConfigFullStateCmd())
	cmd.AddCommand(newConfigTimezonesCmd())
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the bridge configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Config().Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get bridge config: %w", err)
			}
			return printDoc(cmd, doc)
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var bodyJSON string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Modify the bridge configuration",
		Example: `  # Rename the bridge
  huectl config set --body '{"name":"Hallway Bridge"}'`,
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
			doc, err := client.Config().Set(cmd.Context(), body)
			if err != nil {
				return fmt.Errorf("failed to set bridge config: %w", err)
			}
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().StringVar(&bodyJSON, "body", "", "JSON config document (required)")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newConfigDeleteUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-user <username>",
		Short: "Remove a user from the bridge whitelist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Config().DeleteUser(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete user %s: %w", args[0], err)
			}
			return checkAndPrint(cmd, doc)
		},
	}
}

func newConfigFullStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "full-state",
		Short: "Dump the bridge's entire datastore",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Info().FullState(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch full state: %w", err)
			}
			return printDoc(cmd, doc)
		},
	}
}

func newConfigTimezonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timezones",
		Short: "List timezones the bridge supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Info().Timezones(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch timezones: %w", err)
			}
			return printDoc(cmd, doc)
		},
	}
}
