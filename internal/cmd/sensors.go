package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newSensorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sensors",
		Aliases: []string{"sensor"},
		Short:   "Manage sensors",
	}
	cmd.AddCommand(newSensorsListCmd())
	cmd.AddCommand(newSensorsGetCmd())
	cmd.AddCommand(newSensorsCreateCmd())
	cmd.AddCommand(newSensorsRenameCmd())
	cmd.AddCommand(newSensorsConfigCmd())
	cmd.AddCommand(newSensorsStateCmd())
	cmd.AddCommand(newSensorsNewCmd())
	cmd.AddCommand(newSensorsDeleteCmd())
	return cmd
}

func newSensorsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all sensors",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Sensors().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list sensors: %w", err)
			}
			return printDoc(cmd, doc)
		},
	}
}

func newSensorsGetCmd() *cobra.Command {
	var byName bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get one sensor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveID(cmd.Context(), client, "sensors", args[0], byName)
			if err != nil {
				return err
			}
			doc, err := client.Sensors().Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get sensor %s: %w", id, err)
			}
			return printDoc(cmd, doc)
		},
	}

	cmd.Flags().BoolVar(&byName, "name", false, "Treat the argument as a sensor name")
	return cmd
}

func newSensorsCreateCmd() *cobra.Command {
	var bodyJSON string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a software sensor",
		Example: `  # A CLIP flag sensor for rules to act on
  huectl sensors create --body '{
    "name": "VacationMode", "type": "CLIPGenericFlag", "modelid": "huectl",
    "manufacturername": "huectl", "swversion": "1.0", "uniqueid": "vacation-mode"
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
			doc, err := client.Sensors().Create(cmd.Context(), body)
			if err != nil {
				return fmt.Errorf("failed to create sensor: %w", err)
			}
			invalidateNames("sensors")
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().StringVar(&bodyJSON, "body", "", "JSON sensor document (required)")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newSensorsRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a sensor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Sensors().Rename(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to rename sensor %s: %w", args[0], err)
			}
			invalidateNames("sensors")
			return checkAndPrint(cmd, doc)
		},
	}
}

func newSensorsConfigCmd() *cobra.Command {
	var bodyJSON string

	cmd := &cobra.Command{
		Use:   "config <id>",
		Short: "Update a sensor's config",
		Example: `  # Toggle a motion sensor
  huectl sensors config 5 --body '{"on":false}'`,
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
			doc, err := client.Sensors().SetConfig(cmd.Context(), args[0], body)
			if err != nil {
				return fmt.Errorf("failed to configure sensor %s: %w", args[0], err)
			}
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().StringVar(&bodyJSON, "body", "", "JSON config document (required)")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newSensorsStateCmd() *cobra.Command {
	var bodyJSON string

	cmd := &cobra.Command{
		Use:   "state <id>",
		Short: "Update a software sensor's state",
		Example: `  # Set a CLIP flag
  huectl sensors state 12 --body '{"flag":true}'`,
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
			doc, err := client.Sensors().SetState(cmd.Context(), args[0], body)
			if err != nil {
				return fmt.Errorf("failed to set sensor %s state: %w", args[0], err)
			}
			return checkAndPrint(cmd, doc)
		},
	}

	cmd.Flags().StringVar(&bodyJSON, "body", "", "JSON state document (required)")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newSensorsNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Show sensors found by the last search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Sensors().New(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list new sensors: %w", err)
			}
			return printDoc(cmd, doc)
		},
	}
}

func newSensorsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a sensor",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Sensors().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete sensor %s: %w", args[0], err)
			}
			invalidateNames("sensors")
			return checkAndPrint(cmd, doc)
		},
	}
}
