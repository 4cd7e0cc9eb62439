package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAPICmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "api <method> <path> [body]",
		Short: "Issue a raw request against the bridge API",
		Long:  "The path is relative to the authenticated API root. The response document is printed as-is; pass --check to fail on bridge error entries.",
		Example: `  huectl api GET lights/3
  huectl api PUT lights/3/state '{"on":false}'
  huectl api DELETE schedules/2 --check`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := strings.ToUpper(args[0])
			switch method {
			case "GET", "PUT", "POST", "DELETE":
			default:
				return fmt.Errorf("unsupported method %q", args[0])
			}

			var body any
			if len(args) == 3 {
				var doc json.RawMessage
				if err := json.Unmarshal([]byte(args[2]), &doc); err != nil {
					return fmt.Errorf("invalid request body: %w", err)
				}
				body = doc
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Do(cmd.Context(), method, args[1], body)
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			if check {
				if err := hueCheck(doc); err != nil {
					return err
				}
			}
			return printDoc(cmd, doc)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Fail when the response carries bridge error entries")
	return cmd
}
