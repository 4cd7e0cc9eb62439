package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/huectl/huectl/internal/config"
	"github.com/huectl/huectl/internal/hue"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage bridge credentials",
	}
	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthStatusCmd())
	cmd.AddCommand(newAuthLogoutCmd())
	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var devicetype string
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "login <bridge-host>",
		Short: "Register a whitelist user on a bridge",
		Long:  "Press the bridge's link button, then run this command within 30 seconds. The generated username is stored in the system keyring.",
		Example: `  # Register with the bridge at 10.0.0.5
  huectl auth login 10.0.0.5

  # Keep retrying for up to a minute while you walk to the bridge
  huectl auth login 10.0.0.5 --wait 1m`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			host := args[0]
			bridge := getBridge(host)

			if devicetype == "" {
				hostname, _ := os.Hostname()
				if hostname == "" {
					hostname = "unknown"
				}
				devicetype = "huectl#" + hostname
			}

			deadline := time.Now().Add(wait)
			var username string
			for {
				var err error
				username, _, err = bridge.CreateUser(cmd.Context(), devicetype)
				if err == nil && username != "" {
					break
				}
				var bridgeErr *hue.BridgeError
				retryable := errors.As(err, &bridgeErr) && bridgeErr.Type == hue.ErrTypeLinkButtonPressed
				if !retryable || time.Now().After(deadline) {
					if err != nil {
						return fmt.Errorf("user creation failed: %w", err)
					}
					return errors.New("bridge did not return a username")
				}
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Press the link button on the bridge...")
				select {
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				case <-time.After(2 * time.Second):
				}
			}

			if err := config.Save(config.Credentials{Host: host, Username: username}); err != nil {
				return fmt.Errorf("credentials created but not saved: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registered with bridge %s as %s\n", host, username)
			return nil
		},
	}

	cmd.Flags().StringVar(&devicetype, "devicetype", "", "Application identifier sent to the bridge (default huectl#<hostname>)")
	cmd.Flags().DurationVar(&wait, "wait", 0, "Keep retrying until the link button is pressed")
	return cmd
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the configured bridge and verify access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := resolveCredentials()
			if err != nil {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			doc, err := client.Config().Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("bridge unreachable: %w", err)
			}
			if err := hueCheck(doc); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Bridge:   %s\nUsername: %s\nAccess:   ok\n", creds.Host, creds.Username)
			return nil
		},
	}
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long:  "Removes credentials from the keyring. The whitelist entry stays on the bridge; use 'huectl config delete-user' to revoke it there.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Delete(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Credentials removed")
			return nil
		},
	}
}
