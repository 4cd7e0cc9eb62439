package cmd

import (
	"net/http"
	"os"

	"github.com/huectl/huectl/internal/config"
	"github.com/huectl/huectl/internal/hue"
)

// resolveCredentials returns the effective bridge credentials: --bridge and
// --username flags win over environment and keyring.
func resolveCredentials() (config.Credentials, error) {
	if flags.Bridge != "" && flags.Username != "" {
		return config.Credentials{Host: flags.Bridge, Username: flags.Username}, nil
	}
	creds, err := config.Resolve()
	if err != nil {
		return config.Credentials{}, err
	}
	if flags.Bridge != "" {
		creds.Host = flags.Bridge
	}
	if flags.Username != "" {
		creds.Username = flags.Username
	}
	return creds, nil
}

func httpClient() *http.Client {
	return &http.Client{Timeout: flags.Timeout}
}

// getClient builds the user-level client for the configured bridge.
func getClient() (*hue.Client, error) {
	creds, err := resolveCredentials()
	if err != nil {
		return nil, err
	}
	client := hue.NewClient(creds.Host, creds.Username)
	client.HTTP = httpClient()
	return client, nil
}

// getBridge builds a pre-authentication bridge handle for host.
func getBridge(host string) *hue.Bridge {
	bridge := hue.NewBridge(host)
	bridge.HTTP = httpClient()
	return bridge
}

// getPortal builds the discovery portal handle. HUECTL_DISCOVERY_URL
// overrides the portal endpoint.
func getPortal() *hue.Portal {
	portal := hue.NewPortal()
	portal.HTTP = httpClient()
	if u := os.Getenv("HUECTL_DISCOVERY_URL"); u != "" {
		portal.DiscoveryURL = u
	}
	return portal
}
