// Package config stores bridge credentials (host + whitelist username) in
// the system keyring, with a file backend fallback for headless machines.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/99designs/keyring"
)

const (
	serviceName    = "huectl"
	credentialsKey = "default"

	envBridge          = "HUECTL_BRIDGE"
	envUsername        = "HUECTL_USERNAME"
	envKeyringBackend  = "HUECTL_KEYRING_BACKEND"
	envKeyringPassword = "HUECTL_KEYRING_PASSWORD"
	envCredentialsDir  = "HUECTL_CREDENTIALS_DIR"

	keyringBackendAuto   = "auto"
	keyringBackendFile   = "file"
	keyringBackendSystem = "system"
)

// ErrNotConfigured is returned when no credentials have been saved and no
// environment overrides are present.
var ErrNotConfigured = errors.New("no bridge configured (run 'huectl auth' or set HUECTL_BRIDGE and HUECTL_USERNAME)")

// openKeyring is a package-level function for opening keyrings. It can be
// replaced in tests to use a mock keyring.
var openKeyring = func(cfg keyring.Config) (keyring.Keyring, error) {
	return keyring.Open(cfg)
}

var userConfigDir = os.UserConfigDir

// SetOpenKeyring replaces the keyring opener for testing. Returns a cleanup
// function that restores the original.
func SetOpenKeyring(fn func(keyring.Config) (keyring.Keyring, error)) func() {
	original := openKeyring
	openKeyring = fn
	return func() { openKeyring = original }
}

// Credentials holds the connection details for one bridge.
type Credentials struct {
	Host     string `json:"host"`
	Username string `json:"username"`
}

func credentialsDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(envCredentialsDir)); dir != "" {
		return dir, nil
	}
	base, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, serviceName), nil
}

func keyringConfig() (keyring.Config, error) {
	dir, err := credentialsDir()
	if err != nil {
		return keyring.Config{}, err
	}

	cfg := keyring.Config{
		ServiceName: serviceName,
		FileDir:     filepath.Join(dir, "keyring"),
	}

	if password := os.Getenv(envKeyringPassword); password != "" {
		cfg.FilePasswordFunc = keyring.FixedStringPrompt(password)
	} else {
		cfg.FilePasswordFunc = keyring.TerminalPrompt
	}

	switch strings.ToLower(strings.TrimSpace(os.Getenv(envKeyringBackend))) {
	case keyringBackendFile:
		cfg.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
	case keyringBackendSystem:
		cfg.AllowedBackends = []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
		}
	case keyringBackendAuto, "":
		// keyring picks the first available backend.
	default:
		return keyring.Config{}, fmt.Errorf("invalid %s (use 'auto', 'file', or 'system')", envKeyringBackend)
	}

	return cfg, nil
}

// Save stores credentials in the keyring.
func Save(creds Credentials) error {
	if creds.Host == "" || creds.Username == "" {
		return errors.New("both host and username are required")
	}
	cfg, err := keyringConfig()
	if err != nil {
		return err
	}
	ring, err := openKeyring(cfg)
	if err != nil {
		return fmt.Errorf("failed to open keyring: %w", err)
	}
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return ring.Set(keyring.Item{
		Key:   credentialsKey,
		Data:  data,
		Label: "huectl bridge credentials",
	})
}

// Load reads credentials from the keyring, ignoring environment overrides.
func Load() (Credentials, error) {
	cfg, err := keyringConfig()
	if err != nil {
		return Credentials{}, err
	}
	ring, err := openKeyring(cfg)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to open keyring: %w", err)
	}
	item, err := ring.Get(credentialsKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return Credentials{}, ErrNotConfigured
		}
		return Credentials{}, fmt.Errorf("failed to read credentials: %w", err)
	}
	var creds Credentials
	if err := json.Unmarshal(item.Data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("stored credentials are corrupt: %w", err)
	}
	return creds, nil
}

// Delete removes stored credentials. Missing credentials are not an error.
func Delete() error {
	cfg, err := keyringConfig()
	if err != nil {
		return err
	}
	ring, err := openKeyring(cfg)
	if err != nil {
		return fmt.Errorf("failed to open keyring: %w", err)
	}
	if err := ring.Remove(credentialsKey); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}

// Resolve returns the effective credentials: HUECTL_BRIDGE/HUECTL_USERNAME
// override the keyring, individually or together.
func Resolve() (Credentials, error) {
	creds := Credentials{
		Host:     strings.TrimSpace(os.Getenv(envBridge)),
		Username: strings.TrimSpace(os.Getenv(envUsername)),
	}
	if creds.Host != "" && creds.Username != "" {
		return creds, nil
	}

	stored, err := Load()
	if err != nil {
		return Credentials{}, err
	}
	if creds.Host == "" {
		creds.Host = stored.Host
	}
	if creds.Username == "" {
		creds.Username = stored.Username
	}
	if creds.Host == "" || creds.Username == "" {
		return Credentials{}, ErrNotConfigured
	}
	return creds, nil
}
