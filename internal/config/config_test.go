package config

import (
	"errors"
	"testing"

	"github.com/99designs/keyring"
)

// mockKeyring is an in-memory keyring.Keyring.
type mockKeyring struct {
	items map[string]keyring.Item
}

func newMockKeyring() *mockKeyring {
	return &mockKeyring{items: map[string]keyring.Item{}}
}

func (m *mockKeyring) Get(key string) (keyring.Item, error) {
	item, ok := m.items[key]
	if !ok {
		return keyring.Item{}, keyring.ErrKeyNotFound
	}
	return item, nil
}

func (m *mockKeyring) GetMetadata(key string) (keyring.Metadata, error) {
	return keyring.Metadata{}, nil
}

func (m *mockKeyring) Set(item keyring.Item) error {
	m.items[item.Key] = item
	return nil
}

func (m *mockKeyring) Remove(key string) error {
	if _, ok := m.items[key]; !ok {
		return keyring.ErrKeyNotFound
	}
	delete(m.items, key)
	return nil
}

func (m *mockKeyring) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys, nil
}

func useMockKeyring(t *testing.T) *mockKeyring {
	t.Helper()
	mock := newMockKeyring()
	restore := SetOpenKeyring(func(keyring.Config) (keyring.Keyring, error) {
		return mock, nil
	})
	t.Cleanup(restore)
	return mock
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envBridge, "")
	t.Setenv(envUsername, "")
}

func TestSaveLoadDelete(t *testing.T) {
	useMockKeyring(t)
	clearEnv(t)

	creds := Credentials{Host: "10.0.0.5", Username: "abc"}
	if err := Save(creds); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != creds {
		t.Errorf("got %#v, want %#v", loaded, creds)
	}

	if err := Delete(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := Load(); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured after delete, got %v", err)
	}
}

func TestSaveRejectsIncomplete(t *testing.T) {
	useMockKeyring(t)
	if err := Save(Credentials{Host: "10.0.0.5"}); err == nil {
		t.Error("expected error for missing username")
	}
	if err := Save(Credentials{Username: "abc"}); err == nil {
		t.Error("expected error for missing host")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	useMockKeyring(t)
	if err := Delete(); err != nil {
		t.Errorf("deleting absent credentials must not fail: %v", err)
	}
}

func TestResolveEnvOverrides(t *testing.T) {
	useMockKeyring(t)

	t.Setenv(envBridge, "10.0.0.9")
	t.Setenv(envUsername, "envuser")

	creds, err := Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if creds.Host != "10.0.0.9" || creds.Username != "envuser" {
		t.Errorf("env overrides not applied: %#v", creds)
	}
}

func TestResolvePartialEnvMergesStored(t *testing.T) {
	useMockKeyring(t)
	clearEnv(t)
	if err := Save(Credentials{Host: "10.0.0.5", Username: "abc"}); err != nil {
		t.Fatal(err)
	}

	t.Setenv(envBridge, "10.0.0.77")
	creds, err := Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if creds.Host != "10.0.0.77" || creds.Username != "abc" {
		t.Errorf("expected merged credentials, got %#v", creds)
	}
}

func TestResolveUnconfigured(t *testing.T) {
	useMockKeyring(t)
	clearEnv(t)
	if _, err := Resolve(); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
