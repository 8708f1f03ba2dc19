// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// useConfigDir points config loading at an isolated directory and registers
// cleanup of all package overrides.
func useConfigDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)
	return dir
}

// writeConfigFile writes content as config.cue inside dir.
func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	// Not parallel: mutates package-level overrides.
	useConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Network.TimeoutSeconds != 60 {
		t.Errorf("expected default timeout 60, got %d", cfg.Network.TimeoutSeconds)
	}
	if cfg.Network.Timeout() != 60*time.Second {
		t.Errorf("expected 60s duration, got %v", cfg.Network.Timeout())
	}
	if cfg.Interpreter.Path != "" {
		t.Errorf("expected empty interpreter path, got %q", cfg.Interpreter.Path)
	}
	if cfg.UI.Verbose {
		t.Error("expected verbose to default to false")
	}
}

func TestLoad_FromFile(t *testing.T) {
	// Not parallel: mutates package-level overrides.
	dir := useConfigDir(t)

	writeConfigFile(t, dir, `
network: {
	timeout_seconds: 5
}
interpreter: {
	path: "/usr/local/bin/python3.12"
}
ui: {
	verbose: true
}
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Network.TimeoutSeconds != 5 {
		t.Errorf("expected timeout 5, got %d", cfg.Network.TimeoutSeconds)
	}
	if cfg.Interpreter.Path != "/usr/local/bin/python3.12" {
		t.Errorf("expected interpreter override, got %q", cfg.Interpreter.Path)
	}
	if !cfg.UI.Verbose {
		t.Error("expected verbose true")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	// Not parallel: mutates package-level overrides.
	dir := useConfigDir(t)

	writeConfigFile(t, dir, `ui: { verbose: true }`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Network.TimeoutSeconds != 60 {
		t.Errorf("expected default timeout to survive partial config, got %d", cfg.Network.TimeoutSeconds)
	}
	if !cfg.UI.Verbose {
		t.Error("expected verbose true from file")
	}
}

func TestLoad_InvalidCUESyntax(t *testing.T) {
	// Not parallel: mutates package-level overrides.
	dir := useConfigDir(t)

	writeConfigFile(t, dir, `network: { timeout_seconds: `)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for broken CUE syntax, got nil")
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	// Not parallel: mutates package-level overrides.
	dir := useConfigDir(t)

	// Zero is below the schema's minimum of 1.
	writeConfigFile(t, dir, `network: { timeout_seconds: 0 }`)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range timeout, got nil")
	}
}

func TestLoad_ExplicitFileOverride(t *testing.T) {
	// Not parallel: mutates package-level overrides.
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "custom.cue")
	if err := os.WriteFile(path, []byte(`network: { timeout_seconds: 9 }`), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	SetConfigFilePathOverride(path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Network.TimeoutSeconds != 9 {
		t.Errorf("expected timeout 9 from explicit file, got %d", cfg.Network.TimeoutSeconds)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	// Not parallel: mutates package-level overrides.
	t.Cleanup(Reset)

	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.cue"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file, got nil")
	}
}

func TestConfig_Validate_TimeoutRange(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	cfg.Network.TimeoutSeconds = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for zero timeout, got nil")
	}
	if !errors.Is(err, ErrInvalidTimeout) {
		t.Errorf("expected ErrInvalidTimeout, got: %v", err)
	}
}
