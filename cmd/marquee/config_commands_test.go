package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample config") {
		t.Fatalf("unexpected output: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when target exists without --overwrite")
	}
	if _, err := runCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	// The sample ships with empty keys; validation reads them from the
	// environment instead.
	t.Setenv("TMDB_API_KEY", "test-key")
	t.Setenv("OMDB_API_KEY", "test-key")

	target := filepath.Join(t.TempDir(), "config.toml")
	if _, err := runCommand(t, "config", "init", "--path", target); err != nil {
		t.Fatalf("config init: %v", err)
	}

	out, err := runCommand(t, "config", "validate", "--path", target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "is valid") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestIngestRequiresCinemaFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := runCommand(t, "ingest", "export.json"); err == nil {
		t.Fatal("expected error when --cinema is missing")
	}
}
