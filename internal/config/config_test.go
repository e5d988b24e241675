package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidatesWithAPIKey(t *testing.T) {
	cfg := Default()
	cfg.TMDB.APIKey = "test"
	cfg.OMDb.APIKey = "test"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.TMDB.Language != "zh-CN" {
		t.Fatalf("unexpected default language %q", cfg.TMDB.Language)
	}
}

func TestValidateRequiresTMDBKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	cfg := Default()
	cfg.OMDb.APIKey = "test"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "tmdb.api_key") {
		t.Fatalf("expected tmdb.api_key error, got %v", err)
	}
}

func TestValidateRejectsBadLanguageTag(t *testing.T) {
	cfg := Default()
	cfg.TMDB.APIKey = "test"
	cfg.OMDb.Enabled = false
	cfg.TMDB.Language = "not a tag"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid language tag")
	}
}

func TestNormalizeReadsEnvFallbacks(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env-tmdb")
	t.Setenv("OMDB_API_KEY", "env-omdb")
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.TMDB.APIKey != "env-tmdb" || cfg.OMDb.APIKey != "env-omdb" {
		t.Fatalf("env fallbacks not applied: %q %q", cfg.TMDB.APIKey, cfg.OMDb.APIKey)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[tmdb]
api_key = "file-key"
language = "zh-CN"

[omdb]
enabled = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.TMDB.APIKey != "file-key" {
		t.Fatalf("unexpected api key %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != defaultTMDBBaseURL {
		t.Fatalf("default base url not preserved: %q", cfg.TMDB.BaseURL)
	}
	if want := filepath.Join(cfg.Paths.DataDir, "movies.db"); cfg.DatabasePath() != want {
		t.Fatalf("DatabasePath = %q, want %q", cfg.DatabasePath(), want)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[tmdb]") {
		t.Fatal("sample config missing tmdb section")
	}
}
