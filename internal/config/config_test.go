package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ContentDir != "public" {
		t.Errorf("expected default content_dir %q, got %q", "public", cfg.ContentDir)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.CodeStyle != "onedark" {
		t.Errorf("expected default code_style onedark, got %q", cfg.CodeStyle)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %v", cfg.Timeout())
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.Title = "My Site"
	original.ContentDir = "content"
	original.AssetBaseURL = "https://cdn.example.com"
	original.Port = 9000
	original.AllowAllOrigins = true
	original.CodeStyle = "dracula"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Title != original.Title {
		t.Errorf("title: got %q, want %q", loaded.Title, original.Title)
	}
	if loaded.ContentDir != original.ContentDir {
		t.Errorf("content_dir: got %q, want %q", loaded.ContentDir, original.ContentDir)
	}
	if loaded.AssetBaseURL != original.AssetBaseURL {
		t.Errorf("asset_base_url: got %q, want %q", loaded.AssetBaseURL, original.AssetBaseURL)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if !loaded.AllowAllOrigins {
		t.Error("allow_all_origins: got false, want true")
	}
	if loaded.CodeStyle != original.CodeStyle {
		t.Errorf("code_style: got %q, want %q", loaded.CodeStyle, original.CodeStyle)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.ContentDir != "public" {
		t.Errorf("expected default content_dir, got %q", cfg.ContentDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FOLIO_CONTENT_DIR", "site")
	t.Setenv("FOLIO_PORT", "9090")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ContentDir != "site" {
		t.Errorf("env override failed: got %q, want %q", loaded.ContentDir, "site")
	}
	if loaded.Port != 9090 {
		t.Errorf("env override failed: got %d, want 9090", loaded.Port)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("port: [not, a, number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty content dir", func(c *Config) { c.ContentDir = "" }},
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"negative timeout", func(c *Config) { c.FetchTimeout = -1 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "chatty" }},
		{"unknown code style", func(c *Config) { c.CodeStyle = "no-such-style" }},
		{"empty code style", func(c *Config) { c.CodeStyle = "" }},
		{"relative asset url", func(c *Config) { c.AssetBaseURL = "/articles" }},
		{"ftp asset url", func(c *Config) { c.AssetBaseURL = "ftp://example.com" }},
		{"feed url without host", func(c *Config) { c.FeedURL = "http://" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestValidateAcceptsAssetURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AssetBaseURL = "http://localhost:8080"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDetectContentDir(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	if got := detectContentDir(); got != "public" {
		t.Errorf("detectContentDir() = %q, want public", got)
	}

	if err := os.MkdirAll(filepath.Join("content", "articles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if got := detectContentDir(); got != "content" {
		t.Errorf("detectContentDir() = %q, want content", got)
	}
}
