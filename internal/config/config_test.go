package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ContentFile != "content.yaml" {
		t.Errorf("expected default content_file %q, got %q", "content.yaml", cfg.ContentFile)
	}
	if cfg.OutputFile != "index.html" {
		t.Errorf("expected default output_file %q, got %q", "index.html", cfg.OutputFile)
	}
	if cfg.Serve.Port != 1313 {
		t.Errorf("expected default serve.port 1313, got %d", cfg.Serve.Port)
	}
	if !cfg.Serve.LiveReload {
		t.Error("live reload should be on by default")
	}
	if len(cfg.Serve.Watch) != len(DefaultWatch) {
		t.Errorf("expected %d watch patterns, got %d", len(DefaultWatch), len(cfg.Serve.Watch))
	}

	cfg.Serve.Watch[0] = "changed"
	if DefaultWatch[0] == "changed" {
		t.Error("DefaultConfig must not share the DefaultWatch slice")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.scholarpage.yml")

	original := DefaultConfig()
	original.ContentFile = "profile.yaml"
	original.OutputFile = "public/index.html"
	original.Markdown = true
	original.LogLevel = "debug"
	original.Serve.Port = 8080
	original.Serve.Watch = []string{"profile.yaml"}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.ContentFile != original.ContentFile {
		t.Errorf("content_file: got %q, want %q", loaded.ContentFile, original.ContentFile)
	}
	if loaded.OutputFile != original.OutputFile {
		t.Errorf("output_file: got %q, want %q", loaded.OutputFile, original.OutputFile)
	}
	if !loaded.Markdown {
		t.Error("markdown: got false, want true")
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("log_level: got %q", loaded.LogLevel)
	}
	if loaded.Serve.Port != 8080 {
		t.Errorf("serve.port: got %d, want 8080", loaded.Serve.Port)
	}
	if len(loaded.Serve.Watch) != 1 || loaded.Serve.Watch[0] != "profile.yaml" {
		t.Errorf("serve.watch: got %v", loaded.Serve.Watch)
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scholarpage.yml")
	if err := os.WriteFile(path, []byte("content_file: old.yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.ContentFile = "new.yaml"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ContentFile != "new.yaml" {
		t.Errorf("content_file: got %q, want %q", loaded.ContentFile, "new.yaml")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the config file in %s, found %d entries", dir, len(entries))
	}
}

func TestSaveMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "scholarpage.yml")
	if err := DefaultConfig().Save(path); err == nil {
		t.Error("expected error saving into a missing directory")
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("output_file: site/index.html\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputFile != "site/index.html" {
		t.Errorf("output_file: got %q", cfg.OutputFile)
	}
	if cfg.ContentFile != "content.yaml" || cfg.Serve.Port != 1313 {
		t.Error("unset keys should keep their defaults")
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
	if cfg.ContentFile != "content.yaml" {
		t.Errorf("expected default content_file, got %q", cfg.ContentFile)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("serve: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("SCHOLARPAGE_OUTPUT_FILE", "dist/index.html")
	t.Setenv("SCHOLARPAGE_SERVE_PORT", "9000")
	t.Setenv("SCHOLARPAGE_MARKDOWN", "true")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputFile != "dist/index.html" {
		t.Errorf("env override failed: got %q", loaded.OutputFile)
	}
	if loaded.Serve.Port != 9000 {
		t.Errorf("nested env override failed: got %d", loaded.Serve.Port)
	}
	if !loaded.Markdown {
		t.Error("bool env override failed")
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SCHOLARPAGE_CONTENT_FILE", "content_file"},
		{"SCHOLARPAGE_LOG_LEVEL", "log_level"},
		{"SCHOLARPAGE_SERVE_PORT", "serve.port"},
		{"SCHOLARPAGE_SERVE_LIVE_RELOAD", "serve.live_reload"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty content_file", func(c *Config) { c.ContentFile = "" }, true},
		{"empty output_file", func(c *Config) { c.OutputFile = "" }, true},
		{"output overwrites content", func(c *Config) { c.OutputFile = c.ContentFile }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"port zero", func(c *Config) { c.Serve.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Serve.Port = 70000 }, true},
		{"warn level", func(c *Config) { c.LogLevel = "warn" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"jane@example.edu", false},
		{"", true},
		{"not-an-email", true},
		{"Jane <jane@example.edu>", true},
	}
	for _, tt := range tests {
		if err := validateEmail(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("validateEmail(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
