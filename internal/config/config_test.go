package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output != "notion-llms.txt" {
		t.Errorf("Output = %q, want %q", cfg.Output, "notion-llms.txt")
	}
	if cfg.MinChars != 100 {
		t.Errorf("MinChars = %d, want 100", cfg.MinChars)
	}
	if cfg.MinLines != 1 {
		t.Errorf("MinLines = %d, want 1", cfg.MinLines)
	}
	if cfg.SnippetLength != 50 {
		t.Errorf("SnippetLength = %d, want 50", cfg.SnippetLength)
	}
	if cfg.IncludeUntitled || cfg.IncludeLinkOnly {
		t.Error("rule toggles should default to off")
	}
	if cfg.Cache.Enabled {
		t.Error("cache should default to disabled")
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "min_chars: 250\nsnippet_length: 80\nexclude:\n  - 'Archive/*'\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if cfg.MinChars != 250 {
		t.Errorf("MinChars = %d, want 250", cfg.MinChars)
	}
	if cfg.SnippetLength != 80 {
		t.Errorf("SnippetLength = %d, want 80", cfg.SnippetLength)
	}
	// Omitted keys keep their defaults
	if cfg.Output != "notion-llms.txt" {
		t.Errorf("Output = %q, want default", cfg.Output)
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "Archive/*" {
		t.Errorf("Exclude = %v, want [Archive/*]", cfg.Exclude)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing explicit config file")
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)
	t.Setenv("NOTION_LLMS_CONFIG_HOME", filepath.Join(wd, "confighome"))

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if source != "" {
		t.Errorf("source = %q, want empty for defaults", source)
	}
	want := Default()
	if cfg.Output != want.Output || cfg.MinChars != want.MinChars || cfg.SnippetLength != want.SnippetLength {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_WorkingDirFile(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)
	t.Setenv("NOTION_LLMS_CONFIG_HOME", filepath.Join(wd, "confighome"))

	if err := os.WriteFile(filepath.Join(wd, FileName), []byte("min_chars: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if filepath.Base(source) != FileName {
		t.Errorf("source = %q, want %s", source, FileName)
	}
	if cfg.MinChars != 42 {
		t.Errorf("MinChars = %d, want 42", cfg.MinChars)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("min_chars: [not a number\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(*Config) {}, wantErr: false},
		{name: "zero min_chars valid", mutate: func(c *Config) { c.MinChars = 0 }, wantErr: false},
		{name: "negative min_chars", mutate: func(c *Config) { c.MinChars = -1 }, wantErr: true},
		{name: "negative min_lines", mutate: func(c *Config) { c.MinLines = -3 }, wantErr: true},
		{name: "negative snippet_length", mutate: func(c *Config) { c.SnippetLength = -1 }, wantErr: true},
		{name: "empty output", mutate: func(c *Config) { c.Output = "" }, wantErr: true},
		{name: "bad include pattern", mutate: func(c *Config) { c.Include = []string{"[unclosed"} }, wantErr: true},
		{name: "bad exclude pattern", mutate: func(c *Config) { c.Exclude = []string{"[unclosed"} }, wantErr: true},
		{name: "good patterns", mutate: func(c *Config) { c.Include = []string{"Projects/*", "Team/Meeting*"} }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	// The written template must itself load cleanly as the defaults.
	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load(written default) error = %v", err)
	}
	if cfg.MinChars != Default().MinChars {
		t.Errorf("MinChars = %d, want %d", cfg.MinChars, Default().MinChars)
	}

	// Second write without force is a conflict.
	err = WriteDefault(path, false)
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("WriteDefault() twice = %v, want fs.ErrExist", err)
	}

	// Force overwrites.
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("WriteDefault(force) error = %v", err)
	}
}

func TestCachePath(t *testing.T) {
	t.Setenv("NOTION_LLMS_CONFIG_HOME", "/confighome")

	cfg := Default()
	if got := cfg.CachePath(); got != filepath.Join("/confighome", "cache.db") {
		t.Errorf("CachePath() = %q, want config-dir default", got)
	}

	cfg.Cache.Path = "/data/cache.db"
	if got := cfg.CachePath(); got != "/data/cache.db" {
		t.Errorf("CachePath() = %q, want explicit path", got)
	}
}
