package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the project-local config file looked up in the working directory.
const FileName = ".notion-llms.yaml"

// globalFileName is the config file looked up under Dir().
const globalFileName = "config.yaml"

// DefaultYAML is the annotated config template written by `init`.
const DefaultYAML = `# notion-llms-txt configuration
# Flags override these values; omitted keys keep their defaults.

# Output file written by generate ("-" for stdout).
output: notion-llms.txt

# Quality filter thresholds (code points of cleaned prose).
min_chars: 100
min_lines: 1

# Snippet truncation length in code points.
snippet_length: 50

# Glob patterns matched against "Category/Title" display paths.
# include: restrict to matching pages. exclude: drop matching pages.
include: []
exclude: []

# Keep pages the filter would normally drop.
include_untitled: false
include_link_only: false

# Optional workspace slug for URLs (https://notion.so/{workspace}/{id}).
# Leave empty for the bare-id form.
workspace: ""

# Content cache for fast re-runs on large exports.
cache:
  enabled: false
  path: ""  # default: <config-dir>/cache.db
`

// CacheConfig controls the optional SQLite content cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"`
}

// Config models the pipeline options from the config file.
// Zero-config runs use Default(); file keys override individual fields.
type Config struct {
	Output          string      `yaml:"output"`
	MinChars        int         `yaml:"min_chars"`
	MinLines        int         `yaml:"min_lines"`
	SnippetLength   int         `yaml:"snippet_length"`
	Include         []string    `yaml:"include,omitempty"`
	Exclude         []string    `yaml:"exclude,omitempty"`
	IncludeUntitled bool        `yaml:"include_untitled"`
	IncludeLinkOnly bool        `yaml:"include_link_only"`
	Workspace       string      `yaml:"workspace,omitempty"`
	Cache           CacheConfig `yaml:"cache"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:        "notion-llms.txt",
		MinChars:      100,
		MinLines:      1,
		SnippetLength: 50,
	}
}

// Load resolves and reads the configuration.
//
// Resolution:
//   - explicitPath when given (missing file is an error)
//   - ./.notion-llms.yaml
//   - <config-dir>/config.yaml
//   - built-in defaults
//
// Returns the config and the path it was loaded from ("" for defaults).
func Load(explicitPath string) (Config, string, error) {
	if explicitPath != "" {
		cfg, err := loadFile(explicitPath)
		return cfg, explicitPath, err
	}

	for _, path := range searchPaths() {
		cfg, err := loadFile(path)
		if err == nil {
			return cfg, path, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return Default(), path, err
	}

	return Default(), "", nil
}

// searchPaths returns the config locations in lookup order.
func searchPaths() []string {
	paths := []string{FileName}
	if dir := Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, globalFileName))
	}
	return paths
}

// loadFile reads one config file on top of the defaults.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Output = strings.TrimSpace(c.Output)
	c.Workspace = strings.TrimSpace(c.Workspace)
	c.Include = trimPatterns(c.Include)
	c.Exclude = trimPatterns(c.Exclude)
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if c.MinChars < 0 {
		return fmt.Errorf("min_chars must be >= 0, got %d", c.MinChars)
	}
	if c.MinLines < 0 {
		return fmt.Errorf("min_lines must be >= 0, got %d", c.MinLines)
	}
	if c.SnippetLength < 0 {
		return fmt.Errorf("snippet_length must be >= 0, got %d", c.SnippetLength)
	}
	if err := validatePatterns(c.Include); err != nil {
		return fmt.Errorf("include: %w", err)
	}
	if err := validatePatterns(c.Exclude); err != nil {
		return fmt.Errorf("exclude: %w", err)
	}
	return nil
}

// CachePath returns the cache database location, defaulting under the
// config directory when unset.
func (c *Config) CachePath() string {
	if c.Cache.Path != "" {
		return c.Cache.Path
	}
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "cache.db")
}

// WriteDefault writes the annotated default config to path.
// An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fs.ErrExist
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return os.WriteFile(path, []byte(DefaultYAML), 0o644)
}

func trimPatterns(patterns []string) []string {
	out := patterns[:0]
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validatePatterns rejects malformed glob patterns before any walk starts.
func validatePatterns(patterns []string) error {
	for _, p := range patterns {
		if _, err := filepath.Match(p, "probe"); err != nil {
			return fmt.Errorf("bad pattern %q: %w", p, err)
		}
	}
	return nil
}
