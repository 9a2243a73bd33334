// Package main provides the entry point for the notion-llms-txt CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/tyo-yo/notion-to-llms-txt/internal/cache"
	"github.com/tyo-yo/notion-to-llms-txt/internal/config"
	"github.com/tyo-yo/notion-to-llms-txt/internal/llmstxt"
	"github.com/tyo-yo/notion-to-llms-txt/internal/logger"
	"github.com/tyo-yo/notion-to-llms-txt/internal/notion"
	"github.com/tyo-yo/notion-to-llms-txt/internal/output"
)

// pipelineFlags holds the flags shared by every command that runs the
// index pipeline.
type pipelineFlags struct {
	configPath      string
	minChars        int
	minLines        int
	snippetLength   int
	include         []string
	exclude         []string
	includeUntitled bool
	includeLinkOnly bool
	workspace       string
	useCache        bool
}

// registerPipelineFlags adds the shared pipeline flags to a command.
// Help shows the built-in defaults; the config file fills in anything
// the user does not set on the command line.
func registerPipelineFlags(cmd *cobra.Command, flags *pipelineFlags) {
	defaults := config.Default()

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Config file (default: ./"+config.FileName+", then the config dir)")
	cmd.Flags().IntVar(&flags.minChars, "min-chars", defaults.MinChars, "Minimum cleaned characters for a page to be kept")
	cmd.Flags().IntVar(&flags.minLines, "min-lines", defaults.MinLines, "Minimum cleaned lines for a page to be kept")
	cmd.Flags().IntVar(&flags.snippetLength, "snippet-length", defaults.SnippetLength, "Snippet length in characters")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "Only keep pages matching these Category/Title globs")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "Drop pages matching these Category/Title globs")
	cmd.Flags().BoolVar(&flags.includeUntitled, "include-untitled", false, "Keep pages titled Untitled")
	cmd.Flags().BoolVar(&flags.includeLinkOnly, "include-link-only", false, "Keep pages whose body is only links")
	cmd.Flags().StringVar(&flags.workspace, "workspace", "", "Workspace slug for notion.so URLs")
	cmd.Flags().BoolVar(&flags.useCache, "cache", false, "Cache cleaned content in SQLite for faster re-runs")
}

// resolveConfig loads the config file and layers explicitly set flags
// on top. Precedence: flag > config file > built-in default.
func resolveConfig(cmd *cobra.Command, flags *pipelineFlags) (config.Config, error) {
	cfg, path, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, output.NewUserError(err.Error())
	}
	if path != "" {
		logger.Debug("loaded config", map[string]interface{}{"path": path})
	}

	set := cmd.Flags().Changed
	if set("min-chars") {
		cfg.MinChars = flags.minChars
	}
	if set("min-lines") {
		cfg.MinLines = flags.minLines
	}
	if set("snippet-length") {
		cfg.SnippetLength = flags.snippetLength
	}
	if set("include") {
		cfg.Include = flags.include
	}
	if set("exclude") {
		cfg.Exclude = flags.exclude
	}
	if set("include-untitled") {
		cfg.IncludeUntitled = flags.includeUntitled
	}
	if set("include-link-only") {
		cfg.IncludeLinkOnly = flags.includeLinkOnly
	}
	if set("workspace") {
		cfg.Workspace = flags.workspace
	}
	if set("cache") {
		cfg.Cache.Enabled = flags.useCache
	}

	if err := cfg.Validate(); err != nil {
		return cfg, output.NewUserError(err.Error())
	}
	return cfg, nil
}

// buildParams maps a resolved configuration onto pipeline parameters.
func buildParams(dir string, cfg config.Config, store notion.ContentCache) llmstxt.BuildParams {
	return llmstxt.BuildParams{
		Dir:             dir,
		SnippetLength:   cfg.SnippetLength,
		MinChars:        cfg.MinChars,
		MinLines:        cfg.MinLines,
		IncludeUntitled: cfg.IncludeUntitled,
		IncludeLinkOnly: cfg.IncludeLinkOnly,
		Include:         cfg.Include,
		Exclude:         cfg.Exclude,
		Workspace:       cfg.Workspace,
		Cache:           store,
	}
}

// openCache opens the content cache when the configuration enables it.
// The returned close func is a no-op when caching is off.
func openCache(cfg config.Config) (notion.ContentCache, func(), error) {
	if !cfg.Cache.Enabled {
		return nil, func() {}, nil
	}

	path := cfg.CachePath()
	if path == "" {
		return nil, func() {}, output.NewSystemError("cannot resolve a cache location; set cache.path in the config")
	}

	store, err := cache.Open(path)
	if err != nil {
		return nil, func() {}, output.NewSystemErrorWithCause("opening content cache", err)
	}
	logger.Debug("content cache open", map[string]interface{}{"path": path})
	return store, func() { _ = store.Close() }, nil
}
