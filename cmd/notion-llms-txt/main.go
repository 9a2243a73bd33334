// Package main provides the entry point for the notion-llms-txt CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tyo-yo/notion-to-llms-txt/internal/config"
	"github.com/tyo-yo/notion-to-llms-txt/internal/logger"
	"github.com/tyo-yo/notion-to-llms-txt/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
// This keeps commands independently testable without shared mutable state.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the notion-llms-txt CLI.
func newRootCmd() *cobra.Command {
	var verboseFlag bool

	cmd := &cobra.Command{
		Use:   "notion-llms-txt",
		Short: "Turn a Notion export into an llms.txt index",
		Long: `notion-llms-txt - Turn an exported Notion workspace into a single llms.txt index.

Point it at the directory you get from extracting a Notion Markdown export
and it writes one Markdown file listing every substantial page with its
title, notion.so link, and a short content snippet, grouped by top-level
category. The result is a compact map of a large knowledge base that an AI
agent can read without ingesting every page.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'notion-llms-txt --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Load .env files and configure logging before any subcommand runs.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return initLogging(verboseFlag)
	}

	// Persistent flags available to all subcommands
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	// Define command groups and add commands
	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-project override, gitignored)
//  2. $CWD/.env         (per-project)
//  3. <config-dir>/env  (global fallback)
func loadEnvFiles() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	if dir := config.Dir(); dir != "" {
		_ = godotenv.Load(filepath.Join(dir, "env"))
	}
}

// initLogging configures the logger from LOG_LEVEL (default info);
// --verbose forces debug.
func initLogging(verbose bool) error {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	if verbose {
		level = "debug"
	}
	if err := logger.Init(level); err != nil {
		return output.NewUserError(fmt.Sprintf("invalid LOG_LEVEL %q: %v", level, err))
	}
	return nil
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "query", Title: "Query Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Core commands: generate
	addGroupedCommand(cmd, newGenerateCmd(), "core")

	// Query commands: list, show, stats
	addGroupedCommand(cmd, newListCmd(), "query")
	addGroupedCommand(cmd, newShowCmd(), "query")
	addGroupedCommand(cmd, newStatsCmd(), "query")

	// Agent commands: serve
	addGroupedCommand(cmd, newServeCmd(), "agent")

	// Admin commands: init, check
	addGroupedCommand(cmd, newInitCmd(), "admin")
	addGroupedCommand(cmd, newCheckCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
