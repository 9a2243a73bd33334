// Package main provides the entry point for the notion-llms-txt CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tyo-yo/notion-to-llms-txt/internal/llmstxt"
	"github.com/tyo-yo/notion-to-llms-txt/internal/output"
)

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	flags := &pipelineFlags{}
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "generate <export-dir>",
		Short: "Build the llms.txt index from a Notion export",
		Long: `Build the llms.txt index from an extracted Notion export directory.

Walks the export, keeps every page that passes the quality filter, and
writes a single Markdown index grouping pages by top-level category, with
a notion.so link and a content snippet per page.

Examples:
  notion-llms-txt generate ./export                  # Write notion-llms.txt
  notion-llms-txt generate ./export -o docs/map.md   # Write somewhere else
  notion-llms-txt generate ./export -o -             # Print to stdout
  notion-llms-txt generate ./export --min-chars 200  # Stricter filter
  notion-llms-txt generate ./export --cache          # Cache content reads`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, outputFlag, args[0])
		},
	}

	registerPipelineFlags(cmd, flags)
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", `Output file (default notion-llms.txt, "-" for stdout)`)

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, flags *pipelineFlags, outputFlag, dir string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		printer.Error(err)
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = outputFlag
	}

	store, closeCache, err := openCache(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}
	defer closeCache()

	result, err := llmstxt.Build(buildParams(dir, cfg, store))
	if err != nil {
		printer.Error(err)
		return err
	}

	if cfg.Output == "-" {
		return outputGenerateStdout(printer, result)
	}

	if err := llmstxt.WriteDocument(cfg.Output, result.Document); err != nil {
		sysErr := output.NewSystemErrorWithCause("writing "+cfg.Output, err)
		printer.Error(sysErr)
		return sysErr
	}

	return outputGenerateSummary(printer, cfg.Output, result)
}

// outputGenerateStdout writes the document itself to stdout.
func outputGenerateStdout(printer *output.Printer, result *llmstxt.BuildResult) error {
	if printer.IsJSON() {
		stats := llmstxt.Collect(result.Sections)
		return printer.Success(map[string]any{
			"document":   result.Document,
			"pages":      stats.Pages,
			"categories": stats.Categories,
			"dropped":    result.Filter.Dropped(),
			"scan":       result.Scan,
		})
	}
	printer.Print("%s", result.Document)
	return nil
}

// outputGenerateSummary reports what was written and what was left out.
func outputGenerateSummary(printer *output.Printer, outPath string, result *llmstxt.BuildResult) error {
	stats := llmstxt.Collect(result.Sections)

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"output":     outPath,
			"pages":      stats.Pages,
			"categories": stats.Categories,
			"dropped":    result.Filter.Dropped(),
			"scan":       result.Scan,
			"bytes":      len(result.Document),
		})
	}

	printer.Print("Wrote %s\n", outPath)
	printer.KeyValue("Pages", strconv.Itoa(stats.Pages))
	printer.KeyValue("Categories", strconv.Itoa(stats.Categories))
	printer.KeyValue("Dropped", strconv.Itoa(result.Filter.Dropped()))
	if result.Scan.CacheHits > 0 {
		printer.KeyValue("Cache hits", strconv.Itoa(result.Scan.CacheHits))
	}
	printer.KeyValue("Size", formatBytes(len(result.Document)))
	return nil
}

// formatBytes renders a byte count in a human-readable unit.
func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
