// Package main provides the entry point for the notion-llms-txt CLI.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/tyo-yo/notion-to-llms-txt/internal/lang"
	"github.com/tyo-yo/notion-to-llms-txt/internal/llmstxt"
	"github.com/tyo-yo/notion-to-llms-txt/internal/output"
	"github.com/tyo-yo/notion-to-llms-txt/internal/quality"
)

// ruleOrder fixes the reporting order for drop-rule breakdowns.
var ruleOrder = []string{
	quality.RuleLinkOnly,
	quality.RulePlaceholderTitle,
	quality.RuleMinChars,
	quality.RuleMinLines,
}

// newStatsCmd creates the stats command.
func newStatsCmd() *cobra.Command {
	flags := &pipelineFlags{}
	var languagesFlag bool

	cmd := &cobra.Command{
		Use:   "stats <export-dir>",
		Short: "Summarize an export without writing the index",
		Long: `Summarize an export: what the scan saw, what the filter kept and
dropped, the category breakdown, and the size of the index that generate
would write.

--languages adds a detected-language breakdown of the kept pages. The
detection models load on demand, so the flag costs nothing when unused.

Examples:
  notion-llms-txt stats ./export
  notion-llms-txt stats ./export --languages
  notion-llms-txt stats ./export --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, flags, languagesFlag, args[0])
		},
	}

	registerPipelineFlags(cmd, flags)
	cmd.Flags().BoolVar(&languagesFlag, "languages", false, "Detect and tally page languages")

	return cmd
}

// runStats executes the stats command.
func runStats(cmd *cobra.Command, flags *pipelineFlags, languagesFlag bool, dir string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		printer.Error(err)
		return err
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

	stats := llmstxt.Collect(result.Sections)

	var languages []lang.Count
	if languagesFlag {
		languages = lang.NewDetector().Breakdown(result.Pages)
	}

	if printer.IsJSON() {
		return outputStatsJSON(printer, result, stats, languages)
	}

	outputStatsHuman(printer, result, stats, languages)
	return nil
}

// outputStatsJSON outputs the summary as JSON.
func outputStatsJSON(printer *output.Printer, result *llmstxt.BuildResult, stats *llmstxt.Stats, languages []lang.Count) error {
	data := map[string]any{
		"pages":         stats.Pages,
		"categories":    stats.Categories,
		"total_chars":   stats.TotalChars,
		"average_chars": stats.AverageChars,
		"by_category":   stats.ByCategory,
		"scan":          result.Scan,
		"dropped":       result.Filter.ByRule,
		"output_chars":  utf8.RuneCountInString(result.Document),
		"output_lines":  strings.Count(result.Document, "\n"),
		"output_bytes":  len(result.Document),
	}
	if stats.LargestPage != "" {
		data["largest_page"] = stats.LargestPage
		data["largest_chars"] = stats.LargestChars
	}
	if languages != nil {
		data["languages"] = languages
	}
	return printer.Success(data)
}

// outputStatsHuman outputs the summary in human-readable format.
func outputStatsHuman(printer *output.Printer, result *llmstxt.BuildResult, stats *llmstxt.Stats, languages []lang.Count) {
	printScanSection(printer, result)
	printPagesSection(printer, result, stats)
	printCategoriesSection(printer, stats)
	printOutputSection(printer, result)

	if languages != nil {
		printLanguagesSection(printer, languages)
	}
}

// printScanSection reports what the export walk saw.
func printScanSection(printer *output.Printer, result *llmstxt.BuildResult) {
	scan := result.Scan

	printer.Section("Scan")
	printer.KeyValue("Markdown files", strconv.Itoa(scan.Files))
	printer.KeyValue("Pages parsed", strconv.Itoa(scan.Parsed))
	if scan.NoID > 0 {
		printer.KeyValue("Missing ids", strconv.Itoa(scan.NoID))
	}
	if scan.Duplicates > 0 {
		printer.KeyValue("Duplicates", strconv.Itoa(scan.Duplicates))
	}
	if scan.Excluded > 0 {
		printer.KeyValue("Excluded", strconv.Itoa(scan.Excluded))
	}
	if scan.Unreadable > 0 {
		printer.KeyValue("Unreadable", strconv.Itoa(scan.Unreadable))
	}
	if scan.CacheHits > 0 {
		printer.KeyValue("Cache hits", strconv.Itoa(scan.CacheHits))
	}
}

// printPagesSection reports the filter outcome.
func printPagesSection(printer *output.Printer, result *llmstxt.BuildResult, stats *llmstxt.Stats) {
	printer.Section("Pages")
	printer.KeyValue("Kept", strconv.Itoa(stats.Pages))
	printer.KeyValue("Dropped", formatDropBreakdown(result.Filter.Dropped(), result.Filter.ByRule))
	if stats.LargestPage != "" {
		printer.KeyValue("Largest", fmt.Sprintf("%s (%d chars)", stats.LargestPage, stats.LargestChars))
	}
	printer.KeyValue("Average chars", strconv.Itoa(stats.AverageChars))
}

// formatDropBreakdown renders "4 (2 min-chars, 1 placeholder-title, 1 link-only)".
func formatDropBreakdown(dropped int, byRule map[string]int) string {
	if dropped == 0 {
		return "0"
	}
	parts := make([]string, 0, len(byRule))
	for _, rule := range ruleOrder {
		if n := byRule[rule]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, rule))
		}
	}
	return fmt.Sprintf("%d (%s)", dropped, strings.Join(parts, ", "))
}

// printCategoriesSection renders the per-category table.
func printCategoriesSection(printer *output.Printer, stats *llmstxt.Stats) {
	if len(stats.ByCategory) == 0 {
		return
	}

	printer.Section("Categories")
	headers := []string{"Category", "Pages", "Chars"}
	rows := make([][]string, 0, len(stats.ByCategory))
	for _, count := range stats.ByCategory {
		rows = append(rows, []string{count.Category, strconv.Itoa(count.Pages), strconv.Itoa(count.Chars)})
	}
	printer.Table(headers, rows)
}

// printOutputSection reports the size of the document generate would write.
func printOutputSection(printer *output.Printer, result *llmstxt.BuildResult) {
	printer.Section("Output")
	printer.KeyValue("Chars", strconv.Itoa(utf8.RuneCountInString(result.Document)))
	printer.KeyValue("Lines", strconv.Itoa(strings.Count(result.Document, "\n")))
	printer.KeyValue("Size", formatBytes(len(result.Document)))
}

// printLanguagesSection renders the detected-language table.
func printLanguagesSection(printer *output.Printer, languages []lang.Count) {
	printer.Section("Languages")
	headers := []string{"Language", "Pages"}
	rows := make([][]string, 0, len(languages))
	for _, count := range languages {
		rows = append(rows, []string{count.Language, strconv.Itoa(count.Pages)})
	}
	printer.Table(headers, rows)
}
