// Package main provides the entry point for the notion-llms-txt CLI.
package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tyo-yo/notion-to-llms-txt/internal/llmstxt"
	"github.com/tyo-yo/notion-to-llms-txt/internal/notion"
	"github.com/tyo-yo/notion-to-llms-txt/internal/output"
)

// pageRow is the JSON shape for a single page, with the derived URL
// included alongside the stored fields.
type pageRow struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Path      string `json:"path"`
	CharCount int    `json:"char_count"`
	Lines     int    `json:"lines"`
	Snippet   string `json:"snippet"`
	URL       string `json:"url"`
}

// toPageRows converts pages for JSON output.
func toPageRows(pages []notion.Page, workspace string) []pageRow {
	rows := make([]pageRow, 0, len(pages))
	for _, page := range pages {
		rows = append(rows, pageRow{
			ID:        page.ID,
			Title:     page.Title,
			Category:  page.Category,
			Path:      page.Path,
			CharCount: page.CharCount,
			Lines:     page.Lines,
			Snippet:   page.Snippet,
			URL:       page.URL(workspace),
		})
	}
	return rows
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	flags := &pipelineFlags{}
	var categoryFlag string
	var limitFlag int
	var droppedFlag bool

	cmd := &cobra.Command{
		Use:   "list <export-dir>",
		Short: "List the pages the index would contain",
		Long: `List the pages the generated index would contain, longest first.

Runs the same pipeline as generate but prints the surviving pages instead
of writing the index. With --dropped it prints the pages the quality
filter rejected together with the rule that rejected each one.

Examples:
  notion-llms-txt list ./export                      # All kept pages
  notion-llms-txt list ./export --limit 10           # The 10 longest
  notion-llms-txt list ./export --category Projects  # One category
  notion-llms-txt list ./export --dropped            # What was filtered out
  notion-llms-txt list ./export --json               # As a JSON array`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, categoryFlag, limitFlag, droppedFlag, args[0])
		},
	}

	registerPipelineFlags(cmd, flags)
	cmd.Flags().StringVar(&categoryFlag, "category", "", "Only pages in this category")
	cmd.Flags().IntVar(&limitFlag, "limit", 0, "Only the N longest pages (0 = all)")
	cmd.Flags().BoolVar(&droppedFlag, "dropped", false, "List dropped pages with the rule that dropped them")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, flags *pipelineFlags, categoryFlag string, limitFlag int, droppedFlag bool, dir string) error {
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

	if droppedFlag {
		return outputDroppedPages(printer, result)
	}
	return outputKeptPages(printer, result, cfg.Workspace, categoryFlag, limitFlag)
}

// outputKeptPages prints the surviving pages, ranked by content length.
func outputKeptPages(printer *output.Printer, result *llmstxt.BuildResult, workspace, category string, limit int) error {
	pages := result.Pages
	if category != "" {
		pages = filterByCategory(pages, category)
	}

	if limit <= 0 {
		limit = -1
	}
	ranked := notion.TopPages(pages, limit)

	if printer.IsJSON() {
		return printer.WriteJSON(toPageRows(ranked, workspace))
	}

	if len(ranked) == 0 {
		printer.Println("No pages found")
		return nil
	}

	headers := []string{"Title", "Category", "Chars", "URL"}
	rows := make([][]string, 0, len(ranked))
	for _, page := range ranked {
		rows = append(rows, []string{page.Title, page.Category, strconv.Itoa(page.CharCount), page.URL(workspace)})
	}
	printer.Table(headers, rows)
	return nil
}

// outputDroppedPages prints the pages the quality filter rejected.
func outputDroppedPages(printer *output.Printer, result *llmstxt.BuildResult) error {
	drops := result.Filter.Drops

	if printer.IsJSON() {
		return printer.WriteJSON(drops)
	}

	if len(drops) == 0 {
		printer.Println("No pages were dropped")
		return nil
	}

	headers := []string{"Title", "Category", "Chars", "Rule"}
	rows := make([][]string, 0, len(drops))
	for _, drop := range drops {
		rows = append(rows, []string{drop.Page.Title, drop.Page.Category, strconv.Itoa(drop.Page.CharCount), drop.Rule})
	}
	printer.Table(headers, rows)
	return nil
}

// filterByCategory keeps the pages in the named category, matched
// case-insensitively.
func filterByCategory(pages []notion.Page, category string) []notion.Page {
	var matched []notion.Page
	for _, page := range pages {
		if strings.EqualFold(page.Category, category) {
			matched = append(matched, page)
		}
	}
	return matched
}
