// Package main provides the entry point for the notion-llms-txt CLI.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tyo-yo/notion-to-llms-txt/internal/llmstxt"
	"github.com/tyo-yo/notion-to-llms-txt/internal/notion"
	"github.com/tyo-yo/notion-to-llms-txt/internal/output"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	flags := &pipelineFlags{}

	cmd := &cobra.Command{
		Use:   "show <export-dir> <id-or-title>",
		Short: "Display a single page in detail",
		Long: `Display one page of the export in detail, looked up by page id or title.

Dropped pages are found too and reported with the rule that dropped them,
which makes show the quickest way to answer "why is this page missing
from the index".

Examples:
  notion-llms-txt show ./export 1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d
  notion-llms-txt show ./export "Meeting Notes"
  notion-llms-txt show ./export "Meeting Notes" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, args[0], args[1])
		},
	}

	registerPipelineFlags(cmd, flags)

	return cmd
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, flags *pipelineFlags, dir, query string) error {
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

	page, droppedBy, found := findPage(result, query)
	if !found {
		notFound := output.NewUserError(fmt.Sprintf("no page matches %q", query))
		printer.Error(notFound)
		return notFound
	}

	if printer.IsJSON() {
		return outputShowJSON(printer, page, cfg.Workspace, droppedBy)
	}

	outputShowHuman(printer, page, cfg.Workspace, droppedBy)
	return nil
}

// findPage looks a page up by id or title, kept pages first, then
// dropped ones. The second return is the drop rule, "" for kept pages.
func findPage(result *llmstxt.BuildResult, query string) (notion.Page, string, bool) {
	id := strings.ToLower(query)

	for _, page := range result.Pages {
		if page.ID == id || strings.EqualFold(page.Title, query) {
			return page, "", true
		}
	}
	for _, drop := range result.Filter.Drops {
		if drop.Page.ID == id || strings.EqualFold(drop.Page.Title, query) {
			return drop.Page, drop.Rule, true
		}
	}
	return notion.Page{}, "", false
}

// outputShowJSON outputs the page as JSON.
func outputShowJSON(printer *output.Printer, page notion.Page, workspace, droppedBy string) error {
	row := struct {
		pageRow
		DroppedBy string `json:"dropped_by,omitempty"`
	}{
		pageRow:   toPageRows([]notion.Page{page}, workspace)[0],
		DroppedBy: droppedBy,
	}
	return printer.WriteJSON(row)
}

// outputShowHuman outputs the page in human-readable format.
func outputShowHuman(printer *output.Printer, page notion.Page, workspace, droppedBy string) {
	printer.Section(page.Title)
	printer.KeyValue("ID", page.ID)
	printer.KeyValue("Category", page.Category)
	printer.KeyValue("URL", page.URL(workspace))
	printer.KeyValue("Path", page.Path)
	printer.KeyValue("Chars", strconv.Itoa(page.CharCount))
	printer.KeyValue("Lines", strconv.Itoa(page.Lines))
	if page.Snippet != "" {
		printer.KeyValue("Snippet", page.Snippet)
	}
	if droppedBy != "" {
		printer.Println()
		printer.Warn("not in the index: dropped by the %s rule", droppedBy)
	}
}
