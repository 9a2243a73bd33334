package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tyo-yo/notion-to-llms-txt/internal/llmstxt"
	"github.com/tyo-yo/notion-to-llms-txt/internal/notion"
)

// --- Shared types ---

// PageSummary is a simplified page for tool output.
type PageSummary struct {
	ID        string `json:"id"         jsonschema:"page ID"`
	Title     string `json:"title"      jsonschema:"page title"`
	Category  string `json:"category"   jsonschema:"category the page belongs to"`
	Path      string `json:"path"       jsonschema:"file path relative to the export root"`
	CharCount int    `json:"char_count" jsonschema:"characters of cleaned content"`
	Snippet   string `json:"snippet"    jsonschema:"content snippet shown in the index"`
	URL       string `json:"url"        jsonschema:"notion.so link for the page"`
}

func toPageSummaries(pages []notion.Page, workspace string) []PageSummary {
	summaries := make([]PageSummary, 0, len(pages))
	for _, page := range pages {
		summaries = append(summaries, PageSummary{
			ID:        page.ID,
			Title:     page.Title,
			Category:  page.Category,
			Path:      page.Path,
			CharCount: page.CharCount,
			Snippet:   page.Snippet,
			URL:       page.URL(workspace),
		})
	}
	return summaries
}

// --- generate_index tool ---

// GenerateInput is the input for the generate_index tool.
type GenerateInput struct {
	Dir    string `json:"dir,omitempty"    jsonschema:"export directory (defaults to the directory the server was started with)"`
	Output string `json:"output,omitempty" jsonschema:"file path to write the index to; empty returns the document inline"`
}

// GenerateOutput is the output for the generate_index tool.
type GenerateOutput struct {
	Document   string `json:"document,omitempty" jsonschema:"the rendered index document (inline mode only)"`
	Output     string `json:"output,omitempty"   jsonschema:"path the index was written to"`
	Pages      int    `json:"pages"              jsonschema:"pages kept in the index"`
	Categories int    `json:"categories"         jsonschema:"categories in the index"`
	Dropped    int    `json:"dropped"            jsonschema:"pages dropped by quality rules"`
}

func handleGenerate(ws *Workspace) mcp.ToolHandlerFor[GenerateInput, GenerateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
		result, err := llmstxt.Build(ws.params(input.Dir))
		if err != nil {
			return nil, GenerateOutput{}, fmt.Errorf("building index: %w", err)
		}

		out := GenerateOutput{
			Pages:      len(result.Pages),
			Categories: len(result.Sections),
			Dropped:    result.Filter.Dropped(),
		}

		if input.Output != "" {
			if err := llmstxt.WriteDocument(input.Output, result.Document); err != nil {
				return nil, GenerateOutput{}, fmt.Errorf("writing index: %w", err)
			}
			out.Output = input.Output
			return nil, out, nil
		}

		out.Document = result.Document
		return nil, out, nil
	}
}

// --- workspace_stats tool ---

// StatsInput is the input for the workspace_stats tool.
type StatsInput struct {
	Dir string `json:"dir,omitempty" jsonschema:"export directory (defaults to the directory the server was started with)"`
}

// StatsOutput is the output for the workspace_stats tool.
type StatsOutput struct {
	Pages        int               `json:"pages"             jsonschema:"pages kept in the index"`
	Categories   int               `json:"categories"        jsonschema:"categories in the index"`
	TotalChars   int               `json:"total_chars"       jsonschema:"characters across all kept pages"`
	AverageChars int               `json:"average_chars"     jsonschema:"average characters per kept page"`
	Scan         *notion.ScanStats `json:"scan"              jsonschema:"what the export walk saw"`
	Dropped      map[string]int    `json:"dropped,omitempty" jsonschema:"dropped page counts per quality rule"`
}

func handleStats(ws *Workspace) mcp.ToolHandlerFor[StatsInput, StatsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input StatsInput) (*mcp.CallToolResult, StatsOutput, error) {
		result, err := llmstxt.Build(ws.params(input.Dir))
		if err != nil {
			return nil, StatsOutput{}, fmt.Errorf("building index: %w", err)
		}

		stats := llmstxt.Collect(result.Sections)
		out := StatsOutput{
			Pages:        stats.Pages,
			Categories:   stats.Categories,
			TotalChars:   stats.TotalChars,
			AverageChars: stats.AverageChars,
			Scan:         result.Scan,
		}
		if len(result.Filter.ByRule) > 0 {
			out.Dropped = result.Filter.ByRule
		}

		return nil, out, nil
	}
}
