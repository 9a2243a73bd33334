package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tyo-yo/notion-to-llms-txt/internal/llmstxt"
	"github.com/tyo-yo/notion-to-llms-txt/internal/notion"
)

// --- list_pages tool ---

// ListPagesInput is the input for the list_pages tool.
type ListPagesInput struct {
	Dir      string `json:"dir,omitempty"      jsonschema:"export directory (defaults to the directory the server was started with)"`
	Category string `json:"category,omitempty" jsonschema:"only pages in this category"`
	Limit    int    `json:"limit,omitempty"    jsonschema:"limit to the N longest pages"`
}

// ListPagesOutput is the output for the list_pages tool.
type ListPagesOutput struct {
	Count int           `json:"count"           jsonschema:"number of pages returned"`
	Pages []PageSummary `json:"pages,omitempty" jsonschema:"pages ranked by content length"`
}

func handleListPages(ws *Workspace) mcp.ToolHandlerFor[ListPagesInput, ListPagesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListPagesInput) (*mcp.CallToolResult, ListPagesOutput, error) {
		result, err := llmstxt.Build(ws.params(input.Dir))
		if err != nil {
			return nil, ListPagesOutput{}, fmt.Errorf("building index: %w", err)
		}

		pages := result.Pages
		if input.Category != "" {
			var matched []notion.Page
			for _, page := range pages {
				if strings.EqualFold(page.Category, input.Category) {
					matched = append(matched, page)
				}
			}
			pages = matched
		}

		limit := input.Limit
		if limit <= 0 {
			limit = -1
		}
		ranked := notion.TopPages(pages, limit)

		return nil, ListPagesOutput{
			Count: len(ranked),
			Pages: toPageSummaries(ranked, ws.Cfg.Workspace),
		}, nil
	}
}

// --- list_categories tool ---

// CategorySummary is one category with its tallies.
type CategorySummary struct {
	Name  string `json:"name"  jsonschema:"category name"`
	Pages int    `json:"pages" jsonschema:"pages in the category"`
	Chars int    `json:"chars" jsonschema:"characters across the category's pages"`
}

// ListCategoriesInput is the input for the list_categories tool.
type ListCategoriesInput struct {
	Dir string `json:"dir,omitempty" jsonschema:"export directory (defaults to the directory the server was started with)"`
}

// ListCategoriesOutput is the output for the list_categories tool.
type ListCategoriesOutput struct {
	Count      int               `json:"count"                jsonschema:"number of categories"`
	Categories []CategorySummary `json:"categories,omitempty" jsonschema:"categories, largest first"`
}

func handleListCategories(ws *Workspace) mcp.ToolHandlerFor[ListCategoriesInput, ListCategoriesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListCategoriesInput) (*mcp.CallToolResult, ListCategoriesOutput, error) {
		result, err := llmstxt.Build(ws.params(input.Dir))
		if err != nil {
			return nil, ListCategoriesOutput{}, fmt.Errorf("building index: %w", err)
		}

		stats := llmstxt.Collect(result.Sections)
		categories := make([]CategorySummary, 0, len(stats.ByCategory))
		for _, count := range stats.ByCategory {
			categories = append(categories, CategorySummary{
				Name:  count.Category,
				Pages: count.Pages,
				Chars: count.Chars,
			})
		}

		return nil, ListCategoriesOutput{
			Count:      len(categories),
			Categories: categories,
		}, nil
	}
}
