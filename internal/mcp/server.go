// Package mcp provides a Model Context Protocol server for
// notion-llms-txt. It exposes the index pipeline as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tyo-yo/notion-to-llms-txt/internal/config"
	"github.com/tyo-yo/notion-to-llms-txt/internal/llmstxt"
	"github.com/tyo-yo/notion-to-llms-txt/internal/notion"
)

// Workspace binds the tool handlers to one export directory and its
// loaded configuration. Tool calls may override the directory per
// request; everything else comes from the configuration.
type Workspace struct {
	Dir   string
	Cfg   config.Config
	Cache notion.ContentCache
}

// NewServer creates an MCP server with all notion-llms-txt tools
// registered.
func NewServer(version string, ws *Workspace) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "notion-llms-txt",
		Version: version,
	}, nil)
	registerTools(server, ws)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that may write files
// (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all notion-llms-txt tools to the server.
func registerTools(server *mcp.Server, ws *Workspace) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_index",
		Description: "Generate the llms.txt Markdown index for a Notion export directory. Returns the document inline, or writes it to a file when output is set.",
		Annotations: writeAnnotations(),
	}, handleGenerate(ws))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_pages",
		Description: "List the pages that would appear in the index, ranked by content length. Supports category filtering and a top-N limit.",
		Annotations: readOnlyAnnotations(),
	}, handleListPages(ws))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List the categories of an export with page and character counts, largest first.",
		Annotations: readOnlyAnnotations(),
	}, handleListCategories(ws))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "workspace_stats",
		Description: "Summarize an export: pages kept, categories, character counts, plus what the scan skipped and the filter dropped.",
		Annotations: readOnlyAnnotations(),
	}, handleStats(ws))
}

// params maps the workspace configuration onto build parameters, with
// an optional per-call directory override.
func (ws *Workspace) params(dir string) llmstxt.BuildParams {
	if dir == "" {
		dir = ws.Dir
	}
	return llmstxt.BuildParams{
		Dir:             dir,
		SnippetLength:   ws.Cfg.SnippetLength,
		MinChars:        ws.Cfg.MinChars,
		MinLines:        ws.Cfg.MinLines,
		IncludeUntitled: ws.Cfg.IncludeUntitled,
		IncludeLinkOnly: ws.Cfg.IncludeLinkOnly,
		Include:         ws.Cfg.Include,
		Exclude:         ws.Cfg.Exclude,
		Workspace:       ws.Cfg.Workspace,
		Cache:           ws.Cache,
	}
}
