// Package main provides the entry point for the notion-llms-txt CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	notionmcp "github.com/tyo-yo/notion-to-llms-txt/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	flags := &pipelineFlags{}

	cmd := &cobra.Command{
		Use:   "serve [<export-dir>]",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run notion-llms-txt as a Model Context Protocol (MCP) server over stdio.

This exposes the index pipeline as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).
Tools default to the export directory given here; each call may point at
another one.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "notion-llms-txt": {
        "command": "notion-llms-txt",
        "args": ["serve", "/path/to/export"]
      }
    }
  }

Available tools: generate_index, list_pages, list_categories, workspace_stats`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}

			store, closeCache, err := openCache(cfg)
			if err != nil {
				return err
			}
			defer closeCache()

			server := notionmcp.NewServer(buildVersion(), &notionmcp.Workspace{
				Dir:   dir,
				Cfg:   cfg,
				Cache: store,
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	registerPipelineFlags(cmd, flags)

	return cmd
}
