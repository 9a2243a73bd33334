// Package llmstxt renders ranked page sections into the llms.txt
// Markdown index document.
package llmstxt

import (
	"fmt"
	"strings"

	"github.com/tyo-yo/notion-to-llms-txt/internal/notion"
)

// DefaultFileName is the conventional name for the generated index.
const DefaultFileName = "notion-llms.txt"

const (
	docTitle = "# Notion Workspace"
	docBlurb = "> Notion page structure and links overview"
)

// Options control document rendering.
type Options struct {
	// Workspace, when set, is inserted into every page URL.
	Workspace string
}

// Render produces the full index document. An empty section list still
// yields the document header, so the output is always a valid document.
func Render(sections []notion.Section, opts Options) string {
	var builder strings.Builder

	writeHeader(&builder)
	for _, section := range sections {
		writeSection(&builder, section, opts.Workspace)
	}

	return builder.String()
}

// writeHeader writes the document title and blurb.
func writeHeader(builder *strings.Builder) {
	builder.WriteString(docTitle + "\n\n")
	builder.WriteString(docBlurb + "\n")
}

// writeSection writes one category heading and its page list.
func writeSection(builder *strings.Builder, section notion.Section, workspace string) {
	fmt.Fprintf(builder, "\n## %s\n", section.Category)
	for _, page := range section.Pages {
		fmt.Fprintf(builder, "- [%s](%s): %s\n", page.Title, page.URL(workspace), page.Snippet)
	}
}
