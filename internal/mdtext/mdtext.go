// Package mdtext extracts prose from Notion-exported Markdown bodies.
//
// A page body is reduced to its prose lines: blank lines, heading lines,
// link-only lines, and Notion database property rows are removed, and the
// remaining lines are flattened to plain text (inline emphasis, code spans,
// and link markup stripped, link text kept). The flattened lines joined
// with single spaces are the exact text both the character count and the
// snippet are computed from.
package mdtext

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gtext "github.com/yuin/goldmark/text"
)

// Options control which lines of a body count as prose.
type Options struct {
	// KeepLinkOnly keeps link-only lines as content instead of dropping
	// them. Their link text then contributes to the prose.
	KeepLinkOnly bool
}

// Prose is the cleaned text extracted from a Markdown body.
type Prose struct {
	// Text is the flattened prose lines joined with single spaces.
	Text string
	// Lines is the number of prose lines that survived cleaning.
	Lines int
	// LinkLines is the number of link-only lines seen in the body.
	LinkLines int
	// HadContent reports whether the raw body was non-blank at all.
	HadContent bool
}

// Link-only line forms produced by Notion exports.
var (
	bulletLinkRe = regexp.MustCompile(`^\s*[-*]\s*\[.*?\]\(.*?\)\s*$`)
	bareLinkRe   = regexp.MustCompile(`^\s*\[.*?\]\(.*?\)\s*$`)
	urlOnlyRe    = regexp.MustCompile(`^\s*https?://\S+\s*$`)
)

// engine parses single lines for inline flattening. GFM matches what
// Notion emits (strikethrough, autolinks).
var engine = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Extract cleans a Markdown body into its prose per Options.
func Extract(body string, opts Options) Prose {
	trimmed := strings.TrimSpace(body)
	prose := Prose{HadContent: trimmed != ""}
	if trimmed == "" {
		return prose
	}

	var kept []string
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "#"):
		case IsLinkOnlyLine(line):
			prose.LinkLines++
			if !opts.KeepLinkOnly {
				continue
			}
			if flat := Flatten(line); flat != "" {
				kept = append(kept, flat)
			}
		case isPropertyLine(line):
		default:
			if flat := Flatten(line); flat != "" {
				kept = append(kept, flat)
			}
		}
	}

	prose.Lines = len(kept)
	prose.Text = strings.Join(kept, " ")
	return prose
}

// IsLinkOnlyLine reports whether a line is only a link with no
// surrounding text: a linked list item, a bare inline link, or a raw URL.
func IsLinkOnlyLine(line string) bool {
	line = strings.TrimSpace(line)
	return bulletLinkRe.MatchString(line) ||
		bareLinkRe.MatchString(line) ||
		urlOnlyRe.MatchString(line)
}

// isPropertyLine reports whether a line looks like a Notion database
// property row ("Status: In progress"). These are metadata, not prose.
func isPropertyLine(line string) bool {
	return strings.Contains(line, ": ")
}

// Flatten reduces one Markdown line to its plain text. List markers,
// emphasis, and code-span markup disappear; markdown links keep their
// text and lose their target, bare URLs stay as written.
func Flatten(line string) string {
	src := []byte(line)
	doc := engine.Parser().Parse(gtext.NewReader(src))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.Label(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// Truncate cuts text to at most max code points, backing off to the last
// word boundary inside the cut when one exists, and appends "..." when
// anything was removed. Text at or under the limit is returned unchanged.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}

	// A space right after the cut means the cut already sits on a
	// word boundary.
	if runes[max] == ' ' {
		return strings.TrimRight(string(runes[:max]), " ") + "..."
	}

	cut := string(runes[:max])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ") + "..."
}
