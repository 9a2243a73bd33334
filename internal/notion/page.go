// Package notion models pages found in an extracted Notion workspace
// export and turns a tree of exported Markdown files into them.
package notion

import (
	"path/filepath"
	"strings"
)

// Uncategorized is the category assigned to pages that live at the
// export root or whose top directory has no name beyond its page ID.
const Uncategorized = "Uncategorized"

// notionBaseURL is the public short-link host for Notion pages.
const notionBaseURL = "https://notion.so/"

// Page is one exported Notion page.
type Page struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Path      string `json:"path"`
	CharCount int    `json:"char_count"`
	Lines     int    `json:"lines"`
	Snippet   string `json:"snippet"`

	// Content carries fields the index itself never shows but the
	// filtering and stats stages need.
	Text       string `json:"-"`
	LinkLines  int    `json:"-"`
	HadContent bool   `json:"-"`
}

// URL returns the notion.so link for the page. A non-empty workspace
// slug is inserted between host and page ID.
func (p Page) URL(workspace string) string {
	if workspace != "" {
		return notionBaseURL + workspace + "/" + p.ID
	}
	return notionBaseURL + p.ID
}

// DisplayPath is the human-facing location of a page, and the string
// include and exclude patterns match against. Categorized pages render
// as "Category/Title", root pages as the bare title.
func (p Page) DisplayPath() string {
	if p.Category == "" || p.Category == Uncategorized {
		return p.Title
	}
	return p.Category + "/" + p.Title
}

// MatchesAny reports whether the page's display path matches at least
// one of the patterns. Patterns use filepath.Match syntax and are
// validated when configuration loads, so a malformed pattern here is
// treated as a non-match.
func (p Page) MatchesAny(patterns []string) bool {
	display := p.DisplayPath()
	for _, pattern := range patterns {
		if matchPattern(pattern, display) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, name string) bool {
	ok, err := filepath.Match(pattern, name)
	return err == nil && ok
}

// sortTitle is the case-folded title used for ranking ties.
func (p Page) sortTitle() string {
	return strings.ToLower(p.Title)
}
