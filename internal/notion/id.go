package notion

import (
	"path"
	"regexp"
	"strings"
)

// Notion exports name every file and directory "<name> <32-hex-id>".
var (
	pageIDRe  = regexp.MustCompile(`[0-9a-fA-F]{32}`)
	idNoiseRe = regexp.MustCompile(`[\s\-_]*[0-9a-fA-F]{32}[\s\-_]*`)
	edgesRe   = regexp.MustCompile(`^[\s\-_]+|[\s\-_]+$`)
)

// ExtractID returns the page ID embedded in a filename stem, lowercased.
// Returns "" when the stem carries no 32-hex run.
func ExtractID(stem string) string {
	return strings.ToLower(pageIDRe.FindString(stem))
}

// CleanName strips the embedded page ID and its surrounding separator
// noise from an exported file or directory name. Returns "" when the
// name was nothing but an ID.
func CleanName(name string) string {
	cleaned := idNoiseRe.ReplaceAllString(name, "")
	return edgesRe.ReplaceAllString(cleaned, "")
}

// TitleFrom derives the page title from a filename stem. When stripping
// the ID leaves nothing, the raw stem stands in so the page still has
// an addressable name.
func TitleFrom(stem string) string {
	if title := CleanName(stem); title != "" {
		return title
	}
	return stem
}

// CategoryFrom derives the category from a page's slash-separated path
// relative to the export root: the topmost directory with its ID
// stripped. Root-level pages fall under Uncategorized.
func CategoryFrom(relPath string) string {
	relPath = path.Clean(relPath)
	i := strings.IndexByte(relPath, '/')
	if i < 0 {
		return Uncategorized
	}
	if seg := CleanName(relPath[:i]); seg != "" {
		return seg
	}
	return Uncategorized
}
