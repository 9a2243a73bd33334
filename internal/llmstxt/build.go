package llmstxt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tyo-yo/notion-to-llms-txt/internal/notion"
	"github.com/tyo-yo/notion-to-llms-txt/internal/quality"
)

// BuildParams are the knobs for one index build over an export
// directory. The zero value of a field means what the field name says,
// not a default: callers fill params from configuration.
type BuildParams struct {
	Dir             string
	SnippetLength   int
	MinChars        int
	MinLines        int
	IncludeUntitled bool
	IncludeLinkOnly bool
	Include         []string
	Exclude         []string
	Workspace       string
	Cache           notion.ContentCache
}

// BuildResult is everything one pipeline run produced.
type BuildResult struct {
	// Document is the rendered index.
	Document string
	// Sections are the ranked categories behind the document.
	Sections []notion.Section
	// Pages are the kept pages in scan order.
	Pages []notion.Page
	// Scan counts what the walk saw.
	Scan *notion.ScanStats
	// Filter records the dropped pages and their rules.
	Filter *quality.Result
}

// Build runs the whole pipeline: scan the export, filter the pages,
// rank them into sections, and render the document.
func Build(params BuildParams) (*BuildResult, error) {
	scanner := notion.NewScanner(params.Dir, notion.ScanOptions{
		SnippetLength: params.SnippetLength,
		KeepLinkOnly:  params.IncludeLinkOnly,
		Include:       params.Include,
		Exclude:       params.Exclude,
		Cache:         params.Cache,
	})
	pages, scanStats, err := scanner.Scan()
	if err != nil {
		return nil, err
	}

	filter := quality.New(quality.Thresholds{
		MinChars:     params.MinChars,
		MinLines:     params.MinLines,
		KeepUntitled: params.IncludeUntitled,
		KeepLinkOnly: params.IncludeLinkOnly,
	})
	result := filter.Apply(pages)

	sections := notion.Organize(result.Kept)
	return &BuildResult{
		Document: Render(sections, Options{Workspace: params.Workspace}),
		Sections: sections,
		Pages:    result.Kept,
		Scan:     scanStats,
		Filter:   result,
	}, nil
}

// WriteDocument writes the index to path using write-to-temp-then-
// rename, creating parent directories as needed.
func WriteDocument(path, document string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".notion-llms-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.WriteString(document); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write document: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
