package notion

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tyo-yo/notion-to-llms-txt/internal/logger"
	"github.com/tyo-yo/notion-to-llms-txt/internal/mdtext"
	"github.com/tyo-yo/notion-to-llms-txt/internal/output"
)

// ScanStats counts what a walk over the export tree saw.
type ScanStats struct {
	Files      int `json:"files"`
	Parsed     int `json:"parsed"`
	NoID       int `json:"no_page_id"`
	Duplicates int `json:"duplicates"`
	Excluded   int `json:"excluded"`
	Unreadable int `json:"unreadable"`
	CacheHits  int `json:"cache_hits,omitempty"`
}

// ContentCache memoizes extracted content across runs. Implementations
// key strictly on CacheKey: a changed file or changed extraction
// options must miss.
type ContentCache interface {
	Get(key CacheKey) (Content, bool)
	Put(key CacheKey, content Content) error
}

// CacheKey identifies one extraction of one export file.
type CacheKey struct {
	Path    string
	Size    int64
	ModTime int64
	Options string
}

// ScanOptions control how page content is extracted and which pages a
// walk keeps.
type ScanOptions struct {
	SnippetLength int
	KeepLinkOnly  bool
	Include       []string
	Exclude       []string
	Cache         ContentCache
}

// Scanner walks an extracted Notion export and builds a Page per
// exported Markdown file.
type Scanner struct {
	root        string
	opts        ScanOptions
	fingerprint string
}

// NewScanner creates a Scanner rooted at an export directory.
func NewScanner(root string, opts ScanOptions) *Scanner {
	return &Scanner{
		root:        root,
		opts:        opts,
		fingerprint: fmt.Sprintf("snippet=%d;keep_links=%t", opts.SnippetLength, opts.KeepLinkOnly),
	}
}

// Scan walks the export tree in lexical order and returns every page
// that survives ID extraction, deduplication, and pattern selection.
// The first file seen for a page ID wins; later copies count as
// duplicates. Unreadable files still yield a page, with zero content.
func (s *Scanner) Scan() ([]Page, *ScanStats, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, output.NewUserError("export directory not found: " + s.root)
		}
		return nil, nil, output.NewSystemErrorWithCause("failed to stat export directory: "+s.root, err)
	}
	if !info.IsDir() {
		return nil, nil, output.NewUserError("export path is not a directory: " + s.root)
	}

	stats := &ScanStats{}
	seen := make(map[string]bool)
	var pages []Page

	walkErr := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(d.Name()) != ".md" {
			return nil
		}
		stats.Files++

		stem := strings.TrimSuffix(d.Name(), ".md")
		id := ExtractID(stem)
		if id == "" {
			stats.NoID++
			logger.Debug("filename has no page id", map[string]interface{}{"path": path})
			return nil
		}
		if seen[id] {
			stats.Duplicates++
			logger.Debug("duplicate page id", map[string]interface{}{"id": id, "path": path})
			return nil
		}
		seen[id] = true

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			rel = d.Name()
		}
		rel = filepath.ToSlash(rel)

		page := Page{
			ID:       id,
			Title:    TitleFrom(stem),
			Category: CategoryFrom(rel),
			Path:     rel,
		}
		if !s.selected(page) {
			stats.Excluded++
			return nil
		}

		content, contentErr := s.contentFor(path, rel, d, stats)
		if contentErr != nil {
			stats.Unreadable++
			logger.Warn("failed to read page body", map[string]interface{}{
				"path":  path,
				"error": contentErr.Error(),
			})
		}
		page.applyContent(content)
		pages = append(pages, page)
		stats.Parsed++
		return nil
	})
	if walkErr != nil {
		return nil, nil, output.NewSystemErrorWithCause("failed to walk export directory", walkErr)
	}

	return pages, stats, nil
}

// selected applies include patterns, then exclude patterns, to a page's
// display path.
func (s *Scanner) selected(p Page) bool {
	if len(s.opts.Include) > 0 && !p.MatchesAny(s.opts.Include) {
		return false
	}
	return !p.MatchesAny(s.opts.Exclude)
}

// contentFor extracts a page body, going through the cache when one is
// configured. Cache failures never fail a scan.
func (s *Scanner) contentFor(path, rel string, d fs.DirEntry, stats *ScanStats) (Content, error) {
	opts := mdtext.Options{KeepLinkOnly: s.opts.KeepLinkOnly}
	if s.opts.Cache == nil {
		return BuildContent(path, s.opts.SnippetLength, opts)
	}

	info, err := d.Info()
	if err != nil {
		return BuildContent(path, s.opts.SnippetLength, opts)
	}

	key := CacheKey{
		Path:    rel,
		Size:    info.Size(),
		ModTime: info.ModTime().UnixNano(),
		Options: s.fingerprint,
	}
	if content, ok := s.opts.Cache.Get(key); ok {
		stats.CacheHits++
		return content, nil
	}

	content, err := BuildContent(path, s.opts.SnippetLength, opts)
	if err != nil {
		return content, err
	}
	if putErr := s.opts.Cache.Put(key, content); putErr != nil {
		logger.Debug("cache write failed", map[string]interface{}{
			"path":  rel,
			"error": putErr.Error(),
		})
	}
	return content, nil
}
