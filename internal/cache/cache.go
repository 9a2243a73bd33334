// Package cache persists extracted page content between runs in a
// local SQLite database, so unchanged export files are not re-parsed.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/tyo-yo/notion-to-llms-txt/internal/notion"
)

// DefaultFileName is the cache database file name under the config
// directory.
const DefaultFileName = "cache.db"

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

-- One row per (file, extraction options). A re-extraction of the same
-- file with the same options replaces the row, so stale content never
-- accumulates.
CREATE TABLE IF NOT EXISTS page_content (
    path TEXT NOT NULL,
    options TEXT NOT NULL,
    size INTEGER NOT NULL,
    mtime INTEGER NOT NULL,
    text TEXT NOT NULL,
    char_count INTEGER NOT NULL,
    lines INTEGER NOT NULL,
    link_lines INTEGER NOT NULL,
    had_content BOOLEAN NOT NULL,
    snippet TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (path, options)
);
`

// Store is a SQLite-backed content cache. It implements
// notion.ContentCache.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the cache database at path, creating parent
// directories as needed. ":memory:" opens a throwaway in-memory cache.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize cache schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the cache database file path.
func (s *Store) Path() string {
	return s.path
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get looks up cached content for a key. A changed file size, changed
// modification time, or changed extraction options all miss.
func (s *Store) Get(key notion.CacheKey) (notion.Content, bool) {
	var content notion.Content
	err := s.db.QueryRow(`
		SELECT text, char_count, lines, link_lines, had_content, snippet
		FROM page_content
		WHERE path = ? AND options = ? AND size = ? AND mtime = ?`,
		key.Path, key.Options, key.Size, key.ModTime,
	).Scan(
		&content.Text,
		&content.CharCount,
		&content.Lines,
		&content.LinkLines,
		&content.HadContent,
		&content.Snippet,
	)
	if err != nil {
		return notion.Content{}, false
	}
	return content, true
}

// Put stores content for a key, replacing any stale row for the same
// file and options.
func (s *Store) Put(key notion.CacheKey, content notion.Content) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO page_content
		(path, options, size, mtime, text, char_count, lines, link_lines, had_content, snippet)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		key.Path, key.Options, key.Size, key.ModTime,
		content.Text, content.CharCount, content.Lines,
		content.LinkLines, content.HadContent, content.Snippet,
	)
	if err != nil {
		return fmt.Errorf("write cache row: %w", err)
	}
	return nil
}

// Len returns the number of cached rows.
func (s *Store) Len() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM page_content`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cache rows: %w", err)
	}
	return n, nil
}

// Clear drops every cached row.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM page_content`); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}
