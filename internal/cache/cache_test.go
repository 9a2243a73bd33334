package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tyo-yo/notion-to-llms-txt/internal/notion"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testKey() notion.CacheKey {
	return notion.CacheKey{
		Path:    "Engineering/Setup aaaabbbbccccddddeeeeffff00001111.md",
		Size:    512,
		ModTime: 1700000000,
		Options: "snippet=50;keep_links=false",
	}
}

func testContent() notion.Content {
	return notion.Content{
		Text:       "Setup instructions for the development environment.",
		CharCount:  51,
		Lines:      1,
		LinkLines:  2,
		HadContent: true,
		Snippet:    "Setup instructions for the development...",
	}
}

func TestGetMissOnEmptyStore(t *testing.T) {
	store := setupTestStore(t)

	if _, ok := store.Get(testKey()); ok {
		t.Error("expected miss on empty store")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	key := testKey()
	want := testContent()

	if err := store.Put(key, want); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok := store.Get(key)
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestChangedFileMisses(t *testing.T) {
	store := setupTestStore(t)
	key := testKey()
	if err := store.Put(key, testContent()); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	touched := key
	touched.ModTime++
	if _, ok := store.Get(touched); ok {
		t.Error("expected miss after mtime change")
	}

	grown := key
	grown.Size++
	if _, ok := store.Get(grown); ok {
		t.Error("expected miss after size change")
	}
}

func TestChangedOptionsMiss(t *testing.T) {
	store := setupTestStore(t)
	key := testKey()
	if err := store.Put(key, testContent()); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	other := key
	other.Options = "snippet=80;keep_links=false"
	if _, ok := store.Get(other); ok {
		t.Error("expected miss for different extraction options")
	}
}

func TestPutReplacesStaleRow(t *testing.T) {
	store := setupTestStore(t)
	key := testKey()
	if err := store.Put(key, testContent()); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	// Same file and options with new mtime replaces the old row.
	fresh := key
	fresh.ModTime++
	updated := testContent()
	updated.CharCount = 99
	if err := store.Put(fresh, updated); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	n, err := store.Len()
	if err != nil {
		t.Fatalf("Len() error = %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 row after replace, got %d", n)
	}

	if _, ok := store.Get(key); ok {
		t.Error("stale row should be gone")
	}
	got, ok := store.Get(fresh)
	if !ok || got.CharCount != 99 {
		t.Errorf("expected fresh row, got %+v (hit=%v)", got, ok)
	}
}

func TestClear(t *testing.T) {
	store := setupTestStore(t)
	if err := store.Put(testKey(), testContent()); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	n, err := store.Len()
	if err != nil {
		t.Fatalf("Len() error = %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty store, got %d rows", n)
	}
}

func TestOpenCreatesDirectoriesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	key := testKey()
	if err := store.Put(key, testContent()); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected database file on disk: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	if _, ok := reopened.Get(key); !ok {
		t.Error("expected cached row to survive reopen")
	}
}
