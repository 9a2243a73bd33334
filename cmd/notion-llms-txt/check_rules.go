// Package main provides the entry point for the notion-llms-txt CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tyo-yo/notion-to-llms-txt/internal/cache"
	"github.com/tyo-yo/notion-to-llms-txt/internal/config"
	"github.com/tyo-yo/notion-to-llms-txt/internal/notion"
)

// gatherChecks runs every health check against the export and setup.
// The Markdown checks only run when the root itself is usable.
func gatherChecks(dir string, cfg config.Config, configPath string) []checkResult {
	root := checkExportRoot(dir)
	results := []checkResult{root}
	if root.Status == checkPass {
		results = append(results, checkMarkdown(dir)...)
	}
	results = append(results, checkConfig(configPath), checkOutput(cfg), checkCache(cfg))
	return results
}

// checkExportRoot verifies the export root exists and is a directory.
func checkExportRoot(dir string) checkResult {
	const name = "export root"

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return checkResult{
			Name:    name,
			Status:  checkFail,
			Message: dir + " does not exist",
			Hint:    "extract the Notion export archive and point at the resulting directory",
		}
	}
	if err != nil {
		return checkResult{Name: name, Status: checkFail, Message: err.Error()}
	}
	if !info.IsDir() {
		return checkResult{
			Name:    name,
			Status:  checkFail,
			Message: dir + " is not a directory",
			Hint:    "pass the extracted export directory, not the archive",
		}
	}
	return checkResult{Name: name, Status: checkPass, Message: dir}
}

// checkMarkdown reports Markdown presence and page id coverage.
func checkMarkdown(dir string) []checkResult {
	var files, withID int
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(d.Name()) != ".md" {
			return nil
		}
		files++
		if notion.ExtractID(strings.TrimSuffix(d.Name(), ".md")) != "" {
			withID++
		}
		return nil
	})

	if files == 0 {
		return []checkResult{{
			Name:    "markdown files",
			Status:  checkWarn,
			Message: "no Markdown files found",
			Hint:    "is this the extracted export root?",
		}}
	}

	results := []checkResult{{
		Name:    "markdown files",
		Status:  checkPass,
		Message: fmt.Sprintf("%d found", files),
	}}

	switch {
	case withID == 0:
		results = append(results, checkResult{
			Name:    "page ids",
			Status:  checkFail,
			Message: "no filename embeds a 32-hex page id",
			Hint:    "ids come from Notion's export naming; renamed files cannot be indexed",
		})
	case withID < files:
		results = append(results, checkResult{
			Name:    "page ids",
			Status:  checkWarn,
			Message: fmt.Sprintf("%d of %d files carry ids; the rest will be skipped", withID, files),
		})
	default:
		results = append(results, checkResult{
			Name:    "page ids",
			Status:  checkPass,
			Message: fmt.Sprintf("all %d filenames carry ids", files),
		})
	}
	return results
}

// checkConfig validates the configuration file that would be used.
func checkConfig(configPath string) checkResult {
	const name = "config"

	_, path, err := config.Load(configPath)
	if err != nil {
		return checkResult{
			Name:    name,
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "fix or delete the config file",
		}
	}
	if path == "" {
		return checkResult{Name: name, Status: checkPass, Message: "built-in defaults (no config file)"}
	}
	return checkResult{Name: name, Status: checkPass, Message: path}
}

// checkOutput verifies the output destination can be written.
func checkOutput(cfg config.Config) checkResult {
	const name = "output"

	if cfg.Output == "-" {
		return checkResult{Name: name, Status: checkPass, Message: "stdout"}
	}

	dir := filepath.Dir(cfg.Output)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return checkResult{Name: name, Status: checkPass, Message: dir + " will be created"}
	}

	tmp, err := os.CreateTemp(dir, ".notion-llms-check-*")
	if err != nil {
		return checkResult{
			Name:    name,
			Status:  checkFail,
			Message: "cannot write to " + dir,
			Hint:    "choose another -o/--output destination",
		}
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	_ = os.Remove(tmpPath)
	return checkResult{Name: name, Status: checkPass, Message: cfg.Output + " is writable"}
}

// checkCache verifies the content cache can be opened when enabled.
func checkCache(cfg config.Config) checkResult {
	const name = "cache"

	if !cfg.Cache.Enabled {
		return checkResult{Name: name, Status: checkPass, Message: "disabled"}
	}

	path := cfg.CachePath()
	if path == "" {
		return checkResult{
			Name:    name,
			Status:  checkFail,
			Message: "cannot resolve a cache location",
			Hint:    "set cache.path in the config",
		}
	}

	store, err := cache.Open(path)
	if err != nil {
		return checkResult{
			Name:    name,
			Status:  checkFail,
			Message: "cannot open " + path,
			Hint:    "delete the cache file and retry",
		}
	}
	_ = store.Close()
	return checkResult{Name: name, Status: checkPass, Message: path}
}
