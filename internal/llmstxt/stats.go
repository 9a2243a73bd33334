package llmstxt

import "github.com/tyo-yo/notion-to-llms-txt/internal/notion"

// CategoryCount is the page and character tally for one category.
type CategoryCount struct {
	Category string `json:"category"`
	Pages    int    `json:"pages"`
	Chars    int    `json:"chars"`
}

// Stats summarizes the pages that made it into an index.
type Stats struct {
	Pages        int             `json:"pages"`
	Categories   int             `json:"categories"`
	TotalChars   int             `json:"total_chars"`
	AverageChars int             `json:"average_chars"`
	LargestPage  string          `json:"largest_page,omitempty"`
	LargestChars int             `json:"largest_chars,omitempty"`
	ByCategory   []CategoryCount `json:"by_category"`
}

// Collect tallies sections into index statistics. Section order is
// preserved in the per-category breakdown.
func Collect(sections []notion.Section) *Stats {
	stats := &Stats{Categories: len(sections)}
	for _, section := range sections {
		count := CategoryCount{Category: section.Category, Pages: len(section.Pages)}
		for _, page := range section.Pages {
			count.Chars += page.CharCount
			if page.CharCount > stats.LargestChars {
				stats.LargestPage = page.Title
				stats.LargestChars = page.CharCount
			}
		}
		stats.Pages += count.Pages
		stats.TotalChars += count.Chars
		stats.ByCategory = append(stats.ByCategory, count)
	}
	if stats.Pages > 0 {
		stats.AverageChars = stats.TotalChars / stats.Pages
	}
	return stats
}
