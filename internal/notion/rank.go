package notion

import "sort"

// Section is one category with its pages ranked by content weight.
type Section struct {
	Category string `json:"category"`
	Pages    []Page `json:"pages"`
}

// SortPages orders pages in place: longer content first, ties broken
// by case-folded title, then by page ID so the order is total.
func SortPages(pages []Page) {
	sort.Slice(pages, func(i, j int) bool {
		if pages[i].CharCount != pages[j].CharCount {
			return pages[i].CharCount > pages[j].CharCount
		}
		ti, tj := pages[i].sortTitle(), pages[j].sortTitle()
		if ti != tj {
			return ti < tj
		}
		return pages[i].ID < pages[j].ID
	})
}

// Organize groups pages into sections. Categories with more pages come
// first; equal-sized categories order by name. Pages inside each
// section are ranked by SortPages.
func Organize(pages []Page) []Section {
	byCategory := make(map[string][]Page)
	for _, p := range pages {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	sections := make([]Section, 0, len(byCategory))
	for category, group := range byCategory {
		SortPages(group)
		sections = append(sections, Section{Category: category, Pages: group})
	}
	sort.Slice(sections, func(i, j int) bool {
		if len(sections[i].Pages) != len(sections[j].Pages) {
			return len(sections[i].Pages) > len(sections[j].Pages)
		}
		return sections[i].Category < sections[j].Category
	})
	return sections
}

// TopPages returns the n heaviest pages across all categories. The
// input slice is left untouched.
func TopPages(pages []Page, n int) []Page {
	ranked := make([]Page, len(pages))
	copy(ranked, pages)
	SortPages(ranked)
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
