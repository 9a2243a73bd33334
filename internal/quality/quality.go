// Package quality decides which scanned pages carry enough substance to
// appear in the generated index.
package quality

import (
	"strings"

	"github.com/tyo-yo/notion-to-llms-txt/internal/notion"
)

// Rule names reported when a page is dropped.
const (
	RuleLinkOnly         = "link-only"
	RulePlaceholderTitle = "placeholder-title"
	RuleMinChars         = "min-chars"
	RuleMinLines         = "min-lines"
)

// Rule is one named content check. Keep reports whether a page passes.
type Rule struct {
	Name string
	Keep func(p notion.Page) bool
}

// Thresholds configure the built-in rule list.
type Thresholds struct {
	MinChars     int
	MinLines     int
	KeepUntitled bool
	KeepLinkOnly bool
}

// Drop records one rejected page and the rule that rejected it.
type Drop struct {
	Page notion.Page `json:"page"`
	Rule string      `json:"rule"`
}

// Result is the outcome of filtering one batch of pages.
type Result struct {
	Kept   []notion.Page
	Drops  []Drop
	ByRule map[string]int
}

// Dropped returns how many pages were rejected.
func (r *Result) Dropped() int {
	return len(r.Drops)
}

// Filter applies an ordered rule list to pages. Specific rules run
// before threshold rules so drop reasons name the real problem: a page
// of nothing but links reports link-only, not min-chars.
type Filter struct {
	rules []Rule
}

// New builds the standard filter for the given thresholds.
func New(t Thresholds) *Filter {
	var rules []Rule
	if !t.KeepLinkOnly {
		rules = append(rules, Rule{
			Name: RuleLinkOnly,
			Keep: func(p notion.Page) bool {
				return !(p.HadContent && p.CharCount == 0 && p.LinkLines > 0)
			},
		})
	}
	if !t.KeepUntitled {
		rules = append(rules, Rule{
			Name: RulePlaceholderTitle,
			Keep: func(p notion.Page) bool {
				title := strings.TrimSpace(p.Title)
				return title != "" && !strings.EqualFold(title, "untitled")
			},
		})
	}
	rules = append(rules,
		Rule{
			Name: RuleMinChars,
			Keep: func(p notion.Page) bool { return p.CharCount >= t.MinChars },
		},
		Rule{
			Name: RuleMinLines,
			Keep: func(p notion.Page) bool { return p.Lines >= t.MinLines },
		},
	)
	return &Filter{rules: rules}
}

// Evaluate returns the name of the first rule that rejects the page,
// or "" when the page passes every rule.
func (f *Filter) Evaluate(p notion.Page) string {
	for _, rule := range f.rules {
		if !rule.Keep(p) {
			return rule.Name
		}
	}
	return ""
}

// Apply partitions pages into kept and dropped, counting drops per
// rule. Input order is preserved for kept pages.
func (f *Filter) Apply(pages []notion.Page) *Result {
	result := &Result{ByRule: make(map[string]int)}
	for _, page := range pages {
		if rule := f.Evaluate(page); rule != "" {
			result.Drops = append(result.Drops, Drop{Page: page, Rule: rule})
			result.ByRule[rule]++
			continue
		}
		result.Kept = append(result.Kept, page)
	}
	return result
}
