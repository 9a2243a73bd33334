// Package lang detects the dominant written language of page text for
// workspace statistics.
package lang

import (
	"sort"
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/tyo-yo/notion-to-llms-txt/internal/notion"
)

// Unknown is reported when the detector has no confident answer.
const Unknown = "Unknown"

// detectionSample caps how many runes of page text feed the detector.
// Prose beyond this adds latency without changing the verdict.
const detectionSample = 400

// workspaceLanguages are the languages the detector distinguishes.
// Restricting the set keeps the language models small and the
// classification sharp.
var workspaceLanguages = []lingua.Language{
	lingua.English,
	lingua.Japanese,
	lingua.Chinese,
	lingua.Korean,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Russian,
	lingua.Dutch,
	lingua.Polish,
}

// Count is the number of pages detected for one language.
type Count struct {
	Language string `json:"language"`
	Pages    int    `json:"pages"`
}

// Detector classifies page text by language.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector over the languages commonly seen in
// Notion workspaces.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(workspaceLanguages...).
			Build(),
	}
}

// Detect returns the language name for a piece of text, or Unknown
// when the text is blank or the detector is not confident.
func (d *Detector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unknown
	}
	if runes := []rune(text); len(runes) > detectionSample {
		text = string(runes[:detectionSample])
	}
	if language, ok := d.detector.DetectLanguageOf(text); ok {
		return language.String()
	}
	return Unknown
}

// Breakdown tallies pages per detected language, most common first,
// names breaking ties.
func (d *Detector) Breakdown(pages []notion.Page) []Count {
	tally := make(map[string]int)
	for _, page := range pages {
		tally[d.Detect(page.Text)]++
	}

	counts := make([]Count, 0, len(tally))
	for language, n := range tally {
		counts = append(counts, Count{Language: language, Pages: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Pages != counts[j].Pages {
			return counts[i].Pages > counts[j].Pages
		}
		return counts[i].Language < counts[j].Language
	})
	return counts
}
