package notion

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tyo-yo/notion-to-llms-txt/internal/mdtext"
)

// Content is the cleaned prose of one page body plus the numbers
// derived from it. CharCount and Snippet are both computed from Text,
// so the count always describes the text the snippet was cut from.
type Content struct {
	Text       string
	CharCount  int
	Lines      int
	LinkLines  int
	HadContent bool
	Snippet    string
}

// BuildContent reads one exported Markdown file and extracts its
// content. Bodies with invalid UTF-8 are repaired with replacement
// characters rather than rejected. On a read error the zero Content is
// returned along with the error so the caller can still record the page.
func BuildContent(filePath string, snippetLen int, opts mdtext.Options) (Content, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Content{}, err
	}
	return ContentFrom(strings.ToValidUTF8(string(data), "�"), snippetLen, opts), nil
}

// ContentFrom extracts content from an in-memory page body.
func ContentFrom(body string, snippetLen int, opts mdtext.Options) Content {
	prose := mdtext.Extract(body, opts)
	return Content{
		Text:       prose.Text,
		CharCount:  utf8.RuneCountInString(prose.Text),
		Lines:      prose.Lines,
		LinkLines:  prose.LinkLines,
		HadContent: prose.HadContent,
		Snippet:    mdtext.Truncate(prose.Text, snippetLen),
	}
}

// applyContent copies extracted content onto a page.
func (p *Page) applyContent(c Content) {
	p.Text = c.Text
	p.CharCount = c.CharCount
	p.Lines = c.Lines
	p.LinkLines = c.LinkLines
	p.HadContent = c.HadContent
	p.Snippet = c.Snippet
}
