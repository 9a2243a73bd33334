package mdtext

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtract(t *testing.T) {
	body := `# Getting Started

Welcome to the team handbook.

## Setup

Install the toolchain and clone the repository.
`
	p := Extract(body, Options{})
	if !p.HadContent {
		t.Error("expected HadContent for non-blank body")
	}
	if p.Lines != 2 {
		t.Errorf("expected 2 prose lines, got %d", p.Lines)
	}
	want := "Welcome to the team handbook. Install the toolchain and clone the repository."
	if p.Text != want {
		t.Errorf("expected %q, got %q", want, p.Text)
	}
}

func TestExtractEmptyBody(t *testing.T) {
	for _, body := range []string{"", "   \n\t\n  "} {
		p := Extract(body, Options{})
		if p.HadContent {
			t.Errorf("expected HadContent=false for %q", body)
		}
		if p.Text != "" || p.Lines != 0 {
			t.Errorf("expected empty prose for %q, got %+v", body, p)
		}
	}
}

func TestExtractDropsPropertyLines(t *testing.T) {
	body := "Status: In progress\nOwner: Alice\nActual prose without metadata\n"
	p := Extract(body, Options{})
	if p.Lines != 1 {
		t.Errorf("expected 1 prose line, got %d", p.Lines)
	}
	if p.Text != "Actual prose without metadata" {
		t.Errorf("unexpected text %q", p.Text)
	}
}

func TestExtractLinkOnlyLines(t *testing.T) {
	body := "- [Roadmap](https://notion.so/abc)\n[Docs](https://example.com)\nhttps://example.com/page\nReal sentence here\n"

	p := Extract(body, Options{})
	if p.LinkLines != 3 {
		t.Errorf("expected 3 link lines, got %d", p.LinkLines)
	}
	if p.Text != "Real sentence here" {
		t.Errorf("expected link lines dropped, got %q", p.Text)
	}

	kept := Extract(body, Options{KeepLinkOnly: true})
	if kept.Lines != 3 {
		t.Errorf("expected 3 prose lines with KeepLinkOnly, got %d", kept.Lines)
	}
	if !strings.Contains(kept.Text, "Roadmap") || !strings.Contains(kept.Text, "Docs") {
		t.Errorf("expected link text kept, got %q", kept.Text)
	}
	if strings.Contains(kept.Text, "notion.so/abc") {
		t.Errorf("expected markdown link targets stripped, got %q", kept.Text)
	}
	if !strings.Contains(kept.Text, "https://example.com/page") {
		t.Errorf("expected raw URL line kept as content, got %q", kept.Text)
	}
}

func TestExtractFlattensInlineMarkup(t *testing.T) {
	body := "This **bold** and `code` and a [link](https://example.com) inline\n"
	p := Extract(body, Options{})
	want := "This bold and code and a link inline"
	if p.Text != want {
		t.Errorf("expected %q, got %q", want, p.Text)
	}
}

func TestExtractCountsRunesNotBytes(t *testing.T) {
	body := strings.Repeat("あ", 300)
	p := Extract(body, Options{})
	if got := utf8.RuneCountInString(p.Text); got != 300 {
		t.Errorf("expected 300 runes, got %d", got)
	}
}

func TestIsLinkOnlyLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"- [Page](https://notion.so/x)", true},
		{"* [Page](https://notion.so/x)", true},
		{"[Page](https://notion.so/x)", true},
		{"https://example.com/path", true},
		{"  https://example.com  ", true},
		{"- [Page](url) trailing text", false},
		{"See [Page](url) for details", false},
		{"plain sentence", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsLinkOnlyLine(tt.line); got != tt.want {
			t.Errorf("IsLinkOnlyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"- item text", "item text"},
		{"1. first step", "first step"},
		{"**bold** words", "bold words"},
		{"`go test` runs tests", "go test runs tests"},
		{"[label](https://example.com) after", "label after"},
		{"visit https://example.com now", "visit https://example.com now"},
		{"> quoted line", "quoted line"},
	}
	for _, tt := range tests {
		if got := Flatten(tt.in); got != tt.want {
			t.Errorf("Flatten(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "short text", 50, "short text"},
		{"exact length", "exactly ten", 11, "exactly ten"},
		{"backs off to word boundary", "hello worldly more", 11, "hello..."},
		{"cut lands on boundary", "hello world more", 11, "hello world..."},
		{"no space keeps full cut", "abcdefghijklmnop", 10, "abcdefghij..."},
		{"empty", "", 10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncateCJK(t *testing.T) {
	in := strings.Repeat("あ", 60)
	got := Truncate(in, 50)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if runes := utf8.RuneCountInString(strings.TrimSuffix(got, "...")); runes != 50 {
		t.Errorf("expected 50 kept runes, got %d", runes)
	}
}
