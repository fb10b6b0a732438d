package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/summarise/internal/document"
)

func TestMarkdownParser_HeadingsAndParagraphs(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content.

## Section B

Section B content.
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Format != document.FormatMarkdown {
		t.Errorf("expected format %q, got %q", document.FormatMarkdown, doc.Format)
	}
	want := "Title\n\nIntro text.\n\nSection A\n\nSection A content.\n\nSection B\n\nSection B content."
	if doc.Text != want {
		t.Errorf("expected %q, got %q", want, doc.Text)
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	input := "Just some plain text.\n\nAnother paragraph here."
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "Just some plain text.\n\nAnother paragraph here." {
		t.Errorf("unexpected text %q", doc.Text)
	}
}

func TestMarkdownParser_ListItemsFlattened(t *testing.T) {
	input := "Shopping:\n\n- apples\n- pears\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "list.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, item := range []string{"Shopping:", "apples", "pears"} {
		if !strings.Contains(doc.Text, item) {
			t.Errorf("expected text to contain %q, got %q", item, doc.Text)
		}
	}
}

func TestMarkdownParser_Empty(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "" {
		t.Errorf("expected empty text, got %q", doc.Text)
	}
}
