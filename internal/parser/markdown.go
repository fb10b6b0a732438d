package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/summarise/internal/document"
)

// MarkdownParser handles Markdown files using goldmark. Formatting syntax is
// discarded; headings and block text come out as plain paragraphs.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (document.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return document.Document{}, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if t := string(node.Text(src)); t != "" {
				blocks = append(blocks, t)
			}
		default:
			if t := extractText(n, src); t != "" {
				blocks = append(blocks, t)
			}
		}
	}

	return document.Document{
		Text:   strings.Join(blocks, "\n\n"),
		Format: document.FormatMarkdown,
		Source: filename,
	}, nil
}

// extractText gets the text content of a goldmark block node. Leaf blocks
// carry their own source lines; container blocks (lists, quotes) are
// flattened by recursing into their children.
func extractText(n ast.Node, src []byte) string {
	if lines := n.Lines(); lines.Len() > 0 {
		var buf bytes.Buffer
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}

	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() != ast.TypeBlock {
			continue
		}
		if t := extractText(c, src); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}
