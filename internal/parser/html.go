package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/dgallion1/summarise/internal/document"
)

// HTMLParser handles HTML files. Script, style and navigation chrome are
// dropped; headings and text blocks come out as newline-separated paragraphs.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (document.Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return document.Document{}, fmt.Errorf("parse html: %w", err)
	}

	return document.Document{
		Text:   ExtractHTMLText(doc),
		Format: document.FormatHTML,
		Source: filename,
	}, nil
}

// ExtractHTMLText walks a parsed HTML tree and returns its visible text.
// Shared with the web fetcher as its fallback when readability extraction
// finds no article body.
func ExtractHTMLText(doc *html.Node) string {
	var blocks []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "nav", "footer", "header":
				return
			case "h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "td", "blockquote", "pre":
				if t := textContent(n); t != "" {
					blocks = append(blocks, t)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	// Prefer <body> so <title> and <head> metadata stay out of the text.
	if body := findElement(doc, "body"); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	if len(blocks) == 0 {
		// Markup without block elements: fall back to raw text nodes.
		if t := textContent(doc); t != "" {
			blocks = append(blocks, t)
		}
	}

	return strings.Join(blocks, "\n")
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}
