package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/summarise/internal/document"
)

// TextParser handles plain text files. It collapses runs of blank lines so
// downstream paragraph detection sees clean double-newline separators.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return document.Document{}, err
	}

	return document.Document{
		Text:   strings.Join(paragraphs, "\n\n"),
		Format: document.FormatText,
		Source: filename,
	}, nil
}
