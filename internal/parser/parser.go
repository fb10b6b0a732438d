package parser

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/summarise/internal/document"
)

// Parser converts raw document bytes into extracted plain text.
type Parser interface {
	Parse(r io.Reader, filename string) (document.Document, error)
}

// SupportedExtensions lists file extensions with a dedicated parser.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the parser for a filename. Unknown extensions are
// treated as plain text rather than rejected.
func ForFile(filename string) Parser {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return &MarkdownParser{}
	case ".csv":
		return &CSVParser{}
	case ".html", ".htm":
		return &HTMLParser{}
	case ".pdf":
		return &PDFParser{FallbackPdftotext: true}
	case ".docx":
		return &DOCXParser{}
	default:
		return &TextParser{}
	}
}

// IsSupportedExtension checks if a file extension has a dedicated parser.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
