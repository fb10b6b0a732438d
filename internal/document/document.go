package document

import "strings"

// Format identifies the source format a document's text was extracted from.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
	FormatCSV      Format = "csv"
	FormatHTML     Format = "html"
	FormatWeb      Format = "web"
)

// Document is the extracted plain text of one input, tagged with its source
// format. Built once per run and never mutated afterwards.
type Document struct {
	Text   string
	Format Format
	Source string // file path, URL, "stdin", or "arg"
}

// Empty reports whether extraction produced no usable text.
func (d Document) Empty() bool {
	return strings.TrimSpace(d.Text) == ""
}
