package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/summarise/internal/document"
)

// CSVParser handles CSV files. Each row is flattened into one line of
// space-joined non-empty cells.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (document.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return document.Document{}, fmt.Errorf("parse csv: %w", err)
	}

	var lines []string
	for _, row := range records {
		var cells []string
		for _, cell := range row {
			if cell = strings.TrimSpace(cell); cell != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, " "))
		}
	}

	return document.Document{
		Text:   strings.Join(lines, "\n"),
		Format: document.FormatCSV,
		Source: filename,
	}, nil
}
