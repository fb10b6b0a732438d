package parser

import (
	"strings"
	"testing"
)

func TestCSVParser_RowsFlattened(t *testing.T) {
	input := "name,role,city\nAda,engineer,London\nGrace,admiral,Arlington\n"
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(input), "people.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "name role city\nAda engineer London\nGrace admiral Arlington"
	if doc.Text != want {
		t.Errorf("expected %q, got %q", want, doc.Text)
	}
}

func TestCSVParser_EmptyCellsDropped(t *testing.T) {
	input := "a,,c\n,,\nd,e,\n"
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(input), "sparse.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "a c\nd e" {
		t.Errorf("unexpected text %q", doc.Text)
	}
}

func TestCSVParser_RaggedRows(t *testing.T) {
	input := "a,b\nc\nd,e,f\n"
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(input), "ragged.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "a b\nc\nd e f" {
		t.Errorf("unexpected text %q", doc.Text)
	}
}

func TestCSVParser_Empty(t *testing.T) {
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "" {
		t.Errorf("expected empty text, got %q", doc.Text)
	}
}
