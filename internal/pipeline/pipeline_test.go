package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/dgallion1/summarise/internal/document"
)

// stubSummarizer is a deterministic stand-in for the model. It records every
// input it receives and answers via fn.
type stubSummarizer struct {
	calls []string
	fn    func(text string) (string, error)
}

func (s *stubSummarizer) Summarize(_ context.Context, text string) (string, error) {
	s.calls = append(s.calls, text)
	return s.fn(text)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

// sentences builds n sentences of size bytes each.
func sentences(n, size int) string {
	one := "S" + strings.Repeat("x", size-3) + ". "
	return strings.Repeat(one, n)
}

func TestRun_SingleChunk(t *testing.T) {
	stub := &stubSummarizer{fn: func(string) (string, error) { return "summary", nil }}
	svc := New(stub, 1000, discardLogger())

	doc := document.Document{Text: "A short input.", Format: document.FormatText}
	got, stats, err := svc.Run(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "summary" {
		t.Errorf("expected %q, got %q", "summary", got)
	}
	if stats.Chunks != 1 || stats.ModelCalls != 1 || stats.Condensed {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestRun_PartialOrderPreserved(t *testing.T) {
	// Each partial encodes which chunk it came from; the joined summary must
	// list them in document order.
	n := 0
	stub := &stubSummarizer{fn: func(string) (string, error) {
		n++
		return fmt.Sprintf("p%d", n), nil
	}}
	svc := New(stub, 200, discardLogger())

	doc := document.Document{Text: sentences(10, 100)}
	got, stats, err := svc.Run(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Chunks < 3 {
		t.Fatalf("expected several chunks, got %d", stats.Chunks)
	}

	want := make([]string, stats.Chunks)
	for i := range want {
		want[i] = fmt.Sprintf("p%d", i+1)
	}
	if got != strings.Join(want, " ") {
		t.Errorf("expected partials in order %v, got %q", want, got)
	}
}

func TestRun_ChunksSummarizedInDocumentOrder(t *testing.T) {
	stub := &stubSummarizer{fn: func(string) (string, error) { return "p", nil }}
	svc := New(stub, 150, discardLogger())

	doc := document.Document{Text: sentences(8, 70)}
	if _, _, err := svc.Run(context.Background(), doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rebuilt strings.Builder
	for _, in := range stub.calls {
		rebuilt.WriteString(in)
	}
	if rebuilt.String() != doc.Text {
		t.Error("model inputs concatenated in call order should reproduce the document")
	}
}

func TestRun_ModelErrorAborts(t *testing.T) {
	boom := errors.New("inference failed")
	count := 0
	stub := &stubSummarizer{fn: func(string) (string, error) {
		count++
		if count == 2 {
			return "", boom
		}
		return "p", nil
	}}
	svc := New(stub, 150, discardLogger())

	doc := document.Document{Text: sentences(8, 70)}
	got, _, err := svc.Run(context.Background(), doc)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped model error, got %v", err)
	}
	if got != "" {
		t.Errorf("no summary should be returned on failure, got %q", got)
	}
	if count != 2 {
		t.Errorf("run should stop at the failing chunk, made %d calls", count)
	}
}

func TestRun_ProgressCallback(t *testing.T) {
	stub := &stubSummarizer{fn: func(string) (string, error) { return "p", nil }}
	svc := New(stub, 150, discardLogger())

	var dones []int
	total := 0
	svc.OnProgress(func(d, tot int) {
		dones = append(dones, d)
		total = tot
	})

	doc := document.Document{Text: sentences(6, 70)}
	if _, stats, err := svc.Run(context.Background(), doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if total != stats.Chunks {
		t.Errorf("progress total %d, want %d", total, stats.Chunks)
	}
	for i, d := range dones {
		if d != i+1 {
			t.Errorf("progress step %d reported done=%d", i, d)
		}
	}
}

func TestRun_HardSplitCounted(t *testing.T) {
	stub := &stubSummarizer{fn: func(string) (string, error) { return "p", nil }}
	svc := New(stub, 100, discardLogger())

	doc := document.Document{Text: "Q" + strings.Repeat("z", 400) + "."}
	_, stats, err := svc.Run(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.HardSplits == 0 {
		t.Error("expected hard splits to be counted")
	}
}

func TestRunStats_Compression(t *testing.T) {
	s := RunStats{InputBytes: 1000, SummaryBytes: 250}
	if got := s.Compression(); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}
	if got := (RunStats{}).Compression(); got != 0 {
		t.Errorf("expected 0 for empty input, got %v", got)
	}
}
