// Package pipeline runs the summarization pass: split the extracted text
// into model-sized chunks, summarize each chunk in document order, and
// reassemble the partials into one final summary.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dgallion1/summarise/internal/chunker"
	"github.com/dgallion1/summarise/internal/document"
	"github.com/dgallion1/summarise/internal/summarizer"
)

// Service drives one summarization run. Chunks are processed strictly
// sequentially: partial order must match chunk order, and the model is
// treated as single-instance.
type Service struct {
	model    summarizer.Summarizer
	maxLen   int
	log      *slog.Logger
	progress func(done, total int)
}

func New(model summarizer.Summarizer, maxLen int, log *slog.Logger) *Service {
	return &Service{
		model:  model,
		maxLen: maxLen,
		log:    log,
	}
}

// OnProgress registers a callback invoked after each chunk is summarized.
func (s *Service) OnProgress(fn func(done, total int)) {
	s.progress = fn
}

// Run summarizes a document and returns the final summary. Any model failure
// aborts the run immediately; no partial result is returned.
func (s *Service) Run(ctx context.Context, doc document.Document) (string, RunStats, error) {
	start := time.Now()
	stats := RunStats{InputBytes: len(doc.Text)}

	chunks := slices.Collect(chunker.Split(doc.Text, s.maxLen))
	stats.Chunks = len(chunks)
	for _, c := range chunks {
		if c.HardSplit {
			stats.HardSplits++
		}
	}

	s.log.Debug("input chunked",
		"source", doc.Source,
		"format", doc.Format,
		"input_bytes", stats.InputBytes,
		"chunks", stats.Chunks,
		"hard_splits", stats.HardSplits)

	partials := make([]string, 0, len(chunks))
	for _, c := range chunks {
		partial, err := s.model.Summarize(ctx, c.Text)
		if err != nil {
			return "", stats, fmt.Errorf("summarize chunk %d/%d: %w", c.Index+1, len(chunks), err)
		}
		stats.ModelCalls++
		partials = append(partials, partial)
		if s.progress != nil {
			s.progress(c.Index+1, len(chunks))
		}
	}

	final, condensed, err := Reassemble(ctx, partials, s.maxLen, s.model)
	if err != nil {
		return "", stats, err
	}
	if condensed {
		stats.ModelCalls++
		stats.Condensed = true
	}

	stats.SummaryBytes = len(final)
	stats.Duration = time.Since(start)

	s.log.Debug("run complete",
		"summary_bytes", stats.SummaryBytes,
		"model_calls", stats.ModelCalls,
		"condensed", stats.Condensed,
		"duration", stats.Duration)

	return final, stats, nil
}
