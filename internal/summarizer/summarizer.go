// Package summarizer abstracts the summarization model behind a single-method
// interface so the pipeline can run against a hosted API or a test stub.
package summarizer

import (
	"context"
	"fmt"
)

// Summarizer produces an abstractive summary of one bounded chunk of text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// ModelError wraps a model load or inference failure. It is never retried;
// the run aborts and the cause surfaces to the user.
type ModelError struct {
	Provider string
	Err      error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%s model error: %v", e.Provider, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// Options tune how summaries are requested from a provider.
type Options struct {
	Model     string
	MaxTokens int
	Short     bool // bias toward shorter summaries
}
