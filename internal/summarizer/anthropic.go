package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicSummarizer calls the Anthropic Messages API. One attempt per
// chunk: failures surface as *ModelError and abort the run.
type AnthropicSummarizer struct {
	client anthropic.Client
	opts   Options
	log    *slog.Logger
}

func NewAnthropicSummarizer(apiKey string, opts Options, log *slog.Logger) *AnthropicSummarizer {
	return &AnthropicSummarizer{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		opts:   opts,
		log:    log,
	}
}

func (s *AnthropicSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	prompt := buildPrompt(text, s.opts.Short)

	start := time.Now()
	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.opts.Model),
		MaxTokens: int64(s.opts.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", &ModelError{Provider: "anthropic", Err: err}
	}

	if len(message.Content) == 0 {
		return "", &ModelError{Provider: "anthropic", Err: fmt.Errorf("empty response")}
	}
	block, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", &ModelError{Provider: "anthropic", Err: fmt.Errorf("unexpected content type %q", message.Content[0].Type)}
	}

	s.log.Debug("chunk summarized",
		"provider", "anthropic",
		"model", s.opts.Model,
		"input_bytes", len(text),
		"output_bytes", len(block.Text),
		"duration", time.Since(start))

	return block.Text, nil
}
