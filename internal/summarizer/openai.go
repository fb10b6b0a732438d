package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAISummarizer calls the OpenAI chat completions API.
type OpenAISummarizer struct {
	client openai.Client
	opts   Options
	log    *slog.Logger
}

func NewOpenAISummarizer(apiKey string, opts Options, log *slog.Logger) *OpenAISummarizer {
	return &OpenAISummarizer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		opts:   opts,
		log:    log,
	}
}

func (s *OpenAISummarizer) Summarize(ctx context.Context, text string) (string, error) {
	prompt := buildPrompt(text, s.opts.Short)

	start := time.Now()
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(s.opts.Model),
		MaxCompletionTokens: openai.Int(int64(s.opts.MaxTokens)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", &ModelError{Provider: "openai", Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &ModelError{Provider: "openai", Err: fmt.Errorf("empty response")}
	}
	summary := resp.Choices[0].Message.Content

	s.log.Debug("chunk summarized",
		"provider", "openai",
		"model", s.opts.Model,
		"input_bytes", len(text),
		"output_bytes", len(summary),
		"duration", time.Since(start))

	return summary, nil
}
