// Package cli wires the summarise command: input resolution, flag handling,
// pipeline execution and output writing.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dgallion1/summarise/internal/config"
	"github.com/dgallion1/summarise/internal/document"
	"github.com/dgallion1/summarise/internal/fetch"
	"github.com/dgallion1/summarise/internal/parser"
	"github.com/dgallion1/summarise/internal/pipeline"
	"github.com/dgallion1/summarise/internal/summarizer"
)

var (
	filePath   string
	pageURL    string
	outputPath string
	maxLength  int
	modelID    string
	short      bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "summarise [text]",
	Short: "Summarise text, files, or webpages",
	Long: `summarise extracts plain text from a file (.txt, .md, .pdf, .docx, .csv,
.html), a web page, an inline argument, or stdin, and produces an abstractive
summary with a hosted language model. Long input is split at sentence
boundaries, summarised chunk by chunk, and the partial summaries are joined
(with one extra condensation pass when the join is still too long).

Example usage:
  summarise -f report.pdf                 # summarise a PDF
  summarise -u https://example.com/post   # summarise a web page
  cat notes.txt | summarise -o brief.txt  # stdin to file`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runSummarise,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "path to input file (.txt, .md, .pdf, .docx, .csv, .html)")
	rootCmd.Flags().StringVarP(&pageURL, "url", "u", "", "webpage URL to summarise")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write summary to file (default stdout)")
	rootCmd.Flags().IntVar(&maxLength, "max-length", 0, "maximum chunk size in bytes per model call")
	rootCmd.Flags().StringVar(&modelID, "model", "", "model id override")
	rootCmd.Flags().BoolVar(&short, "short", false, "bias towards shorter summaries")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runSummarise(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-length") {
		cfg.MaxLength = maxLength
	}
	if modelID != "" {
		cfg.SetModel(modelID)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	doc, err := resolveInput(ctx, cfg, args, log)
	if err != nil {
		return err
	}
	if doc.Empty() {
		return fmt.Errorf("input is empty after extraction")
	}

	model := newSummarizer(cfg, log)
	svc := pipeline.New(model, cfg.MaxLength, log)
	svc.OnProgress(progressFunc())

	summary, stats, err := svc.Run(ctx, doc)
	if err != nil {
		return err
	}

	log.Debug("summary produced",
		"chunks", stats.Chunks,
		"model_calls", stats.ModelCalls,
		"compression", fmt.Sprintf("%.2f", stats.Compression()))

	return writeOutput(summary)
}

// resolveInput picks the single input source: inline text, file, URL, or
// stdin. Supplying more than one is a configuration error.
func resolveInput(ctx context.Context, cfg config.Config, args []string, log *slog.Logger) (document.Document, error) {
	sources := 0
	if len(args) > 0 {
		sources++
	}
	if filePath != "" {
		sources++
	}
	if pageURL != "" {
		sources++
	}
	if sources > 1 {
		return document.Document{}, fmt.Errorf("conflicting input sources: give only one of text argument, --file, --url")
	}

	switch {
	case pageURL != "":
		return fetch.New(cfg.FetchTimeout).Fetch(ctx, pageURL)

	case filePath != "":
		if !parser.IsSupportedExtension(filePath) {
			log.Warn("no dedicated parser for file extension, treating as plain text", "file", filePath)
		}
		f, err := os.Open(filePath)
		if err != nil {
			return document.Document{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		doc, err := parser.ForFile(filePath).Parse(f, filepath.Base(filePath))
		if err != nil {
			return document.Document{}, fmt.Errorf("extract %s: %w", filePath, err)
		}
		doc.Source = filePath
		return doc, nil

	case len(args) > 0:
		return document.Document{
			Text:   args[0],
			Format: document.FormatText,
			Source: "arg",
		}, nil

	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return document.Document{}, fmt.Errorf("read stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return document.Document{}, fmt.Errorf("no input provided: use --file, --url, a text argument, or pipe via stdin")
		}
		return document.Document{
			Text:   string(data),
			Format: document.FormatText,
			Source: "stdin",
		}, nil
	}
}

func newSummarizer(cfg config.Config, log *slog.Logger) summarizer.Summarizer {
	opts := summarizer.Options{
		Model:     cfg.Model(),
		MaxTokens: cfg.MaxTokens,
		Short:     short,
	}
	if cfg.Provider == config.ProviderOpenAI {
		return summarizer.NewOpenAISummarizer(cfg.OpenAIAPIKey, opts, log)
	}
	return summarizer.NewAnthropicSummarizer(cfg.AnthropicAPIKey, opts, log)
}

// writeOutput emits the final summary. The output file is created only after
// the whole run succeeded, so a failed run never leaves partial output.
func writeOutput(summary string) error {
	if outputPath == "" {
		fmt.Println(summary)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(summary+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Summary written to %s\n", outputPath)
	return nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
