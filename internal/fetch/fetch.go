// Package fetch retrieves a single web page and extracts its article text.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"

	"github.com/dgallion1/summarise/internal/document"
	"github.com/dgallion1/summarise/internal/parser"
)

var (
	ErrInvalidURL   = errors.New("invalid url")
	ErrNoContent    = errors.New("no readable content")
	ErrBodyTooLarge = errors.New("response body too large")
)

const (
	maxRedirects     = 5
	defaultMaxBody   = 10 << 20 // 10MB
	defaultUserAgent = "summarise/1.0"
)

// Fetcher performs the one-shot page fetch. The tool never retries: any
// network or extraction failure aborts the run.
type Fetcher struct {
	client  *http.Client
	maxBody int64
}

func New(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		maxBody: defaultMaxBody,
	}
}

// Fetch downloads the page and extracts its main text. Readability is tried
// first for boilerplate removal; when it finds no article body, the plain
// HTML text walk is used instead.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) (document.Document, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return document.Document{}, fmt.Errorf("%w: %s", ErrInvalidURL, urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return document.Document{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return document.Document{}, fmt.Errorf("fetch %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return document.Document{}, fmt.Errorf("fetch %s: HTTP %d", urlStr, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return document.Document{}, fmt.Errorf("read response: %w", err)
	}
	if int64(len(body)) > f.maxBody {
		return document.Document{}, fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, f.maxBody)
	}

	finalURL := parsed
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL
	}

	text := extractArticle(body, finalURL)
	if strings.TrimSpace(text) == "" {
		return document.Document{}, fmt.Errorf("%w: %s", ErrNoContent, urlStr)
	}

	return document.Document{
		Text:   text,
		Format: document.FormatWeb,
		Source: urlStr,
	}, nil
}

func extractArticle(body []byte, pageURL *url.URL) string {
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return article.TextContent
	}

	// Readability found no article body; fall back to a plain text walk.
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return parser.ExtractHTMLText(doc)
}
