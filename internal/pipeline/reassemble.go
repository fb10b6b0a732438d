package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/dgallion1/summarise/internal/summarizer"
)

// Reassemble joins partial summaries in chunk order with a single space.
// If the join still exceeds maxLen bytes it is condensed by one more model
// call; there is never a second condensation pass. The returned bool reports
// whether that extra call happened.
func Reassemble(ctx context.Context, partials []string, maxLen int, model summarizer.Summarizer) (string, bool, error) {
	joined := strings.Join(partials, " ")
	if len(joined) <= maxLen {
		return joined, false, nil
	}

	condensed, err := model.Summarize(ctx, joined)
	if err != nil {
		return "", false, fmt.Errorf("condense joined summaries: %w", err)
	}
	return condensed, true, nil
}
