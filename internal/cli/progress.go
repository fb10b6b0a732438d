package cli

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// progressFunc returns a per-chunk progress callback. The bar writes to
// stderr so it never mixes with the summary on stdout, and only appears when
// the input actually split into more than one chunk.
func progressFunc() func(done, total int) {
	var bar *progressbar.ProgressBar
	return func(done, total int) {
		if total < 2 {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("Summarising"),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		bar.Set(done)
	}
}
