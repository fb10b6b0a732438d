package summarizer

import "fmt"

// buildPrompt asks for an abstractive summary inside a word budget derived
// from the input length.
func buildPrompt(text string, short bool) string {
	maxWords, minWords := autoLengths(text, short)
	return fmt.Sprintf(
		"Summarize the following text in %d to %d words. Respond with the summary only, no preamble.\n\n%s",
		minWords, maxWords, text)
}
