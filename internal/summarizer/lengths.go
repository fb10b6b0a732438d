package summarizer

import "strings"

// autoLengths picks a word budget for a summary from the input's word count.
// Short inputs (or the short bias) get a budget proportional to their length;
// anything longer gets a fixed window.
func autoLengths(text string, short bool) (maxWords, minWords int) {
	n := len(strings.Fields(text))

	if short || n < 300 {
		maxWords = clamp(n*6/10+30, 32, 160)
		minWords = clamp(n*3/10+12, 16, maxWords-8)
	} else {
		maxWords, minWords = 180, 60
	}

	if minWords >= maxWords {
		minWords = max(16, maxWords/2)
	}
	return maxWords, minWords
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
