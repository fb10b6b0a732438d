package chunker

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BoundaryFinder locates sentence boundaries in text. Implementations return
// ascending byte offsets strictly inside (0, len(text)); each offset is the
// start of a new sentence, with the preceding whitespace attached to the
// earlier sentence so the offsets tile the text exactly.
type BoundaryFinder interface {
	Boundaries(text string) []int
}

// PunctBoundaryFinder detects sentence ends at terminal punctuation followed
// by whitespace. It is deliberately conservative: a missed boundary only makes
// a chunk close earlier, while a false boundary can cut a sentence in half.
type PunctBoundaryFinder struct{}

// abbreviations whose trailing period does not end a sentence.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
	"e.g": true, "i.e": true, "fig": true, "al": true, "inc": true,
	"ltd": true, "co": true, "dept": true, "est": true, "approx": true,
	"no": true, "vol": true, "pp": true,
}

func (PunctBoundaryFinder) Boundaries(text string) []int {
	var offsets []int

	i := 0
	for i < len(text) {
		r, w := utf8.DecodeRuneInString(text[i:])
		if r != '.' && r != '!' && r != '?' {
			i += w
			continue
		}

		// Absorb closing quotes and brackets after the terminator.
		j := i + w
		for j < len(text) {
			q, qw := utf8.DecodeRuneInString(text[j:])
			if !isClosing(q) {
				break
			}
			j += qw
		}

		// Require a whitespace run, then more text.
		k := j
		for k < len(text) {
			s, sw := utf8.DecodeRuneInString(text[k:])
			if !unicode.IsSpace(s) {
				break
			}
			k += sw
		}
		if k == j || k == len(text) {
			i = j
			continue
		}

		if r == '.' && isAbbreviation(text[:i]) {
			i = k
			continue
		}

		// The next sentence should look like a sentence start.
		next, _ := utf8.DecodeRuneInString(text[k:])
		if unicode.IsUpper(next) || unicode.IsDigit(next) || isOpening(next) {
			offsets = append(offsets, k)
		}
		i = k
	}

	return offsets
}

// isAbbreviation reports whether the text ends in a token whose trailing
// period is part of an abbreviation or initial rather than a sentence end.
func isAbbreviation(before string) bool {
	start := len(before)
	for start > 0 {
		r, w := utf8.DecodeLastRuneInString(before[:start])
		if !unicode.IsLetter(r) && r != '.' {
			break
		}
		start -= w
	}
	token := strings.TrimSuffix(before[start:], ".")
	if token == "" {
		return false
	}
	if utf8.RuneCountInString(token) == 1 {
		return true // single-letter initial, "J. Smith"
	}
	return abbreviations[strings.ToLower(token)]
}

func isClosing(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '}', '”', '’', '»':
		return true
	}
	return false
}

func isOpening(r rune) bool {
	switch r {
	case '"', '\'', '(', '[', '{', '“', '‘', '«':
		return true
	}
	return false
}
