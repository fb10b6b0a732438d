package chunker

import (
	"iter"
	"unicode/utf8"
)

// Chunk is a contiguous slice of the source text: Text == source[Start:End].
// Chunks are yielded in document order and their spans tile the source
// exactly, so concatenating them reproduces the input byte-for-byte.
type Chunk struct {
	Text      string
	Start     int
	End       int
	Index     int
	HardSplit bool // set when a single oversized sentence forced a mid-sentence cut
}

// Len returns the chunk length in bytes.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Split partitions text into chunks of at most maxLen bytes, closing each
// chunk at a sentence boundary when the next sentence would overflow.
// The default boundary detection is PunctBoundaryFinder.
func Split(text string, maxLen int) iter.Seq[Chunk] {
	return SplitWith(text, maxLen, PunctBoundaryFinder{})
}

// SplitWith is Split with explicit boundary detection. The sequence is lazy
// and restartable: it is a pure function of its inputs and may be ranged over
// more than once. Empty input yields nothing; input of at most maxLen bytes
// yields exactly one chunk equal to the whole input. A sentence longer than
// maxLen on its own is hard-split at the rune boundary nearest maxLen.
func SplitWith(text string, maxLen int, bf BoundaryFinder) iter.Seq[Chunk] {
	if maxLen < 1 {
		maxLen = 1
	}
	return func(yield func(Chunk) bool) {
		if text == "" {
			return
		}

		bounds := bf.Boundaries(text)
		index := 0
		start := 0 // start of the chunk being accumulated

		emit := func(end int, hard bool) bool {
			ok := yield(Chunk{
				Text:      text[start:end],
				Start:     start,
				End:       end,
				Index:     index,
				HardSplit: hard,
			})
			index++
			start = end
			return ok
		}

		segStart := 0
		for _, segEnd := range append(bounds, len(text)) {
			if segEnd <= segStart {
				continue
			}

			if segEnd-segStart > maxLen {
				// Oversized sentence: flush what we have, then hard-split it.
				if segStart > start {
					if !emit(segStart, false) {
						return
					}
				}
				for start < segEnd {
					cut := segEnd
					if cut-start > maxLen {
						cut = runeFloor(text, start+maxLen)
					}
					if cut <= start {
						// maxLen smaller than one rune: take the whole rune.
						_, w := utf8.DecodeRuneInString(text[start:])
						cut = start + w
					}
					if !emit(cut, true) {
						return
					}
				}
				segStart = segEnd
				continue
			}

			// Close the current chunk if adding this sentence overflows it.
			if segStart > start && segEnd-start > maxLen {
				if !emit(segStart, false) {
					return
				}
			}
			segStart = segEnd
		}

		if start < len(text) {
			emit(len(text), false)
		}
	}
}

// runeFloor returns the largest rune-start offset not greater than i,
// so hard splits never land inside a multi-byte rune.
func runeFloor(text string, i int) int {
	for i > 0 && !utf8.RuneStart(text[i]) {
		i--
	}
	return i
}
