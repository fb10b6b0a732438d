package pipeline

import "time"

// RunStats aggregates counters from one summarization run.
type RunStats struct {
	InputBytes   int
	SummaryBytes int
	Chunks       int
	HardSplits   int
	ModelCalls   int
	Condensed    bool
	Duration     time.Duration
}

// Compression returns the output/input size ratio, or 0 for empty input.
func (s RunStats) Compression() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.SummaryBytes) / float64(s.InputBytes)
}
