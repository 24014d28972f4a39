package align

import (
	"strings"

	"lyricsync/internal/textnorm"
)

// Word is a single recognized word with timing from the speech recognizer.
// Confidence is valid only when HasConfidence is set; reconstructed words
// carry no confidence.
type Word struct {
	Text          string
	Start         float64
	End           float64
	Confidence    float64
	HasConfidence bool
}

// Duration returns the word duration, never negative.
func (w Word) Duration() float64 {
	if w.End <= w.Start {
		return 0
	}
	return w.End - w.Start
}

// Segment is a coarser recognizer unit: a stretch of speech with its own
// timing and the words recognized inside it. Words may be empty.
type Segment struct {
	Text  string
	Start float64
	End   float64
	Words []Word
}

// Duration returns the segment duration, never negative.
func (s Segment) Duration() float64 {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// Line is one non-blank lyric line. Index is 1-based over non-blank lines in
// input order; Block groups contiguous non-blank lines separated by blanks.
type Line struct {
	Index int
	Text  string
	Block int
}

// Cue is one placed subtitle entry. Score is meaningful only when Matched is
// true; fallback-placed cues carry no score.
type Cue struct {
	Index   int
	Text    string
	Start   float64
	End     float64
	Matched bool
	Score   float64
}

// Result is the outcome of one alignment run.
type Result struct {
	Cues               []Cue
	MatchedCount       int
	FallbackCount      int
	UsedReconstruction bool
	Warnings           []string
}

// Options holds the alignment tunables. Zero values are not usable; start
// from DefaultOptions.
type Options struct {
	MinGap            float64
	MinDuration       float64
	SearchWindowWords int
	MinScore          float64

	WordsPerSecond     float64
	CharsPerSecond     float64
	PauseBetweenBlocks float64
	DefaultDuration    float64
	MinBlockDuration   float64
	MaxBlockDuration   float64
}

// DefaultOptions returns the tuning the heuristics were calibrated with.
func DefaultOptions() Options {
	return Options{
		MinGap:             0.12,
		MinDuration:        0.6,
		SearchWindowWords:  40,
		MinScore:           0.55,
		WordsPerSecond:     3.0,
		CharsPerSecond:     14.0,
		PauseBetweenBlocks: 0.35,
		DefaultDuration:    3.0,
		MinBlockDuration:   1.5,
		MaxBlockDuration:   8.0,
	}
}

// ParseLines splits raw lyric text into non-blank lines with dense 1-based
// indices. Blank lines act only as block separators and receive no index.
func ParseLines(text string) []Line {
	var lines []Line
	block := 0
	open := false
	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			if open {
				block++
				open = false
			}
			continue
		}
		open = true
		lines = append(lines, Line{
			Index: len(lines) + 1,
			Text:  trimmed,
			Block: block,
		})
	}
	return lines
}

// lineTokens returns the normalized tokens of a line's text.
func lineTokens(line Line) []string {
	return textnorm.Tokenize(line.Text)
}
