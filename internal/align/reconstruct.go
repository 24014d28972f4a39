package align

import (
	"lyricsync/internal/textnorm"
)

// Degenerate-recognition thresholds. Word streams failing any of these are
// untrustworthy at the word level and must be rebuilt from segment timing.
const (
	minUsableTokens            = 4
	minDistinctRatio           = 0.3
	maxTopTokenShare           = 0.55
	minMeanWordDuration        = 0.05
	minSegmentDurationEstimate = 0.01
)

// NeedsReconstruction reports whether the recognized word stream is too
// repetitive, sparse, or fast to be trusted for per-word alignment.
func NeedsReconstruction(words []Word) bool {
	var tokens []string
	for _, w := range words {
		if t := textnorm.Normalize(w.Text); t != "" {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) < minUsableTokens {
		return true
	}

	counts := make(map[string]int, len(tokens))
	top := 0
	for _, t := range tokens {
		counts[t]++
		if counts[t] > top {
			top = counts[t]
		}
	}
	if float64(len(counts))/float64(len(tokens)) < minDistinctRatio {
		return true
	}
	if float64(top)/float64(len(tokens)) > maxTopTokenShare {
		return true
	}

	var total float64
	for _, w := range words {
		total += w.Duration()
	}
	return total/float64(max(len(words), 1)) < minMeanWordDuration
}

// ReconstructWords synthesizes a word stream from segment text and
// segment-level timing: each segment's span is divided evenly among its
// normalized tokens, in token order. Segments with no tokens are skipped and
// segment order, assumed chronological, is preserved. Synthetic words carry
// no confidence.
func ReconstructWords(segments []Segment) []Word {
	var out []Word
	for _, seg := range segments {
		tokens := textnorm.Tokenize(seg.Text)
		if len(tokens) == 0 {
			continue
		}
		duration := seg.Duration()
		if duration < minSegmentDurationEstimate {
			duration = minSegmentDurationEstimate
		}
		step := duration / float64(len(tokens))
		for i, token := range tokens {
			start := seg.Start + step*float64(i)
			end := start + step
			if end > seg.End {
				end = seg.End
			}
			out = append(out, Word{Text: token, Start: start, End: end})
		}
	}
	return out
}

// PrepareWords runs degeneracy detection and, when it trips, replaces the
// word stream with one reconstructed from segments. The second return value
// reports whether reconstruction was used.
func PrepareWords(words []Word, segments []Segment) ([]Word, bool) {
	if len(words) == 0 && len(segments) == 0 {
		return nil, false
	}
	if !NeedsReconstruction(words) {
		return words, false
	}
	rebuilt := ReconstructWords(segments)
	if len(rebuilt) == 0 {
		// Nothing to rebuild from; keep the originals rather than dropping
		// all timing information.
		return words, false
	}
	return rebuilt, true
}
