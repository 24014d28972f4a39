package align

import (
	"lyricsync/internal/textnorm"
)

// Scoring weights for candidate windows. Similarity dominates; token overlap
// rewards shared vocabulary regardless of order; the length penalty keeps
// windows from ballooning past the target line.
const (
	similarityWeight    = 0.75
	overlapWeight       = 0.25
	lengthPenaltyWeight = 0.1
)

// scoreWindow rates how well a window of recognized tokens matches the
// target line. targetString is the pre-joined target token string.
func scoreWindow(targetString string, targetTokens, windowTokens []string) float64 {
	windowString := textnorm.JoinTokens(windowTokens)
	if windowString == "" {
		return 0
	}

	similarity := textnorm.SimilarityRatio(targetString, windowString)

	targetSet := make(map[string]struct{}, len(targetTokens))
	for _, t := range targetTokens {
		targetSet[t] = struct{}{}
	}
	windowSet := make(map[string]struct{}, len(windowTokens))
	for _, t := range windowTokens {
		windowSet[t] = struct{}{}
	}
	shared := 0
	for t := range targetSet {
		if _, ok := windowSet[t]; ok {
			shared++
		}
	}
	overlap := float64(shared) / float64(max(len(targetSet), 1))

	lengthPenalty := float64(abs(len(windowTokens)-len(targetTokens))) / float64(max(len(targetTokens), 1))

	return similarityWeight*similarity + overlapWeight*overlap - lengthPenaltyWeight*lengthPenalty
}

// timeGapPenalty discourages windows that start long after the previous cue
// ended: a centisecond per second of gap up to three seconds, then a steeper
// two-centisecond rate. No penalty before the first cue has been placed.
func timeGapPenalty(startTime, prevEnd float64) float64 {
	if prevEnd <= 0 {
		return 0
	}
	gap := startTime - prevEnd
	if gap < 0 {
		gap = 0
	}
	if gap <= 3.0 {
		return gap * 0.01
	}
	return 0.03 + (gap-3.0)*0.02
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
