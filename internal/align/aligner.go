package align

import (
	"lyricsync/internal/textnorm"
)

// staleWordSlack is how far (seconds) before the previous cue end a
// candidate start word may finish before it is considered already passed.
const staleWordSlack = 0.5

// earlyExitScore ends the window search once a candidate scores above it;
// such a match is treated as effectively exact.
const earlyExitScore = 0.95

// Aligner matches lyric lines with recognized words.
type Aligner struct {
	opts Options
}

// New constructs an Aligner with the given options.
func New(opts Options) *Aligner {
	return &Aligner{opts: opts}
}

// cursorState is the only state threaded through a run: the forward-only
// pointer into the word stream and the end of the previously placed cue.
// Each per-line step takes the state in and returns it advanced.
type cursorState struct {
	pointer int
	prevEnd float64
}

// Align produces a cue per non-blank line. With recognized words it runs the
// windowed search with heuristic fallback per line; with an empty word
// stream it estimates the whole timeline from text length. audioDuration is
// the known bound in seconds, or 0 when unknown. usedReconstruction is
// propagated into the result unchanged.
func (a *Aligner) Align(lines []Line, words []Word, audioDuration float64, usedReconstruction bool) Result {
	if len(lines) == 0 {
		return Result{UsedReconstruction: usedReconstruction}
	}
	if len(words) == 0 {
		return a.estimateResult(lines, audioDuration, usedReconstruction)
	}

	normTokens := make([]string, len(words))
	for i, w := range words {
		normTokens[i] = textnorm.Normalize(w.Text)
	}
	lastWordEnd := words[len(words)-1].End

	cues := make([]Cue, 0, len(lines))
	state := cursorState{}
	matched := 0
	fallback := 0

	for _, line := range lines {
		var cue Cue
		cue, state = a.alignLine(line, words, normTokens, lastWordEnd, state)
		if cue.Matched {
			matched++
		} else {
			fallback++
		}
		cues = append(cues, cue)
	}

	cues, warnings := a.reconcile(cues, audioDuration, fallback)

	return Result{
		Cues:               cues,
		MatchedCount:       matched,
		FallbackCount:      fallback,
		UsedReconstruction: usedReconstruction,
		Warnings:           warnings,
	}
}

// alignLine places one line: window match when an acceptable one exists,
// heuristic fallback otherwise. Returns the cue and the advanced state.
func (a *Aligner) alignLine(line Line, words []Word, normTokens []string, lastWordEnd float64, state cursorState) (Cue, cursorState) {
	tokens := lineTokens(line)

	if match, ok := a.findBestWindow(tokens, words, normTokens, state); ok && match.score >= a.opts.MinScore {
		start := match.startTime
		end := match.endTime
		if end < start+a.opts.MinDuration {
			end = start + a.opts.MinDuration
		}
		state.pointer = min(match.endIndex+1, len(words))
		state.prevEnd = end
		return Cue{
			Index:   line.Index,
			Text:    line.Text,
			Start:   start,
			End:     end,
			Matched: true,
			Score:   match.score,
		}, state
	}

	return a.fallbackCue(line, words, lastWordEnd, state)
}

// windowMatch records the best candidate span found for one line.
type windowMatch struct {
	startIndex int
	endIndex   int
	score      float64
	startTime  float64
	endTime    float64
}

// findBestWindow scans forward from the cursor for the best-scoring
// contiguous word span. Ties between equal scores keep the first candidate
// in scan order.
func (a *Aligner) findBestWindow(tokens []string, words []Word, normTokens []string, state cursorState) (windowMatch, bool) {
	if len(tokens) == 0 || state.pointer >= len(words) {
		return windowMatch{}, false
	}

	var best windowMatch
	found := false
	limit := min(len(words), state.pointer+a.opts.SearchWindowWords)
	targetString := textnorm.JoinTokens(tokens)

	for startIndex := state.pointer; startIndex < limit; startIndex++ {
		startWord := words[startIndex]
		if startWord.End < state.prevEnd-staleWordSlack {
			continue
		}

		windowTokens := make([]string, 0, len(tokens)+6)
		lastEndTime := startWord.End
		for endIndex := startIndex; endIndex < limit; endIndex++ {
			lastEndTime = words[endIndex].End
			if normTokens[endIndex] == "" {
				continue
			}
			windowTokens = append(windowTokens, normTokens[endIndex])
			if len(windowTokens) > len(tokens)+6 {
				break
			}
			score := scoreWindow(targetString, tokens, windowTokens)
			score -= timeGapPenalty(startWord.Start, state.prevEnd)
			if !found || score > best.score {
				found = true
				best = windowMatch{
					startIndex: startIndex,
					endIndex:   endIndex,
					score:      score,
					startTime:  startWord.Start,
					endTime:    lastEndTime,
				}
			}
		}
		if found && best.score > earlyExitScore {
			break
		}
	}

	return best, found
}
