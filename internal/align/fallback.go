package align

// fallbackCue places a line the windowed search could not match. The cue
// starts after the previous one, snapped forward to the cursor word when one
// remains, and runs for the minimum duration. The cursor is then advanced
// past every word the fallback interval swallowed, resynchronizing the
// stream against drift.
func (a *Aligner) fallbackCue(line Line, words []Word, lastWordEnd float64, state cursorState) (Cue, cursorState) {
	start := state.prevEnd + a.opts.MinGap
	if state.pointer < len(words) && words[state.pointer].Start > start {
		start = words[state.pointer].Start
	}
	if start > lastWordEnd {
		start = max(state.prevEnd+a.opts.MinGap, lastWordEnd+a.opts.MinGap)
	}
	end := start + a.opts.MinDuration

	for state.pointer < len(words) && words[state.pointer].End <= end {
		state.pointer++
	}
	state.prevEnd = end

	return Cue{
		Index: line.Index,
		Text:  line.Text,
		Start: start,
		End:   end,
	}, state
}
