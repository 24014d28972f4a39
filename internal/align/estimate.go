package align

import (
	"fmt"
	"unicode/utf8"

	"lyricsync/internal/textnorm"
)

// rescaleHeadroom is the minimum amount (seconds) by which a known audio
// duration must exceed the summed pause budget before block durations are
// rescaled to fit it.
const rescaleHeadroom = 0.1

// estimateResult builds the whole timeline from text length alone: no
// recognized words exist, so every line is a fallback placement. Blocks of
// contiguous lines are estimated as a unit, sequenced back-to-back with a
// fixed pause, and each block interval is divided among its lines by
// character weight.
func (a *Aligner) estimateResult(lines []Line, audioDuration float64, usedReconstruction bool) Result {
	blocks := groupBlocks(lines)

	durations := make([]float64, len(blocks))
	for i, block := range blocks {
		durations[i] = a.estimateBlockDuration(block)
	}

	pause := 0.0
	if len(blocks) > 1 {
		pause = a.opts.PauseBetweenBlocks
	}
	totalPause := pause * float64(len(blocks)-1)

	if audioDuration > totalPause+rescaleHeadroom {
		var total float64
		for _, d := range durations {
			total += d
		}
		if total > 0 {
			available := audioDuration - totalPause
			if available < rescaleHeadroom {
				available = rescaleHeadroom
			}
			scale := available / total
			for i := range durations {
				durations[i] *= scale
			}
		}
	}

	cues := make([]Cue, 0, len(lines))
	var splitWarnings []string
	current := 0.0
	for i, block := range blocks {
		start := current
		end := start + durations[i]
		blockCues, blockWarnings := a.splitBlockInterval(block, start, end)
		cues = append(cues, blockCues...)
		splitWarnings = append(splitWarnings, blockWarnings...)
		current = end + pause
	}

	cues, warnings := a.reconcile(cues, audioDuration, len(lines))
	warnings = append(splitWarnings, warnings...)

	return Result{
		Cues:               cues,
		FallbackCount:      len(lines),
		UsedReconstruction: usedReconstruction,
		Warnings:           warnings,
	}
}

// groupBlocks splits lines into runs sharing a block number. Lines arrive in
// input order, so each block is a contiguous slice.
func groupBlocks(lines []Line) [][]Line {
	var blocks [][]Line
	for _, line := range lines {
		if len(blocks) == 0 || blocks[len(blocks)-1][0].Block != line.Block {
			blocks = append(blocks, []Line{line})
			continue
		}
		blocks[len(blocks)-1] = append(blocks[len(blocks)-1], line)
	}
	return blocks
}

// estimateBlockDuration derives a display duration for one block from its
// word and character counts, bounded below by the block minimum, raised to
// the default when still short, and capped at the block maximum.
func (a *Aligner) estimateBlockDuration(block []Line) float64 {
	wordCount := 0
	charCount := 0
	for _, line := range block {
		wordCount += max(len(textnorm.Tokenize(line.Text)), 1)
		charCount += utf8.RuneCountInString(line.Text)
	}

	duration := float64(wordCount) / a.opts.WordsPerSecond
	if byChars := float64(charCount) / a.opts.CharsPerSecond; byChars > duration {
		duration = byChars
	}
	if duration < a.opts.MinBlockDuration {
		duration = a.opts.MinBlockDuration
	}
	if duration < a.opts.DefaultDuration {
		duration = a.opts.DefaultDuration
	}
	if duration > a.opts.MaxBlockDuration {
		duration = a.opts.MaxBlockDuration
	}
	return duration
}

// splitBlockInterval divides a block's interval among its lines by character
// weight, reserving the minimum gap between consecutive lines so the
// reconciler has nothing to trim. When the full gaps would push lines below
// the duration floor, the gaps shrink first; a block too short even for the
// bare floors degrades to a plain weighted split and records a warning per
// underlength line.
func (a *Aligner) splitBlockInterval(block []Line, start, end float64) ([]Cue, []string) {
	n := len(block)
	if n == 1 {
		return []Cue{{Index: block[0].Index, Text: block[0].Text, Start: start, End: end}}, nil
	}

	gap := a.opts.MinGap
	floor := a.opts.MinDuration
	spare := end - start - floor*float64(n)
	switch {
	case spare < 0:
		// The floors alone overrun the block. Keep the gap reservation and
		// split what remains by weight.
		floor = 0
	case spare < gap*float64(n-1):
		gap = spare / float64(n-1)
	}
	usable := end - start - gap*float64(n-1)
	if usable < 0 {
		gap = 0
		usable = end - start
	}

	weights := make([]float64, n)
	var totalWeight float64
	for i, line := range block {
		weights[i] = float64(max(utf8.RuneCountInString(line.Text), 1))
		totalWeight += weights[i]
	}
	excess := usable - floor*float64(n)

	cues := make([]Cue, 0, n)
	var warnings []string
	cursor := start
	for i, line := range block {
		share := floor + excess*weights[i]/totalWeight
		lineEnd := cursor + share
		if i == n-1 {
			lineEnd = end
		}
		if lineEnd-cursor < a.opts.MinDuration-1e-9 {
			warnings = append(warnings, fmt.Sprintf("line %d could not be given the minimum duration within its block", line.Index))
		}
		cues = append(cues, Cue{Index: line.Index, Text: line.Text, Start: cursor, End: lineEnd})
		cursor = lineEnd + gap
	}
	return cues, warnings
}
