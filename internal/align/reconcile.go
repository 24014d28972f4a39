package align

import "fmt"

// maxFallbackRatio is the fraction of heuristically placed lines above which
// the result carries a global advisory warning.
const maxFallbackRatio = 0.3

// reconcile enforces the timeline invariants over placed cues: when a cue
// starts at or before its predecessor's end, the predecessor is trimmed back
// to leave the minimum gap, but never below its own minimum duration — an
// untrimmable overlap is kept and recorded as a warning. A known audio
// duration then clamps every cue end (0 means unknown). Finally the
// fallback ratio is checked.
func (a *Aligner) reconcile(cues []Cue, audioDuration float64, fallbackCount int) ([]Cue, []string) {
	var warnings []string

	for i := 1; i < len(cues); i++ {
		prev := &cues[i-1]
		if cues[i].Start > prev.End {
			continue
		}
		trimmed := cues[i].Start - a.opts.MinGap
		if trimmed > prev.End {
			trimmed = prev.End
		}
		floor := prev.Start + a.opts.MinDuration
		if trimmed < floor {
			trimmed = floor
			warnings = append(warnings, fmt.Sprintf("line %d could not be shortened without violating the minimum duration", prev.Index))
		}
		prev.End = trimmed
	}

	if audioDuration > 0 {
		for i := range cues {
			if cues[i].End > audioDuration {
				cues[i].End = audioDuration
			}
			if cues[i].Start > cues[i].End {
				cues[i].Start = cues[i].End
			}
		}
	}

	if len(cues) > 0 && float64(fallbackCount)/float64(len(cues)) > maxFallbackRatio {
		warnings = append(warnings, "more than 30% of lines were placed heuristically")
	}

	return cues, warnings
}
