package main

import (
	"fmt"
	"io"
	"strconv"

	"lyricsync/internal/align"
	"lyricsync/internal/srt"
)

const reportTextWidth = 40

// renderAlignmentReport prints a per-line placement table followed by run
// totals and any warnings.
func renderAlignmentReport(out io.Writer, result align.Result) {
	rows := make([][]string, 0, len(result.Cues))
	for _, cue := range result.Cues {
		rows = append(rows, []string{
			strconv.Itoa(cue.Index),
			srt.FormatTimestamp(cue.Start),
			srt.FormatTimestamp(cue.End),
			placementLabel(cue),
			scoreLabel(cue),
			truncateText(cue.Text, reportTextWidth),
		})
	}

	headers := []string{"#", "Start", "End", "Placement", "Score", "Text"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft}
	fmt.Fprintln(out, renderTable(out, headers, rows, aligns))

	total := len(result.Cues)
	fmt.Fprintf(out, "Matched %d of %d lines", result.MatchedCount, total)
	if result.FallbackCount > 0 {
		fmt.Fprintf(out, " (%d placed heuristically)", result.FallbackCount)
	}
	fmt.Fprintln(out)
	if result.UsedReconstruction {
		fmt.Fprintln(out, "Recognizer word timing was degenerate; timings were rebuilt from segment boundaries")
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", warning)
	}
}

func placementLabel(cue align.Cue) string {
	if cue.Matched {
		return "matched"
	}
	return "fallback"
}

func scoreLabel(cue align.Cue) string {
	if !cue.Matched {
		return "-"
	}
	return strconv.FormatFloat(cue.Score, 'f', 2, 64)
}

func truncateText(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return string(runes[:width-1]) + "…"
}
