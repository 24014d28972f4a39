package srt

import (
	"strconv"
	"strings"

	"lyricsync/internal/align"
	"lyricsync/internal/fileutil"
)

// Render builds the SRT payload for the given cues. Cues are numbered by
// position starting at 1; the original line indices are not part of the
// format. An empty cue list yields an empty string.
func Render(cues []align.Cue) string {
	if len(cues) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, cue := range cues {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteByte('\n')
		sb.WriteString(FormatTimestamp(cue.Start))
		sb.WriteString(" --> ")
		sb.WriteString(FormatTimestamp(cue.End))
		sb.WriteByte('\n')
		sb.WriteString(cue.Text)
		sb.WriteByte('\n')
	}
	return strings.TrimSpace(sb.String()) + "\n"
}

// WriteFile renders cues and writes them to path atomically.
func WriteFile(path string, cues []align.Cue) error {
	return fileutil.WriteFileAtomic(path, []byte(Render(cues)), 0o644)
}
