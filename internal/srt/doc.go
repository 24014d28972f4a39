// Package srt renders aligned cues as SubRip subtitle text.
//
// Each cue becomes a block: a 1-based sequence number, a
// "HH:MM:SS,mmm --> HH:MM:SS,mmm" timing line, the cue text, and a blank
// separator. The payload is trimmed and terminated with exactly one newline.
// Timestamps round to the nearest millisecond with carry into seconds,
// minutes, and hours.
package srt
