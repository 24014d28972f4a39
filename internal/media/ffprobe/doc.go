// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// lyricsync only needs audio-side answers: how long is the file, and does it
// contain an audio stream at all. Inspect executes ffprobe and returns a
// parsed Result; helper methods answer those questions, treating a missing
// or unparsable duration as unknown rather than an error.
package ffprobe
