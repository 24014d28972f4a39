// Package transcribe runs speech recognition on audio files.
//
// The Engine interface abstracts the recognizer; the shipped implementation
// invokes the whisperx CLI and parses its word-aligned JSON output into the
// alignment data model. An unavailable recognizer is a defined condition the
// caller can probe for, not an error surfaced mid-run.
package transcribe
