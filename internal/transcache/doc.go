// Package transcache persists recognizer payloads in SQLite so repeated runs
// against the same audio skip transcription.
//
// Entries are keyed by the audio file's content hash plus the recognizer
// model. A file lock serializes writers; the lock is held for the lifetime of
// an open Store.
package transcache
