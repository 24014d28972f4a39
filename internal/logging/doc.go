// Package logging builds the slog loggers used across lyricsync.
//
// Two output formats exist: a human-oriented console format
// ("TIMESTAMP LEVEL component: message key=value ...") and line-delimited
// JSON for machine consumption. Attr helpers re-export the slog constructors
// so call sites stay terse, and NewNop provides a discard logger for tests.
package logging
