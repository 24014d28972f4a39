package transcribe

import (
	"context"

	"lyricsync/internal/align"
)

// Result is one completed recognition run. Raw holds the recognizer's JSON
// payload verbatim so it can be cached and re-parsed without another run.
type Result struct {
	Language string
	Segments []align.Segment
	Raw      []byte
}

// Words flattens the per-segment words in segment order.
func (r Result) Words() []align.Word {
	var words []align.Word
	for _, segment := range r.Segments {
		words = append(words, segment.Words...)
	}
	return words
}

// Engine is a speech recognizer that produces word-level timing.
type Engine interface {
	// Name identifies the recognizer for logs and reports.
	Name() string
	// Available reports whether the recognizer can run on this host.
	Available() error
	// Transcribe runs recognition on the audio file at path.
	Transcribe(ctx context.Context, path string) (Result, error)
}
