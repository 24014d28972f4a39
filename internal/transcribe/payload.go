package transcribe

import (
	"encoding/json"
	"fmt"
	"strings"

	"lyricsync/internal/align"
)

// payloadWord mirrors one word entry in whisperx JSON output. Score is a
// pointer because whisperx omits it for words alignment could not place.
type payloadWord struct {
	Word  string   `json:"word"`
	Start float64  `json:"start"`
	End   float64  `json:"end"`
	Score *float64 `json:"score"`
}

type payloadSegment struct {
	Text  string        `json:"text"`
	Start float64       `json:"start"`
	End   float64       `json:"end"`
	Words []payloadWord `json:"words"`
}

type payload struct {
	Segments []payloadSegment `json:"segments"`
	Language string           `json:"language"`
}

// ParsePayload decodes a whisperx JSON payload into a Result. Words without
// timing (end not after start) are dropped; segment order is preserved.
func ParsePayload(data []byte) (Result, error) {
	var decoded payload
	if err := json.Unmarshal(data, &decoded); err != nil {
		return Result{}, fmt.Errorf("parse recognizer payload: %w", err)
	}

	result := Result{
		Language: strings.TrimSpace(decoded.Language),
		Raw:      data,
	}
	for _, seg := range decoded.Segments {
		segment := align.Segment{
			Text:  strings.TrimSpace(seg.Text),
			Start: seg.Start,
			End:   seg.End,
		}
		for _, w := range seg.Words {
			text := strings.TrimSpace(w.Word)
			if text == "" || w.End <= w.Start {
				continue
			}
			word := align.Word{
				Text:  text,
				Start: w.Start,
				End:   w.End,
			}
			if w.Score != nil {
				word.Confidence = *w.Score
				word.HasConfidence = true
			}
			segment.Words = append(segment.Words, word)
		}
		result.Segments = append(result.Segments, segment)
	}
	return result, nil
}
