package transcribe_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lyricsync/internal/services"
	"lyricsync/internal/transcribe"
)

const samplePayload = `{
  "language": "en",
  "segments": [
    {
      "text": " Hello darkness my old friend",
      "start": 0.5,
      "end": 2.8,
      "words": [
        {"word": "Hello", "start": 0.5, "end": 0.9, "score": 0.98},
        {"word": "darkness", "start": 1.0, "end": 1.6, "score": 0.95},
        {"word": "my", "start": 1.7, "end": 1.8},
        {"word": "old", "start": 1.9, "end": 2.2, "score": 0.91},
        {"word": "friend", "start": 2.3, "end": 2.8, "score": 0.97}
      ]
    },
    {
      "text": "",
      "start": 3.0,
      "end": 3.4,
      "words": [
        {"word": "  ", "start": 3.0, "end": 3.1},
        {"word": "oh", "start": 3.2, "end": 3.2}
      ]
    }
  ]
}`

func TestParsePayload(t *testing.T) {
	result, err := transcribe.ParsePayload([]byte(samplePayload))
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}
	if result.Language != "en" {
		t.Fatalf("language = %q", result.Language)
	}
	if len(result.Segments) != 2 {
		t.Fatalf("segments = %d", len(result.Segments))
	}
	if got := result.Segments[0].Text; got != "Hello darkness my old friend" {
		t.Fatalf("segment text = %q", got)
	}

	words := result.Words()
	if len(words) != 5 {
		t.Fatalf("expected 5 usable words, got %d", len(words))
	}
	if words[0].Text != "Hello" || !words[0].HasConfidence || words[0].Confidence != 0.98 {
		t.Fatalf("unexpected first word: %+v", words[0])
	}
	if words[2].Text != "my" || words[2].HasConfidence {
		t.Fatalf("word without score should carry no confidence: %+v", words[2])
	}
	if len(result.Segments[1].Words) != 0 {
		t.Fatalf("blank and zero-length words should be dropped: %+v", result.Segments[1].Words)
	}
	if string(result.Raw) != samplePayload {
		t.Fatal("expected raw payload preserved")
	}
}

func TestParsePayloadRejectsMalformedJSON(t *testing.T) {
	if _, err := transcribe.ParsePayload([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestWhisperXTranscribeParsesOutput(t *testing.T) {
	dir := t.TempDir()
	binary := filepath.Join(dir, "whisperx")
	if err := os.WriteFile(binary, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub binary: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	audio := filepath.Join(dir, "song.wav")
	if err := os.WriteFile(audio, []byte("riff"), 0o644); err != nil {
		t.Fatalf("write audio: %v", err)
	}

	engine := transcribe.NewWhisperX(transcribe.WhisperXConfig{Command: "whisperx", Model: "small"}, nil)
	engine.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		if name != "whisperx" {
			t.Fatalf("unexpected command: %q", name)
		}
		if args[0] != audio {
			t.Fatalf("expected audio path first, got %q", args[0])
		}
		outputDir := flagValue(args, "--output_dir")
		if outputDir == "" {
			t.Fatalf("missing --output_dir in %v", args)
		}
		if got := flagValue(args, "--output_format"); got != "json" {
			t.Fatalf("output format = %q", got)
		}
		if got := flagValue(args, "--compute_type"); got != "float32" {
			t.Fatalf("expected float32 compute type on cpu, got %q", got)
		}
		return os.WriteFile(filepath.Join(outputDir, "song.json"), []byte(samplePayload), 0o644)
	})

	result, err := engine.Transcribe(context.Background(), audio)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if len(result.Words()) != 5 {
		t.Fatalf("expected 5 words, got %d", len(result.Words()))
	}
}

func TestWhisperXUnavailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	engine := transcribe.NewWhisperX(transcribe.WhisperXConfig{Command: "definitely-not-whisperx"}, nil)
	err := engine.Available()
	if err == nil {
		t.Fatal("expected availability error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "definitely-not-whisperx") {
		t.Fatalf("error should name the binary: %v", err)
	}
}

func flagValue(args []string, flag string) string {
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
