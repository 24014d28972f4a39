package align

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func word(text string, start, end float64) Word {
	return Word{Text: text, Start: start, End: end}
}

func TestAlignCleanMatch(t *testing.T) {
	lines := ParseLines("Hello world\nGoodbye now")
	words := []Word{
		word("hello", 0.0, 0.4),
		word("world", 0.4, 0.9),
		word("goodbye", 1.2, 1.7),
		word("now", 1.7, 2.0),
	}

	result := New(DefaultOptions()).Align(lines, words, 0, false)

	if len(result.Cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(result.Cues))
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
	if result.MatchedCount != 2 || result.FallbackCount != 0 {
		t.Fatalf("expected 2 matched / 0 fallback, got %d/%d", result.MatchedCount, result.FallbackCount)
	}

	first := result.Cues[0]
	if !first.Matched || first.Start != 0.0 || first.End != 0.9 {
		t.Errorf("cue 1 = %+v, want matched [0.0, 0.9]", first)
	}
	if first.Text != "Hello world" {
		t.Errorf("cue 1 text = %q, want verbatim input line", first.Text)
	}
	second := result.Cues[1]
	if !second.Matched || second.Start != 1.2 || second.End != 2.0 {
		t.Errorf("cue 2 = %+v, want matched [1.2, 2.0]", second)
	}
}

func TestAlignCueCountMatchesLines(t *testing.T) {
	text := "first line\nsecond line\n\nthird line\nfourth line\nfifth line"
	lines := ParseLines(text)
	if len(lines) != 5 {
		t.Fatalf("expected 5 parsed lines, got %d", len(lines))
	}

	words := []Word{
		word("first", 0, 0.3), word("line", 0.3, 0.6),
		word("second", 1.0, 1.3), word("line", 1.3, 1.6),
	}
	result := New(DefaultOptions()).Align(lines, words, 0, false)

	if len(result.Cues) != 5 {
		t.Fatalf("expected 5 cues, got %d", len(result.Cues))
	}
	for i, cue := range result.Cues {
		if cue.Index != i+1 {
			t.Errorf("cue %d has index %d, want %d", i, cue.Index, i+1)
		}
		if cue.Text != lines[i].Text {
			t.Errorf("cue %d text = %q, want %q", i, cue.Text, lines[i].Text)
		}
		if cue.End <= cue.Start {
			t.Errorf("cue %d has non-positive duration: [%v, %v]", i, cue.Start, cue.End)
		}
	}
}

func TestAlignMonotonicAfterReconcile(t *testing.T) {
	lines := ParseLines("alpha beta\ngamma delta\nepsilon zeta")
	words := []Word{
		word("alpha", 0, 0.5), word("beta", 0.5, 1.0),
		word("gamma", 1.0, 1.5), word("delta", 1.5, 2.0),
		word("epsilon", 2.0, 2.5), word("zeta", 2.5, 3.0),
	}
	result := New(DefaultOptions()).Align(lines, words, 0, false)

	for i := 1; i < len(result.Cues); i++ {
		prev, cur := result.Cues[i-1], result.Cues[i]
		if cur.Start < prev.End && len(result.Warnings) == 0 {
			t.Errorf("cues %d and %d overlap without warning: prev end %v, start %v", i, i+1, prev.End, cur.Start)
		}
	}
}

func TestAlignFallbackWhenNoWindowMatches(t *testing.T) {
	lines := ParseLines("completely different text here")
	words := []Word{
		word("zzz", 0, 0.3),
		word("qqq", 0.3, 0.6),
	}
	opts := DefaultOptions()
	result := New(opts).Align(lines, words, 0, false)

	if result.FallbackCount != 1 || result.MatchedCount != 0 {
		t.Fatalf("expected fallback placement, got matched=%d fallback=%d", result.MatchedCount, result.FallbackCount)
	}
	cue := result.Cues[0]
	if cue.Matched {
		t.Fatal("fallback cue must not be marked matched")
	}
	if got := cue.End - cue.Start; math.Abs(got-opts.MinDuration) > 1e-9 {
		t.Errorf("fallback cue duration = %v, want minDuration %v", got, opts.MinDuration)
	}
}

func TestAlignFallbackRatioWarning(t *testing.T) {
	// One matchable line out of three: ratio 2/3 > 0.3 triggers the advisory.
	lines := ParseLines("hello world\nnope nope nope\nanother unmatched line")
	words := []Word{
		word("hello", 0, 0.4),
		word("world", 0.4, 0.9),
	}
	result := New(DefaultOptions()).Align(lines, words, 0, false)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "heuristically") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected fallback ratio warning, got %v", result.Warnings)
	}
}

func TestAlignAudioDurationClamp(t *testing.T) {
	lines := ParseLines("hello world\ngoodbye now")
	words := []Word{
		word("hello", 0.0, 0.4),
		word("world", 0.4, 0.9),
		word("goodbye", 1.2, 1.7),
		word("now", 1.7, 2.0),
	}
	result := New(DefaultOptions()).Align(lines, words, 1.5, false)

	for i, cue := range result.Cues {
		if cue.End > 1.5 {
			t.Errorf("cue %d end %v exceeds audio duration bound", i+1, cue.End)
		}
		if cue.Start > cue.End {
			t.Errorf("cue %d start %v after end %v", i+1, cue.Start, cue.End)
		}
	}
}

func TestAlignDeterministic(t *testing.T) {
	lines := ParseLines("hello world\n\ngoodbye now\nsee you soon")
	words := []Word{
		word("hello", 0.0, 0.4),
		word("world", 0.4, 0.9),
		word("goodbye", 1.2, 1.7),
		word("now", 1.7, 2.0),
	}

	a := New(DefaultOptions())
	first := a.Align(lines, words, 10, false)
	second := a.Align(lines, words, 10, false)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different results")
	}
}

func TestAlignEmptyLines(t *testing.T) {
	result := New(DefaultOptions()).Align(nil, nil, 0, false)
	if len(result.Cues) != 0 || len(result.Warnings) != 0 {
		t.Errorf("empty input should yield empty result, got %+v", result)
	}
}

func TestAlignEarlyExitPrefersForwardOrder(t *testing.T) {
	// Two identical phrases in the stream: the first line takes the first
	// occurrence, the cursor never rewinds, so the second line takes the
	// later one.
	lines := ParseLines("sing along\nsing along")
	words := []Word{
		word("sing", 0.0, 0.3), word("along", 0.3, 0.7),
		word("sing", 2.0, 2.3), word("along", 2.3, 2.7),
	}
	result := New(DefaultOptions()).Align(lines, words, 0, false)

	if result.Cues[0].Start != 0.0 {
		t.Errorf("cue 1 start = %v, want 0.0", result.Cues[0].Start)
	}
	if result.Cues[1].Start != 2.0 {
		t.Errorf("cue 2 start = %v, want 2.0 (forward-only cursor)", result.Cues[1].Start)
	}
}

func TestParseLines(t *testing.T) {
	lines := ParseLines("  one  \n\n\ntwo\nthree\n")
	want := []Line{
		{Index: 1, Text: "one", Block: 0},
		{Index: 2, Text: "two", Block: 1},
		{Index: 3, Text: "three", Block: 1},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("ParseLines = %+v, want %+v", lines, want)
	}
}
