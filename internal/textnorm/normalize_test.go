package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"strips punctuation", "hello, world!", "hello world"},
		{"collapses whitespace", "  hello \t world \n", "hello world"},
		{"keeps digits", "track 42", "track 42"},
		{"keeps apostrophes", "don't stop", "don't stop"},
		{"unifies curly apostrophe", "don’t stop", "don't stop"},
		{"unifies backtick", "don`t", "don't"},
		{"empty", "", ""},
		{"punctuation only", "!?...---", ""},
		{"nfkc composition", "été", "été"},
		{"fullwidth digits fold", "１２３", "123"},
		{"cyrillic preserved", "Ой у лузі", "ой у лузі"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"basic", "Hello, world!", []string{"hello", "world"}},
		{"empty", "   ", nil},
		{"mixed scripts", "Verse 1: Привіт", []string{"verse", "1", "привіт"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoinTokens(t *testing.T) {
	if got := JoinTokens([]string{"a", "b", "c"}); got != "a b c" {
		t.Errorf("JoinTokens = %q, want %q", got, "a b c")
	}
	if got := JoinTokens(nil); got != "" {
		t.Errorf("JoinTokens(nil) = %q, want empty", got)
	}
}
