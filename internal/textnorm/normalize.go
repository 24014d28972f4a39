package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// apostropheReplacer unifies typographic apostrophe variants before token
// filtering so contractions survive normalization intact.
var apostropheReplacer = strings.NewReplacer(
	"’", "'",
	"ʼ", "'",
	"`", "'",
)

// Normalize returns a canonical form of text suitable for comparison:
// NFKC-composed, lowercased, with every character that is not a letter,
// digit, or apostrophe replaced by a space and whitespace runs collapsed.
func Normalize(text string) string {
	text = norm.NFKC.String(text)
	text = apostropheReplacer.Replace(text)
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits text into normalized tokens, discarding empties.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}

// JoinTokens joins tokens into a single comparison string.
func JoinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}
