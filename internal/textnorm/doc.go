// Package textnorm canonicalizes lyric and transcript text for comparison.
//
// Normalization applies NFKC composition, lowercases, unifies apostrophe
// variants, replaces every character that is not a letter, digit, or
// apostrophe with a space, and collapses whitespace. Tokenization splits the
// normalized form on whitespace and drops empty tokens.
//
// The package also provides the similarity ratio used by the aligner: a
// longest-common-subsequence ratio over two strings in the range [0, 1].
// All functions are pure and total over arbitrary Unicode input.
package textnorm
