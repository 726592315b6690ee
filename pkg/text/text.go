// Package text turns raw input into the lowercase word tokens that feed the
// word-adjacency graph.
//
// Normalization is deliberately narrow: only ASCII letters survive. Digits,
// punctuation, apostrophes and non-ASCII letters all act as separators, so
// "don't" becomes the two tokens "don" and "t".
package text

import (
	"regexp"
	"strings"
)

var (
	lineBreaks = regexp.MustCompile(`[\r\n]+`)
	nonLetters = regexp.MustCompile(`[^a-zA-Z ]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Normalize returns raw with every non-letter replaced by a space, runs of
// whitespace collapsed to a single space, surrounding space trimmed, and all
// letters lowercased. The result matches `^([a-z]+( [a-z]+)*)?$`.
func Normalize(raw string) string {
	s := lineBreaks.ReplaceAllString(raw, " ")
	s = nonLetters.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// Tokenize normalizes raw and splits it into words. It returns nil when raw
// contains no ASCII letters.
func Tokenize(raw string) []string {
	s := Normalize(raw)
	if s == "" {
		return nil
	}
	return strings.Split(s, " ")
}
