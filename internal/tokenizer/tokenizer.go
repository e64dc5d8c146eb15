// Package tokenizer reduces raw text to a space-joined stream of word tokens.
// Only Han ideographs (U+4E00..U+9FA5), ASCII letters and ASCII digits
// survive; everything else acts as a separator. Latin/digit runs are taken
// as whole words while Han runs are handed to a Segmenter.
package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// DefaultMinTokenLen drops single-character tokens
const DefaultMinTokenLen = 2

// Segmenter splits a run of Han text into ordered words
type Segmenter interface {
	Segment(text string) []string
}

// Tokenizer cleans and segments text
type Tokenizer struct {
	segmenter Segmenter
	minLen    int
}

func NewTokenizer(segmenter Segmenter, minLen int) *Tokenizer {
	if minLen < 1 {
		minLen = DefaultMinTokenLen
	}
	return &Tokenizer{
		segmenter: segmenter,
		minLen:    minLen,
	}
}

// IsHan reports whether r is in the basic CJK ideograph block
func IsHan(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FA5
}

// IsLatinOrDigit reports whether r is an ASCII letter or digit
func IsLatinOrDigit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Allowed reports whether r may appear inside a token
func Allowed(r rune) bool {
	return IsHan(r) || IsLatinOrDigit(r)
}

// Clean replaces every rune outside the allow-list with a space
func Clean(text string) string {
	return strings.Map(func(r rune) rune {
		if Allowed(r) {
			return r
		}
		return ' '
	}, text)
}

// Tokens returns the tokens of text in order of appearance
func (t *Tokenizer) Tokens(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(Clean(text)) {
		for _, run := range splitRuns(field) {
			if !IsHan(firstRune(run)) {
				tokens = t.appendToken(tokens, run)
				continue
			}
			for _, word := range t.segmenter.Segment(run) {
				tokens = t.appendToken(tokens, strings.TrimSpace(word))
			}
		}
	}
	return tokens
}

// Normalize returns the space-joined token stream of text
func (t *Tokenizer) Normalize(text string) string {
	return strings.Join(t.Tokens(text), " ")
}

func (t *Tokenizer) appendToken(tokens []string, token string) []string {
	if utf8.RuneCountInString(token) < t.minLen {
		return tokens
	}
	return append(tokens, token)
}

// splitRuns cuts a cleaned field into alternating Han and Latin/digit runs
func splitRuns(field string) []string {
	var runs []string
	start := 0
	prevHan := false
	for i, r := range field {
		han := IsHan(r)
		if i > 0 && han != prevHan {
			runs = append(runs, field[start:i])
			start = i
		}
		prevHan = han
	}
	if start < len(field) {
		runs = append(runs, field[start:])
	}
	return runs
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
