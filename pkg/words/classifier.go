// ============================================================================
// strlab - String Manipulation Lab
// ============================================================================
//
// Package:     words
// Description: Word classification and per-word transformations
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

// Package words classifies single words as palindromes and rewrites
// sentences word by word: palindromes get their letter case flipped, every
// other word is reversed.
package words

import (
	"strings"
	"unicode"

	"github.com/msto63/strlab/foundation/utils/stringx"
)

// PunctuationMode selects which runes take part in the palindrome check
type PunctuationMode int

const (
	// Strict compares every rune
	Strict PunctuationMode = iota

	// IgnorePunctuation skips runes that are neither letters nor digits
	IgnorePunctuation
)

// String returns the config name of the mode
func (m PunctuationMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case IgnorePunctuation:
		return "ignore"
	default:
		return "unknown"
	}
}

// ParsePunctuationMode parses "strict" or "ignore"
func ParsePunctuationMode(s string) (PunctuationMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, true
	case "ignore", "ignore-punctuation":
		return IgnorePunctuation, true
	default:
		return Strict, false
	}
}

// IsPalindrome reports whether word reads the same in both directions,
// ignoring letter case. The empty word is a palindrome. In
// IgnorePunctuation mode a word without any letter or digit is one too.
func IsPalindrome(word string, mode PunctuationMode) bool {
	runes := []rune(word)
	left, right := 0, len(runes)-1

	for left < right {
		if mode == IgnorePunctuation {
			for left < right && !isAlphanumeric(runes[left]) {
				left++
			}
			for right > left && !isAlphanumeric(runes[right]) {
				right--
			}
		}

		if unicode.ToLower(runes[left]) != unicode.ToLower(runes[right]) {
			return false
		}
		left++
		right--
	}

	return true
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// FlipCase swaps upper and lower case letters. Titlecase letters like
// U+01C5 and all non-letters are kept, so FlipCase is its own inverse.
func FlipCase(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		switch {
		case !unicode.IsLetter(r), unicode.IsTitle(r):
		case unicode.IsUpper(r):
			r = unicode.ToLower(r)
		default:
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ReverseWord reverses the runes of word
func ReverseWord(word string) string {
	return stringx.Reverse(word)
}

// TransformWord maps a palindrome to FlipCase and anything else to
// ReverseWord. The empty word maps to itself.
func TransformWord(word string, mode PunctuationMode) string {
	if word == "" {
		return word
	}
	if IsPalindrome(word, mode) {
		return FlipCase(word)
	}
	return ReverseWord(word)
}
