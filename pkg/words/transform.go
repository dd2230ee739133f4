package words

import (
	"strings"

	"github.com/msto63/strlab/foundation/utils/stringx"
)

// Strategy selects how the transformed sentence is assembled
type Strategy int

const (
	// Concat joins words with immutable string concatenation
	Concat Strategy = iota

	// Builder joins words in a strings.Builder
	Builder
)

// String returns the flag name of the strategy
func (s Strategy) String() string {
	switch s {
	case Concat:
		return "concat"
	case Builder:
		return "builder"
	default:
		return "unknown"
	}
}

// ParseStrategy parses "concat" or "builder"
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "concat", "string":
		return Concat, true
	case "builder":
		return Builder, true
	default:
		return Builder, false
	}
}

const separator = " "

// TransformConcat rewrites every space-separated word of sentence with
// TransformWord. Empty words from repeated spaces are kept, so the result
// has the same number of words in the same positions.
func TransformConcat(sentence string, mode PunctuationMode) string {
	if stringx.IsBlank(sentence) {
		return sentence
	}

	result := ""
	for i, word := range strings.Split(sentence, separator) {
		if i > 0 {
			result += separator
		}
		result += TransformWord(word, mode)
	}
	return result
}

// TransformBuilder behaves like TransformConcat but assembles the result in
// a strings.Builder.
func TransformBuilder(sentence string, mode PunctuationMode) string {
	if stringx.IsBlank(sentence) {
		return sentence
	}

	var b strings.Builder
	b.Grow(len(sentence))
	for i, word := range strings.Split(sentence, separator) {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(TransformWord(word, mode))
	}
	return b.String()
}

// Transform is TransformBuilder
func Transform(sentence string, mode PunctuationMode) string {
	return TransformBuilder(sentence, mode)
}

// TransformWith dispatches to the variant selected by strategy
func TransformWith(strategy Strategy, sentence string, mode PunctuationMode) string {
	if strategy == Concat {
		return TransformConcat(sentence, mode)
	}
	return TransformBuilder(sentence, mode)
}
