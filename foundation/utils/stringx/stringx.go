// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the string helpers shared by the lab packages:
//              blank checks, rune-safe reversal and truncation, padding,
//              line splitting and optional Unicode normalization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-10-18 v0.2.0: Trimmed to the helpers used by the lab, added
//                      NormalizeNFC and RuneLen

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains a non-whitespace character.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// RuneLen returns the number of code points in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Reverse reverses a string by code point. Combining sequences are not
// kept together; normalize with NormalizeNFC first when that matters.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Truncate shortens s to at most maxLen runes, ending in ellipsis when
// anything was cut. A non-positive maxLen returns the empty string.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}

	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// PadLeft pads s on the left with pad up to width runes.
func PadLeft(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(string(pad), width-n) + s
}

// PadRight pads s on the right with pad up to width runes.
func PadRight(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(string(pad), width-n)
}

// SplitLines splits s into lines, accepting \n, \r\n and \r endings.
// A trailing line ending does not produce an empty last line.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// FirstNonBlank returns the first non-blank argument, or "" if all are blank.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// NormalizeNFC returns s in Unicode normalization form C, so that a base
// letter and its combining marks become a single code point where possible.
func NormalizeNFC(s string) string {
	return norm.NFC.String(s)
}
