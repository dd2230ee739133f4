// ============================================================================
// strlab - String Manipulation Lab
// ============================================================================
//
// Package:     parens
// Description: Balanced parenthesis check with failure diagnostics
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

// Package parens checks that every "(" in a text is closed by a later ")".
// Other characters, including other bracket kinds, are ignored.
package parens

// Result describes a single validation scan
type Result struct {
	// Balanced is true when no ")" came before its "(" and none is left open
	Balanced bool

	// Depth is the open count at the end of the scan, or -1 at an early stop
	Depth int

	// FailedAt is the rune index of the first unmatched ")", or -1
	FailedAt int
}

// Validate scans text once from left to right. The scan stops at the first
// ")" that has no open "(".
func Validate(text string) Result {
	depth := 0
	index := 0
	for _, r := range text {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return Result{Balanced: false, Depth: depth, FailedAt: index}
			}
		}
		index++
	}

	return Result{Balanced: depth == 0, Depth: depth, FailedAt: -1}
}

// IsBalanced reports whether the parentheses in text are balanced
func IsBalanced(text string) bool {
	return Validate(text).Balanced
}
