// ============================================================================
// strlab - String Manipulation Lab
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants for all strlab components
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Sequence = "1.0.0"
	Bench    = "1.0.0"
	Words    = "1.0.0"
	Parens   = "1.0.0"
	Menu     = "1.1.0"
	TUI      = "1.0.0"
)

// Build information, set via -ldflags at release time
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "sequence":
		return Sequence
	case "bench":
		return Bench
	case "words":
		return Words
	case "parens":
		return Parens
	case "menu":
		return Menu
	case "tui":
		return TUI
	default:
		return Platform
	}
}

// Components lists the component names known to ComponentVersion
func Components() []string {
	return []string{"sequence", "bench", "words", "parens", "menu", "tui"}
}
