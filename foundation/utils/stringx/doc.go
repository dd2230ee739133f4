// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the Unicode-aware string helpers
//              used across the string lab.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2025-10-18 v0.3.0: Reduced to the helpers the lab uses

// Package stringx provides Unicode-aware string helpers.
//
// All functions operate on code points rather than bytes, so multi-byte
// UTF-8 input is never split in the middle of a character:
//
//	stringx.Reverse("héllo")               // "olléh"
//	stringx.Truncate("hello world", 8, "...") // "hello..."
//	stringx.IsBlank("  \t")               // true
//
// NormalizeNFC composes decomposed input (a base letter followed by
// combining marks) before it is reversed or case-flipped.
package stringx
