// Package error provides structured error handling for strlab.
//
// Package: error
// Title: strlab Error Handling
// Description: Structured error type carrying a code, a severity, the operation
//              that failed and free-form details. Every failure raised by the
//              sequence builders, the benchmark harness, the configuration
//              loader and the CLI shell is an *Error so callers can branch on
//              codes instead of matching message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-10-18 v0.2.0: Reduced code set to the lab domain, added CodeInvalidArgument
//
// Usage:
//
//	import mdwerror "github.com/msto63/strlab/foundation/core/error"
//
//	err := mdwerror.New("n must be at least 1").
//		WithCode(mdwerror.CodeInvalidArgument).
//		WithOperation("sequence.AppendConcat").
//		WithDetail("n", 0)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//		// re-prompt the user
//	}
package error
