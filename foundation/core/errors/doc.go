// Package errors is the standard way strlab modules create errors.
//
// Package: errors
// Title: Standard Error Constructors for strlab
// Description: Wraps the core error package with a fluent builder and a small
//              set of constructors so every module reports failures with the
//              same shape: a code, a severity, and "module"/"operation"
//              details that the logger and the CLI can read back.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2025-10-18 v0.2.0: Module table reduced to sequence, bench, config, menu and cli
//
// Use the constructors instead of fmt.Errorf or errors.New inside modules:
//
//	func AppendConcat(n int) (string, error) {
//		if n < 1 {
//			return "", errors.InvalidArgument(errors.ModuleSequence, "AppendConcat", "n", n, "n >= 1")
//		}
//		...
//	}
//
// Callers inspect errors with mdwerror.HasCode and GetErrorModule.
package errors
