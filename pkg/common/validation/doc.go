// Package validation provides common validation utilities for configuration
// parameters across llmgate.
//
// Validators return a *errors.ValidationError so constructors report bad
// input the same way everywhere.
package validation
