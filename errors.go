// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import "fmt"

// TagError occurs while compiling a struct type, before any environment
// variable is read. It reports an unsupported env tag option or an invalid
// combination of options on a single field.
type TagError struct {
	// Field is the Go name of the offending struct field.
	Field string

	Reason string
}

// Error implements the error interface.
func (e TagError) Error() string {
	return fmt.Sprintf("invalid env tag on field %s: %s", e.Field, e.Reason)
}

// MissingError occurs when a required variable is not set and no default
// applies. For fields with file indirection enabled, it means both the
// variable and its _FILE counterpart were unset.
type MissingError struct {
	// Name is the fully resolved variable name, prefix included.
	Name string
}

// Error implements the error interface.
func (e MissingError) Error() string {
	return fmt.Sprintf("environment variable %s is required but not set", e.Name)
}

// FileReadError occurs when a _FILE indirection variable is set but the file
// it points at cannot be read. It is always fatal and never downgraded to
// a missing value.
type FileReadError struct {
	// Name is the indirection variable, e.g. "SECRET_FILE".
	Name string

	// Path is the value of the indirection variable.
	Path string

	Cause error
}

// Error implements the error interface.
func (e FileReadError) Error() string {
	return fmt.Sprintf("failed to read file %s for environment variable %s: %s", e.Path, e.Name, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e FileReadError) Unwrap() error {
	return e.Cause
}

// ParseError occurs when a variable (or its indirection file) held a value
// which could not be converted to the field's type.
type ParseError struct {
	// Name is the fully resolved variable name, prefix included.
	Name string

	// Type is the Go type the value was parsed as.
	Type string

	Cause error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("failed to parse environment variable %s as %s: %s", e.Name, e.Type, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ParseError) Unwrap() error {
	return e.Cause
}
