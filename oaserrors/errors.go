package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrCircularReference indicates a reference chain revisited itself.
	ErrCircularReference = errors.New("circular reference")

	// ErrRemoteReference indicates an external reference was looked up
	// in a components table instead of being loaded first.
	ErrRemoteReference = errors.New("cannot look up remote reference")

	// ErrUnsafeReference indicates an internal reference that is not
	// addressable through the components table.
	ErrUnsafeReference = errors.New("cannot look up unsafe reference")

	// ErrMissingReference indicates an internal reference names an empty slot.
	ErrMissingReference = errors.New("reference missing on lookup")

	// ErrPathTraversal indicates a path traversal attempt was blocked.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrInvalidComponentKey indicates a malformed component slot name.
	ErrInvalidComponentKey = errors.New("invalid component key")

	// ErrLoad indicates an external document could not be loaded.
	ErrLoad = errors.New("load error")

	// ErrValidation indicates a document failed one or more validation rules.
	ErrValidation = errors.New("validation error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse an OpenAPI document.
// This includes YAML/JSON deserialization errors and structural issues.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a failure to resolve a $ref.
// At most one of the Is* flags is set; a ReferenceError with no flags set
// is a generic resolution failure.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Name is the component slot the reference designates, when known
	Name string
	// IsCircular is true if the reference chain revisited Ref
	IsCircular bool
	// IsRemote is true if Ref is external and was never loaded
	IsRemote bool
	// IsUnsafe is true if Ref is internal but not table-addressable
	IsUnsafe bool
	// IsMissing is true if the components table has no entry for Name
	IsMissing bool
	// IsPathTraversal is true if this error is due to a path traversal attempt
	IsPathTraversal bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	var msg string
	switch {
	case e.IsCircular:
		msg = "circular reference"
	case e.IsRemote:
		msg = "cannot look up remote reference"
	case e.IsUnsafe:
		msg = "cannot look up unsafe reference"
	case e.IsMissing:
		msg = "reference missing on lookup"
	case e.IsPathTraversal:
		msg = "path traversal detected"
	default:
		msg = "reference error"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.IsMissing && e.Name != "" {
		msg += fmt.Sprintf(" (no component named %q)", e.Name)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also the flag-specific sentinel when the
// corresponding flag is set.
func (e *ReferenceError) Is(target error) bool {
	switch target {
	case ErrReference:
		return true
	case ErrCircularReference:
		return e.IsCircular
	case ErrRemoteReference:
		return e.IsRemote
	case ErrUnsafeReference:
		return e.IsUnsafe
	case ErrMissingReference:
		return e.IsMissing
	case ErrPathTraversal:
		return e.IsPathTraversal
	}
	return false
}

// ComponentKeyError reports a component slot name that does not match
// the grammar ^[A-Za-z0-9._-]+$.
type ComponentKeyError struct {
	// Key is the rejected name
	Key string
}

// Error returns a human-readable error message.
func (e *ComponentKeyError) Error() string {
	return fmt.Sprintf("invalid component key %q: must match ^[A-Za-z0-9._-]+$", e.Key)
}

// Is reports whether target matches this error type.
func (e *ComponentKeyError) Is(target error) bool {
	return target == ErrInvalidComponentKey || target == ErrConfig
}

// LoadError represents a failure to fetch or decode an external document.
type LoadError struct {
	// URI is the location that was being loaded
	URI string
	// Kind is the component kind the document was loaded as (may be empty)
	Kind string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *LoadError) Error() string {
	msg := "load error"
	if e.URI != "" {
		msg += " for " + e.URI
	}
	if e.Kind != "" {
		msg += " (" + e.Kind + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when loading or walking exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "cached_documents", "file_size", "walk_depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
