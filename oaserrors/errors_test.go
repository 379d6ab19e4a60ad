package oaserrors

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/file.yaml at line 42, column 10: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is ErrParse", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ParseError{Path: "api.yaml"})
		if !errors.Is(err, ErrParse) {
			t.Error("expected errors.Is(err, ErrParse)")
		}
		if errors.Is(err, ErrReference) {
			t.Error("ParseError should not match ErrReference")
		}
	})
}

func TestReferenceError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ReferenceError
		message  string
		matches  []error
		excludes []error
	}{
		{
			name:     "circular",
			err:      &ReferenceError{Ref: "#/components/schemas/A", IsCircular: true},
			message:  "circular reference: #/components/schemas/A",
			matches:  []error{ErrReference, ErrCircularReference},
			excludes: []error{ErrRemoteReference, ErrMissingReference},
		},
		{
			name:     "remote",
			err:      &ReferenceError{Ref: "other.yaml#/Pet", IsRemote: true},
			message:  "cannot look up remote reference: other.yaml#/Pet",
			matches:  []error{ErrReference, ErrRemoteReference},
			excludes: []error{ErrUnsafeReference},
		},
		{
			name:     "unsafe",
			err:      &ReferenceError{Ref: "#bad", IsUnsafe: true},
			message:  "cannot look up unsafe reference: #bad",
			matches:  []error{ErrReference, ErrUnsafeReference},
			excludes: []error{ErrCircularReference},
		},
		{
			name:     "missing",
			err:      &ReferenceError{Ref: "#/components/schemas/Pet", Name: "Pet", IsMissing: true},
			message:  `reference missing on lookup: #/components/schemas/Pet (no component named "Pet")`,
			matches:  []error{ErrReference, ErrMissingReference},
			excludes: []error{ErrPathTraversal},
		},
		{
			name:     "path traversal",
			err:      &ReferenceError{Ref: "../../etc/passwd", IsPathTraversal: true},
			message:  "path traversal detected: ../../etc/passwd",
			matches:  []error{ErrReference, ErrPathTraversal},
			excludes: []error{ErrMissingReference},
		},
		{
			name:     "generic with cause",
			err:      &ReferenceError{Ref: "x.yaml", Cause: os.ErrNotExist},
			message:  "reference error: x.yaml: file does not exist",
			matches:  []error{ErrReference, os.ErrNotExist},
			excludes: []error{ErrCircularReference},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.message {
				t.Errorf("Error() = %q, want %q", got, tt.message)
			}
			for _, target := range tt.matches {
				if !errors.Is(tt.err, target) {
					t.Errorf("expected match for %v", target)
				}
			}
			for _, target := range tt.excludes {
				if errors.Is(tt.err, target) {
					t.Errorf("unexpected match for %v", target)
				}
			}
		})
	}
}

func TestComponentKeyError(t *testing.T) {
	err := fmt.Errorf("store: %w", &ComponentKeyError{Key: "bad key!"})
	if !errors.Is(err, ErrInvalidComponentKey) {
		t.Error("expected errors.Is(err, ErrInvalidComponentKey)")
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("expected errors.Is(err, ErrConfig)")
	}

	var keyErr *ComponentKeyError
	if !errors.As(err, &keyErr) || keyErr.Key != "bad key!" {
		t.Errorf("errors.As failed: %v", keyErr)
	}
}

func TestLoadError(t *testing.T) {
	err := &LoadError{URI: "file:///tmp/pet.yaml", Kind: "schemas", Cause: os.ErrNotExist}

	if got := err.Error(); got != "load error for file:///tmp/pet.yaml (schemas): file does not exist" {
		t.Errorf("unexpected error message: %s", got)
	}
	if !errors.Is(err, ErrLoad) || !errors.Is(err, os.ErrNotExist) {
		t.Error("expected LoadError to match ErrLoad and its cause")
	}
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "file_size", Limit: 10, Actual: 20}
	if got := err.Error(); got != "resource limit exceeded: file_size (limit: 10, actual: 20)" {
		t.Errorf("unexpected error message: %s", got)
	}
	if !errors.Is(err, ErrResourceLimit) {
		t.Error("expected errors.Is(err, ErrResourceLimit)")
	}
	if err.Unwrap() != nil {
		t.Error("Unwrap should return nil")
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "concurrency", Value: -1, Message: "must be positive"}
	if got := err.Error(); got != "configuration error for concurrency (value: -1): must be positive" {
		t.Errorf("unexpected error message: %s", got)
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("expected errors.Is(err, ErrConfig)")
	}
}
