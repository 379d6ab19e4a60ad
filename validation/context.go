package validation

import (
	"strings"

	"github.com/erraggy/oaskit/oaserrors"
	"github.com/erraggy/oaskit/openapi"
	"github.com/erraggy/oaskit/walker"
)

// Context is what a rule sees at one visited node.
type Context[S any] struct {
	// Document is the root of the validation run.
	Document *openapi.Document
	// Subject is the node being validated.
	Subject S
	// CodingPath locates Subject from the walk root.
	CodingPath walker.Path
}

// Error returns a validation error at the context's coding path.
func (c Context[S]) Error(reason string) Error {
	return Error{Reason: reason, CodingPath: c.CodingPath.Clone()}
}

// ErrorAt returns a validation error at the context's coding path extended
// by segs.
func (c Context[S]) ErrorAt(reason string, segs ...walker.Segment) Error {
	return Error{Reason: reason, CodingPath: c.CodingPath.Append(segs...)}
}

// derive returns a context with the same document and path and a new subject.
func derive[S, T any](c Context[S], subject T) Context[T] {
	return Context[T]{Document: c.Document, Subject: subject, CodingPath: c.CodingPath}
}

// Error is a single rule failure.
type Error struct {
	Reason     string
	CodingPath walker.Path
}

// Error renders "<reason> at path: <codingPath>".
func (e Error) Error() string {
	return e.Reason + " at path: " + e.CodingPath.String()
}

// Is matches oaserrors.ErrValidation.
func (e Error) Is(target error) bool {
	return target == oaserrors.ErrValidation
}

// ErrorCollection is the ordered list of failures from one validation run.
// It is returned as an error only when non-empty.
type ErrorCollection []Error

// Error renders one failure per line.
func (c ErrorCollection) Error() string {
	var b strings.Builder
	for i, e := range c {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Is matches oaserrors.ErrValidation.
func (c ErrorCollection) Is(target error) bool {
	return target == oaserrors.ErrValidation
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (c ErrorCollection) Unwrap() []error {
	errs := make([]error, len(c))
	for i, e := range c {
		errs[i] = e
	}
	return errs
}
