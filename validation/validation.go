package validation

import (
	"reflect"

	"github.com/erraggy/oaskit/openapi"
	"github.com/erraggy/oaskit/walker"
)

// Predicate decides whether a rule applies, or whether a condition holds.
type Predicate[S any] func(Context[S]) bool

// Validation is a rule for subject type S.
//
// A rule whose Predicate returns false for a context is skipped for that
// node. A nil Predicate always applies.
type Validation[S any] struct {
	Description string
	Predicate   Predicate[S]
	Check       func(Context[S]) []Error
}

// That returns a rule that fails with "Failed to satisfy: <description>"
// whenever check returns false.
func That[S any](description string, check Predicate[S]) Validation[S] {
	return Validation[S]{
		Description: description,
		Check: func(ctx Context[S]) []Error {
			if check(ctx) {
				return nil
			}
			return []Error{ctx.Error("Failed to satisfy: " + description)}
		},
	}
}

// Custom returns a rule whose check reports its own errors.
func Custom[S any](check func(Context[S]) []Error) Validation[S] {
	return Validation[S]{Check: check}
}

// When restricts v to contexts where pred holds, in addition to any
// predicate v already has.
func (v Validation[S]) When(pred Predicate[S]) Validation[S] {
	if v.Predicate == nil {
		v.Predicate = pred
		return v
	}
	v.Predicate = All(v.Predicate, pred)
	return v
}

// Apply evaluates v against ctx.
func (v Validation[S]) Apply(ctx Context[S]) []Error {
	if v.Check == nil {
		return nil
	}
	if v.Predicate != nil && !v.Predicate(ctx) {
		return nil
	}
	return v.Check(ctx)
}

// Subject returns the type the rule applies to.
func (v Validation[S]) Subject() reflect.Type {
	return reflect.TypeFor[S]()
}

// Evaluate applies v to node when node's dynamic type is S, and returns
// nothing otherwise.
func (v Validation[S]) Evaluate(doc *openapi.Document, node any, path walker.Path) []Error {
	subject, ok := node.(S)
	if !ok {
		return nil
	}
	return v.Apply(Context[S]{Document: doc, Subject: subject, CodingPath: path.Clone()})
}

// Rule is a type-erased Validation.
type Rule interface {
	// Subject returns the node type the rule applies to. Interface types
	// match every node that implements them.
	Subject() reflect.Type
	// Evaluate applies the rule to node, which may be of any type.
	Evaluate(doc *openapi.Document, node any, path walker.Path) []Error
}

var _ Rule = Validation[any]{}
