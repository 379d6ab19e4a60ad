package validation

import (
	"errors"

	"github.com/erraggy/oaskit/oaserrors"
	"github.com/erraggy/oaskit/openapi"
)

// All holds when every predicate holds. All() holds.
func All[S any](preds ...Predicate[S]) Predicate[S] {
	return func(ctx Context[S]) bool {
		for _, p := range preds {
			if !p(ctx) {
				return false
			}
		}
		return true
	}
}

// AnyOf holds when at least one predicate holds. AnyOf() does not hold.
func AnyOf[S any](preds ...Predicate[S]) Predicate[S] {
	return func(ctx Context[S]) bool {
		for _, p := range preds {
			if p(ctx) {
				return true
			}
		}
		return false
	}
}

// Take evaluates pred against a value derived from the subject.
//
//	hasGet := validation.Take(func(p *openapi.PathItem) *openapi.Operation { return p.Get },
//		func(ctx validation.Context[*openapi.Operation]) bool { return ctx.Subject != nil })
func Take[S, T any](field func(S) T, pred Predicate[T]) Predicate[S] {
	return func(ctx Context[S]) bool {
		return pred(derive(ctx, field(ctx.Subject)))
	}
}

// Nested applies rules to a value derived from the subject, at the
// subject's coding path.
func Nested[S, T any](field func(S) T, rules ...Validation[T]) Validation[S] {
	return Custom(func(ctx Context[S]) []Error {
		return applyAll(derive(ctx, field(ctx.Subject)), rules)
	})
}

// Unwrap is like Nested for an optional derived value: the rules run only
// when field returns non-nil.
func Unwrap[S, T any](field func(S) *T, rules ...Validation[*T]) Validation[S] {
	return Custom(func(ctx Context[S]) []Error {
		v := field(ctx.Subject)
		if v == nil {
			return nil
		}
		return applyAll(derive(ctx, v), rules)
	})
}

// Lookup applies rules to the component a derived reference points at.
// A reference that cannot be resolved is reported as this rule's error.
func Lookup[S any, T openapi.Component](field func(S) openapi.Reference[T], rules ...Validation[*T]) Validation[S] {
	return Custom(func(ctx Context[S]) []Error {
		ref := field(ctx.Subject)
		target, err := lookupTarget(ctx.Document, ref)
		if err != nil {
			return []Error{ctx.Error(lookupReason(ref, err))}
		}
		return applyAll(derive(ctx, target), rules)
	})
}

// UnwrapAndLookup is like Lookup for an optional reference: the rules run
// only when field returns non-nil.
func UnwrapAndLookup[S any, T openapi.Component](field func(S) *openapi.Reference[T], rules ...Validation[*T]) Validation[S] {
	return Custom(func(ctx Context[S]) []Error {
		ref := field(ctx.Subject)
		if ref == nil {
			return nil
		}
		target, err := lookupTarget(ctx.Document, *ref)
		if err != nil {
			return []Error{ctx.Error(lookupReason(*ref, err))}
		}
		return applyAll(derive(ctx, target), rules)
	})
}

// Resolve applies rules to the value of a derived RefOr, looking it up when
// it is a reference. A nil RefOr is skipped.
func Resolve[S any, T openapi.Component](field func(S) *openapi.RefOr[T], rules ...Validation[*T]) Validation[S] {
	return Custom(func(ctx Context[S]) []Error {
		r := field(ctx.Subject)
		switch {
		case r == nil:
			return nil
		case r.Ref == nil:
			if r.Value == nil {
				return nil
			}
			return applyAll(derive(ctx, r.Value), rules)
		}
		target, err := lookupTarget(ctx.Document, *r.Ref)
		if err != nil {
			return []Error{ctx.Error(lookupReason(*r.Ref, err))}
		}
		return applyAll(derive(ctx, target), rules)
	})
}

func applyAll[T any](ctx Context[T], rules []Validation[T]) []Error {
	var errs []Error
	for _, r := range rules {
		errs = append(errs, r.Apply(ctx)...)
	}
	return errs
}

// lookupTarget resolves ref against doc's components, falling back to a
// document walk for path references that do not name a component.
func lookupTarget[T openapi.Component](doc *openapi.Document, ref openapi.Reference[T]) (*T, error) {
	if doc == nil {
		return nil, &oaserrors.ReferenceError{Ref: ref.String(), IsMissing: true, Message: "no document"}
	}
	target, err := openapi.Lookup(&doc.Components, ref)
	if err != nil && ref.Form() == openapi.RefPath && errors.Is(err, oaserrors.ErrUnsafeReference) {
		return openapi.ResolvePath(doc, ref)
	}
	return target, err
}

func lookupReason[T openapi.Component](ref openapi.Reference[T], err error) string {
	return "Failed to resolve " + ref.String() + ": " + err.Error()
}
