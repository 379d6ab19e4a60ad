// Package validation runs declarative, type-scoped rules over an OpenAPI
// document and collects every violation with its coding path.
//
// A rule is a [Validation] for one subject type S. The engine walks the
// document depth-first and, at every node whose dynamic type is S, evaluates
// the rule's predicate and, when it holds, its check. Rules never search the
// document for their targets; the walk finds them.
//
//	unique := validation.That("Server has a description",
//		func(ctx validation.Context[*openapi.Server]) bool {
//			return ctx.Subject.Description != ""
//		})
//
//	v := validation.Blank().Adding(unique)
//	if err := v.Validate(doc); err != nil {
//		var errs validation.ErrorCollection
//		if errors.As(err, &errs) {
//			for _, e := range errs {
//				fmt.Println(e)
//			}
//		}
//	}
//
// Rule failures are data: a failing rule never stops the walk, and a single
// call reports every failure in discovery order. Record subjects are pointer
// types (*openapi.Server); scalar subjects are values (string, int, bool).
// Optional scalars such as Schema.MaxLength are visited as their value.
//
// Combinators build rules from smaller pieces: [All] and [AnyOf] combine
// predicates, [Take] derives a predicate from a sub-value, [Nested] and
// [Unwrap] apply rules to derived values, and [Lookup], [UnwrapAndLookup]
// and [Resolve] apply rules to the target of a reference.
package validation
