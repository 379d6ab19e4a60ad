// Package oaskit works with the references inside OpenAPI 3.x documents:
// it stores shared components, resolves references with cycle detection,
// pulls external documents into the root document and validates the result
// with composable rules.
//
// The module is organized as a handful of packages:
//
//   - [github.com/erraggy/oaskit/openapi] is the document model. Component
//     tables, typed references, lookup and dereferencing live here, as does
//     ExternallyDereference.
//   - [github.com/erraggy/oaskit/parser] reads YAML or JSON from a file, a
//     URL, a reader or bytes into an openapi.Document.
//   - [github.com/erraggy/oaskit/loader] is the default loader for external
//     references, with path confinement, HTTP opt-in and a document cache.
//   - [github.com/erraggy/oaskit/walker] visits every node of a document
//     with its coding path.
//   - [github.com/erraggy/oaskit/validation] runs type-directed rules over
//     the walk and collects every failure.
//   - [github.com/erraggy/oaskit/oaserrors] holds the error types shared by
//     the other packages.
//
// A typical pipeline parses a document, loads its external references and
// validates it:
//
//	res, err := parser.ParseWithOptions(
//	    parser.WithFilePath("api/openapi.yaml"),
//	    parser.WithRebaseRefs(true),
//	)
//	if err != nil {
//	    return err
//	}
//	lc, err := loader.New(loader.WithBaseDir("api"))
//	if err != nil {
//	    return err
//	}
//	if _, err := res.Document.ExternallyDereference(ctx, lc); err != nil {
//	    return err
//	}
//	if err := validation.Validate(res.Document); err != nil {
//	    var failures validation.ErrorCollection
//	    if errors.As(err, &failures) {
//	        for _, f := range failures {
//	            fmt.Println(f)
//	        }
//	    }
//	}
//
// The oaskit command wraps the same pipeline; see cmd/oaskit.
package oaskit
