// Package openapi models OpenAPI 3.x documents with typed references.
//
// Every place a document may hold either a "$ref" or an inline value is a
// [RefOr]. A [Reference] is parameterized by the component type it points
// at, so a reference to a Schema can only be resolved against the schemas
// table of [Components].
//
// # Resolving references
//
// [LookupOnce] returns the table entry a reference names; [Lookup] follows
// chains of references until it reaches a value. [Dereference] and the
// Dereferenced methods build reference-free views of a value, failing with
// [oaserrors.ErrCircularReference] when a reference chain revisits itself:
//
//	doc, err := openapi.DecodeDocument(m)
//	if err != nil {
//		return err
//	}
//	resolved, err := doc.Dereferenced()
//	if errors.Is(err, oaserrors.ErrCircularReference) {
//		// recursive schemas cannot be fully expanded
//	}
//
// # External references
//
// [Document.ExternallyDereference] moves every externally referenced value
// into the document's own components and rewrites the references to point at
// the new slots. Fetching, decoding and naming are delegated to a
// [LoaderContext]; the loader package provides one backed by the file system
// and HTTP.
//
// # Walking
//
// Every model type implements walker.Node, so a document can be traversed
// with walker.Walk. References and inline values are visited at the same
// coding path.
package openapi
