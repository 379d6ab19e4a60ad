// Package walker provides exhaustive, type-agnostic traversal of document trees.
//
// Any value can be walked. Values that implement [Node] describe their own
// children by calling back into the [Walker] from Descend; every other value
// (strings, numbers, vendor-extension payloads) is a leaf. The walker visits
// every node depth-first in pre-order and reports it together with its
// coding path: the sequence of field, key and index steps from the root.
//
// # Quick Start
//
//	err := walker.Walk(doc, func(node any, path walker.Path) walker.Action {
//	    if s, ok := node.(*openapi.Server); ok {
//	        fmt.Println(path, s.URL)
//	    }
//	    return walker.Continue
//	})
//
// # Flow Control
//
// The visit function returns an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// # Implementing Node
//
// A Descend method reports each child through the walker:
//
//	func (p *PathItem) Descend(w *walker.Walker) {
//	    w.Field("summary", p.Summary)
//	    walker.Slice(w, "servers", p.Servers)
//	    walker.Map(w, "responses", p.Responses)
//	}
//
// [Walker.Field], [Walker.Key] and [Walker.Index] push one path segment and
// visit the child; [Walker.Inline] visits a child at the current path, which
// is how variant wrappers stay transparent in coding paths. Nil pointers are
// never visited.
//
// # Coding Paths
//
// [Path] renders the way validation errors report locations: fields as
// ".name", map keys as "['key']", and indices as "[n]". The root path is the
// empty string.
package walker
