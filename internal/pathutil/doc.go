// Package pathutil provides path building and JSON Pointer helpers shared by
// the walker and the reference model.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// coding paths incrementally without allocating intermediate strings. Paths
// are rendered the way validation errors report them:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.PushField("paths")
//	path.PushKey("/pets")
//	path.PushField("parameters")
//	path.PushIndex(0)
//	path.String() // ".paths['/pets'].parameters[0]"
//
// # JSON Pointer tokens
//
// [EscapeToken] and [UnescapeToken] implement the RFC 6901 "~0"/"~1" escaping
// used by "$ref" fragments.
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths for the CLI.
package pathutil
