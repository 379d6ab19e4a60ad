// Package oaserrors provides structured error types for the oaskit library.
//
// Import path: github.com/erraggy/oaskit/oaserrors
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrRemoteReference]: Matches [ReferenceError] with IsRemote=true
//   - [ErrUnsafeReference]: Matches [ReferenceError] with IsUnsafe=true
//   - [ErrMissingReference]: Matches [ReferenceError] with IsMissing=true
//   - [ErrPathTraversal]: Matches [ReferenceError] with IsPathTraversal=true
//   - [ErrInvalidComponentKey]: Matches any [ComponentKeyError]
//   - [ErrLoad]: Matches any [LoadError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError] and [ComponentKeyError]
//
// [ErrValidation] has no struct type in this package; it is matched by the
// error collection returned from the validation package.
//
// # Error Chaining
//
// Error types with a Cause field support chaining via Unwrap():
//
//	var loadErr *oaserrors.LoadError
//	if errors.As(err, &loadErr) {
//	    if errors.Is(loadErr.Cause, os.ErrNotExist) {
//	        // The referenced file doesn't exist
//	    }
//	}
package oaserrors
