package loader

import (
	"net/http"
	"time"

	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/oaserrors"
	"github.com/erraggy/oaskit/parser"
)

// Option configures a Context.
type Option func(*Context) error

// WithBaseDir sets the directory relative file references resolve against.
// Files outside it are refused as path traversal.
func WithBaseDir(dir string) Option {
	return func(l *Context) error {
		if dir == "" {
			return &oaserrors.ConfigError{Option: "WithBaseDir", Message: "directory cannot be empty"}
		}
		l.baseDir = dir
		return nil
	}
}

// WithBaseURL makes relative references resolve against an http(s) URL.
// It implies WithAllowHTTP.
func WithBaseURL(base string) Option {
	return func(l *Context) error {
		if !pathutil.IsURL(base) {
			return &oaserrors.ConfigError{Option: "WithBaseURL", Value: base, Message: "must be an http or https URL"}
		}
		l.baseURL = base
		l.allowHTTP = true
		return nil
	}
}

// WithAllowHTTP enables fetching http(s) references. It is off by default.
func WithAllowHTTP(enabled bool) Option {
	return func(l *Context) error {
		l.allowHTTP = enabled
		return nil
	}
}

// WithHTTPClient sets the client used for http(s) references.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Context) error {
		l.client = client
		return nil
	}
}

// WithLogger sets the logger for fetch and cache events.
func WithLogger(logger parser.Logger) Option {
	return func(l *Context) error {
		l.logger = logger
		return nil
	}
}

// WithMaxFileSize bounds each fetched document. Zero keeps the parser default.
func WithMaxFileSize(size int64) Option {
	return func(l *Context) error {
		if size < 0 {
			return &oaserrors.ConfigError{Option: "WithMaxFileSize", Value: size, Message: "cannot be negative"}
		}
		l.maxFileSize = size
		return nil
	}
}

// WithMaxCachedDocuments bounds how many distinct documents one Context
// fetches. Zero keeps DefaultMaxCachedDocuments.
func WithMaxCachedDocuments(count int) Option {
	return func(l *Context) error {
		if count < 0 {
			return &oaserrors.ConfigError{Option: "WithMaxCachedDocuments", Value: count, Message: "cannot be negative"}
		}
		if count > 0 {
			l.maxCached = count
		}
		return nil
	}
}

// WithCacheTTL sets how long fetched http(s) documents are reused. Zero
// caches them for the Context's lifetime and a negative TTL disables the
// cache. Files are always cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(l *Context) error {
		l.cacheTTL = ttl
		return nil
	}
}

// WithKeyNaming replaces the policy that names new component slots.
func WithKeyNaming(naming KeyNaming) Option {
	return func(l *Context) error {
		if naming == nil {
			return &oaserrors.ConfigError{Option: "WithKeyNaming", Message: "naming policy cannot be nil"}
		}
		l.naming = naming
		return nil
	}
}
