package parser

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/erraggy/oaskit/internal/options"
	"github.com/erraggy/oaskit/oaserrors"
)

// Option configures a ParseWithOptions call.
type Option func(*parseConfig) error

type parseConfig struct {
	// exactly one input source is set
	filePath *string
	reader   io.Reader
	bytes    []byte

	ctx         context.Context
	httpClient  *http.Client
	logger      Logger
	maxFileSize int64
	sourceName  *string
	rebaseRefs  bool
}

// ParseWithOptions parses a document using functional options.
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.yaml"),
//	    parser.WithLogger(parser.NewSlogAdapter(slog.Default())),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		HTTPClient:  cfg.httpClient,
		Logger:      cfg.logger,
		MaxFileSize: cfg.maxFileSize,
		RebaseRefs:  cfg.rebaseRefs,
	}

	var result *ParseResult
	switch {
	case cfg.filePath != nil:
		result, err = p.Parse(cfg.ctx, *cfg.filePath)
	case cfg.reader != nil:
		result, err = p.ParseReader(cfg.reader)
	default:
		result, err = p.ParseBytes(cfg.bytes)
	}
	if err != nil {
		return nil, err
	}
	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{ctx: context.Background()}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("input", "WithFilePath, WithReader, or WithBytes",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath reads the document from a file path or http(s) URL.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader reads the document from r.
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes decodes data.
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithContext sets the context used for URL fetches.
func WithContext(ctx context.Context) Option {
	return func(cfg *parseConfig) error {
		if ctx != nil {
			cfg.ctx = ctx
		}
		return nil
	}
}

// WithHTTPClient sets the client used for URL inputs. A nil client keeps
// the default, which has a 30 second timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *parseConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxFileSize bounds the input size in bytes. Zero means the 10MiB
// default; negative sizes are rejected.
func WithMaxFileSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return &oaserrors.ConfigError{Option: "WithMaxFileSize", Value: size, Message: "cannot be negative"}
		}
		cfg.maxFileSize = size
		return nil
	}
}

// WithSourceName overrides ParseResult.SourcePath, which is otherwise
// "ParseBytes.yaml" and the like for in-memory input.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		if name == "" {
			return &oaserrors.ConfigError{Option: "WithSourceName", Message: "source name cannot be empty"}
		}
		cfg.sourceName = &name
		return nil
	}
}

// WithRebaseRefs rewrites the external references of a file or URL input
// into absolute locations, so that the same external document is always
// named the same way no matter which document referenced it.
// Default: false
func WithRebaseRefs(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.rebaseRefs = enabled
		return nil
	}
}
