package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/erraggy/oaskit/internal/options"
	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/loader"
	"github.com/erraggy/oaskit/openapi"
	"github.com/erraggy/oaskit/parser"
)

// specInput represents the three ways an OAS document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an OAS document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// resolvedSpec is a parsed document and, when external references were
// followed, the state of that load.
type resolvedSpec struct {
	result   *parser.ParseResult
	external *openapi.ExternalLoader
	loader   *loader.Context
}

// resolve parses the document from whichever input was provided. With
// external set, external references are loaded into the document's
// components using up to concurrency parallel loads.
//
// Documents are parsed fresh on every call: external dereferencing rewrites
// the document in place, so a parsed document is never shared between calls.
func (s specInput) resolve(ctx context.Context, external bool, concurrency int) (*resolvedSpec, error) {
	if err := options.ValidateSingleInputSource("spec", "file, url, or content", s.File != "", s.URL != "", s.Content != ""); err != nil {
		return nil, err
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASKIT_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	opts := []parser.Option{
		parser.WithContext(ctx),
		parser.WithMaxFileSize(cfg.MaxFileSize),
	}
	switch {
	case s.File != "":
		opts = append(opts, parser.WithFilePath(s.File), parser.WithRebaseRefs(external))
	case s.URL != "":
		opts = append(opts, parser.WithFilePath(s.URL), parser.WithRebaseRefs(external), parser.WithHTTPClient(httpClient()))
	default:
		opts = append(opts, parser.WithReader(strings.NewReader(s.Content)))
	}
	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	spec := &resolvedSpec{result: result}
	if !external {
		return spec, nil
	}

	if spec.loader, err = s.newLoader(); err != nil {
		return nil, err
	}
	spec.external, err = result.Document.ExternallyDereference(ctx, spec.loader, openapi.WithConcurrency(concurrency))
	if err != nil {
		return nil, fmt.Errorf("loading external references: %w", err)
	}
	return spec, nil
}

// newLoader roots external loading at the input's own location. Inline
// content resolves relative references against the working directory.
func (s specInput) newLoader() (*loader.Context, error) {
	opts := []loader.Option{
		loader.WithHTTPClient(httpClient()),
		loader.WithAllowHTTP(cfg.LoadAllowHTTP),
		loader.WithMaxFileSize(cfg.MaxFileSize),
		loader.WithMaxCachedDocuments(cfg.LoadMaxDocuments),
	}
	switch {
	case s.File != "":
		opts = append(opts, loader.WithBaseDir(filepath.Dir(s.File)))
	case s.URL != "" && cfg.LoadAllowHTTP:
		opts = append(opts, loader.WithBaseURL(s.URL))
	}
	return loader.New(opts...)
}

// display renders a loaded document location for a tool result. Files are
// shown relative to the input file so that absolute paths are not leaked.
func (s specInput) display(location string) string {
	if s.File == "" || pathutil.IsURL(location) {
		return location
	}
	abs, err := filepath.Abs(filepath.Dir(s.File))
	if err != nil {
		return filepath.Base(location)
	}
	rel, err := filepath.Rel(abs, location)
	if err != nil {
		return filepath.Base(location)
	}
	return filepath.ToSlash(rel)
}
