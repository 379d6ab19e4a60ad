package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/loader"
	"github.com/erraggy/oaskit/openapi"
	"github.com/erraggy/oaskit/parser"
)

// loadConfig controls how a command reads its input document.
type loadConfig struct {
	external    bool
	allowHTTP   bool
	concurrency int
	logger      parser.Logger
}

// loadedSpec is a parsed document, with the external loading state when
// external references were followed.
type loadedSpec struct {
	result   *parser.ParseResult
	external *openapi.ExternalLoader
	loader   *loader.Context
}

// loadSpec parses specPath (a file, an http(s) URL or "-" for Stdin) and,
// when cfg.external is set, moves every external reference into the
// document's components.
func loadSpec(ctx context.Context, specPath string, cfg loadConfig) (*loadedSpec, error) {
	opts := []parser.Option{
		parser.WithContext(ctx),
		parser.WithLogger(cfg.logger),
	}
	if specPath == StdinFilePath {
		opts = append(opts, parser.WithReader(Stdin))
	} else {
		opts = append(opts, parser.WithFilePath(specPath), parser.WithRebaseRefs(cfg.external))
	}

	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FormatSpecPath(specPath), err)
	}
	spec := &loadedSpec{result: result}
	if !cfg.external {
		return spec, nil
	}

	spec.loader, err = newLoader(specPath, cfg)
	if err != nil {
		return nil, err
	}
	var extOpts []openapi.ExternalOption
	if cfg.concurrency > 0 {
		extOpts = append(extOpts, openapi.WithConcurrency(cfg.concurrency))
	}
	spec.external, err = result.Document.ExternallyDereference(ctx, spec.loader, extOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading external references: %w", err)
	}
	return spec, nil
}

// newLoader returns a loader rooted where specPath lives: its directory for
// a file, the URL itself for a URL and the working directory for Stdin.
func newLoader(specPath string, cfg loadConfig) (*loader.Context, error) {
	opts := []loader.Option{
		loader.WithLogger(cfg.logger),
		loader.WithAllowHTTP(cfg.allowHTTP),
	}
	switch {
	case specPath == StdinFilePath:
	case pathutil.IsURL(specPath):
		opts = append(opts, loader.WithBaseURL(specPath))
	default:
		opts = append(opts, loader.WithBaseDir(filepath.Dir(specPath)))
	}
	return loader.New(opts...)
}

// documentStats summarizes a document.
type documentStats struct {
	Paths      int `json:"paths" yaml:"paths"`
	Operations int `json:"operations" yaml:"operations"`
	Components int `json:"components" yaml:"components"`
}

func statsOf(doc *openapi.Document) documentStats {
	stats := documentStats{Paths: len(doc.Paths), Components: doc.Components.Len()}
	for _, item := range doc.Paths {
		if item != nil && item.Value != nil {
			stats.Operations += len(item.Value.Operations())
		}
	}
	return stats
}
