package parser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/oaserrors"
	"github.com/erraggy/oaskit/openapi"
)

// ParseResult is a decoded document plus metadata about where it came from.
//
// References in Document are left exactly as written; use
// [openapi.Document.Dereferenced] or [openapi.Document.ExternallyDereference]
// to resolve them.
type ParseResult struct {
	// SourcePath is the file path or URL the document was read from, or
	// "ParseBytes.<ext>" / "ParseReader.<ext>" for in-memory input.
	SourcePath string
	// SourceFormat is JSON or YAML.
	SourceFormat SourceFormat
	// Version is the document's openapi field.
	Version string
	// Data is the raw decoded map the Document was built from.
	Data map[string]any
	// Document is the typed document.
	Document *openapi.Document
	// LoadTime is how long reading the source took.
	LoadTime time.Duration
	// SourceSize is the size of the source in bytes.
	SourceSize int64
}

// Parser reads OpenAPI 3.x documents.
type Parser struct {
	// HTTPClient fetches URL inputs. Nil means DefaultHTTPClient().
	HTTPClient *http.Client
	// Logger receives load and decode events. Nil disables logging.
	Logger Logger
	// MaxFileSize bounds file, URL and reader inputs. Zero means DefaultMaxFileSize.
	MaxFileSize int64
	// RebaseRefs makes external references of file and URL inputs absolute.
	RebaseRefs bool
}

// New returns a Parser with default settings.
func New() *Parser {
	return &Parser{}
}

func (p *Parser) log() Logger {
	return OrNop(p.Logger)
}

// Parse reads a file path or an http(s) URL.
func (p *Parser) Parse(ctx context.Context, specPath string) (*ParseResult, error) {
	var (
		data   []byte
		format SourceFormat
		err    error
	)
	start := time.Now()
	if pathutil.IsURL(specPath) {
		var contentType string
		data, contentType, err = FetchURL(ctx, p.HTTPClient, specPath, p.MaxFileSize)
		format = detectFormatFromURL(specPath, contentType)
	} else {
		data, err = ReadFile(specPath, p.MaxFileSize)
		format = detectFormatFromPath(specPath)
	}
	loadTime := time.Since(start)
	if err != nil {
		return nil, err
	}
	p.log().Debug("loaded document", "source", specPath, "size", FormatBytes(int64(len(data))), "elapsed", loadTime)

	base := ""
	if p.RebaseRefs {
		base, err = AbsoluteLocation(specPath)
		if err != nil {
			return nil, err
		}
	}
	res, err := p.parseBytes(data, specPath, base)
	if err != nil {
		return nil, err
	}
	res.SourcePath = specPath
	res.LoadTime = loadTime
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader reads a document from r.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()
	data, err := readLimited(r, p.MaxFileSize)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	loadTime := time.Since(start)
	res, err := p.parseBytes(data, "ParseReader", "")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes decodes data.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data, "ParseBytes", "")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

// parseBytes decodes data. A non-empty base rebases external references.
func (p *Parser) parseBytes(data []byte, source, base string) (*ParseResult, error) {
	raw, err := Unmarshal(data)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "failed to parse YAML/JSON", Cause: err}
	}
	if base != "" {
		openapi.RebaseExternalReferences(raw, base)
	}
	version, _ := raw["openapi"].(string)
	if err := CheckVersion(version); err != nil {
		return nil, &oaserrors.ParseError{Path: source, Cause: err}
	}

	doc, err := openapi.DecodeDocument(raw)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "invalid document", Cause: err}
	}
	p.log().Debug("decoded document",
		"source", source,
		"version", version,
		"paths", len(doc.Paths),
		"components", doc.Components.Len(),
	)

	format := detectFormatFromContent(data)
	if format == SourceFormatUnknown {
		format = SourceFormatYAML
	}
	return &ParseResult{
		SourceFormat: format,
		Version:      version,
		Data:         raw,
		Document:     doc,
		SourceSize:   int64(len(data)),
	}, nil
}

// AbsoluteLocation returns specPath unchanged for URLs and as an absolute,
// cleaned path otherwise.
func AbsoluteLocation(specPath string) (string, error) {
	if pathutil.IsURL(specPath) {
		return specPath, nil
	}
	abs, err := filepath.Abs(specPath)
	if err != nil {
		return "", fmt.Errorf("parser: failed to resolve %s: %w", specPath, err)
	}
	return abs, nil
}

// Unmarshal decodes YAML or JSON into a map whose nested maps all have
// string keys. Non-string keys, such as unquoted status codes, are
// rendered with fmt.
func Unmarshal(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("document is empty or not a mapping")
	}
	for k, v := range raw {
		raw[k] = normalize(v)
	}
	return raw, nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	default:
		return v
	}
}
