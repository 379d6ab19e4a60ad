package loader

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/oaserrors"
	"github.com/erraggy/oaskit/openapi"
	"github.com/erraggy/oaskit/parser"
)

// DefaultMaxCachedDocuments is the document cache bound when none is set.
const DefaultMaxCachedDocuments = 100

// Context fetches external documents for openapi.Document.ExternallyDereference.
// It is safe for concurrent use.
type Context struct {
	baseDir     string
	baseURL     string
	client      *http.Client
	logger      parser.Logger
	maxFileSize int64
	maxCached   int
	cacheTTL    time.Duration
	naming      KeyNaming
	allowHTTP   bool

	fetches singleflight.Group

	mu   sync.Mutex
	docs map[string]*cacheEntry
}

var _ openapi.LoaderContext = (*Context)(nil)

type cacheEntry struct {
	doc       map[string]any
	fetchTime time.Time
	remote    bool
}

// New returns a Context. Relative references resolve against the working
// directory unless WithBaseDir or WithBaseURL says otherwise.
func New(opts ...Option) (*Context, error) {
	l := &Context{
		baseDir:   ".",
		maxCached: DefaultMaxCachedDocuments,
		naming:    PascalCaseNaming,
		docs:      make(map[string]*cacheEntry),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(l.baseDir)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "WithBaseDir", Value: l.baseDir, Cause: err}
	}
	l.baseDir = abs
	if l.logger == nil {
		l.logger = parser.NopLogger{}
	}
	return l, nil
}

// ComponentKey proposes a slot name for uri using the naming policy. A name
// already taken in c gets the smallest numeric suffix that frees it.
func (l *Context) ComponentKey(kind openapi.ComponentKind, uri string, c *openapi.Components) (string, error) {
	base := l.naming(kind, uri)
	if !openapi.IsComponentKey(base) {
		return "", &oaserrors.ComponentKeyError{Key: base}
	}
	name := base
	for i := 2; c != nil && c.HasKey(kind, openapi.MustComponentKey(name)); i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	return name, nil
}

// maxRefHops bounds how many reference-only values Load follows.
const maxRefHops = 100

// Load fetches the document uri names, follows its fragment and decodes the
// value found there into into. A value that is itself only a reference is
// followed to its target.
func (l *Context) Load(ctx context.Context, uri string, into any) error {
	seen := make(map[string]bool)
	for {
		if seen[uri] {
			return &oaserrors.ReferenceError{Ref: uri, IsCircular: true}
		}
		if len(seen) == maxRefHops {
			return &oaserrors.ResourceLimitError{ResourceType: "ref_depth", Limit: maxRefHops}
		}
		seen[uri] = true

		m, err := l.value(ctx, uri)
		if err != nil {
			return err
		}
		if next, ok := m["$ref"].(string); ok {
			l.logger.Debug("following reference", "from", uri, "to", next)
			uri = next
			continue
		}
		return openapi.Decode(m, into)
	}
}

func (l *Context) value(ctx context.Context, uri string) (map[string]any, error) {
	docURI, fragment, _ := strings.Cut(uri, "#")
	location, err := l.locate(docURI)
	if err != nil {
		return nil, err
	}
	doc, err := l.document(ctx, location)
	if err != nil {
		return nil, err
	}
	node, err := navigate(doc, fragment)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", uri, err)
	}
	m, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("loader: %s: value is %T, not an object", uri, node)
	}
	return m, nil
}

// Documents returns the locations currently cached, in no particular order.
func (l *Context) Documents() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.docs))
	for loc := range l.docs {
		out = append(out, loc)
	}
	return out
}

// locate turns a reference's document part into an absolute file path or URL.
func (l *Context) locate(docURI string) (string, error) {
	if docURI == "" {
		return "", &oaserrors.ReferenceError{Ref: docURI, IsUnsafe: true, Message: "reference has no document part"}
	}
	if l.baseURL != "" && !pathutil.IsURL(docURI) && !filepath.IsAbs(docURI) {
		docURI = pathutil.ResolveRef(l.baseURL, docURI)
	}
	if pathutil.IsURL(docURI) {
		if !l.allowHTTP {
			return "", &oaserrors.ReferenceError{Ref: docURI, IsRemote: true, Message: "HTTP references are disabled (use WithAllowHTTP)"}
		}
		return docURI, nil
	}

	path := docURI
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.baseDir, path)
	}
	path = filepath.Clean(path)
	rel, err := filepath.Rel(l.baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &oaserrors.ReferenceError{Ref: docURI, IsPathTraversal: true}
	}
	return path, nil
}

// document returns the parsed, rebased document at location, fetching it at
// most once per cache lifetime even under concurrent callers.
func (l *Context) document(ctx context.Context, location string) (map[string]any, error) {
	if doc, ok := l.cached(location); ok {
		l.logger.Debug("document cache hit", "location", location)
		return doc, nil
	}
	v, err, shared := l.fetches.Do(location, func() (any, error) {
		if doc, ok := l.cached(location); ok {
			return doc, nil
		}
		return l.fetch(ctx, location)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		l.logger.Debug("document fetch shared", "location", location)
	}
	return v.(map[string]any), nil
}

func (l *Context) cached(location string) (map[string]any, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.docs[location]
	if !ok {
		return nil, false
	}
	if entry.remote && l.cacheTTL != 0 {
		if l.cacheTTL < 0 || time.Since(entry.fetchTime) >= l.cacheTTL {
			delete(l.docs, location)
			return nil, false
		}
	}
	return entry.doc, true
}

func (l *Context) fetch(ctx context.Context, location string) (map[string]any, error) {
	l.mu.Lock()
	full := len(l.docs) >= l.maxCached
	l.mu.Unlock()
	if full {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "cached_documents",
			Limit:        int64(l.maxCached),
			Message:      "too many external documents",
		}
	}

	var (
		data   []byte
		err    error
		remote = pathutil.IsURL(location)
		start  = time.Now()
	)
	if remote {
		data, _, err = parser.FetchURL(ctx, l.client, location, l.maxFileSize)
	} else {
		data, err = parser.ReadFile(location, l.maxFileSize)
	}
	if err != nil {
		return nil, err
	}
	doc, err := parser.Unmarshal(data)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: location, Cause: err}
	}
	openapi.RebaseReferences(doc, location)
	l.logger.Debug("fetched document",
		"location", location,
		"size", parser.FormatBytes(int64(len(data))),
		"elapsed", time.Since(start),
	)

	if !remote || l.cacheTTL >= 0 {
		l.mu.Lock()
		l.docs[location] = &cacheEntry{doc: doc, fetchTime: time.Now(), remote: remote}
		l.mu.Unlock()
	}
	return doc, nil
}
