package openapi

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/erraggy/oaskit/internal/httputil"
	"github.com/erraggy/oaskit/oaserrors"
)

// LoaderContext is the capability the external loader needs from its caller:
// a deterministic naming policy for new component slots, and a way to fetch
// and decode the document a URI designates.
type LoaderContext interface {
	// ComponentKey proposes the slot name for the value at uri. It must be
	// deterministic for a given (kind, uri) and components state, and must
	// not propose a name already present in c.
	ComponentKey(kind ComponentKind, uri string, c *Components) (string, error)

	// Load fetches the value at uri and decodes it into into, which is a
	// pointer to one of the component types. Internal references inside the
	// loaded value must already be rewritten as external references relative
	// to uri.
	Load(ctx context.Context, uri string, into any) error
}

type slotID struct {
	kind ComponentKind
	uri  string
}

// slot is one reserved (kind, uri) target. dependents are the slots whose
// stored values hold a named reference to this one; they are rolled back
// with it.
type slot struct {
	id         slotID
	key        ComponentKey
	drop       func()
	failed     error
	dependents []*slot
}

type slotCtxKey struct{}

// loadingSlot returns the slot whose value is being loaded on ctx.
func loadingSlot(ctx context.Context) *slot {
	s, _ := ctx.Value(slotCtxKey{}).(*slot)
	return s
}

// ExternalLoader pulls externally referenced values into a Components table.
//
// It owns the identity cache from (kind, uri) to slot name, so loading the
// same target twice yields the same reference. Components is only mutated
// while the loader's lock is held; a slot is reserved before its value is
// loaded, so re-entrant loads of the same target (cyclic files) and
// concurrent callers receive the reserved name without loading again.
type ExternalLoader struct {
	lc         LoaderContext
	components *Components

	mu    sync.Mutex
	slots map[slotID]*slot
}

// NewExternalLoader returns a loader that stores into c.
func NewExternalLoader(lc LoaderContext, c *Components) *ExternalLoader {
	return &ExternalLoader{
		lc:         lc,
		components: c,
		slots:      make(map[slotID]*slot),
	}
}

// Components returns the table the loader stores into.
func (l *ExternalLoader) Components() *Components {
	return l.components
}

// Slots returns the number of (kind, uri) targets the loader has stored.
func (l *ExternalLoader) Slots() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

// externalizer is implemented by every pointer-to-component type.
type externalizer[T Component] interface {
	*T
	externallyDereference(ctx context.Context, l *ExternalLoader) error
}

// Store loads the T at uri, recursively stores everything it references
// externally, inserts it into the loader's components and returns a named
// reference to the new slot.
//
// A failed load removes the reservation for this target together with every
// slot whose value refers to it, directly or through other slots. Slots that
// do not refer to the failed target remain valid.
func Store[T Component, PT externalizer[T]](ctx context.Context, l *ExternalLoader, uri string) (Reference[T], error) {
	kind := KindOf[T]()
	id := slotID{kind: kind, uri: uri}
	table := TableOf[T](l.components)
	parent := loadingSlot(ctx)

	l.mu.Lock()
	if s, ok := l.slots[id]; ok {
		s.addDependent(parent)
		l.mu.Unlock()
		return NamedRef[T](s.key), nil
	}
	proposed, err := l.lc.ComponentKey(kind, uri, l.components)
	if err != nil {
		l.mu.Unlock()
		return Reference[T]{}, &oaserrors.LoadError{URI: uri, Kind: string(kind), Cause: err}
	}
	key, err := NewComponentKey(proposed)
	if err != nil {
		l.mu.Unlock()
		return Reference[T]{}, err
	}
	if table.Has(key) {
		l.mu.Unlock()
		return Reference[T]{}, &oaserrors.ConfigError{
			Option:  "ComponentKey",
			Value:   proposed,
			Message: fmt.Sprintf("slot already used in %s", kind),
		}
	}
	s := &slot{id: id, key: key, drop: func() { table.Delete(key) }}
	s.addDependent(parent)
	l.slots[id] = s
	table.Set(key, &RefOr[T]{})
	l.mu.Unlock()

	loadCtx := context.WithValue(ctx, slotCtxKey{}, s)
	value := new(T)
	if err := l.lc.Load(loadCtx, uri, value); err != nil {
		err = &oaserrors.LoadError{URI: uri, Kind: string(kind), Cause: err}
		l.rollback(s, err)
		return Reference[T]{}, err
	}
	if err := PT(value).externallyDereference(loadCtx, l); err != nil {
		l.rollback(s, err)
		return Reference[T]{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if s.failed != nil {
		// A slot this value refers to failed while it was loading.
		return Reference[T]{}, s.failed
	}
	table.SetValue(key, value)
	return NamedRef[T](key), nil
}

func (s *slot) addDependent(d *slot) {
	if d == nil || d == s {
		return
	}
	s.dependents = append(s.dependents, d)
}

// rollback removes s and, transitively, every slot that refers to it.
func (l *ExternalLoader) rollback(s *slot, cause error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.drop(s, cause)
}

func (l *ExternalLoader) drop(s *slot, cause error) {
	if s.failed != nil {
		return
	}
	s.failed = cause
	if l.slots[s.id] == s {
		delete(l.slots, s.id)
		s.drop()
	}
	for _, d := range s.dependents {
		l.drop(d, cause)
	}
}

// externalRefOr rewrites an external reference in r into a named one, or
// recurses into an inline value.
func externalRefOr[T Component, PT externalizer[T]](ctx context.Context, l *ExternalLoader, r *RefOr[T]) error {
	switch {
	case r == nil:
		return nil
	case r.Ref != nil:
		if !r.Ref.IsExternal() {
			return nil
		}
		ref, err := Store[T, PT](ctx, l, r.Ref.URI())
		if err != nil {
			return err
		}
		r.Ref = &ref
		return nil
	case r.Value != nil:
		return PT(r.Value).externallyDereference(ctx, l)
	}
	return nil
}

func externalSlice[T Component, PT externalizer[T]](ctx context.Context, l *ExternalLoader, s []*RefOr[T]) error {
	for _, r := range s {
		if err := externalRefOr[T, PT](ctx, l, r); err != nil {
			return err
		}
	}
	return nil
}

func externalMap[T Component, PT externalizer[T]](ctx context.Context, l *ExternalLoader, m map[string]*RefOr[T]) error {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := externalRefOr[T, PT](ctx, l, m[k]); err != nil {
			return err
		}
	}
	return nil
}

func externalContent(ctx context.Context, l *ExternalLoader, content map[string]*MediaType) error {
	for _, k := range slices.Sorted(maps.Keys(content)) {
		if mt := content[k]; mt != nil {
			if err := mt.externallyDereference(ctx, l); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *PathItem) externallyDereference(ctx context.Context, l *ExternalLoader) error {
	for _, method := range httputil.Methods {
		op := p.Operation(method)
		if op == nil {
			continue
		}
		if err := op.externallyDereference(ctx, l); err != nil {
			return err
		}
	}
	return externalSlice(ctx, l, p.Parameters)
}

func (o *Operation) externallyDereference(ctx context.Context, l *ExternalLoader) error {
	if err := externalSlice(ctx, l, o.Parameters); err != nil {
		return err
	}
	if err := externalRefOr(ctx, l, o.RequestBody); err != nil {
		return err
	}
	if err := externalMap(ctx, l, o.Responses); err != nil {
		return err
	}
	return externalMap(ctx, l, o.Callbacks)
}

func (cb *Callback) externallyDereference(ctx context.Context, l *ExternalLoader) error {
	return externalMap(ctx, l, cb.Expressions)
}

func (p *Parameter) externallyDereference(ctx context.Context, l *ExternalLoader) error {
	if err := externalRefOr(ctx, l, p.Schema); err != nil {
		return err
	}
	if err := externalMap(ctx, l, p.Examples); err != nil {
		return err
	}
	return externalContent(ctx, l, p.Content)
}

func (h *Header) externallyDereference(ctx context.Context, l *ExternalLoader) error {
	if err := externalRefOr(ctx, l, h.Schema); err != nil {
		return err
	}
	if err := externalMap(ctx, l, h.Examples); err != nil {
		return err
	}
	return externalContent(ctx, l, h.Content)
}

func (r *RequestBody) externallyDereference(ctx context.Context, l *ExternalLoader) error {
	return externalContent(ctx, l, r.Content)
}

func (r *Response) externallyDereference(ctx context.Context, l *ExternalLoader) error {
	if err := externalMap(ctx, l, r.Headers); err != nil {
		return err
	}
	if err := externalContent(ctx, l, r.Content); err != nil {
		return err
	}
	return externalMap(ctx, l, r.Links)
}

func (m *MediaType) externallyDereference(ctx context.Context, l *ExternalLoader) error {
	if err := externalRefOr(ctx, l, m.Schema); err != nil {
		return err
	}
	return externalMap(ctx, l, m.Examples)
}

func (s *Schema) externallyDereference(ctx context.Context, l *ExternalLoader) error {
	for _, r := range []*RefOr[Schema]{s.Items, s.AdditionalProperties, s.Not} {
		if err := externalRefOr(ctx, l, r); err != nil {
			return err
		}
	}
	for _, list := range [][]*RefOr[Schema]{s.PrefixItems, s.AllOf, s.AnyOf, s.OneOf} {
		if err := externalSlice(ctx, l, list); err != nil {
			return err
		}
	}
	if err := externalMap(ctx, l, s.Properties); err != nil {
		return err
	}
	return externalMap(ctx, l, s.PatternProperties)
}

func (*Example) externallyDereference(context.Context, *ExternalLoader) error { return nil }

func (*Link) externallyDereference(context.Context, *ExternalLoader) error { return nil }

func (*SecurityScheme) externallyDereference(context.Context, *ExternalLoader) error { return nil }

type externalConfig struct {
	concurrency int
}

// ExternalOption configures Document.ExternallyDereference.
type ExternalOption func(*externalConfig) error

// WithConcurrency sets how many top-level subtrees are processed at once.
// The default is 1.
func WithConcurrency(n int) ExternalOption {
	return func(cfg *externalConfig) error {
		if n < 1 {
			return &oaserrors.ConfigError{Option: "concurrency", Value: n, Message: "must be at least 1"}
		}
		cfg.concurrency = n
		return nil
	}
}

// ExternallyDereference rewrites every external reference reachable from
// the document into a named reference, loading each target through lc into
// d.Components. The document is modified in place.
//
// Each path item, webhook and pre-existing component entry is processed as
// an independent task; with WithConcurrency above 1 tasks run in parallel.
// The first failure cancels the remaining tasks and is returned.
func (d *Document) ExternallyDereference(ctx context.Context, lc LoaderContext, opts ...ExternalOption) (*ExternalLoader, error) {
	cfg := &externalConfig{concurrency: 1}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	l := NewExternalLoader(lc, &d.Components)
	tasks := d.externalTasks(l)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for _, task := range tasks {
		g.Go(func() error {
			return task(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		return l, err
	}
	return l, nil
}

type externalTask func(ctx context.Context) error

// externalTasks snapshots the document's own entries before any loading
// starts; entries added by Store are already fully dereferenced.
func (d *Document) externalTasks(l *ExternalLoader) []externalTask {
	var tasks []externalTask
	addMap := func(m map[string]*RefOr[PathItem]) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			r := m[k]
			tasks = append(tasks, func(ctx context.Context) error {
				return externalRefOr(ctx, l, r)
			})
		}
	}
	addMap(d.Paths)
	addMap(d.Webhooks)

	c := &d.Components
	tasks = appendTableTasks(tasks, l, &c.Schemas)
	tasks = appendTableTasks(tasks, l, &c.Responses)
	tasks = appendTableTasks(tasks, l, &c.Parameters)
	tasks = appendTableTasks(tasks, l, &c.Examples)
	tasks = appendTableTasks(tasks, l, &c.RequestBodies)
	tasks = appendTableTasks(tasks, l, &c.Headers)
	tasks = appendTableTasks(tasks, l, &c.SecuritySchemes)
	tasks = appendTableTasks(tasks, l, &c.Links)
	tasks = appendTableTasks(tasks, l, &c.Callbacks)
	tasks = appendTableTasks(tasks, l, &c.PathItems)
	return tasks
}

func appendTableTasks[T Component, PT externalizer[T]](tasks []externalTask, l *ExternalLoader, table *ComponentMap[T]) []externalTask {
	for _, key := range table.Keys() {
		entry, _ := table.Get(key)
		tasks = append(tasks, func(ctx context.Context) error {
			return externalRefOr[T, PT](ctx, l, entry)
		})
	}
	return tasks
}
