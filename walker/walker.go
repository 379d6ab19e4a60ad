package walker

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/erraggy/oaskit/oaserrors"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Node is implemented by every value that has children.
// Descend reports each child to w, in document order.
type Node interface {
	Descend(w *Walker)
}

// VisitFunc is called once per visited node. The path is only valid for the
// duration of the call; use [Path.Clone] to retain it.
type VisitFunc func(node any, path Path) Action

const defaultMaxDepth = 512

// Walker carries the traversal state handed to [Node.Descend].
type Walker struct {
	visit    VisitFunc
	maxDepth int

	path      []Segment
	ancestors map[ancestorKey]struct{}
	stopped   bool
	truncated string
}

type ancestorKey struct {
	typ reflect.Type
	ptr uintptr
}

// Option configures a walk.
type Option func(*Walker)

// WithMaxDepth sets the maximum coding path length. Nodes deeper than this
// are not visited and Walk reports a ResourceLimitError after finishing.
// If depth is not positive, it is silently ignored and the default is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// Walk visits root and, recursively, every node reachable from it.
//
// A pointer that is already being visited higher up the same branch is not
// visited again, so cyclic in-memory graphs terminate.
func Walk(root any, visit VisitFunc, opts ...Option) error {
	if visit == nil {
		return &oaserrors.ConfigError{Option: "visit", Message: "visit function is required"}
	}
	w := &Walker{
		visit:     visit,
		maxDepth:  defaultMaxDepth,
		path:      make([]Segment, 0, 16),
		ancestors: make(map[ancestorKey]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.node(root)

	if w.truncated != "" {
		return &oaserrors.ResourceLimitError{
			ResourceType: "walk_depth",
			Limit:        int64(w.maxDepth),
			Message:      "children below " + w.truncated + " were not visited",
		}
	}
	return nil
}

// Path returns a copy of the current coding path.
func (w *Walker) Path() Path {
	return Path(w.path).Clone()
}

// Stopped reports whether a visit returned Stop.
func (w *Walker) Stopped() bool {
	return w.stopped
}

// Field visits v as the record field name.
func (w *Walker) Field(name string, v any) {
	w.step(Field(name), v)
}

// Key visits v as the map entry key.
func (w *Walker) Key(key string, v any) {
	w.step(Key(key), v)
}

// Index visits v as sequence element i.
func (w *Walker) Index(i int, v any) {
	w.step(Index(i), v)
}

// Inline visits v at the current path without adding a segment.
func (w *Walker) Inline(v any) {
	w.node(v)
}

func (w *Walker) step(seg Segment, v any) {
	if w.stopped || isNil(v) {
		return
	}
	w.path = append(w.path, seg)
	w.node(v)
	w.path = w.path[:len(w.path)-1]
}

// enter reports v to the visit function and returns the resulting action,
// without descending. Callers that own v's children (slices, maps) iterate
// them only when enter returns Continue.
func (w *Walker) enter(v any) Action {
	if w.stopped || isNil(v) {
		return SkipChildren
	}
	if len(w.path) > w.maxDepth {
		if w.truncated == "" {
			w.truncated = Path(w.path[:w.maxDepth]).String()
		}
		return SkipChildren
	}
	action := w.visit(v, Path(w.path))
	if action == Stop {
		w.stopped = true
	}
	return action
}

func (w *Walker) node(v any) {
	if w.enter(v) != Continue {
		return
	}
	n, ok := v.(Node)
	if !ok {
		return
	}

	key, tracked := pointerKey(v)
	if tracked {
		if _, seen := w.ancestors[key]; seen {
			return
		}
		w.ancestors[key] = struct{}{}
		defer delete(w.ancestors, key)
	}
	n.Descend(w)
}

// Optional visits *p as the field name when p is non-nil.
// Use it for pointer-to-scalar fields so that rules see the scalar type.
func Optional[T any](w *Walker, name string, p *T) {
	if p == nil {
		return
	}
	w.Field(name, *p)
}

// NonZero visits v as the field name unless v is the zero value.
// Use it for omitempty scalar fields so that absent values are not visited.
func NonZero[T comparable](w *Walker, name string, v T) {
	var zero T
	if v == zero {
		return
	}
	w.Field(name, v)
}

// Slice visits s as the field name, then each element by index.
// The slice itself is visited even when empty.
func Slice[S ~[]E, E any](w *Walker, name string, s S) {
	sequence(w, Field(name), s)
}

// KeySlice visits s as the map entry key, then each element by index.
func KeySlice[S ~[]E, E any](w *Walker, key string, s S) {
	sequence(w, Key(key), s)
}

func sequence[S ~[]E, E any](w *Walker, seg Segment, s S) {
	if w.stopped {
		return
	}
	w.path = append(w.path, seg)
	defer func() { w.path = w.path[:len(w.path)-1] }()

	if w.enter(s) != Continue {
		return
	}
	for i, e := range s {
		if w.stopped {
			return
		}
		w.Index(i, e)
	}
}

// Map visits m as the field name, then each value by key in sorted key order.
// The map itself is visited even when empty or nil.
func Map[M ~map[string]V, V any](w *Walker, name string, m M) {
	if w.stopped {
		return
	}
	w.path = append(w.path, Field(name))
	defer func() { w.path = w.path[:len(w.path)-1] }()

	if w.enter(m) != Continue {
		return
	}
	Entries(w, m)
}

// Entries visits each value of m by key in sorted key order, at the current
// path. It is used by named map types that implement Node themselves.
func Entries[M ~map[string]V, V any](w *Walker, m M) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if w.stopped {
			return
		}
		w.Key(k, m[k])
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func pointerKey(v any) (ancestorKey, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return ancestorKey{}, false
	}
	return ancestorKey{typ: rv.Type(), ptr: rv.Pointer()}, true
}
