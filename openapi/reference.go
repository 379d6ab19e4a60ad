package openapi

import (
	"slices"
	"strings"

	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/walker"
)

// RefForm identifies the shape of a [Reference].
type RefForm uint8

const (
	// RefNamed points at a slot in the components table of the reference's kind.
	RefNamed RefForm = iota + 1
	// RefPath points at an arbitrary location inside the current document.
	RefPath
	// RefExternal points at another document, optionally with a fragment.
	RefExternal
	// RefUnsafe is internal reference text that is neither named nor a path.
	RefUnsafe
)

// String returns the form name.
func (f RefForm) String() string {
	switch f {
	case RefNamed:
		return "named"
	case RefPath:
		return "path"
	case RefExternal:
		return "external"
	case RefUnsafe:
		return "unsafe"
	default:
		return "invalid"
	}
}

// Reference is a typed "$ref" pointer to a value of type T.
//
// Construct references with [NamedRef], [PathRef], [ExternalRef] or
// [ParseReference]. References are comparable with [Reference.Equal] and
// carry no payload.
type Reference[T Component] struct {
	form RefForm
	key  ComponentKey
	path []string
	text string // external URI, or raw text of an unsafe reference
}

// NamedRef returns a reference to "#/components/<kind(T)>/<key>".
func NamedRef[T Component](key ComponentKey) Reference[T] {
	return Reference[T]{form: RefNamed, key: key}
}

// PathRef returns an in-document reference "#/<seg>/<seg>/...".
// Segments are raw (unescaped) tokens.
func PathRef[T Component](segments ...string) Reference[T] {
	return Reference[T]{form: RefPath, path: slices.Clone(segments)}
}

// ExternalRef returns a reference to another document. uri may carry a
// "#fragment" using the same pointer grammar as internal references.
func ExternalRef[T Component](uri string) Reference[T] {
	return Reference[T]{form: RefExternal, text: uri}
}

// ParseReference parses "$ref" text.
//
// "#/components/<kind(T)>/<validKey>" parses as named; any other "#/..." as
// a path; any other "#..." as unsafe; everything else as external.
// ParseReference never fails: unusable text produces an unsafe reference
// which fails on lookup.
func ParseReference[T Component](s string) Reference[T] {
	if s == "" {
		return Reference[T]{form: RefUnsafe}
	}
	if !strings.HasPrefix(s, "#") {
		return ExternalRef[T](s)
	}
	frag := s[1:]
	if !strings.HasPrefix(frag, "/") {
		return Reference[T]{form: RefUnsafe, text: s}
	}
	tokens := pathutil.SplitPointer(frag)
	if key, ok := namedKey[T](tokens); ok {
		return NamedRef[T](key)
	}
	if tokens == nil {
		tokens = []string{}
	}
	return Reference[T]{form: RefPath, path: tokens}
}

// namedKey reports whether tokens have the shape components/<kind(T)>/<key>.
func namedKey[T Component](tokens []string) (ComponentKey, bool) {
	if len(tokens) != 3 || tokens[0] != "components" || tokens[1] != string(KindOf[T]()) {
		return ComponentKey{}, false
	}
	key, err := NewComponentKey(tokens[2])
	if err != nil {
		return ComponentKey{}, false
	}
	return key, true
}

// Form returns the reference shape.
func (r Reference[T]) Form() RefForm { return r.form }

// Kind returns the component kind of T.
func (r Reference[T]) Kind() ComponentKind { return KindOf[T]() }

// IsInternal reports whether r points inside the current document.
func (r Reference[T]) IsInternal() bool { return r.form != RefExternal }

// IsExternal reports whether r points at another document.
func (r Reference[T]) IsExternal() bool { return r.form == RefExternal }

// Key returns the slot name of a named reference.
func (r Reference[T]) Key() (ComponentKey, bool) {
	return r.key, r.form == RefNamed
}

// Segments returns a copy of the path tokens of a path reference.
func (r Reference[T]) Segments() []string {
	if r.form != RefPath {
		return nil
	}
	return slices.Clone(r.path)
}

// URI returns the full text of an external reference.
func (r Reference[T]) URI() string {
	if r.form != RefExternal {
		return ""
	}
	return r.text
}

// Document returns the part of an external reference before "#".
func (r Reference[T]) Document() string {
	doc, _, _ := strings.Cut(r.URI(), "#")
	return doc
}

// Fragment returns the part of an external reference after "#", if any.
func (r Reference[T]) Fragment() string {
	_, frag, _ := strings.Cut(r.URI(), "#")
	return frag
}

// String renders the "$ref" text form.
func (r Reference[T]) String() string {
	switch r.form {
	case RefNamed:
		return pathutil.ComponentsPrefix + string(KindOf[T]()) + "/" + r.key.String()
	case RefPath:
		return "#" + pathutil.JoinPointer(r.path)
	default:
		return r.text
	}
}

// Equal reports structural equality.
func (r Reference[T]) Equal(other Reference[T]) bool {
	return r.form == other.form &&
		r.key == other.key &&
		r.text == other.text &&
		slices.Equal(r.path, other.path)
}

// normalized turns a path reference with the components/<kind>/<key>
// shape into the equivalent named reference.
func (r Reference[T]) normalized() Reference[T] {
	if r.form != RefPath {
		return r
	}
	if key, ok := namedKey[T](r.path); ok {
		return NamedRef[T](key)
	}
	return r
}

// MarshalText implements encoding.TextMarshaler.
func (r Reference[T]) MarshalText() ([]byte, error) {
	if r.form == RefNamed && r.key.IsZero() {
		return r.key.MarshalText()
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reference[T]) UnmarshalText(text []byte) error {
	*r = ParseReference[T](string(text))
	return nil
}

// RefOr holds either a reference to a T or an inline T.
// Exactly one of Ref and Value is set in a well-formed document.
type RefOr[T Component] struct {
	Ref   *Reference[T]
	Value *T
}

// RefTo wraps a reference.
func RefTo[T Component](ref Reference[T]) *RefOr[T] {
	return &RefOr[T]{Ref: &ref}
}

// Inline wraps an inline value.
func Inline[T Component](v *T) *RefOr[T] {
	return &RefOr[T]{Value: v}
}

// IsRef reports whether r holds a reference.
func (r *RefOr[T]) IsRef() bool {
	return r != nil && r.Ref != nil
}

// Descend visits whichever case is present at the current path, so a
// RefOr never appears as its own coding path segment.
func (r *RefOr[T]) Descend(w *walker.Walker) {
	w.Inline(r.Ref)
	w.Inline(r.Value)
}
