package openapi

import (
	"errors"

	"github.com/erraggy/oaskit/oaserrors"
	"github.com/erraggy/oaskit/walker"
)

// LookupOnce returns the table entry a reference designates, without
// following it if the entry is itself a reference.
//
// External references fail with ErrRemoteReference. Internal references that
// are not table-addressable fail with ErrUnsafeReference; a path reference of
// the form components/<kind(T)>/<key> is treated as the named reference.
func LookupOnce[T Component](c *Components, ref Reference[T]) (*RefOr[T], error) {
	ref = ref.normalized()
	switch ref.form {
	case RefNamed:
		var (
			entry *RefOr[T]
			ok    bool
		)
		if c != nil {
			entry, ok = TableOf[T](c).Get(ref.key)
		}
		if !ok || entry == nil || (entry.Ref == nil && entry.Value == nil) {
			return nil, &oaserrors.ReferenceError{Ref: ref.String(), Name: ref.key.String(), IsMissing: true}
		}
		return entry, nil
	case RefExternal:
		return nil, &oaserrors.ReferenceError{Ref: ref.String(), IsRemote: true}
	default:
		return nil, &oaserrors.ReferenceError{Ref: ref.String(), IsUnsafe: true}
	}
}

// Contains reports whether ref designates an existing entry in c.
// Remote and unsafe references report an error rather than false.
func Contains[T Component](c *Components, ref Reference[T]) (bool, error) {
	_, err := LookupOnce(c, ref)
	if errors.Is(err, oaserrors.ErrMissingReference) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Lookup resolves ref to a value, following chains of table entries that are
// themselves references. A chain that revisits a reference fails with
// ErrCircularReference.
func Lookup[T Component](c *Components, ref Reference[T]) (*T, error) {
	var chain *refChain
	for {
		id := ref.normalized().String()
		if chain.contains(id) {
			return nil, &oaserrors.ReferenceError{Ref: id, IsCircular: true}
		}
		chain = chain.with(id)

		entry, err := LookupOnce(c, ref)
		if err != nil {
			return nil, err
		}
		if entry.Ref == nil {
			return entry.Value, nil
		}
		ref = *entry.Ref
	}
}

// Resolve returns the inline value of r, or looks up its reference in c.
func Resolve[T Component](c *Components, r *RefOr[T]) (*T, error) {
	if r == nil {
		return nil, nil
	}
	if r.Ref == nil {
		return r.Value, nil
	}
	return Lookup(c, *r.Ref)
}

// ResolvePath resolves an internal reference by walking doc from its root,
// matching each pointer token against the coding path. Unlike Lookup it can
// follow path references that do not address a component table, such as
// "#/paths/~1pets/get/parameters/0".
func ResolvePath[T Component](doc *Document, ref Reference[T]) (*T, error) {
	return resolvePath(doc, ref, nil)
}

func resolvePath[T Component](doc *Document, ref Reference[T], chain *refChain) (*T, error) {
	var tokens []string
	switch ref.form {
	case RefNamed:
		tokens = []string{"components", string(KindOf[T]()), ref.key.String()}
	case RefPath:
		tokens = ref.path
	case RefExternal:
		return nil, &oaserrors.ReferenceError{Ref: ref.String(), IsRemote: true}
	default:
		return nil, &oaserrors.ReferenceError{Ref: ref.String(), IsUnsafe: true}
	}

	id := ref.String()
	if chain.contains(id) {
		return nil, &oaserrors.ReferenceError{Ref: id, IsCircular: true}
	}
	chain = chain.with(id)

	var (
		found *T
		next  *Reference[T]
	)
	err := walker.Walk(doc, func(node any, path walker.Path) walker.Action {
		if !isPrefix(path, tokens) {
			return walker.SkipChildren
		}
		if len(path) < len(tokens) {
			return walker.Continue
		}
		switch v := node.(type) {
		case *T:
			found = v
			return walker.Stop
		case *Reference[T]:
			next = v
			return walker.Stop
		}
		return walker.Continue
	})
	if err != nil {
		return nil, err
	}

	switch {
	case found != nil:
		return found, nil
	case next != nil:
		return resolvePath(doc, *next, chain)
	default:
		return nil, &oaserrors.ReferenceError{Ref: id, Name: lastToken(tokens), IsMissing: true}
	}
}

func isPrefix(path walker.Path, tokens []string) bool {
	if len(path) > len(tokens) {
		return false
	}
	for i, seg := range path {
		if seg.Value() != tokens[i] {
			return false
		}
	}
	return true
}

func lastToken(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}
