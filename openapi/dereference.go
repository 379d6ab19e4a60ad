package openapi

import (
	"maps"
	"slices"

	"github.com/erraggy/oaskit/oaserrors"
)

// refChain is the set of references on the current resolution branch.
// It is an immutable linked list: with returns a longer chain and leaves the
// receiver untouched, so sibling branches share their common prefix.
type refChain struct {
	ref    string
	parent *refChain
}

func (c *refChain) contains(ref string) bool {
	for n := c; n != nil; n = n.parent {
		if n.ref == ref {
			return true
		}
	}
	return false
}

func (c *refChain) with(ref string) *refChain {
	return &refChain{ref: ref, parent: c}
}

// dereferencer is implemented by every pointer-to-component type. D is the
// reference-free form produced for T.
type dereferencer[T Component, D any] interface {
	*T
	dereferenced(c *Components, chain *refChain) (D, error)
}

// Dereference resolves ref in c and returns the reference-free form of its
// target. Every reference reachable from the target is resolved as well; a
// reference chain that revisits itself fails with ErrCircularReference.
//
//	pet, err := openapi.Dereference[openapi.Schema, *openapi.DereferencedSchema](ref, &doc.Components)
func Dereference[T Component, D any, PT dereferencer[T, D]](ref Reference[T], c *Components) (D, error) {
	return dereferenceRef[T, D, PT](ref, c, nil)
}

// DereferenceRefOr is like Dereference for a value that is either inline or
// a reference. A nil r yields the zero D.
func DereferenceRefOr[T Component, D any, PT dereferencer[T, D]](r *RefOr[T], c *Components) (D, error) {
	return dereferenceRefOr[T, D, PT](r, c, nil)
}

func dereferenceRef[T Component, D any, PT dereferencer[T, D]](ref Reference[T], c *Components, chain *refChain) (D, error) {
	var zero D
	id := ref.normalized().String()
	if chain.contains(id) {
		return zero, &oaserrors.ReferenceError{Ref: id, IsCircular: true}
	}
	target, err := LookupOnce(c, ref)
	if err != nil {
		return zero, err
	}
	return dereferenceRefOr[T, D, PT](target, c, chain.with(id))
}

func dereferenceRefOr[T Component, D any, PT dereferencer[T, D]](r *RefOr[T], c *Components, chain *refChain) (D, error) {
	var zero D
	switch {
	case r == nil:
		return zero, nil
	case r.Ref != nil:
		return dereferenceRef[T, D, PT](*r.Ref, c, chain)
	case r.Value != nil:
		return PT(r.Value).dereferenced(c, chain)
	default:
		return zero, nil
	}
}

// Each sibling below starts from the same chain: cycles are only rejected
// along a single reference chain.

func dereferenceSlice[T Component, D any, PT dereferencer[T, D]](s []*RefOr[T], c *Components, chain *refChain) ([]D, error) {
	if s == nil {
		return nil, nil
	}
	out := make([]D, 0, len(s))
	for _, r := range s {
		d, err := dereferenceRefOr[T, D, PT](r, c, chain)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func dereferenceMap[T Component, D any, PT dereferencer[T, D]](m map[string]*RefOr[T], c *Components, chain *refChain) (map[string]D, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]D, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		d, err := dereferenceRefOr[T, D, PT](m[k], c, chain)
		if err != nil {
			return nil, err
		}
		out[k] = d
	}
	return out, nil
}

// dereferenceValues dereferences a map of inline (never referenced) values.
func dereferenceValues[V any, D any](m map[string]*V, deref func(*V) (D, error)) (map[string]D, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]D, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v := m[k]
		if v == nil {
			continue
		}
		d, err := deref(v)
		if err != nil {
			return nil, err
		}
		out[k] = d
	}
	return out, nil
}
