package openapi

import (
	"iter"
	"slices"

	"github.com/erraggy/oaskit/walker"
)

// ComponentMap is an insertion-ordered table of named components.
// The zero value is an empty table ready to use.
type ComponentMap[T Component] struct {
	keys    []ComponentKey
	entries map[ComponentKey]*RefOr[T]
}

// Set stores v under key. Setting an existing key overwrites the value and
// keeps its original position; new keys are appended.
func (m *ComponentMap[T]) Set(key ComponentKey, v *RefOr[T]) {
	if m.entries == nil {
		m.entries = make(map[ComponentKey]*RefOr[T])
	}
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

// SetValue stores an inline value under key.
func (m *ComponentMap[T]) SetValue(key ComponentKey, v *T) {
	m.Set(key, Inline(v))
}

// Get returns the entry stored under key.
func (m *ComponentMap[T]) Get(key ComponentKey) (*RefOr[T], bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (m *ComponentMap[T]) Has(key ComponentKey) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key, preserving the order of the remaining keys.
func (m *ComponentMap[T]) Delete(key ComponentKey) {
	if m == nil {
		return
	}
	if _, ok := m.entries[key]; !ok {
		return
	}
	delete(m.entries, key)
	m.keys = slices.DeleteFunc(m.keys, func(k ComponentKey) bool { return k == key })
}

// Len returns the number of entries.
func (m *ComponentMap[T]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *ComponentMap[T]) Keys() []ComponentKey {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// All iterates entries in insertion order.
func (m *ComponentMap[T]) All() iter.Seq2[ComponentKey, *RefOr[T]] {
	return func(yield func(ComponentKey, *RefOr[T]) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

// Descend visits each entry by key in insertion order.
func (m *ComponentMap[T]) Descend(w *walker.Walker) {
	for k, v := range m.All() {
		if w.Stopped() {
			return
		}
		w.Key(k.String(), v)
	}
}

// Components holds one table per component kind.
type Components struct {
	Schemas         ComponentMap[Schema]         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       ComponentMap[Response]       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      ComponentMap[Parameter]      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples        ComponentMap[Example]        `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies   ComponentMap[RequestBody]    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         ComponentMap[Header]         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes ComponentMap[SecurityScheme] `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Links           ComponentMap[Link]           `yaml:"links,omitempty" json:"links,omitempty"`
	Callbacks       ComponentMap[Callback]       `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
	PathItems       ComponentMap[PathItem]       `yaml:"pathItems,omitempty" json:"pathItems,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// IsEmpty reports whether every table is empty. An empty Components is
// omitted when a document is serialized.
func (c *Components) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Len() == 0
}

// Len returns the total number of entries across all tables.
func (c *Components) Len() int {
	if c == nil {
		return 0
	}
	return c.Schemas.Len() + c.Responses.Len() + c.Parameters.Len() +
		c.Examples.Len() + c.RequestBodies.Len() + c.Headers.Len() +
		c.SecuritySchemes.Len() + c.Links.Len() + c.Callbacks.Len() + c.PathItems.Len()
}

// KeysOf returns the keys of the table for kind, in insertion order.
func (c *Components) KeysOf(kind ComponentKind) []ComponentKey {
	if c == nil {
		return nil
	}
	switch kind {
	case KindSchemas:
		return c.Schemas.Keys()
	case KindResponses:
		return c.Responses.Keys()
	case KindParameters:
		return c.Parameters.Keys()
	case KindExamples:
		return c.Examples.Keys()
	case KindRequestBodies:
		return c.RequestBodies.Keys()
	case KindHeaders:
		return c.Headers.Keys()
	case KindSecuritySchemes:
		return c.SecuritySchemes.Keys()
	case KindLinks:
		return c.Links.Keys()
	case KindCallbacks:
		return c.Callbacks.Keys()
	case KindPathItems:
		return c.PathItems.Keys()
	}
	return nil
}

// HasKey reports whether the table for kind contains key.
func (c *Components) HasKey(kind ComponentKind, key ComponentKey) bool {
	return slices.Contains(c.KeysOf(kind), key)
}

// Descend visits each table as a field, including empty ones.
func (c *Components) Descend(w *walker.Walker) {
	w.Field("schemas", &c.Schemas)
	w.Field("responses", &c.Responses)
	w.Field("parameters", &c.Parameters)
	w.Field("examples", &c.Examples)
	w.Field("requestBodies", &c.RequestBodies)
	w.Field("headers", &c.Headers)
	w.Field("securitySchemes", &c.SecuritySchemes)
	w.Field("links", &c.Links)
	w.Field("callbacks", &c.Callbacks)
	w.Field("pathItems", &c.PathItems)
}

// TableOf returns the table in c that stores values of type T.
func TableOf[T Component](c *Components) *ComponentMap[T] {
	var table any
	switch KindOf[T]() {
	case KindSchemas:
		table = &c.Schemas
	case KindResponses:
		table = &c.Responses
	case KindParameters:
		table = &c.Parameters
	case KindExamples:
		table = &c.Examples
	case KindRequestBodies:
		table = &c.RequestBodies
	case KindHeaders:
		table = &c.Headers
	case KindSecuritySchemes:
		table = &c.SecuritySchemes
	case KindLinks:
		table = &c.Links
	case KindCallbacks:
		table = &c.Callbacks
	case KindPathItems:
		table = &c.PathItems
	default:
		panic("openapi: no component table for kind " + string(KindOf[T]()))
	}
	return table.(*ComponentMap[T])
}
