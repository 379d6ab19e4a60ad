package openapi

//go:generate go run ../internal/codegen/decode

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/oaserrors"
)

// decoder carries state through one decodeFromMap pass. Invalid component
// keys are recorded rather than aborting, so one pass reports all of them.
type decoder struct {
	errs []error
}

func (d *decoder) fail(err error) {
	d.errs = append(d.errs, err)
}

func (d *decoder) err() error {
	return errors.Join(d.errs...)
}

// mapDecoder is implemented by every pointer type with a decodeFromMap method.
type mapDecoder[T any] interface {
	*T
	decodeFromMap(d *decoder, m map[string]any)
}

type fromMap interface {
	decodeFromMap(d *decoder, m map[string]any)
}

// Decode populates into from m, the generic tree a YAML or JSON decoder
// produces for a document or a component. into must be a pointer to Document
// or to one of the component types.
//
// Fields of the wrong shape are ignored. Component table keys that are not
// valid component keys are skipped and reported in the returned error, which
// matches oaserrors.ErrInvalidComponentKey.
func Decode(m map[string]any, into any) error {
	target, ok := into.(fromMap)
	if !ok {
		return &oaserrors.ConfigError{
			Option:  "into",
			Value:   fmt.Sprintf("%T", into),
			Message: "not a decodable openapi type",
		}
	}
	d := &decoder{}
	target.decodeFromMap(d, m)
	return d.err()
}

// DecodeDocument decodes m as a Document.
func DecodeDocument(m map[string]any) (*Document, error) {
	doc := new(Document)
	if err := Decode(m, doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// decodeRefOr decodes v as either {"$ref": "..."} or an inline T.
// It returns nil when v is not a mapping.
func decodeRefOr[T Component, PT mapDecoder[T]](d *decoder, v any) *RefOr[T] {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	if s, ok := m["$ref"].(string); ok {
		ref := ParseReference[T](s)
		return &RefOr[T]{Ref: &ref}
	}
	value := new(T)
	PT(value).decodeFromMap(d, m)
	return &RefOr[T]{Value: value}
}

func decodeRefOrSlice[T Component, PT mapDecoder[T]](d *decoder, v any) []*RefOr[T] {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]*RefOr[T], 0, len(arr))
	for _, item := range arr {
		if r := decodeRefOr[T, PT](d, item); r != nil {
			out = append(out, r)
		}
	}
	return out
}

func decodeRefOrMap[T Component, PT mapDecoder[T]](d *decoder, v any) map[string]*RefOr[T] {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]*RefOr[T], len(m))
	for k, item := range m {
		if r := decodeRefOr[T, PT](d, item); r != nil {
			out[k] = r
		}
	}
	return out
}

// decodeComponentMap decodes a component table. Source key order is not
// available from a generic map, so entries are inserted in sorted key order.
func decodeComponentMap[T Component, PT mapDecoder[T]](d *decoder, field string, m map[string]any) ComponentMap[T] {
	var out ComponentMap[T]
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if isExtensionKey(name) {
			continue
		}
		key, err := NewComponentKey(name)
		if err != nil {
			d.fail(fmt.Errorf("components.%s: %w", field, err))
			continue
		}
		if r := decodeRefOr[T, PT](d, m[name]); r != nil {
			out.Set(key, r)
		}
	}
	return out
}

// decodeSchemaOrBool decodes additionalProperties, which is either a schema
// or a boolean.
func decodeSchemaOrBool(d *decoder, v any) (*RefOr[Schema], *bool) {
	if b, ok := v.(bool); ok {
		return nil, &b
	}
	return decodeRefOr[Schema](d, v), nil
}

func decodePaths(d *decoder, m map[string]any) Paths {
	out := make(Paths, len(m))
	for k, v := range m {
		if isExtensionKey(k) {
			continue
		}
		if r := decodeRefOr[PathItem](d, v); r != nil {
			out[k] = r
		}
	}
	return out
}

func decodeSecurityRequirements(arr []any) []SecurityRequirement {
	out := make([]SecurityRequirement, 0, len(arr))
	for _, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		req := make(SecurityRequirement, len(m))
		for name, scopes := range m {
			req[name] = stringSlice(scopes)
		}
		out = append(out, req)
	}
	return out
}

// decodeFromMap decodes a callback: every non-extension key is a runtime
// expression mapping to a path item.
func (x *Callback) decodeFromMap(d *decoder, m map[string]any) {
	for k, v := range m {
		if isExtensionKey(k) {
			continue
		}
		r := decodeRefOr[PathItem](d, v)
		if r == nil {
			continue
		}
		if x.Expressions == nil {
			x.Expressions = make(map[string]*RefOr[PathItem], len(m))
		}
		x.Expressions[k] = r
	}
	x.Extra = extractExtensionsFromMap(m)
}

// RebaseReferences rewrites every "$ref" string in the generic tree m that
// designates a location inside the same document into an absolute external
// reference against base. Already external references are resolved against
// base. The tree is modified in place.
//
// Only "$ref" keys in model positions are rewritten. Literal payloads
// (example, value, default, const, enum, schema examples lists) and "x-"
// extensions are left untouched.
//
// Loaders call this before Decode so that references inside a fetched
// document keep pointing into that document once the value is moved into
// another document's components.
func RebaseReferences(m map[string]any, base string) {
	rebase(m, base, true)
}

// RebaseExternalReferences is like RebaseReferences but leaves fragment-only
// references alone. It is applied to a root document so that its external
// references name absolute locations while internal ones stay internal.
func RebaseExternalReferences(m map[string]any, base string) {
	rebase(m, base, false)
}

// rebaseShape says how the keys of a map are to be read.
type rebaseShape int

const (
	// shapeObject maps are model objects: keys are field names, and literal
	// payload fields are left alone.
	shapeObject rebaseShape = iota
	// shapeNamed maps have user-chosen keys whose values are objects.
	shapeNamed
	// shapeCallbacks maps hold callbacks, which are themselves named maps.
	shapeCallbacks
)

// namedFields are object fields whose value is a map keyed by user names.
var namedFields = map[string]bool{
	"schemas":           true,
	"responses":         true,
	"parameters":        true,
	"examples":          true,
	"requestBodies":     true,
	"headers":           true,
	"securitySchemes":   true,
	"links":             true,
	"pathItems":         true,
	"paths":             true,
	"webhooks":          true,
	"content":           true,
	"encoding":          true,
	"variables":         true,
	"properties":        true,
	"patternProperties": true,
	"dependentSchemas":  true,
	"$defs":             true,
	"definitions":       true,
}

// payloadFields hold literal instance data rather than model objects.
var payloadFields = map[string]bool{
	"example": true,
	"value":   true,
	"default": true,
	"const":   true,
	"enum":    true,
}

func rebase(v any, base string, internal bool) {
	rebaseNode(v, base, internal, shapeObject)
}

func rebaseNode(v any, base string, internal bool, shape rebaseShape) {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			switch shape {
			case shapeNamed:
				rebaseNode(child, base, internal, shapeObject)
				continue
			case shapeCallbacks:
				rebaseNode(child, base, internal, shapeNamed)
				continue
			}
			if s, ok := child.(string); ok && k == "$ref" {
				if internal || !strings.HasPrefix(s, "#") {
					node[k] = pathutil.ResolveRef(base, s)
				}
				continue
			}
			if payloadFields[k] || isExtensionKey(k) {
				continue
			}
			// Schema "examples" is a list of literals; it only names
			// Example objects when it is a map.
			if _, ok := child.([]any); ok && k == "examples" {
				continue
			}
			next := shapeObject
			switch {
			case k == "callbacks":
				next = shapeCallbacks
			case namedFields[k]:
				next = shapeNamed
			}
			rebaseNode(child, base, internal, next)
		}
	case []any:
		for _, child := range node {
			rebaseNode(child, base, internal, shapeObject)
		}
	}
}

func isExtensionKey(k string) bool {
	return strings.HasPrefix(k, "x-")
}
