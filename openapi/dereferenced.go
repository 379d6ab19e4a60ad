package openapi

import (
	"maps"
	"slices"

	"github.com/erraggy/oaskit/internal/httputil"
	"github.com/erraggy/oaskit/oaserrors"
)

// The Dereferenced types below embed the original value and shadow every
// field that can hold a reference with its resolved form. Fields that are not
// shadowed are read through the embedded pointer.

// DereferencedDocument is a Document with every path, webhook and security
// requirement resolved.
type DereferencedDocument struct {
	*Document
	Paths    map[string]*DereferencedPathItem
	Webhooks map[string]*DereferencedPathItem
	Security []DereferencedSecurityRequirement
}

// Dereferenced resolves every reference reachable from the document's paths,
// webhooks and security requirements against its own components.
func (d *Document) Dereferenced() (*DereferencedDocument, error) {
	c := &d.Components
	out := &DereferencedDocument{Document: d}

	var err error
	if out.Paths, err = dereferenceMap[PathItem, *DereferencedPathItem](d.Paths, c, nil); err != nil {
		return nil, err
	}
	if out.Webhooks, err = dereferenceMap[PathItem, *DereferencedPathItem](d.Webhooks, c, nil); err != nil {
		return nil, err
	}
	if out.Security, err = dereferenceSecurity(d.Security, c, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// DereferencedPathItem is a PathItem with its operations and parameters resolved.
type DereferencedPathItem struct {
	*PathItem
	Get        *DereferencedOperation
	Put        *DereferencedOperation
	Post       *DereferencedOperation
	Delete     *DereferencedOperation
	Options    *DereferencedOperation
	Head       *DereferencedOperation
	Patch      *DereferencedOperation
	Trace      *DereferencedOperation
	Parameters []*DereferencedParameter
}

// Dereferenced resolves every reference reachable from p.
func (p *PathItem) Dereferenced(c *Components) (*DereferencedPathItem, error) {
	return p.dereferenced(c, nil)
}

func (p *PathItem) dereferenced(c *Components, chain *refChain) (*DereferencedPathItem, error) {
	out := &DereferencedPathItem{PathItem: p}
	for _, method := range httputil.Methods {
		op := p.Operation(method)
		if op == nil {
			continue
		}
		d, err := op.dereferenced(c, chain)
		if err != nil {
			return nil, err
		}
		out.setOperation(method, d)
	}

	var err error
	if out.Parameters, err = dereferenceSlice[Parameter, *DereferencedParameter](p.Parameters, c, chain); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *DereferencedPathItem) setOperation(method string, op *DereferencedOperation) {
	switch method {
	case httputil.MethodGet:
		p.Get = op
	case httputil.MethodPut:
		p.Put = op
	case httputil.MethodPost:
		p.Post = op
	case httputil.MethodDelete:
		p.Delete = op
	case httputil.MethodOptions:
		p.Options = op
	case httputil.MethodHead:
		p.Head = op
	case httputil.MethodPatch:
		p.Patch = op
	case httputil.MethodTrace:
		p.Trace = op
	}
}

// Operation returns the resolved operation for a lower-case HTTP method, or nil.
func (p *DereferencedPathItem) Operation(method string) *DereferencedOperation {
	switch method {
	case httputil.MethodGet:
		return p.Get
	case httputil.MethodPut:
		return p.Put
	case httputil.MethodPost:
		return p.Post
	case httputil.MethodDelete:
		return p.Delete
	case httputil.MethodOptions:
		return p.Options
	case httputil.MethodHead:
		return p.Head
	case httputil.MethodPatch:
		return p.Patch
	case httputil.MethodTrace:
		return p.Trace
	}
	return nil
}

// DereferencedOperation is an Operation with every nested reference resolved.
type DereferencedOperation struct {
	*Operation
	Parameters  []*DereferencedParameter
	RequestBody *DereferencedRequestBody
	Responses   map[string]*DereferencedResponse
	Callbacks   map[string]*DereferencedCallback
	Security    []DereferencedSecurityRequirement
}

// Dereferenced resolves every reference reachable from o.
func (o *Operation) Dereferenced(c *Components) (*DereferencedOperation, error) {
	return o.dereferenced(c, nil)
}

func (o *Operation) dereferenced(c *Components, chain *refChain) (*DereferencedOperation, error) {
	out := &DereferencedOperation{Operation: o}

	var err error
	if out.Parameters, err = dereferenceSlice[Parameter, *DereferencedParameter](o.Parameters, c, chain); err != nil {
		return nil, err
	}
	if out.RequestBody, err = dereferenceRefOr[RequestBody, *DereferencedRequestBody](o.RequestBody, c, chain); err != nil {
		return nil, err
	}
	if out.Responses, err = dereferenceMap[Response, *DereferencedResponse](o.Responses, c, chain); err != nil {
		return nil, err
	}
	if out.Callbacks, err = dereferenceMap[Callback, *DereferencedCallback](o.Callbacks, c, chain); err != nil {
		return nil, err
	}
	if out.Security, err = dereferenceSecurity(o.Security, c, chain); err != nil {
		return nil, err
	}
	return out, nil
}

// DereferencedCallback is a Callback whose path items are resolved.
type DereferencedCallback struct {
	*Callback
	Expressions map[string]*DereferencedPathItem
}

// Dereferenced resolves every reference reachable from cb.
func (cb *Callback) Dereferenced(c *Components) (*DereferencedCallback, error) {
	return cb.dereferenced(c, nil)
}

func (cb *Callback) dereferenced(c *Components, chain *refChain) (*DereferencedCallback, error) {
	exprs, err := dereferenceMap[PathItem, *DereferencedPathItem](cb.Expressions, c, chain)
	if err != nil {
		return nil, err
	}
	return &DereferencedCallback{Callback: cb, Expressions: exprs}, nil
}

// DereferencedParameter is a Parameter with its schema, examples and content resolved.
type DereferencedParameter struct {
	*Parameter
	Schema   *DereferencedSchema
	Examples map[string]*Example
	Content  map[string]*DereferencedMediaType
}

// Dereferenced resolves every reference reachable from p.
func (p *Parameter) Dereferenced(c *Components) (*DereferencedParameter, error) {
	return p.dereferenced(c, nil)
}

func (p *Parameter) dereferenced(c *Components, chain *refChain) (*DereferencedParameter, error) {
	out := &DereferencedParameter{Parameter: p}

	var err error
	if out.Schema, err = dereferenceRefOr[Schema, *DereferencedSchema](p.Schema, c, chain); err != nil {
		return nil, err
	}
	if out.Examples, err = dereferenceMap[Example, *Example](p.Examples, c, chain); err != nil {
		return nil, err
	}
	if out.Content, err = dereferenceContent(p.Content, c, chain); err != nil {
		return nil, err
	}
	return out, nil
}

// DereferencedHeader is a Header with its schema, examples and content resolved.
type DereferencedHeader struct {
	*Header
	Schema   *DereferencedSchema
	Examples map[string]*Example
	Content  map[string]*DereferencedMediaType
}

// Dereferenced resolves every reference reachable from h.
func (h *Header) Dereferenced(c *Components) (*DereferencedHeader, error) {
	return h.dereferenced(c, nil)
}

func (h *Header) dereferenced(c *Components, chain *refChain) (*DereferencedHeader, error) {
	out := &DereferencedHeader{Header: h}

	var err error
	if out.Schema, err = dereferenceRefOr[Schema, *DereferencedSchema](h.Schema, c, chain); err != nil {
		return nil, err
	}
	if out.Examples, err = dereferenceMap[Example, *Example](h.Examples, c, chain); err != nil {
		return nil, err
	}
	if out.Content, err = dereferenceContent(h.Content, c, chain); err != nil {
		return nil, err
	}
	return out, nil
}

// DereferencedRequestBody is a RequestBody with its content resolved.
type DereferencedRequestBody struct {
	*RequestBody
	Content map[string]*DereferencedMediaType
}

// Dereferenced resolves every reference reachable from r.
func (r *RequestBody) Dereferenced(c *Components) (*DereferencedRequestBody, error) {
	return r.dereferenced(c, nil)
}

func (r *RequestBody) dereferenced(c *Components, chain *refChain) (*DereferencedRequestBody, error) {
	content, err := dereferenceContent(r.Content, c, chain)
	if err != nil {
		return nil, err
	}
	return &DereferencedRequestBody{RequestBody: r, Content: content}, nil
}

// DereferencedResponse is a Response with headers, content and links resolved.
type DereferencedResponse struct {
	*Response
	Headers map[string]*DereferencedHeader
	Content map[string]*DereferencedMediaType
	Links   map[string]*Link
}

// Dereferenced resolves every reference reachable from r.
func (r *Response) Dereferenced(c *Components) (*DereferencedResponse, error) {
	return r.dereferenced(c, nil)
}

func (r *Response) dereferenced(c *Components, chain *refChain) (*DereferencedResponse, error) {
	out := &DereferencedResponse{Response: r}

	var err error
	if out.Headers, err = dereferenceMap[Header, *DereferencedHeader](r.Headers, c, chain); err != nil {
		return nil, err
	}
	if out.Content, err = dereferenceContent(r.Content, c, chain); err != nil {
		return nil, err
	}
	if out.Links, err = dereferenceMap[Link, *Link](r.Links, c, chain); err != nil {
		return nil, err
	}
	return out, nil
}

// DereferencedMediaType is a MediaType with its schema and examples resolved.
type DereferencedMediaType struct {
	*MediaType
	Schema   *DereferencedSchema
	Examples map[string]*Example
}

// Dereferenced resolves every reference reachable from m.
func (m *MediaType) Dereferenced(c *Components) (*DereferencedMediaType, error) {
	return m.dereferenced(c, nil)
}

func (m *MediaType) dereferenced(c *Components, chain *refChain) (*DereferencedMediaType, error) {
	out := &DereferencedMediaType{MediaType: m}

	var err error
	if out.Schema, err = dereferenceRefOr[Schema, *DereferencedSchema](m.Schema, c, chain); err != nil {
		return nil, err
	}
	if out.Examples, err = dereferenceMap[Example, *Example](m.Examples, c, chain); err != nil {
		return nil, err
	}
	return out, nil
}

func dereferenceContent(content map[string]*MediaType, c *Components, chain *refChain) (map[string]*DereferencedMediaType, error) {
	return dereferenceValues(content, func(m *MediaType) (*DereferencedMediaType, error) {
		return m.dereferenced(c, chain)
	})
}

// DereferencedSchema is a Schema with every subschema resolved.
type DereferencedSchema struct {
	*Schema
	Items                *DereferencedSchema
	PrefixItems          []*DereferencedSchema
	Properties           map[string]*DereferencedSchema
	AdditionalProperties *DereferencedSchema
	PatternProperties    map[string]*DereferencedSchema
	AllOf                []*DereferencedSchema
	AnyOf                []*DereferencedSchema
	OneOf                []*DereferencedSchema
	Not                  *DereferencedSchema
}

// Dereferenced resolves every subschema reachable from s. A schema that
// refers back to itself through a chain of references cannot be
// dereferenced and fails with ErrCircularReference.
func (s *Schema) Dereferenced(c *Components) (*DereferencedSchema, error) {
	return s.dereferenced(c, nil)
}

func (s *Schema) dereferenced(c *Components, chain *refChain) (*DereferencedSchema, error) {
	out := &DereferencedSchema{Schema: s}

	var err error
	if out.Items, err = dereferenceRefOr[Schema, *DereferencedSchema](s.Items, c, chain); err != nil {
		return nil, err
	}
	if out.PrefixItems, err = dereferenceSlice[Schema, *DereferencedSchema](s.PrefixItems, c, chain); err != nil {
		return nil, err
	}
	if out.Properties, err = dereferenceMap[Schema, *DereferencedSchema](s.Properties, c, chain); err != nil {
		return nil, err
	}
	if out.AdditionalProperties, err = dereferenceRefOr[Schema, *DereferencedSchema](s.AdditionalProperties, c, chain); err != nil {
		return nil, err
	}
	if out.PatternProperties, err = dereferenceMap[Schema, *DereferencedSchema](s.PatternProperties, c, chain); err != nil {
		return nil, err
	}
	if out.AllOf, err = dereferenceSlice[Schema, *DereferencedSchema](s.AllOf, c, chain); err != nil {
		return nil, err
	}
	if out.AnyOf, err = dereferenceSlice[Schema, *DereferencedSchema](s.AnyOf, c, chain); err != nil {
		return nil, err
	}
	if out.OneOf, err = dereferenceSlice[Schema, *DereferencedSchema](s.OneOf, c, chain); err != nil {
		return nil, err
	}
	if out.Not, err = dereferenceRefOr[Schema, *DereferencedSchema](s.Not, c, chain); err != nil {
		return nil, err
	}
	return out, nil
}

// Example, Link and SecurityScheme hold no references and dereference to
// themselves.

func (e *Example) dereferenced(*Components, *refChain) (*Example, error) { return e, nil }

func (l *Link) dereferenced(*Components, *refChain) (*Link, error) { return l, nil }

func (s *SecurityScheme) dereferenced(*Components, *refChain) (*SecurityScheme, error) {
	return s, nil
}

// DereferencedScopes pairs a resolved security scheme with the scopes a
// requirement asks for.
type DereferencedScopes struct {
	Scheme *SecurityScheme
	Scopes []string
}

// DereferencedSecurityRequirement maps scheme names to resolved schemes.
type DereferencedSecurityRequirement map[string]DereferencedScopes

// Dereferenced resolves each scheme name against c.SecuritySchemes.
func (r SecurityRequirement) Dereferenced(c *Components) (DereferencedSecurityRequirement, error) {
	return r.dereferenced(c, nil)
}

func (r SecurityRequirement) dereferenced(c *Components, chain *refChain) (DereferencedSecurityRequirement, error) {
	out := make(DereferencedSecurityRequirement, len(r))
	for _, name := range slices.Sorted(maps.Keys(r)) {
		key, err := NewComponentKey(name)
		if err != nil {
			return nil, &oaserrors.ReferenceError{Ref: name, Name: name, IsMissing: true, Cause: err}
		}
		scheme, err := dereferenceRef[SecurityScheme, *SecurityScheme](NamedRef[SecurityScheme](key), c, chain)
		if err != nil {
			return nil, err
		}
		out[name] = DereferencedScopes{Scheme: scheme, Scopes: r[name]}
	}
	return out, nil
}

func dereferenceSecurity(reqs []SecurityRequirement, c *Components, chain *refChain) ([]DereferencedSecurityRequirement, error) {
	if reqs == nil {
		return nil, nil
	}
	out := make([]DereferencedSecurityRequirement, 0, len(reqs))
	for _, r := range reqs {
		d, err := r.dereferenced(c, chain)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
