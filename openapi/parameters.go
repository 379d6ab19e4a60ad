package openapi

import "github.com/erraggy/oaskit/walker"

// Parameter locations
const (
	ParamInQuery  = "query"
	ParamInHeader = "header"
	ParamInPath   = "path"
	ParamInCookie = "cookie"
)

// Parameter describes a single operation parameter
type Parameter struct {
	Name            string                     `yaml:"name" json:"name"`
	In              string                     `yaml:"in" json:"in"`
	Description     string                     `yaml:"description,omitempty" json:"description,omitempty"`
	Required        bool                       `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      bool                       `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue bool                       `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Style           string                     `yaml:"style,omitempty" json:"style,omitempty"`
	Explode         *bool                      `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved   bool                       `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Schema          *RefOr[Schema]             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example         any                        `yaml:"example,omitempty" json:"example,omitempty"`
	Examples        map[string]*RefOr[Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content         map[string]*MediaType      `yaml:"content,omitempty" json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of Parameter in document order.
func (p *Parameter) Descend(w *walker.Walker) {
	w.Field("name", p.Name)
	w.Field("in", p.In)
	walker.NonZero(w, "description", p.Description)
	walker.NonZero(w, "required", p.Required)
	walker.NonZero(w, "deprecated", p.Deprecated)
	walker.NonZero(w, "allowEmptyValue", p.AllowEmptyValue)
	walker.NonZero(w, "style", p.Style)
	walker.Optional(w, "explode", p.Explode)
	walker.NonZero(w, "allowReserved", p.AllowReserved)
	w.Field("schema", p.Schema)
	w.Field("example", p.Example)
	walker.Map(w, "examples", p.Examples)
	walker.Map(w, "content", p.Content)
}

// Header describes a single response or encoding header
type Header struct {
	Description     string                     `yaml:"description,omitempty" json:"description,omitempty"`
	Required        bool                       `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      bool                       `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue bool                       `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Style           string                     `yaml:"style,omitempty" json:"style,omitempty"`
	Explode         *bool                      `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema          *RefOr[Schema]             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example         any                        `yaml:"example,omitempty" json:"example,omitempty"`
	Examples        map[string]*RefOr[Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content         map[string]*MediaType      `yaml:"content,omitempty" json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of Header in document order.
func (h *Header) Descend(w *walker.Walker) {
	walker.NonZero(w, "description", h.Description)
	walker.NonZero(w, "required", h.Required)
	walker.NonZero(w, "deprecated", h.Deprecated)
	walker.NonZero(w, "allowEmptyValue", h.AllowEmptyValue)
	walker.NonZero(w, "style", h.Style)
	walker.Optional(w, "explode", h.Explode)
	w.Field("schema", h.Schema)
	w.Field("example", h.Example)
	walker.Map(w, "examples", h.Examples)
	walker.Map(w, "content", h.Content)
}

// RequestBody describes a single request body
type RequestBody struct {
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content" json:"content"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of RequestBody in document order.
func (r *RequestBody) Descend(w *walker.Walker) {
	walker.NonZero(w, "description", r.Description)
	walker.Map(w, "content", r.Content)
	walker.NonZero(w, "required", r.Required)
}

// MediaType provides schema and examples for a media type
type MediaType struct {
	Schema   *RefOr[Schema]             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                        `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]*RefOr[Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Encoding map[string]*Encoding       `yaml:"encoding,omitempty" json:"encoding,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of MediaType in document order.
func (m *MediaType) Descend(w *walker.Walker) {
	w.Field("schema", m.Schema)
	w.Field("example", m.Example)
	walker.Map(w, "examples", m.Examples)
	walker.Map(w, "encoding", m.Encoding)
}

// Encoding describes how a single multipart or form property is serialized.
// Per-part headers are not modelled.
type Encoding struct {
	ContentType   string `yaml:"contentType,omitempty" json:"contentType,omitempty"`
	Style         string `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       *bool  `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved bool   `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of Encoding in document order.
func (e *Encoding) Descend(w *walker.Walker) {
	walker.NonZero(w, "contentType", e.ContentType)
	walker.NonZero(w, "style", e.Style)
	walker.Optional(w, "explode", e.Explode)
	walker.NonZero(w, "allowReserved", e.AllowReserved)
}

// Response describes a single response from an API operation
type Response struct {
	Description string                    `yaml:"description" json:"description"`
	Headers     map[string]*RefOr[Header] `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType     `yaml:"content,omitempty" json:"content,omitempty"`
	Links       map[string]*RefOr[Link]   `yaml:"links,omitempty" json:"links,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of Response in document order.
func (r *Response) Descend(w *walker.Walker) {
	w.Field("description", r.Description)
	walker.Map(w, "headers", r.Headers)
	walker.Map(w, "content", r.Content)
	walker.Map(w, "links", r.Links)
}

// Example represents an example value
type Example struct {
	Summary       string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	Value         any    `yaml:"value,omitempty" json:"value,omitempty"`
	ExternalValue string `yaml:"externalValue,omitempty" json:"externalValue,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of Example in document order.
func (e *Example) Descend(w *walker.Walker) {
	walker.NonZero(w, "summary", e.Summary)
	walker.NonZero(w, "description", e.Description)
	w.Field("value", e.Value)
	walker.NonZero(w, "externalValue", e.ExternalValue)
}

// Link represents a possible design-time link for a response
type Link struct {
	OperationRef string         `yaml:"operationRef,omitempty" json:"operationRef,omitempty"`
	OperationID  string         `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  any            `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	Server       *Server        `yaml:"server,omitempty" json:"server,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of Link in document order.
func (l *Link) Descend(w *walker.Walker) {
	walker.NonZero(w, "operationRef", l.OperationRef)
	walker.NonZero(w, "operationId", l.OperationID)
	walker.Map(w, "parameters", l.Parameters)
	w.Field("requestBody", l.RequestBody)
	walker.NonZero(w, "description", l.Description)
	w.Field("server", l.Server)
}
