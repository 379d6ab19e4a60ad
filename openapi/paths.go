package openapi

import (
	"github.com/erraggy/oaskit/internal/httputil"
	"github.com/erraggy/oaskit/walker"
)

// PathItem describes the operations available on a single path
type PathItem struct {
	Summary     string              `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string              `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation          `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation          `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation          `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation          `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation          `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation          `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation          `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation          `yaml:"trace,omitempty" json:"trace,omitempty"`
	Servers     []*Server           `yaml:"servers,omitempty" json:"servers,omitempty"`
	Parameters  []*RefOr[Parameter] `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the path item fields, with operations in httputil.Methods order.
func (p *PathItem) Descend(w *walker.Walker) {
	walker.NonZero(w, "summary", p.Summary)
	walker.NonZero(w, "description", p.Description)
	for _, method := range httputil.Methods {
		w.Field(method, p.Operation(method))
	}
	walker.Slice(w, "servers", p.Servers)
	walker.Slice(w, "parameters", p.Parameters)
}

// Operation returns the operation for a lower-case HTTP method, or nil.
func (p *PathItem) Operation(method string) *Operation {
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

// Operations returns the defined operations keyed by lower-case method.
func (p *PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation)
	for _, method := range httputil.Methods {
		if op := p.Operation(method); op != nil {
			ops[method] = op
		}
	}
	return ops
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string                    `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      string                      `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string                      `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs               `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  string                      `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   []*RefOr[Parameter]         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  *RefOr[RequestBody]         `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses    map[string]*RefOr[Response] `yaml:"responses,omitempty" json:"responses,omitempty"`
	Callbacks    map[string]*RefOr[Callback] `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
	Deprecated   bool                        `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security     []SecurityRequirement       `yaml:"security,omitempty" json:"security,omitempty"`
	Servers      []*Server                   `yaml:"servers,omitempty" json:"servers,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of Operation in document order.
func (o *Operation) Descend(w *walker.Walker) {
	walker.Slice(w, "tags", o.Tags)
	walker.NonZero(w, "summary", o.Summary)
	walker.NonZero(w, "description", o.Description)
	w.Field("externalDocs", o.ExternalDocs)
	walker.NonZero(w, "operationId", o.OperationID)
	walker.Slice(w, "parameters", o.Parameters)
	w.Field("requestBody", o.RequestBody)
	walker.Map(w, "responses", o.Responses)
	walker.Map(w, "callbacks", o.Callbacks)
	walker.NonZero(w, "deprecated", o.Deprecated)
	walker.Slice(w, "security", o.Security)
	walker.Slice(w, "servers", o.Servers)
}

// Callback maps runtime expressions to the path items the API may call.
type Callback struct {
	Expressions map[string]*RefOr[PathItem] `yaml:",inline" json:"-"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:"-" json:"-"`
}

// Descend visits each expression by key at the callback's own path, since
// on the wire a callback is a plain map.
func (c *Callback) Descend(w *walker.Walker) {
	walker.Entries(w, c.Expressions)
}
