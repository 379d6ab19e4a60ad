package openapi

import "github.com/erraggy/oaskit/walker"

// Document is the root of an OpenAPI 3.x description.
type Document struct {
	OpenAPI           string                      `yaml:"openapi" json:"openapi"`
	Info              *Info                       `yaml:"info" json:"info"`
	JSONSchemaDialect string                      `yaml:"jsonSchemaDialect,omitempty" json:"jsonSchemaDialect,omitempty"`
	Servers           []*Server                   `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths             Paths                       `yaml:"paths,omitempty" json:"paths,omitempty"`
	Webhooks          map[string]*RefOr[PathItem] `yaml:"webhooks,omitempty" json:"webhooks,omitempty"`
	Components        Components                  `yaml:"components,omitempty" json:"components,omitempty"`
	Security          []SecurityRequirement       `yaml:"security,omitempty" json:"security,omitempty"`
	Tags              []*Tag                      `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs      *ExternalDocs               `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the top-level fields in document order. Extensions are
// leaves and are not visited.
func (d *Document) Descend(w *walker.Walker) {
	w.Field("openapi", d.OpenAPI)
	w.Field("info", d.Info)
	walker.NonZero(w, "jsonSchemaDialect", d.JSONSchemaDialect)
	walker.Slice(w, "servers", d.Servers)
	w.Field("paths", d.Paths)
	walker.Map(w, "webhooks", d.Webhooks)
	w.Field("components", &d.Components)
	walker.Slice(w, "security", d.Security)
	walker.Slice(w, "tags", d.Tags)
	w.Field("externalDocs", d.ExternalDocs)
}

// Paths maps path templates to path items.
type Paths map[string]*RefOr[PathItem]

// Descend visits each path item by template in sorted order.
func (p Paths) Descend(w *walker.Walker) {
	walker.Entries(w, p)
}
