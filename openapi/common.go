package openapi

import "github.com/erraggy/oaskit/walker"

// Info provides metadata about the API
type Info struct {
	Title          string   `yaml:"title" json:"title"`
	Summary        string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string   `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License `yaml:"license,omitempty" json:"license,omitempty"`
	Version        string   `yaml:"version" json:"version"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of Info in document order.
func (i *Info) Descend(w *walker.Walker) {
	w.Field("title", i.Title)
	walker.NonZero(w, "summary", i.Summary)
	walker.NonZero(w, "description", i.Description)
	walker.NonZero(w, "termsOfService", i.TermsOfService)
	w.Field("contact", i.Contact)
	w.Field("license", i.License)
	w.Field("version", i.Version)
}

// Contact information for the exposed API
type Contact struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of Contact in document order.
func (c *Contact) Descend(w *walker.Walker) {
	walker.NonZero(w, "name", c.Name)
	walker.NonZero(w, "url", c.URL)
	walker.NonZero(w, "email", c.Email)
}

// License information for the exposed API
type License struct {
	Name       string `yaml:"name" json:"name"`
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	URL        string `yaml:"url,omitempty" json:"url,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of License in document order.
func (l *License) Descend(w *walker.Walker) {
	w.Field("name", l.Name)
	walker.NonZero(w, "identifier", l.Identifier)
	walker.NonZero(w, "url", l.URL)
}

// ExternalDocs allows referencing external documentation
type ExternalDocs struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string `yaml:"url" json:"url"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of ExternalDocs in document order.
func (e *ExternalDocs) Descend(w *walker.Walker) {
	walker.NonZero(w, "description", e.Description)
	w.Field("url", e.URL)
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name         string        `yaml:"name" json:"name"`
	Description  string        `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of Tag in document order.
func (t *Tag) Descend(w *walker.Walker) {
	w.Field("name", t.Name)
	walker.NonZero(w, "description", t.Description)
	w.Field("externalDocs", t.ExternalDocs)
}

// Server represents a Server object
type Server struct {
	URL         string                     `yaml:"url" json:"url"`
	Description string                     `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   map[string]*ServerVariable `yaml:"variables,omitempty" json:"variables,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of Server in document order.
func (s *Server) Descend(w *walker.Walker) {
	w.Field("url", s.URL)
	walker.NonZero(w, "description", s.Description)
	walker.Map(w, "variables", s.Variables)
}

// ServerVariable represents a variable for server URL template substitution
type ServerVariable struct {
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     string   `yaml:"default" json:"default"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of ServerVariable in document order.
func (v *ServerVariable) Descend(w *walker.Walker) {
	walker.Slice(w, "enum", v.Enum)
	w.Field("default", v.Default)
	walker.NonZero(w, "description", v.Description)
}
