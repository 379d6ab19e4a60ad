package openapi

import (
	"maps"
	"slices"

	"github.com/erraggy/oaskit/walker"
)

// SecurityRequirement maps security scheme names to the scopes an operation
// needs. Names refer to entries in Components.SecuritySchemes.
type SecurityRequirement map[string][]string

// Descend visits each scheme's scope list by name in sorted order, then
// each scope by index.
func (r SecurityRequirement) Descend(w *walker.Walker) {
	for _, name := range slices.Sorted(maps.Keys(r)) {
		if w.Stopped() {
			return
		}
		walker.KeySlice(w, name, r[name])
	}
}

// SecurityScheme defines a security scheme that can be used by operations
type SecurityScheme struct {
	Type             string      `yaml:"type" json:"type"`
	Description      string      `yaml:"description,omitempty" json:"description,omitempty"`
	Name             string      `yaml:"name,omitempty" json:"name,omitempty"`
	In               string      `yaml:"in,omitempty" json:"in,omitempty"`
	Scheme           string      `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	BearerFormat     string      `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
	Flows            *OAuthFlows `yaml:"flows,omitempty" json:"flows,omitempty"`
	OpenIDConnectURL string      `yaml:"openIdConnectUrl,omitempty" json:"openIdConnectUrl,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of SecurityScheme in document order.
func (s *SecurityScheme) Descend(w *walker.Walker) {
	w.Field("type", s.Type)
	walker.NonZero(w, "description", s.Description)
	walker.NonZero(w, "name", s.Name)
	walker.NonZero(w, "in", s.In)
	walker.NonZero(w, "scheme", s.Scheme)
	walker.NonZero(w, "bearerFormat", s.BearerFormat)
	w.Field("flows", s.Flows)
	walker.NonZero(w, "openIdConnectUrl", s.OpenIDConnectURL)
}

// OAuthFlows allows configuration of the supported OAuth Flows
type OAuthFlows struct {
	Implicit          *OAuthFlow `yaml:"implicit,omitempty" json:"implicit,omitempty"`
	Password          *OAuthFlow `yaml:"password,omitempty" json:"password,omitempty"`
	ClientCredentials *OAuthFlow `yaml:"clientCredentials,omitempty" json:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow `yaml:"authorizationCode,omitempty" json:"authorizationCode,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of OAuthFlows in document order.
func (f *OAuthFlows) Descend(w *walker.Walker) {
	w.Field("implicit", f.Implicit)
	w.Field("password", f.Password)
	w.Field("clientCredentials", f.ClientCredentials)
	w.Field("authorizationCode", f.AuthorizationCode)
}

// OAuthFlow configuration details for a supported OAuth Flow
type OAuthFlow struct {
	AuthorizationURL string            `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         string            `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	RefreshURL       string            `yaml:"refreshUrl,omitempty" json:"refreshUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes" json:"scopes"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of OAuthFlow in document order.
func (f *OAuthFlow) Descend(w *walker.Walker) {
	walker.NonZero(w, "authorizationUrl", f.AuthorizationURL)
	walker.NonZero(w, "tokenUrl", f.TokenURL)
	walker.NonZero(w, "refreshUrl", f.RefreshURL)
	walker.Map(w, "scopes", f.Scopes)
}
