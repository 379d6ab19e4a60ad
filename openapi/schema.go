package openapi

import "github.com/erraggy/oaskit/walker"

// Schema represents a JSON Schema (2020-12 subset used by OpenAPI 3.1)
type Schema struct {
	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	ReadOnly    bool   `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly   bool   `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Nullable    bool   `yaml:"nullable,omitempty" json:"nullable,omitempty"` // OAS 3.0 only

	// Type is a string or []any of strings
	Type    any    `yaml:"type,omitempty" json:"type,omitempty"`
	Format  string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum    []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Const   any    `yaml:"const,omitempty" json:"const,omitempty"`
	Default any    `yaml:"default,omitempty" json:"default,omitempty"`

	// Numeric validation. The exclusive bounds are bool in OAS 3.0 and numbers in 3.1.
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum any      `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum any      `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`

	// String validation
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       *RefOr[Schema]   `yaml:"items,omitempty" json:"items,omitempty"`
	PrefixItems []*RefOr[Schema] `yaml:"prefixItems,omitempty" json:"prefixItems,omitempty"`
	MaxItems    *int             `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int             `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems bool             `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties           map[string]*RefOr[Schema] `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties *RefOr[Schema]            `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	PatternProperties    map[string]*RefOr[Schema] `yaml:"patternProperties,omitempty" json:"patternProperties,omitempty"`
	MaxProperties        *int                      `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties        *int                      `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`
	Required             []string                  `yaml:"required,omitempty" json:"required,omitempty"`

	// AdditionalPropertiesAllowed holds the boolean form of additionalProperties.
	// It is nil when the keyword is absent or holds a schema.
	AdditionalPropertiesAllowed *bool `yaml:"-" json:"-"`

	// Composition
	AllOf []*RefOr[Schema] `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*RefOr[Schema] `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*RefOr[Schema] `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *RefOr[Schema]   `yaml:"not,omitempty" json:"not,omitempty"`

	// OpenAPI extensions
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	ExternalDocs  *ExternalDocs  `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Example       any            `yaml:"example,omitempty" json:"example,omitempty"`
	Examples      []any          `yaml:"examples,omitempty" json:"examples,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of Schema in document order.
func (s *Schema) Descend(w *walker.Walker) {
	walker.NonZero(w, "title", s.Title)
	walker.NonZero(w, "description", s.Description)
	walker.NonZero(w, "deprecated", s.Deprecated)
	walker.NonZero(w, "readOnly", s.ReadOnly)
	walker.NonZero(w, "writeOnly", s.WriteOnly)
	walker.NonZero(w, "nullable", s.Nullable)
	w.Field("type", s.Type)
	walker.NonZero(w, "format", s.Format)
	walker.Slice(w, "enum", s.Enum)
	w.Field("const", s.Const)
	w.Field("default", s.Default)
	walker.Optional(w, "multipleOf", s.MultipleOf)
	walker.Optional(w, "maximum", s.Maximum)
	w.Field("exclusiveMaximum", s.ExclusiveMaximum)
	walker.Optional(w, "minimum", s.Minimum)
	w.Field("exclusiveMinimum", s.ExclusiveMinimum)
	walker.Optional(w, "maxLength", s.MaxLength)
	walker.Optional(w, "minLength", s.MinLength)
	walker.NonZero(w, "pattern", s.Pattern)
	w.Field("items", s.Items)
	walker.Slice(w, "prefixItems", s.PrefixItems)
	walker.Optional(w, "maxItems", s.MaxItems)
	walker.Optional(w, "minItems", s.MinItems)
	walker.NonZero(w, "uniqueItems", s.UniqueItems)
	walker.Map(w, "properties", s.Properties)
	if s.AdditionalProperties != nil {
		w.Field("additionalProperties", s.AdditionalProperties)
	} else {
		walker.Optional(w, "additionalProperties", s.AdditionalPropertiesAllowed)
	}
	walker.Map(w, "patternProperties", s.PatternProperties)
	walker.Optional(w, "maxProperties", s.MaxProperties)
	walker.Optional(w, "minProperties", s.MinProperties)
	walker.Slice(w, "required", s.Required)
	walker.Slice(w, "allOf", s.AllOf)
	walker.Slice(w, "anyOf", s.AnyOf)
	walker.Slice(w, "oneOf", s.OneOf)
	w.Field("not", s.Not)
	w.Field("discriminator", s.Discriminator)
	w.Field("externalDocs", s.ExternalDocs)
	w.Field("example", s.Example)
	walker.Slice(w, "examples", s.Examples)
}

// Discriminator aids in serialization, deserialization, and validation of
// polymorphic schemas
type Discriminator struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Descend visits the fields of Discriminator in document order.
func (d *Discriminator) Descend(w *walker.Walker) {
	w.Field("propertyName", d.PropertyName)
	walker.Map(w, "mapping", d.Mapping)
}
