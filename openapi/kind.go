package openapi

// ComponentKind names one of the per-kind tables under "components".
type ComponentKind string

// Component kinds, named as they appear in "#/components/<kind>/<name>".
const (
	KindSchemas         ComponentKind = "schemas"
	KindResponses       ComponentKind = "responses"
	KindParameters      ComponentKind = "parameters"
	KindExamples        ComponentKind = "examples"
	KindRequestBodies   ComponentKind = "requestBodies"
	KindHeaders         ComponentKind = "headers"
	KindSecuritySchemes ComponentKind = "securitySchemes"
	KindLinks           ComponentKind = "links"
	KindCallbacks       ComponentKind = "callbacks"
	KindPathItems       ComponentKind = "pathItems"
)

// ComponentKinds lists every kind in the order tables appear in [Components].
var ComponentKinds = []ComponentKind{
	KindSchemas,
	KindResponses,
	KindParameters,
	KindExamples,
	KindRequestBodies,
	KindHeaders,
	KindSecuritySchemes,
	KindLinks,
	KindCallbacks,
	KindPathItems,
}

// IsValid reports whether k is one of the defined kinds.
func (k ComponentKind) IsValid() bool {
	for _, known := range ComponentKinds {
		if k == known {
			return true
		}
	}
	return false
}

// String returns the kind name.
func (k ComponentKind) String() string {
	return string(k)
}

// Component is satisfied by every type that can be stored in [Components].
// It is a method set rather than a type union: the model types hold RefOr
// values constrained by Component, and a union would be recursive.
type Component interface {
	componentKind() ComponentKind
}

func (Schema) componentKind() ComponentKind         { return KindSchemas }
func (Response) componentKind() ComponentKind       { return KindResponses }
func (Parameter) componentKind() ComponentKind      { return KindParameters }
func (Example) componentKind() ComponentKind        { return KindExamples }
func (RequestBody) componentKind() ComponentKind    { return KindRequestBodies }
func (Header) componentKind() ComponentKind         { return KindHeaders }
func (SecurityScheme) componentKind() ComponentKind { return KindSecuritySchemes }
func (Link) componentKind() ComponentKind           { return KindLinks }
func (Callback) componentKind() ComponentKind       { return KindCallbacks }
func (PathItem) componentKind() ComponentKind       { return KindPathItems }

// KindOf returns the table kind that stores values of type T.
func KindOf[T Component]() ComponentKind {
	var zero T
	return zero.componentKind()
}
