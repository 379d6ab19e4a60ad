package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaskit/openapi"
	"github.com/erraggy/oaskit/walker"
)

func always[S any](ok bool) Predicate[S] {
	return func(Context[S]) bool { return ok }
}

func ctxOf[S any](subject S, doc *openapi.Document) Context[S] {
	return Context[S]{Document: doc, Subject: subject, CodingPath: walker.Path{walker.Field("here")}}
}

func TestAllAndAnyOf(t *testing.T) {
	ctx := ctxOf(1, nil)

	assert.True(t, All[int]()(ctx))
	assert.True(t, All(always[int](true), always[int](true))(ctx))
	assert.False(t, All(always[int](true), always[int](false))(ctx))

	assert.False(t, AnyOf[int]()(ctx))
	assert.True(t, AnyOf(always[int](false), always[int](true))(ctx))
	assert.False(t, AnyOf(always[int](false), always[int](false))(ctx))
}

func TestWhenComposesPredicates(t *testing.T) {
	rule := That("fails", always[int](false)).
		When(func(ctx Context[int]) bool { return ctx.Subject > 0 }).
		When(func(ctx Context[int]) bool { return ctx.Subject < 10 })

	assert.Len(t, rule.Apply(ctxOf(5, nil)), 1)
	assert.Empty(t, rule.Apply(ctxOf(0, nil)))
	assert.Empty(t, rule.Apply(ctxOf(10, nil)))
}

func TestTake(t *testing.T) {
	hasTitle := Take(func(i *openapi.Info) string { return i.Title },
		func(ctx Context[string]) bool { return ctx.Subject != "" })

	assert.True(t, hasTitle(ctxOf(&openapi.Info{Title: "pets"}, nil)))
	assert.False(t, hasTitle(ctxOf(&openapi.Info{}, nil)))
}

func TestNestedKeepsCodingPath(t *testing.T) {
	rule := Nested(func(i *openapi.Info) string { return i.Version },
		That("version is set", func(ctx Context[string]) bool { return ctx.Subject != "" }))

	errs := rule.Apply(ctxOf(&openapi.Info{}, nil))
	require.Len(t, errs, 1)
	assert.Equal(t, ".here", errs[0].CodingPath.String())
	assert.Equal(t, "Failed to satisfy: version is set", errs[0].Reason)
}

func TestUnwrapSkipsNil(t *testing.T) {
	rule := Unwrap(func(d *openapi.Document) *openapi.Info { return d.Info },
		That("title is set", func(ctx Context[*openapi.Info]) bool { return ctx.Subject.Title != "" }))

	assert.Empty(t, rule.Apply(ctxOf(&openapi.Document{}, nil)))
	assert.Len(t, rule.Apply(ctxOf(&openapi.Document{Info: &openapi.Info{}}, nil)), 1)
}

func petDocument() *openapi.Document {
	doc := &openapi.Document{OpenAPI: "3.1.0"}
	doc.Components.Schemas.SetValue(openapi.MustComponentKey("Pet"), &openapi.Schema{Type: "object"})
	doc.Components.Schemas.SetValue(openapi.MustComponentKey("Name"), &openapi.Schema{Type: "string"})
	return doc
}

func isObject(ctx Context[*openapi.Schema]) bool { return ctx.Subject.Type == "object" }

func TestLookup(t *testing.T) {
	doc := petDocument()
	rule := Lookup(func(r openapi.Reference[openapi.Schema]) openapi.Reference[openapi.Schema] { return r },
		That("is an object", isObject))

	pet := openapi.NamedRef[openapi.Schema](openapi.MustComponentKey("Pet"))
	assert.Empty(t, rule.Apply(ctxOf(pet, doc)))

	name := openapi.NamedRef[openapi.Schema](openapi.MustComponentKey("Name"))
	errs := rule.Apply(ctxOf(name, doc))
	require.Len(t, errs, 1)
	assert.Equal(t, "Failed to satisfy: is an object", errs[0].Reason)

	missing := openapi.NamedRef[openapi.Schema](openapi.MustComponentKey("Missing"))
	errs = rule.Apply(ctxOf(missing, doc))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Reason, "Failed to resolve #/components/schemas/Missing")
}

func TestLookupCycleIsARuleError(t *testing.T) {
	doc := &openapi.Document{OpenAPI: "3.1.0"}
	a := openapi.NamedRef[openapi.Schema](openapi.MustComponentKey("A"))
	b := openapi.NamedRef[openapi.Schema](openapi.MustComponentKey("B"))
	doc.Components.Schemas.Set(openapi.MustComponentKey("A"), openapi.RefTo(b))
	doc.Components.Schemas.Set(openapi.MustComponentKey("B"), openapi.RefTo(a))

	rule := Lookup(func(r openapi.Reference[openapi.Schema]) openapi.Reference[openapi.Schema] { return r })
	errs := rule.Apply(ctxOf(a, doc))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Reason, "circular reference")
}

func TestUnwrapAndLookup(t *testing.T) {
	doc := petDocument()
	rule := UnwrapAndLookup(func(r *openapi.RefOr[openapi.Schema]) *openapi.Reference[openapi.Schema] { return r.Ref },
		That("is an object", isObject))

	assert.Empty(t, rule.Apply(ctxOf(openapi.Inline(&openapi.Schema{}), doc)))

	ref := openapi.RefTo(openapi.NamedRef[openapi.Schema](openapi.MustComponentKey("Name")))
	assert.Len(t, rule.Apply(ctxOf(ref, doc)), 1)
}

func TestResolve(t *testing.T) {
	doc := petDocument()
	rule := Resolve(func(m *openapi.MediaType) *openapi.RefOr[openapi.Schema] { return m.Schema },
		That("is an object", isObject))

	tests := []struct {
		name   string
		schema *openapi.RefOr[openapi.Schema]
		errs   int
	}{
		{"nil", nil, 0},
		{"inline object", openapi.Inline(&openapi.Schema{Type: "object"}), 0},
		{"inline string", openapi.Inline(&openapi.Schema{Type: "string"}), 1},
		{"ref to object", openapi.RefTo(openapi.NamedRef[openapi.Schema](openapi.MustComponentKey("Pet"))), 0},
		{"ref to string", openapi.RefTo(openapi.NamedRef[openapi.Schema](openapi.MustComponentKey("Name"))), 1},
		{"missing ref", openapi.RefTo(openapi.NamedRef[openapi.Schema](openapi.MustComponentKey("Gone"))), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, rule.Apply(ctxOf(&openapi.MediaType{Schema: tt.schema}, doc)), tt.errs)
		})
	}
}

func TestLookupFollowsPathReferences(t *testing.T) {
	item := &openapi.PathItem{Get: &openapi.Operation{OperationID: "listPets"}}
	doc := &openapi.Document{OpenAPI: "3.1.0", Paths: openapi.Paths{"/pets": openapi.Inline(item)}}

	var got *openapi.PathItem
	rule := Lookup(func(r openapi.Reference[openapi.PathItem]) openapi.Reference[openapi.PathItem] { return r },
		Custom(func(ctx Context[*openapi.PathItem]) []Error {
			got = ctx.Subject
			return nil
		}))

	assert.Empty(t, rule.Apply(ctxOf(openapi.PathRef[openapi.PathItem]("paths", "/pets"), doc)))
	assert.Same(t, item, got)
}

func TestLookupWithoutDocument(t *testing.T) {
	rule := Lookup(func(r openapi.Reference[openapi.Schema]) openapi.Reference[openapi.Schema] { return r })
	errs := rule.Apply(ctxOf(openapi.NamedRef[openapi.Schema](openapi.MustComponentKey("Pet")), nil))
	assert.Len(t, errs, 1)
}
