package openapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaskit/oaserrors"
)

func petstore() *Document {
	doc := &Document{
		OpenAPI: "3.1.0",
		Info:    &Info{Title: "Petstore", Version: "1.0.0"},
	}
	c := &doc.Components
	c.Schemas.SetValue(MustComponentKey("Pet"), &Schema{
		Type:     "object",
		Required: []string{"name"},
		Properties: map[string]*RefOr[Schema]{
			"name": Inline(&Schema{Type: "string"}),
			"tag":  RefTo(schemaRef("Tag")),
		},
	})
	c.Schemas.SetValue(MustComponentKey("Tag"), &Schema{Type: "string"})
	c.Schemas.SetValue(MustComponentKey("Pets"), &Schema{
		Type:  "array",
		Items: RefTo(schemaRef("Pet")),
	})
	c.Parameters.SetValue(MustComponentKey("limit"), &Parameter{
		Name:   "limit",
		In:     ParamInQuery,
		Schema: Inline(&Schema{Type: "integer"}),
	})
	c.Responses.SetValue(MustComponentKey("PetList"), &Response{
		Description: "pets",
		Content: map[string]*MediaType{
			"application/json": {Schema: RefTo(schemaRef("Pets"))},
		},
	})
	c.SecuritySchemes.SetValue(MustComponentKey("apiKey"), &SecurityScheme{Type: "apiKey", Name: "X-API-Key", In: "header"})

	doc.Paths = Paths{
		"/pets": Inline(&PathItem{
			Get: &Operation{
				OperationID: "listPets",
				Parameters:  []*RefOr[Parameter]{RefTo(NamedRef[Parameter](MustComponentKey("limit")))},
				Responses: map[string]*RefOr[Response]{
					"200": RefTo(NamedRef[Response](MustComponentKey("PetList"))),
				},
			},
		}),
	}
	doc.Security = []SecurityRequirement{{"apiKey": {}}}
	return doc
}

func TestDocumentDereferenced(t *testing.T) {
	doc := petstore()

	resolved, err := doc.Dereferenced()
	require.NoError(t, err)

	get := resolved.Paths["/pets"].Get
	require.NotNil(t, get)
	assert.Equal(t, "listPets", get.OperationID)
	require.Len(t, get.Parameters, 1)
	assert.Equal(t, "limit", get.Parameters[0].Name)
	assert.Equal(t, "integer", get.Parameters[0].Schema.Type)

	ok := get.Responses["200"]
	require.NotNil(t, ok)
	items := ok.Content["application/json"].Schema.Items
	require.NotNil(t, items)
	assert.Equal(t, "object", items.Type)
	assert.Equal(t, "string", items.Properties["tag"].Type)

	require.Len(t, resolved.Security, 1)
	assert.Equal(t, "X-API-Key", resolved.Security[0]["apiKey"].Scheme.Name)

	assert.Same(t, get, resolved.Paths["/pets"].Operation("get"))
	assert.Nil(t, resolved.Paths["/pets"].Operation("post"))
}

func TestDereferenceGeneric(t *testing.T) {
	doc := petstore()
	pets, err := Dereference[Schema, *DereferencedSchema](schemaRef("Pets"), &doc.Components)
	require.NoError(t, err)
	assert.Equal(t, "array", pets.Type)
	assert.Equal(t, []string{"name"}, pets.Items.Required)

	none, err := DereferenceRefOr[Schema, *DereferencedSchema](nil, &doc.Components)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestDereferenceCycle(t *testing.T) {
	var c Components
	c.Schemas.Set(MustComponentKey("a"), RefTo(schemaRef("b")))
	c.Schemas.Set(MustComponentKey("b"), RefTo(schemaRef("c")))
	c.Schemas.Set(MustComponentKey("c"), RefTo(schemaRef("a")))

	_, err := Dereference[Schema, *DereferencedSchema](schemaRef("a"), &c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrCircularReference))
}

func TestDereferenceRecursiveSchema(t *testing.T) {
	var c Components
	c.Schemas.SetValue(MustComponentKey("Node"), &Schema{
		Type: "object",
		Properties: map[string]*RefOr[Schema]{
			"next": RefTo(schemaRef("Node")),
		},
	})

	_, err := Dereference[Schema, *DereferencedSchema](schemaRef("Node"), &c)
	assert.True(t, errors.Is(err, oaserrors.ErrCircularReference))
}

func TestDereferenceSiblingsShareTarget(t *testing.T) {
	// Two siblings pointing at the same schema is not a cycle.
	var c Components
	c.Schemas.SetValue(MustComponentKey("Name"), &Schema{Type: "string"})
	s := &Schema{
		Properties: map[string]*RefOr[Schema]{
			"first": RefTo(schemaRef("Name")),
			"last":  RefTo(schemaRef("Name")),
		},
		AllOf: []*RefOr[Schema]{RefTo(schemaRef("Name")), RefTo(schemaRef("Name"))},
	}
	d, err := s.Dereferenced(&c)
	require.NoError(t, err)
	assert.Equal(t, "string", d.Properties["first"].Type)
	assert.Len(t, d.AllOf, 2)
}

func TestDereferenceMissing(t *testing.T) {
	doc := petstore()
	doc.Paths["/pets"].Value.Get.Parameters = append(doc.Paths["/pets"].Value.Get.Parameters,
		RefTo(NamedRef[Parameter](MustComponentKey("offset"))))

	_, err := doc.Dereferenced()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrMissingReference))
	assert.Contains(t, err.Error(), "#/components/parameters/offset")
}

func TestSecurityRequirementDereferenced(t *testing.T) {
	doc := petstore()

	_, err := SecurityRequirement{"oauth": {"read"}}.Dereferenced(&doc.Components)
	assert.True(t, errors.Is(err, oaserrors.ErrMissingReference))

	_, err = SecurityRequirement{"not a key": nil}.Dereferenced(&doc.Components)
	assert.True(t, errors.Is(err, oaserrors.ErrMissingReference))

	got, err := SecurityRequirement{"apiKey": {"a", "b"}}.Dereferenced(&doc.Components)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got["apiKey"].Scopes)
}

func TestDereferenceCallback(t *testing.T) {
	doc := petstore()
	doc.Components.PathItems.SetValue(MustComponentKey("Hook"), &PathItem{
		Post: &Operation{OperationID: "onEvent"},
	})
	cb := &Callback{Expressions: map[string]*RefOr[PathItem]{
		"{$request.body#/url}": RefTo(NamedRef[PathItem](MustComponentKey("Hook"))),
	}}

	d, err := cb.Dereferenced(&doc.Components)
	require.NoError(t, err)
	assert.Equal(t, "onEvent", d.Expressions["{$request.body#/url}"].Post.OperationID)
}
