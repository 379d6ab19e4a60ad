package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentMapOrder(t *testing.T) {
	var m ComponentMap[Schema]
	assert.Zero(t, m.Len())

	m.SetValue(MustComponentKey("Zebra"), &Schema{Type: "object"})
	m.SetValue(MustComponentKey("Apple"), &Schema{Type: "string"})
	m.SetValue(MustComponentKey("Mango"), &Schema{Type: "integer"})

	assert.Equal(t, []ComponentKey{
		MustComponentKey("Zebra"), MustComponentKey("Apple"), MustComponentKey("Mango"),
	}, m.Keys())

	// Overwriting keeps the original position.
	m.SetValue(MustComponentKey("Zebra"), &Schema{Type: "array"})
	assert.Equal(t, MustComponentKey("Zebra"), m.Keys()[0])
	got, ok := m.Get(MustComponentKey("Zebra"))
	require.True(t, ok)
	assert.Equal(t, "array", got.Value.Type)

	m.Delete(MustComponentKey("Apple"))
	assert.Equal(t, []ComponentKey{MustComponentKey("Zebra"), MustComponentKey("Mango")}, m.Keys())
	assert.False(t, m.Has(MustComponentKey("Apple")))
	assert.Equal(t, 2, m.Len())

	var visited []string
	for k := range m.All() {
		visited = append(visited, k.String())
	}
	assert.Equal(t, []string{"Zebra", "Mango"}, visited)
}

func TestComponentMapNil(t *testing.T) {
	var m *ComponentMap[Schema]
	assert.Zero(t, m.Len())
	assert.Nil(t, m.Keys())
	assert.False(t, m.Has(MustComponentKey("Pet")))
	m.Delete(MustComponentKey("Pet"))
	for range m.All() {
		t.Fatal("nil map yielded an entry")
	}
}

func TestComponents(t *testing.T) {
	var c Components
	assert.True(t, c.IsEmpty())

	c.Schemas.SetValue(MustComponentKey("Pet"), &Schema{})
	c.Responses.SetValue(MustComponentKey("NotFound"), &Response{Description: "not found"})
	assert.False(t, c.IsEmpty())
	assert.Equal(t, 2, c.Len())

	assert.Equal(t, []ComponentKey{MustComponentKey("Pet")}, c.KeysOf(KindSchemas))
	assert.True(t, c.HasKey(KindResponses, MustComponentKey("NotFound")))
	assert.False(t, c.HasKey(KindSchemas, MustComponentKey("NotFound")))
	assert.Nil(t, c.KeysOf(ComponentKind("widgets")))

	assert.Same(t, &c.Schemas, TableOf[Schema](&c))
	assert.Same(t, &c.PathItems, TableOf[PathItem](&c))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindSchemas, KindOf[Schema]())
	assert.Equal(t, KindResponses, KindOf[Response]())
	assert.Equal(t, KindParameters, KindOf[Parameter]())
	assert.Equal(t, KindExamples, KindOf[Example]())
	assert.Equal(t, KindRequestBodies, KindOf[RequestBody]())
	assert.Equal(t, KindHeaders, KindOf[Header]())
	assert.Equal(t, KindSecuritySchemes, KindOf[SecurityScheme]())
	assert.Equal(t, KindLinks, KindOf[Link]())
	assert.Equal(t, KindCallbacks, KindOf[Callback]())
	assert.Equal(t, KindPathItems, KindOf[PathItem]())

	var c Components
	assert.Same(t, &c.Examples, TableOf[Example](&c))
	assert.Same(t, &c.SecuritySchemes, TableOf[SecurityScheme](&c))
	assert.Same(t, &c.Callbacks, TableOf[Callback](&c))

	for _, k := range ComponentKinds {
		assert.True(t, k.IsValid(), k)
	}
	assert.False(t, ComponentKind("widgets").IsValid())
}
