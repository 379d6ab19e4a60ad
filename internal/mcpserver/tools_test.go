package mcpserver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaskit/internal/testutil"
)

const duplicateTags = `openapi: "3.0.3"
info:
  title: Test API
  version: "1.0.0"
tags:
  - name: pets
  - name: pets
  - name: pets
paths: {}
`

func testConfig() *serverConfig {
	return &serverConfig{
		ValidateDefaultRules: true,
		LoadConcurrency:      2,
		LoadMaxDocuments:     10,
		MaxFileSize:          1024 * 1024,
		MaxInlineSize:        1024 * 1024,
		ResultLimit:          100,
		MaxLimit:             1000,
	}
}

func writeSpecFiles(t *testing.T) string {
	t.Helper()
	return testutil.WriteFiles(t, map[string]string{
		"openapi.yaml": `openapi: 3.1.0
info:
  title: Pets
  version: 1.0.0
paths:
  /pets:
    get:
      responses:
        "200":
          $ref: 'common.yaml#/responses/PetList'
`,
		"common.yaml": `responses:
  PetList:
    description: ok
    content:
      application/json:
        schema:
          type: array
          items:
            $ref: 'pet.yaml'
`,
		"pet.yaml": "type: object\n",
	})
}

func TestValidateTool_ValidSpec(t *testing.T) {
	withConfig(t, testConfig())
	content := `openapi: "3.0.0"
info:
  title: Test API
  version: "1.0.0"
paths: {}
`
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{Spec: specInput{Content: content}})
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Equal(t, "3.0.0", output.Version)
	assert.Empty(t, output.Errors)

	// An empty paths map only fails when paths are required.
	_, output, err = handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{Spec: specInput{Content: content}, RequirePaths: true})
	require.NoError(t, err)
	assert.False(t, output.Valid)
	require.Len(t, output.Errors, 1)
	assert.Equal(t, ".paths", output.Errors[0].Path)
}

func TestValidateTool_ErrorsAndPagination(t *testing.T) {
	withConfig(t, testConfig())

	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{
		Spec:   specInput{Content: duplicateTags},
		Offset: 1,
		Limit:  1,
	})
	require.NoError(t, err)
	assert.False(t, output.Valid)
	assert.Equal(t, 2, output.ErrorCount)
	assert.Equal(t, 1, output.Returned)
	assert.Equal(t, ".tags[2].name", output.Errors[0].Path)
}

func TestValidateTool_BlankRules(t *testing.T) {
	c := testConfig()
	c.ValidateDefaultRules = false
	withConfig(t, c)

	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{Spec: specInput{Content: duplicateTags}})
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Zero(t, output.Rules)

	// The input overrides the configured default.
	on := true
	_, output, err = handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{Spec: specInput{Content: duplicateTags}, DefaultRules: &on})
	require.NoError(t, err)
	assert.False(t, output.Valid)
}

func TestValidateTool_External(t *testing.T) {
	withConfig(t, testConfig())
	dir := writeSpecFiles(t)
	spec := specInput{File: filepath.Join(dir, "openapi.yaml")}

	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{Spec: spec})
	require.NoError(t, err)
	assert.False(t, output.Valid, "external references do not resolve without loading")

	external := true
	_, output, err = handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{Spec: spec, External: &external})
	require.NoError(t, err)
	assert.True(t, output.Valid, "%v", output.Errors)
}

func TestValidateTool_InputErrors(t *testing.T) {
	c := testConfig()
	c.MaxInlineSize = 10
	withConfig(t, c)

	tests := []struct {
		name  string
		input specInput
	}{
		{"no input", specInput{}},
		{"two inputs", specInput{File: "a.yaml", Content: "openapi: 3.1.0"}},
		{"inline too large", specInput{Content: duplicateTags}},
		{"missing file", specInput{File: "does-not-exist.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{Spec: tt.input})
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
		})
	}
}

func TestDereferenceTool(t *testing.T) {
	withConfig(t, testConfig())
	dir := writeSpecFiles(t)
	spec := specInput{File: filepath.Join(dir, "openapi.yaml")}

	res, _, err := handleDereference(context.Background(), &mcp.CallToolRequest{}, dereferenceInput{Spec: spec})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)

	res, output, err := handleDereference(context.Background(), &mcp.CallToolRequest{}, dereferenceInput{Spec: spec, External: true, Concurrency: 3})
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Equal(t, "3.1.0", output.Version)
	assert.Equal(t, 1, output.Paths)
	assert.Equal(t, 1, output.Operations)
	assert.Equal(t, 2, output.ExternalComponents)
	assert.Equal(t, 2, output.Components)
	assert.Equal(t, []string{"common.yaml", "pet.yaml"}, output.ExternalDocuments)
}

func TestDereferenceTool_Cycle(t *testing.T) {
	withConfig(t, testConfig())
	content := `openapi: 3.1.0
info:
  title: Cycle
  version: "1"
paths:
  /a:
    get:
      parameters:
        - $ref: '#/components/parameters/A'
      responses:
        "200":
          description: ok
components:
  parameters:
    A:
      $ref: '#/components/parameters/B'
    B:
      $ref: '#/components/parameters/A'
`
	res, _, err := handleDereference(context.Background(), &mcp.CallToolRequest{}, dereferenceInput{Spec: specInput{Content: content}})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.True(t, res.IsError)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "circular reference")
}
