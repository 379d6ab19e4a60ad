package parser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaskit/oaserrors"
	"github.com/erraggy/oaskit/openapi"
)

const petstoreYAML = `openapi: 3.1.0
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        200:
          description: ok
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pets'
components:
  schemas:
    Pets:
      type: array
      items:
        $ref: '#/components/schemas/Pet'
    Pet:
      type: object
`

const petstoreJSON = `{
  "openapi": "3.0.3",
  "info": {"title": "Petstore", "version": "1.0.0"},
  "paths": {}
}`

func TestParseBytesYAML(t *testing.T) {
	result, err := ParseWithOptions(WithBytes([]byte(petstoreYAML)))
	require.NoError(t, err)

	assert.Equal(t, "ParseBytes.yaml", result.SourcePath)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "3.1.0", result.Version)
	assert.Equal(t, int64(len(petstoreYAML)), result.SourceSize)

	doc := result.Document
	require.NotNil(t, doc)
	assert.Equal(t, "Petstore", doc.Info.Title)

	op := doc.Paths["/pets"].Value.Get
	require.NotNil(t, op)
	// Unquoted status codes become string keys.
	require.Contains(t, op.Responses, "200")

	pets, err := openapi.Lookup(&doc.Components, openapi.NamedRef[openapi.Schema](openapi.MustComponentKey("Pets")))
	require.NoError(t, err)
	assert.Equal(t, "array", pets.Type)
	assert.True(t, pets.Items.IsRef())
}

func TestParseBytesJSON(t *testing.T) {
	result, err := ParseWithOptions(WithBytes([]byte(petstoreJSON)), WithSourceName("pets-api"))
	require.NoError(t, err)
	assert.Equal(t, "pets-api", result.SourcePath)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, "3.0.3", result.Version)
}

func TestParseReader(t *testing.T) {
	result, err := ParseWithOptions(WithReader(strings.NewReader(petstoreJSON)))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.json", result.SourcePath)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "openapi.yml")
	require.NoError(t, os.WriteFile(path, []byte(petstoreYAML), 0o600))

	result, err := ParseWithOptions(WithFilePath(path))
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)

	_, err = ParseWithOptions(WithFilePath(filepath.Join(dir, "missing.yaml")))
	assert.Error(t, err)
}

func TestParseURL(t *testing.T) {
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		if r.URL.Path != "/api" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(petstoreJSON))
	}))
	defer srv.Close()

	result, err := ParseWithOptions(
		WithFilePath(srv.URL+"/api"),
		WithHTTPClient(srv.Client()),
		WithContext(context.Background()),
	)
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.True(t, strings.HasPrefix(userAgent, "oaskit/"))

	_, err = ParseWithOptions(WithFilePath(srv.URL+"/missing"), WithHTTPClient(srv.Client()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestParseMaxFileSize(t *testing.T) {
	_, err := ParseWithOptions(WithBytes([]byte(petstoreYAML)), WithMaxFileSize(10))
	// Byte input is already in memory and is not size checked.
	require.NoError(t, err)

	_, err = ParseWithOptions(WithReader(strings.NewReader(petstoreYAML)), WithMaxFileSize(10))
	assert.True(t, errors.Is(err, oaserrors.ErrResourceLimit))

	_, err = ParseWithOptions(WithBytes([]byte(petstoreYAML)), WithMaxFileSize(-1))
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"swagger", "swagger: '2.0'\ninfo: {title: t, version: '1'}\n", "missing openapi version"},
		{"openapi 2", "openapi: 2.0.0\n", "unsupported OpenAPI version"},
		{"bad version", "openapi: three\n", "invalid version"},
		{"not a mapping", "- a\n- b\n", "failed to parse"},
		{"bad component key", "openapi: 3.1.0\ncomponents:\n  schemas:\n    'bad key': {}\n", "invalid document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWithOptions(WithBytes([]byte(tt.data)))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrParse))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseOptionErrors(t *testing.T) {
	_, err := ParseWithOptions()
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))

	_, err = ParseWithOptions(WithBytes([]byte(petstoreJSON)), WithFilePath("x.yaml"))
	assert.Contains(t, err.Error(), "exactly one input source")

	_, err = ParseWithOptions(WithReader(nil))
	assert.Error(t, err)

	_, err = ParseWithOptions(WithBytes(nil))
	assert.Error(t, err)

	_, err = ParseWithOptions(WithBytes([]byte(petstoreJSON)), WithSourceName(""))
	assert.Error(t, err)
}

func TestUnmarshalNormalizesKeys(t *testing.T) {
	raw, err := Unmarshal([]byte("a:\n  1: one\n  true: yes\nb:\n  - 2: two\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"1": "one", "true": "yes"}, raw["a"])
	assert.Equal(t, []any{map[string]any{"2": "two"}}, raw["b"])

	_, err = Unmarshal([]byte(""))
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("  \n{}")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("openapi: 3.1.0")))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromContent([]byte(" \n")))

	assert.Equal(t, SourceFormatYAML, detectFormatFromURL("https://x.test/api.yaml", "application/json"))
	assert.Equal(t, SourceFormatJSON, detectFormatFromURL("https://x.test/api", "Application/JSON; charset=utf-8"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromURL("https://x.test/api", "text/yaml"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromURL("https://x.test/api", ""))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KiB", FormatBytes(1024))
	assert.Equal(t, "10.0 MiB", FormatBytes(DefaultMaxFileSize))
}

func TestParseRebaseRefs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`openapi: 3.1.0
paths: {}
components:
  schemas:
    Pet:
      $ref: pet.yaml
    Pets:
      type: array
      items:
        $ref: '#/components/schemas/Pet'
`), 0o600))

	result, err := ParseWithOptions(WithFilePath(path), WithRebaseRefs(true))
	require.NoError(t, err)

	pet, ok := result.Document.Components.Schemas.Get(openapi.MustComponentKey("Pet"))
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "pet.yaml"), pet.Ref.String())

	pets, ok := result.Document.Components.Schemas.Get(openapi.MustComponentKey("Pets"))
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/Pet", pets.Value.Items.Ref.String())
}
