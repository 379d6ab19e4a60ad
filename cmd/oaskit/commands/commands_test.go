package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaskit/internal/testutil"
)

const petstore = `openapi: 3.1.0
info:
  title: Pets
  version: 1.0.0
tags:
  - name: pets
  - name: pets
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
components:
  schemas:
    Pet:
      type: object
`

const externalRoot = `openapi: 3.1.0
info:
  title: Pets
  version: 1.0.0
paths:
  /pets:
    get:
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: 'schemas/pet.yaml'
`

const externalPet = `type: object
properties:
  owner:
    $ref: 'owner.yaml'
`

const externalOwner = `type: object
properties:
  name:
    type: string
`

// capture redirects the command streams for one test.
func capture(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr, oldIn := Stdout, Stderr, Stdin
	Stdout, Stderr = stdout, stderr
	t.Cleanup(func() { Stdout, Stderr, Stdin = oldOut, oldErr, oldIn })
	return stdout, stderr
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]int{"paths": 2}

	var buf bytes.Buffer
	require.NoError(t, OutputStructured(&buf, data, FormatJSON))
	assert.JSONEq(t, `{"paths": 2}`, buf.String())

	buf.Reset()
	require.NoError(t, OutputStructured(&buf, data, FormatYAML))
	assert.Equal(t, "paths: 2\n\n", buf.String())

	assert.Error(t, OutputStructured(&buf, data, FormatText))
}

func TestFormatSpecPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSpecPath(StdinFilePath))
	assert.Equal(t, "api.yaml", FormatSpecPath("api.yaml"))
}

func TestSetupValidateFlags(t *testing.T) {
	fs, flags := SetupValidateFlags()

	assert.Equal(t, RulesDefault, flags.Rules)
	assert.Equal(t, FormatText, flags.Format)
	assert.False(t, flags.RequirePaths)
	assert.False(t, flags.External)

	require.NoError(t, fs.Parse([]string{"--rules", "blank", "--require-paths", "--external", "-q", "--format", "json", "test.yaml"}))
	assert.Equal(t, RulesBlank, flags.Rules)
	assert.True(t, flags.RequirePaths)
	assert.True(t, flags.External)
	assert.True(t, flags.Quiet)
	assert.Equal(t, "json", flags.Format)
	assert.Equal(t, "test.yaml", fs.Arg(0))
}

func TestHandleValidateArguments(t *testing.T) {
	capture(t)

	assert.Error(t, HandleValidate([]string{}))
	assert.NoError(t, HandleValidate([]string{"--help"}))
	assert.Error(t, HandleValidate([]string{"--format", "invalid", "test.yaml"}))
	assert.ErrorContains(t, HandleValidate([]string{"--rules", "strict", "test.yaml"}), "invalid rules")
	assert.ErrorContains(t, HandleValidate([]string{"missing.yaml"}), "parsing missing.yaml")
}

func TestHandleValidateReportsFailures(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"openapi.yaml": petstore})
	stdout, _ := capture(t)

	err := HandleValidate([]string{"--format", "json", filepath.Join(dir, "openapi.yaml")})
	require.ErrorIs(t, err, ErrValidationFailed)

	var report validationReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.False(t, report.Valid)
	assert.Equal(t, "3.1.0", report.Version)
	assert.Equal(t, 1, report.ErrorCount)
	assert.Equal(t, ".tags[1].name", report.Errors[0].Path)
	assert.Equal(t, `Tag name "pets" is not unique`, report.Errors[0].Message)
	assert.Equal(t, documentStats{Paths: 1, Operations: 1, Components: 1}, report.Stats)
}

func TestHandleValidateTextOutput(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"openapi.yaml": petstore})
	_, stderr := capture(t)

	err := HandleValidate([]string{filepath.Join(dir, "openapi.yaml")})
	require.ErrorIs(t, err, ErrValidationFailed)
	out := stderr.String()
	assert.Contains(t, out, "OAS Version: 3.1.0")
	assert.Contains(t, out, `.tags[1].name: Tag name "pets" is not unique`)
	assert.Contains(t, out, "✗ Validation failed: 1 error(s)")

	// Quiet mode prints nothing but still fails.
	stderr.Reset()
	err = HandleValidate([]string{"-q", filepath.Join(dir, "openapi.yaml")})
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Empty(t, stderr.String())
}

func TestHandleValidateBlankRequirePaths(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"openapi.yaml": petstore,
		"empty.yaml":   "openapi: 3.0.3\ninfo:\n  title: Empty\n  version: '1'\npaths: {}\n",
	})
	stdout, _ := capture(t)

	// The blank rule set does not check tag names.
	require.NoError(t, HandleValidate([]string{"--rules", "blank", "--require-paths", "--format", "yaml", filepath.Join(dir, "openapi.yaml")}))
	var report validationReport
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &report))
	assert.True(t, report.Valid)

	stdout.Reset()
	err := HandleValidate([]string{"--rules", "blank", "--require-paths", "--format", "json", filepath.Join(dir, "empty.yaml")})
	require.ErrorIs(t, err, ErrValidationFailed)
	report = validationReport{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	require.Len(t, report.Errors, 1)
	assert.Equal(t, ".paths", report.Errors[0].Path)
	assert.Equal(t, "Failed to satisfy: Document contains at least one path", report.Errors[0].Message)
}

func TestHandleValidateStrict(t *testing.T) {
	broken := strings.NewReplacer(`"200"`, `"999"`, "application/json:", "json:").Replace(petstore)
	dir := testutil.WriteFiles(t, map[string]string{"openapi.yaml": broken})
	stdout, _ := capture(t)

	err := HandleValidate([]string{"--rules", "blank", "--strict", "--format", "json", filepath.Join(dir, "openapi.yaml")})
	require.ErrorIs(t, err, ErrValidationFailed)
	var report validationReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	require.Len(t, report.Errors, 2)
	assert.Equal(t, ".paths['/pets'].get.responses['999']", report.Errors[0].Path)
	assert.Equal(t, ".paths['/pets'].get.responses['999'].content['json']", report.Errors[1].Path)
}

func TestHandleValidateStdin(t *testing.T) {
	stdout, _ := capture(t)
	Stdin = strings.NewReader(strings.Replace(petstore, "  - name: pets\n  - name: pets\n", "  - name: pets\n", 1))

	require.NoError(t, HandleValidate([]string{"--format", "json", StdinFilePath}))
	var report validationReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.True(t, report.Valid)
	assert.Equal(t, "<stdin>", report.Specification)
}

func TestHandleValidateExternal(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"openapi.yaml":       externalRoot,
		"schemas/pet.yaml":   externalPet,
		"schemas/owner.yaml": externalOwner,
	})
	stdout, _ := capture(t)

	// Without --external the reference to another file cannot be resolved.
	err := HandleValidate([]string{"--format", "json", filepath.Join(dir, "openapi.yaml")})
	require.ErrorIs(t, err, ErrValidationFailed)

	stdout.Reset()
	require.NoError(t, HandleValidate([]string{"--external", "--format", "json", filepath.Join(dir, "openapi.yaml")}))
	var report validationReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.True(t, report.Valid)
	assert.Equal(t, 2, report.Stats.Components)
}

func TestHandleDeref(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"openapi.yaml":       externalRoot,
		"schemas/pet.yaml":   externalPet,
		"schemas/owner.yaml": externalOwner,
	})
	stdout, stderr := capture(t)

	require.NoError(t, HandleDeref([]string{"--external", "--concurrency", "4", "--format", "json", filepath.Join(dir, "openapi.yaml")}))
	var report derefReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Equal(t, 2, report.ExternalComponents)
	assert.Len(t, report.ExternalDocuments, 2)
	assert.Equal(t, documentStats{Paths: 1, Operations: 1, Components: 2}, report.Stats)

	require.NoError(t, HandleDeref([]string{"--external", filepath.Join(dir, "openapi.yaml")}))
	assert.Contains(t, stderr.String(), "✓ All references resolved")
}

func TestHandleDerefErrors(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"openapi.yaml": externalRoot,
		"cycle.yaml": `openapi: 3.1.0
info:
  title: Cycle
  version: '1'
paths:
  /nodes:
    get:
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Node'
components:
  schemas:
    Node:
      type: object
      properties:
        next:
          $ref: '#/components/schemas/Node'
`,
	})
	capture(t)

	assert.Error(t, HandleDeref([]string{}))
	assert.NoError(t, HandleDeref([]string{"--help"}))
	assert.ErrorContains(t, HandleDeref([]string{"--concurrency", "0", "x.yaml"}), "invalid concurrency")
	assert.ErrorContains(t, HandleDeref([]string{filepath.Join(dir, "openapi.yaml")}), "dereferencing")
	assert.ErrorContains(t, HandleDeref([]string{filepath.Join(dir, "cycle.yaml")}), "circular reference")
}

func TestHandleDerefOutputFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"openapi.yaml":       externalRoot,
		"schemas/pet.yaml":   externalPet,
		"schemas/owner.yaml": externalOwner,
	})
	stdout, _ := capture(t)
	out := filepath.Join(dir, "deref.yaml")

	require.NoError(t, HandleDeref([]string{"--external", "--format", "yaml", "-o", out, filepath.Join(dir, "openapi.yaml")}))
	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var report derefReport
	require.NoError(t, yaml.Unmarshal(data, &report))
	assert.Equal(t, 2, report.ExternalComponents)

	assert.ErrorContains(t, HandleDeref([]string{"-o", out, filepath.Join(dir, "openapi.yaml")}), "-o requires")

	link := filepath.Join(dir, "link.yaml")
	require.NoError(t, os.Symlink(out, link))
	assert.ErrorContains(t, HandleDeref([]string{"--external", "--format", "json", "-o", link, filepath.Join(dir, "openapi.yaml")}), "symlink")
}

func TestHandleValidateOutputFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"openapi.yaml": petstore})
	stdout, _ := capture(t)
	out := filepath.Join(dir, "report.json")

	err := HandleValidate([]string{"--format", "json", "-o", out, filepath.Join(dir, "openapi.yaml")})
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var report validationReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.False(t, report.Valid)
	assert.Equal(t, 1, report.ErrorCount)
}
