// Package main generates decodeFromMap methods for openapi package types.
//
// This generator uses go/types to introspect openapi package struct types that
// have an Extra map[string]any field, and generates decodeFromMap methods that
// populate struct fields from the map[string]any a YAML or JSON decoder
// produces. Reference-or-value fields become *RefOr[T] and component tables
// become ComponentMap[T].
//
// Usage:
//
//	go run ./internal/codegen/decode
//	go run ./internal/codegen/decode -check  # verify freshness
//
// Or via go generate:
//
//	//go:generate go run ../internal/codegen/decode
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
)

// decodeTarget holds metadata for a single struct type that will get a
// generated decodeFromMap method.
type decodeTarget struct {
	Name   string
	Fields []fieldInfo
}

// fieldInfo describes one struct field and the decode strategy to use.
type fieldInfo struct {
	FieldName string // Go field name
	JSONKey   string // JSON/YAML key from struct tag
	Strategy  string // decode strategy key
	ElemType  string // element type name for slices/maps of OAS structs
}

// polymorphicFields maps "StructName.FieldName" to true for *RefOr[Schema]
// fields that may also hold a boolean. The boolean form is stored in the
// sibling field named FieldName+"Allowed".
var polymorphicFields = map[string]bool{
	"Schema.AdditionalProperties": true,
}

// handWritten lists types whose decodeFromMap is written by hand because
// their document form is not a plain record.
var handWritten = map[string]bool{
	"Callback": true,
}

// oasStructTypes is populated during discovery with the names of all struct
// types in the openapi package that have an Extra map[string]any field.
var oasStructTypes = map[string]bool{}

func main() {
	check := flag.Bool("check", false, "Compare generated output with existing file and exit non-zero if stale")
	flag.Parse()

	// Determine paths relative to working directory. The generator can be
	// invoked from the project root (go run ./internal/codegen/decode) or
	// from the openapi directory (go generate).
	pkgDir := "openapi"
	outputPath := filepath.Join("openapi", "zz_generated_decode.go")
	if _, err := os.Stat("openapi"); os.IsNotExist(err) {
		// Likely running from the openapi directory via go generate
		pkgDir = "."
		outputPath = "zz_generated_decode.go"
	}

	// Resolve the absolute path for the overlay key. go/packages uses
	// absolute paths internally, so the overlay key must match.
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		fatal("failed to resolve absolute path for %s: %v", outputPath, err)
	}

	// Use an overlay to replace the generated file with a minimal stub.
	// This prevents stale method signatures from causing type errors
	// during package loading, while keeping decode.go compilable by
	// providing the methods it references.
	stub := []byte(`package openapi

func (x *Document) decodeFromMap(d *decoder, m map[string]any)       {}
func (x *PathItem) decodeFromMap(d *decoder, m map[string]any)       {}
func (x *Schema) decodeFromMap(d *decoder, m map[string]any)         {}
func (x *Response) decodeFromMap(d *decoder, m map[string]any)       {}
func (x *Parameter) decodeFromMap(d *decoder, m map[string]any)      {}
func (x *Example) decodeFromMap(d *decoder, m map[string]any)        {}
func (x *RequestBody) decodeFromMap(d *decoder, m map[string]any)    {}
func (x *Header) decodeFromMap(d *decoder, m map[string]any)         {}
func (x *SecurityScheme) decodeFromMap(d *decoder, m map[string]any) {}
func (x *Link) decodeFromMap(d *decoder, m map[string]any)           {}
`)

	// Load the openapi package using go/types
	cfg := &packages.Config{
		Mode:    packages.NeedTypes | packages.NeedSyntax | packages.NeedName,
		Dir:     pkgDir,
		Overlay: map[string][]byte{absOutput: stub},
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		fatal("failed to load openapi package: %v", err)
	}
	if len(pkgs) == 0 {
		fatal("no packages found")
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		for _, e := range pkg.Errors {
			fmt.Fprintf(os.Stderr, "package error: %v\n", e)
		}
		fatal("package has errors")
	}

	scope := pkg.Types.Scope()

	// Phase 1: Discover all struct types with Extra map[string]any field
	var targetNames []string
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		tn, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}
		st, ok := tn.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}
		if hasExtraField(st) {
			oasStructTypes[name] = true
			targetNames = append(targetNames, name)
		}
	}
	sort.Strings(targetNames)

	// Phase 2: For each discovered type, introspect fields and classify
	var targets []decodeTarget
	for _, name := range targetNames {
		if handWritten[name] {
			continue
		}

		obj := scope.Lookup(name)
		st := obj.Type().Underlying().(*types.Struct)

		var fields []fieldInfo
		for i := range st.NumFields() {
			f := st.Field(i)
			tag := st.Tag(i)

			// Skip unexported fields
			if !f.Exported() {
				continue
			}

			fieldName := f.Name()

			// Parse the JSON key from the struct tag
			jsonKey := parseJSONKey(tag)
			if jsonKey == "" {
				// No json tag or json:"-": skip
				continue
			}

			// Classify the field type into a decode strategy
			strategy, elemType := classifyField(name, fieldName, f.Type())
			if strategy == "" {
				// Warn about skipped fields so silent data loss is visible.
				// Extra is handled by the template.
				if fieldName != "Extra" {
					fmt.Fprintf(os.Stderr, "warning: skipping %s.%s (type %s): no decode strategy\n",
						name, fieldName, types.TypeString(f.Type(), nil))
				}
				continue
			}

			fields = append(fields, fieldInfo{
				FieldName: fieldName,
				JSONKey:   jsonKey,
				Strategy:  strategy,
				ElemType:  elemType,
			})
		}

		targets = append(targets, decodeTarget{
			Name:   name,
			Fields: fields,
		})
	}

	// Phase 3: Generate code using template
	tmpl, err := template.New("decode").Parse(decodeTemplate)
	if err != nil {
		fatal("failed to parse template: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, targets); err != nil {
		fatal("failed to execute template: %v", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fatal("failed to format generated code: %v\n\nGenerated code:\n%s", err, buf.String())
	}

	if *check {
		existing, err := os.ReadFile(outputPath)
		if err != nil {
			fatal("failed to read existing file %s: %v", outputPath, err)
		}
		if !bytes.Equal(existing, formatted) {
			fatal("%s is stale; run 'go generate ./openapi/' to regenerate", outputPath)
		}
		fmt.Printf("%s is up to date\n", outputPath)
		return
	}

	if err := os.WriteFile(outputPath, formatted, 0644); err != nil {
		fatal("failed to write %s: %v", outputPath, err)
	}
	fmt.Printf("Generated %s\n", outputPath)
}

// hasExtraField returns true if the struct has a field named "Extra" of type
// map[string]any.
func hasExtraField(st *types.Struct) bool {
	for i := range st.NumFields() {
		f := st.Field(i)
		if f.Name() != "Extra" {
			continue
		}
		mt, ok := f.Type().(*types.Map)
		if !ok {
			return false
		}
		keyBasic, ok := mt.Key().(*types.Basic)
		if !ok || keyBasic.Kind() != types.String {
			return false
		}
		// Use Unalias because `any` is a type alias for interface{} in Go 1.22+
		_, ok = types.Unalias(mt.Elem()).(*types.Interface)
		return ok
	}
	return false
}

// parseJSONKey extracts the JSON key from a struct tag string.
// Returns "" for fields tagged json:"-" or without a json tag.
func parseJSONKey(tag string) string {
	st := reflect.StructTag(tag)
	jsonTag := st.Get("json")
	if jsonTag == "" || jsonTag == "-" {
		return ""
	}
	key, _, _ := strings.Cut(jsonTag, ",")
	if key == "-" {
		return ""
	}
	return key
}

// classifyField determines the decode strategy for a field based on its Go type.
// Returns the strategy key and an optional element type name (for OAS struct
// slices/maps and RefOr/ComponentMap type arguments). Returns ("", "") for
// fields that should be skipped.
func classifyField(structName, fieldName string, t types.Type) (strategy, elemType string) {
	// 1. Check polymorphic override (Schema.AdditionalProperties)
	if polymorphicFields[structName+"."+fieldName] {
		return "polymorphic_schema", "Schema"
	}

	// 2. Check for Extra field, handled separately
	if fieldName == "Extra" {
		return "", ""
	}

	// Unwrap type aliases (e.g., `any` is an alias for `interface{}` in Go 1.22+)
	t = types.Unalias(t)

	switch typ := t.(type) {
	case *types.Basic:
		switch typ.Kind() {
		case types.String:
			return "string", ""
		case types.Bool:
			return "bool", ""
		default:
			return "", ""
		}

	case *types.Pointer:
		// *bool, *int, *float64, *RefOr[T], *OASStruct
		elem := typ.Elem()
		if basic, ok := elem.(*types.Basic); ok {
			switch basic.Kind() {
			case types.Bool:
				return "ptr_bool", ""
			case types.Int:
				return "ptr_int", ""
			case types.Float64:
				return "ptr_float64", ""
			}
		}
		if arg, ok := refOrArg(elem); ok {
			return "refor_ptr", arg
		}
		if named, ok := elem.(*types.Named); ok {
			name := named.Obj().Name()
			if oasStructTypes[name] {
				return "oas_ptr", name
			}
		}
		return "", ""

	case *types.Interface:
		return "any", ""

	case *types.Named:
		name := typ.Obj().Name()
		switch {
		case name == "Paths":
			return "paths", ""
		case name == "ComponentMap" && typ.TypeArgs().Len() == 1:
			return "component_map", typeArgName(typ)
		case oasStructTypes[name]:
			return "oas_value", name
		}
		return "", ""

	case *types.Slice:
		elem := types.Unalias(typ.Elem())

		// []string
		if basic, ok := elem.(*types.Basic); ok && basic.Kind() == types.String {
			return "string_slice", ""
		}

		// []any
		if _, ok := elem.(*types.Interface); ok {
			return "any_slice", ""
		}

		// []*RefOr[T] or []*T where T is an OAS struct
		if ptr, ok := elem.(*types.Pointer); ok {
			if arg, ok := refOrArg(ptr.Elem()); ok {
				return "refor_slice", arg
			}
			if named, ok := ptr.Elem().(*types.Named); ok {
				name := named.Obj().Name()
				if oasStructTypes[name] {
					return "oas_slice", name
				}
			}
		}

		// []SecurityRequirement
		if named, ok := elem.(*types.Named); ok {
			if named.Obj().Name() == "SecurityRequirement" {
				return "security_reqs", ""
			}
		}

		return "", ""

	case *types.Map:
		keyBasic, ok := typ.Key().(*types.Basic)
		if !ok || keyBasic.Kind() != types.String {
			return "", ""
		}

		valType := types.Unalias(typ.Elem())

		// map[string]string
		if basic, ok := valType.(*types.Basic); ok && basic.Kind() == types.String {
			return "string_map", ""
		}

		// map[string]any
		if _, ok := valType.(*types.Interface); ok {
			return "any_map", ""
		}

		// map[string]*RefOr[T] or map[string]*T where T is OAS struct
		if ptr, ok := valType.(*types.Pointer); ok {
			if arg, ok := refOrArg(ptr.Elem()); ok {
				return "refor_map", arg
			}
			if named, ok := ptr.Elem().(*types.Named); ok {
				name := named.Obj().Name()
				if oasStructTypes[name] {
					return "oas_map", name
				}
			}
		}

		return "", ""
	}

	return "", ""
}

// refOrArg reports whether t is RefOr[X] and returns X's name.
func refOrArg(t types.Type) (string, bool) {
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Name() != "RefOr" || named.TypeArgs().Len() != 1 {
		return "", false
	}
	return typeArgName(named), true
}

func typeArgName(named *types.Named) string {
	arg, ok := named.TypeArgs().At(0).(*types.Named)
	if !ok {
		return ""
	}
	return arg.Obj().Name()
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

const decodeTemplate = `// Code generated by internal/codegen/decode; DO NOT EDIT.
//
// This file contains decodeFromMap methods for openapi package types.
// These methods populate struct fields directly from the map[string]any
// produced by a YAML or JSON decoder.

package openapi
{{range .}}
func (x *{{.Name}}) decodeFromMap(d *decoder, m map[string]any) {
{{- range .Fields}}
{{- if eq .Strategy "string"}}
	x.{{.FieldName}}, _ = m["{{.JSONKey}}"].(string)
{{- else if eq .Strategy "bool"}}
	x.{{.FieldName}}, _ = m["{{.JSONKey}}"].(bool)
{{- else if eq .Strategy "ptr_bool"}}
	x.{{.FieldName}} = mapGetBoolPtr(m, "{{.JSONKey}}")
{{- else if eq .Strategy "ptr_int"}}
	x.{{.FieldName}} = mapGetIntPtr(m, "{{.JSONKey}}")
{{- else if eq .Strategy "ptr_float64"}}
	x.{{.FieldName}} = mapGetFloat64Ptr(m, "{{.JSONKey}}")
{{- else if eq .Strategy "any"}}
	x.{{.FieldName}} = m["{{.JSONKey}}"]
{{- else if eq .Strategy "polymorphic_schema"}}
	x.{{.FieldName}}, x.{{.FieldName}}Allowed = decodeSchemaOrBool(d, m["{{.JSONKey}}"])
{{- else if eq .Strategy "string_slice"}}
	x.{{.FieldName}} = mapGetStringSlice(m, "{{.JSONKey}}")
{{- else if eq .Strategy "any_slice"}}
	if arr, ok := m["{{.JSONKey}}"].([]any); ok {
		x.{{.FieldName}} = arr
	}
{{- else if eq .Strategy "oas_slice"}}
	if arr, ok := m["{{.JSONKey}}"].([]any); ok {
		x.{{.FieldName}} = make([]*{{.ElemType}}, 0, len(arr))
		for _, item := range arr {
			if sub, ok := item.(map[string]any); ok {
				elem := new({{.ElemType}})
				elem.decodeFromMap(d, sub)
				x.{{.FieldName}} = append(x.{{.FieldName}}, elem)
			}
		}
	}
{{- else if eq .Strategy "oas_ptr"}}
	if sub, ok := m["{{.JSONKey}}"].(map[string]any); ok {
		x.{{.FieldName}} = new({{.ElemType}})
		x.{{.FieldName}}.decodeFromMap(d, sub)
	}
{{- else if eq .Strategy "oas_value"}}
	if sub, ok := m["{{.JSONKey}}"].(map[string]any); ok {
		x.{{.FieldName}}.decodeFromMap(d, sub)
	}
{{- else if eq .Strategy "oas_map"}}
	if sub, ok := m["{{.JSONKey}}"].(map[string]any); ok {
		x.{{.FieldName}} = make(map[string]*{{.ElemType}}, len(sub))
		for k, v := range sub {
			if vm, ok := v.(map[string]any); ok {
				elem := new({{.ElemType}})
				elem.decodeFromMap(d, vm)
				x.{{.FieldName}}[k] = elem
			}
		}
	}
{{- else if eq .Strategy "refor_ptr"}}
	x.{{.FieldName}} = decodeRefOr[{{.ElemType}}](d, m["{{.JSONKey}}"])
{{- else if eq .Strategy "refor_slice"}}
	x.{{.FieldName}} = decodeRefOrSlice[{{.ElemType}}](d, m["{{.JSONKey}}"])
{{- else if eq .Strategy "refor_map"}}
	x.{{.FieldName}} = decodeRefOrMap[{{.ElemType}}](d, m["{{.JSONKey}}"])
{{- else if eq .Strategy "component_map"}}
	if sub, ok := m["{{.JSONKey}}"].(map[string]any); ok {
		x.{{.FieldName}} = decodeComponentMap[{{.ElemType}}](d, "{{.JSONKey}}", sub)
	}
{{- else if eq .Strategy "string_map"}}
	x.{{.FieldName}} = mapGetStringMap(m, "{{.JSONKey}}")
{{- else if eq .Strategy "any_map"}}
	if sub, ok := m["{{.JSONKey}}"].(map[string]any); ok {
		x.{{.FieldName}} = sub
	}
{{- else if eq .Strategy "paths"}}
	if sub, ok := m["{{.JSONKey}}"].(map[string]any); ok {
		x.{{.FieldName}} = decodePaths(d, sub)
	}
{{- else if eq .Strategy "security_reqs"}}
	if arr, ok := m["{{.JSONKey}}"].([]any); ok {
		x.{{.FieldName}} = decodeSecurityRequirements(arr)
	}
{{- end}}
{{- end}}
	x.Extra = extractExtensionsFromMap(m)
}
{{end}}`
