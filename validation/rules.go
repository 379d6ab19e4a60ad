package validation

import (
	"fmt"
	"maps"
	"slices"

	"github.com/erraggy/oaskit/internal/httputil"
	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/openapi"
	"github.com/erraggy/oaskit/walker"
)

// DefaultRules returns the rules Default() registers, in order.
func DefaultRules() []Rule {
	return []Rule{
		TagNamesUnique,
		OperationIDsUnique,
		PathItemParametersUnique,
		OperationParametersUnique,
		ServerVariablesDefined,
		ParameterReferencesResolve,
		RequestBodyReferencesResolve,
		ResponseReferencesResolve,
		HeaderReferencesResolve,
		SchemaReferencesResolve,
	}
}

// TagNamesUnique reports every tag whose name repeats an earlier tag.
var TagNamesUnique = Custom(func(ctx Context[*openapi.Document]) []Error {
	seen := make(map[string]bool, len(ctx.Subject.Tags))
	var errs []Error
	for i, tag := range ctx.Subject.Tags {
		if tag == nil {
			continue
		}
		if seen[tag.Name] {
			errs = append(errs, ctx.ErrorAt(
				fmt.Sprintf("Tag name %q is not unique", tag.Name),
				walker.Field("tags"), walker.Index(i), walker.Field("name"),
			))
		}
		seen[tag.Name] = true
	}
	return errs
})

// OperationIDsUnique reports every operation whose operationId repeats one
// seen earlier in paths or webhooks.
var OperationIDsUnique = Custom(func(ctx Context[*openapi.Document]) []Error {
	firstSeen := make(map[string]string)
	var errs []Error
	check := func(field string, items map[string]*openapi.RefOr[openapi.PathItem]) {
		for _, key := range slices.Sorted(maps.Keys(items)) {
			item := items[key]
			if item == nil || item.Value == nil {
				continue
			}
			for _, method := range httputil.Methods {
				op := item.Value.Operation(method)
				if op == nil || op.OperationID == "" {
					continue
				}
				path := ctx.CodingPath.Append(walker.Field(field), walker.Key(key), walker.Field(method))
				if first, ok := firstSeen[op.OperationID]; ok {
					errs = append(errs, Error{
						Reason:     fmt.Sprintf("Operation id %q is not unique (first seen at %s)", op.OperationID, first),
						CodingPath: path.Append(walker.Field("operationId")),
					})
					continue
				}
				firstSeen[op.OperationID] = path.String()
			}
		}
	}
	check("paths", ctx.Subject.Paths)
	check("webhooks", ctx.Subject.Webhooks)
	return errs
})

// PathItemParametersUnique reports path item parameters that repeat an
// earlier (name, in) pair.
var PathItemParametersUnique = Custom(func(ctx Context[*openapi.PathItem]) []Error {
	return uniqueParameters(ctx, ctx.Subject.Parameters)
})

// OperationParametersUnique reports operation parameters that repeat an
// earlier (name, in) pair.
var OperationParametersUnique = Custom(func(ctx Context[*openapi.Operation]) []Error {
	return uniqueParameters(ctx, ctx.Subject.Parameters)
})

func uniqueParameters[S any](ctx Context[S], params []*openapi.RefOr[openapi.Parameter]) []Error {
	type identity struct{ name, in string }
	seen := make(map[identity]bool, len(params))
	var errs []Error
	for i, p := range params {
		// Unresolvable parameters are reported by ParameterReferencesResolve.
		param, err := openapi.Resolve(componentsOf(ctx.Document), p)
		if err != nil || param == nil {
			continue
		}
		id := identity{param.Name, param.In}
		if seen[id] {
			errs = append(errs, ctx.ErrorAt(
				fmt.Sprintf("Parameter %q in %s is not unique", param.Name, param.In),
				walker.Field("parameters"), walker.Index(i),
			))
		}
		seen[id] = true
	}
	return errs
}

// ServerVariablesDefined reports URL template variables that have no
// definition in the server's variables.
var ServerVariablesDefined = Custom(func(ctx Context[*openapi.Server]) []Error {
	var errs []Error
	for _, name := range pathutil.TemplateParams(ctx.Subject.URL) {
		if _, ok := ctx.Subject.Variables[name]; !ok {
			errs = append(errs, ctx.ErrorAt(
				fmt.Sprintf("Server variable %q is not defined", name),
				walker.Field("url"),
			))
		}
	}
	return errs
})

// referencesResolve returns a rule that reports every reference to a T
// that does not resolve in the document.
func referencesResolve[T openapi.Component]() Validation[*openapi.Reference[T]] {
	return Validation[*openapi.Reference[T]]{
		Description: fmt.Sprintf("References to %s resolve", openapi.KindOf[T]()),
		Check: func(ctx Context[*openapi.Reference[T]]) []Error {
			if _, err := lookupTarget(ctx.Document, *ctx.Subject); err != nil {
				return []Error{ctx.Error(lookupReason(*ctx.Subject, err))}
			}
			return nil
		},
	}
}

// Reference resolution rules, one per kind.
var (
	ParameterReferencesResolve   = referencesResolve[openapi.Parameter]()
	RequestBodyReferencesResolve = referencesResolve[openapi.RequestBody]()
	ResponseReferencesResolve    = referencesResolve[openapi.Response]()
	HeaderReferencesResolve      = referencesResolve[openapi.Header]()
	SchemaReferencesResolve      = referencesResolve[openapi.Schema]()
)

// DocumentContainsPaths fails at .paths when the document has no paths.
var DocumentContainsPaths = That("Document contains at least one path",
	func(ctx Context[openapi.Paths]) bool {
		return len(ctx.Subject) > 0
	})

// PathsContainOperations fails for a path item with no operations.
var PathsContainOperations = That("Path item contains at least one operation",
	func(ctx Context[*openapi.PathItem]) bool {
		return len(ctx.Subject.Operations()) > 0
	})

// OperationsContainResponses fails for an operation with no responses.
var OperationsContainResponses = That("Operation contains at least one response",
	func(ctx Context[*openapi.Operation]) bool {
		return len(ctx.Subject.Responses) > 0
	})

// ResponseCodesValid reports response keys that are neither a status code,
// a range such as 4XX, "default" nor an extension.
var ResponseCodesValid = Custom(func(ctx Context[*openapi.Operation]) []Error {
	var errs []Error
	for _, code := range slices.Sorted(maps.Keys(ctx.Subject.Responses)) {
		if !httputil.ValidateStatusCode(code) {
			errs = append(errs, ctx.ErrorAt(
				fmt.Sprintf("Response code %q is not valid", code),
				walker.Field("responses"), walker.Key(code),
			))
		}
	}
	return errs
})

// Media type rules for request and response bodies.
var (
	RequestBodyMediaTypesValid = Custom(func(ctx Context[*openapi.RequestBody]) []Error {
		return validMediaTypes(ctx, ctx.Subject.Content)
	})
	ResponseMediaTypesValid = Custom(func(ctx Context[*openapi.Response]) []Error {
		return validMediaTypes(ctx, ctx.Subject.Content)
	})
)

func validMediaTypes[S any](ctx Context[S], content map[string]*openapi.MediaType) []Error {
	var errs []Error
	for _, mt := range slices.Sorted(maps.Keys(content)) {
		if !httputil.IsValidMediaType(mt) {
			errs = append(errs, ctx.ErrorAt(
				fmt.Sprintf("Media type %q is not valid", mt),
				walker.Field("content"), walker.Key(mt),
			))
		}
	}
	return errs
}

func componentsOf(doc *openapi.Document) *openapi.Components {
	if doc == nil {
		return nil
	}
	return &doc.Components
}
