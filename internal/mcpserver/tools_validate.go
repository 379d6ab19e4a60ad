package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaskit/validation"
)

type validateInput struct {
	Spec         specInput `json:"spec"                    jsonschema:"The OAS document to validate"`
	DefaultRules *bool     `json:"default_rules,omitempty" jsonschema:"Start from the default rule set (true) or from no rules (false)"`
	RequirePaths bool      `json:"require_paths,omitempty" jsonschema:"Fail when the document has no paths"`
	External     *bool     `json:"external,omitempty"      jsonschema:"Load external references into components before validating"`
	Offset       int       `json:"offset,omitempty"        jsonschema:"Skip the first N errors (for pagination)"`
	Limit        int       `json:"limit,omitempty"         jsonschema:"Maximum number of errors to return (default 100)"`
}

type validateIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type validateOutput struct {
	Valid      bool            `json:"valid"`
	Version    string          `json:"version"`
	Rules      int             `json:"rules"`
	ErrorCount int             `json:"error_count"`
	Returned   int             `json:"returned"`
	Errors     []validateIssue `json:"errors,omitempty"`
}

func handleValidate(ctx context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	defaultRules := cfg.ValidateDefaultRules
	if input.DefaultRules != nil {
		defaultRules = *input.DefaultRules
	}
	external := false
	if input.External != nil {
		external = *input.External
	}

	spec, err := input.Spec.resolve(ctx, external, cfg.LoadConcurrency)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	v := validation.Blank()
	if defaultRules {
		v = validation.Default()
	}
	if input.RequirePaths {
		v = v.Adding(validation.DocumentContainsPaths)
	}

	output := validateOutput{
		Valid:   true,
		Version: spec.result.Version,
		Rules:   v.Len(),
	}
	if err := v.Validate(spec.result.Document); err != nil {
		var failures validation.ErrorCollection
		if !errors.As(err, &failures) {
			return errResult(err), validateOutput{}, nil
		}
		output.Valid = false
		output.ErrorCount = len(failures)
		issues := make([]validateIssue, 0, len(failures))
		for _, f := range failures {
			issues = append(issues, validateIssue{Path: f.CodingPath.String(), Message: f.Reason})
		}
		output.Errors = paginate(issues, input.Offset, input.Limit)
	}
	output.Returned = len(output.Errors)

	return nil, output, nil
}
