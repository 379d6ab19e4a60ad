package mcpserver

import (
	"context"
	"fmt"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type dereferenceInput struct {
	Spec        specInput `json:"spec"                  jsonschema:"The OAS document to dereference"`
	External    bool      `json:"external,omitempty"    jsonschema:"Move external references into components first"`
	Concurrency int       `json:"concurrency,omitempty" jsonschema:"Parallel external loads (default from OASKIT_LOAD_CONCURRENCY)"`
}

type dereferenceOutput struct {
	Version            string   `json:"version"`
	Paths              int      `json:"paths"`
	Webhooks           int      `json:"webhooks"`
	Operations         int      `json:"operations"`
	Components         int      `json:"components"`
	ExternalComponents int      `json:"external_components"`
	ExternalDocuments  []string `json:"external_documents,omitempty"`
}

func handleDereference(ctx context.Context, _ *mcp.CallToolRequest, input dereferenceInput) (*mcp.CallToolResult, dereferenceOutput, error) {
	concurrency := cfg.LoadConcurrency
	if input.Concurrency > 0 {
		concurrency = input.Concurrency
	}

	spec, err := input.Spec.resolve(ctx, input.External, concurrency)
	if err != nil {
		return errResult(err), dereferenceOutput{}, nil
	}
	doc := spec.result.Document

	resolved, err := doc.Dereferenced()
	if err != nil {
		return errResult(fmt.Errorf("dereferencing: %w", err)), dereferenceOutput{}, nil
	}

	output := dereferenceOutput{
		Version:    spec.result.Version,
		Paths:      len(resolved.Paths),
		Webhooks:   len(resolved.Webhooks),
		Components: doc.Components.Len(),
	}
	for _, item := range resolved.Paths {
		if item != nil && item.PathItem != nil {
			output.Operations += len(item.PathItem.Operations())
		}
	}
	if spec.external != nil {
		output.ExternalComponents = spec.external.Slots()
		for _, loc := range spec.loader.Documents() {
			output.ExternalDocuments = append(output.ExternalDocuments, input.Spec.display(loc))
		}
		slices.Sort(output.ExternalDocuments)
	}
	return nil, output, nil
}
