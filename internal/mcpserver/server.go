// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oaskit validation and dereferencing as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaskit"
)

const serverInstructions = `oaskit MCP server: validates OpenAPI 3.x documents and resolves their references.

Configuration: defaults are read from OASKIT_* environment variables set in your MCP client config.

Key settings:
- OASKIT_VALIDATE_DEFAULT_RULES (default: true): start validate from the default rule set; false starts from no rules
- OASKIT_LOAD_ALLOW_HTTP (default: false): allow external references to be fetched over HTTP
- OASKIT_LOAD_CONCURRENCY (default: 4): parallel external loads
- OASKIT_LOAD_MAX_DOCUMENTS (default: 100): external documents loaded per call
- OASKIT_MAX_FILE_SIZE (default: 10MiB): size bound for the document and every external document
- OASKIT_RESULT_LIMIT (default: 100): errors returned per page
- OASKIT_ALLOW_PRIVATE_IPS (default: false): allow URLs that resolve to private addresses`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaskit", Version: oaskit.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an OpenAPI 3.x document. The default rules check unique tag names, operation ids and parameters, defined server variables and resolvable references. Errors carry the path of the failing node, e.g. .paths['/pets'].get.operationId. Set external=true to load references to other files first. Use offset/limit to paginate errors.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dereference",
		Description: "Resolve every reference reachable from an OpenAPI 3.x document's paths, webhooks and security requirements. Reports the first missing or circular reference. Set external=true to first move external references into components; the result lists the component slots created and the documents loaded.",
	}, handleDereference)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ResultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ResultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// pathPattern matches absolute filesystem paths so they can be stripped
// from error messages sent to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
