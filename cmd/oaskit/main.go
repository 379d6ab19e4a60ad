package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/cmd/oaskit/commands"
	"github.com/erraggy/oaskit/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	os.Exit(run(os.Args[1], os.Args[2:]))
}

// run dispatches one command and returns the process exit code.
func run(command string, args []string) int {
	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oaskit v%s\n\n%s\n", oaskit.Version(), oaskit.BuildInfo())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "validate":
		err = commands.HandleValidate(args)
	case "deref":
		err = commands.HandleDeref(args)
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = mcpserver.Run(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		return 1
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, commands.ErrValidationFailed):
		// Already reported.
		return 1
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

func printUsage() {
	fmt.Println(`oaskit - OpenAPI reference and validation tools

Usage:
  oaskit <command> [options]

Commands:
  validate    Validate an OpenAPI 3.x document with a rule set
  deref       Resolve every reference in a document, optionally loading external ones
  mcp         Serve the validate and dereference tools over MCP (stdio)
  version     Show version information
  help        Show this help message

Examples:
  oaskit validate openapi.yaml
  oaskit validate --rules blank --require-paths openapi.yaml
  oaskit deref --external --concurrency 8 api/openapi.yaml

Run 'oaskit <command> --help' for more information on a command.`)
}
