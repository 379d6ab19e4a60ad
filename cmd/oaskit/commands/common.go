// Package commands provides CLI command handlers for oaskit.
package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/internal/cliutil"
	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Streams the handlers read from and write to. Tests replace them.
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(w, "%s\n", out)
	return nil
}

// WriteStructuredFile writes data in the given format to path, creating or
// truncating it with mode 0600. Symlinked targets are refused.
func WriteStructuredFile(path string, data any, format string) error {
	target, err := pathutil.SanitizeOutputPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := OutputStructured(&buf, data, format); err != nil {
		return err
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// emitStructured writes a structured report to the output file when one is
// set, otherwise to Stdout.
func emitStructured(output string, data any, format string) error {
	if output == "" {
		return OutputStructured(Stdout, data, format)
	}
	return WriteStructuredFile(output, data, format)
}

// validateOutputFile rejects an output file for text reports.
func validateOutputFile(output, format string) error {
	if output != "" && format == FormatText {
		return fmt.Errorf("-o requires --format json or yaml")
	}
	return nil
}

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// OutputSpecHeader writes the common specification header.
func OutputSpecHeader(w io.Writer, specPath, version string) {
	cliutil.Writef(w, "oaskit version: %s\n", oaskit.Version())
	cliutil.Writef(w, "Specification: %s\n", FormatSpecPath(specPath))
	cliutil.Writef(w, "OAS Version: %s\n", version)
}

// NewLogger returns a text logger on Stderr. Debug events are shown only
// when verbose is set; otherwise only warnings and errors are.
func NewLogger(verbose bool) parser.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return parser.NewSlogAdapter(slog.New(slog.NewTextHandler(Stderr, &slog.HandlerOptions{Level: level})))
}
