package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/erraggy/oaskit/internal/cliutil"
	"github.com/erraggy/oaskit/parser"
	"github.com/erraggy/oaskit/validation"
)

// Rule set names accepted by --rules.
const (
	RulesDefault = "default"
	RulesBlank   = "blank"
)

// ErrValidationFailed is returned by HandleValidate when the document has
// at least one validation error. The errors themselves are already printed.
var ErrValidationFailed = errors.New("validation failed")

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Rules        string
	RequirePaths bool
	Strict       bool
	External     bool
	AllowHTTP    bool
	Quiet        bool
	Verbose      bool
	Format       string
	Output       string
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.Rules, "rules", RulesDefault, "rule set to start from: default or blank")
	fs.BoolVar(&flags.RequirePaths, "require-paths", false, "fail when the document has no paths")
	fs.BoolVar(&flags.Strict, "strict", false, "also check operations, response codes and media types")
	fs.BoolVar(&flags.External, "external", false, "load external references into components before validating")
	fs.BoolVar(&flags.AllowHTTP, "allow-http", false, "allow external references to be fetched over HTTP")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log loading and decoding events to stderr")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "write the json or yaml report to this file instead of stdout")

	fs.SetOutput(Stderr)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oaskit validate [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Validate an OpenAPI 3.x document with a set of rules.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nRule Sets:\n")
		cliutil.Writef(fs.Output(), "  default  Unique tags, operation ids and parameters, defined server variables, resolvable references\n")
		cliutil.Writef(fs.Output(), "  blank    No rules (useful with --require-paths)\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oaskit validate openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oaskit validate --external --require-paths api/openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  cat openapi.yaml | oaskit validate -q -\n")
		cliutil.Writef(fs.Output(), "  oaskit validate --format json openapi.yaml | jq '.valid'\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Validation successful\n")
		cliutil.Writef(fs.Output(), "  1    Validation failed or the document could not be loaded\n")
	}

	return fs, flags
}

// validationIssue is one failed rule in structured output.
type validationIssue struct {
	Path    string `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

// validationReport is the structured output of the validate command.
type validationReport struct {
	Valid         bool              `json:"valid" yaml:"valid"`
	Specification string            `json:"specification" yaml:"specification"`
	Version       string            `json:"version" yaml:"version"`
	Stats         documentStats     `json:"stats" yaml:"stats"`
	ErrorCount    int               `json:"errorCount" yaml:"errorCount"`
	Errors        []validationIssue `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// validatorFor builds the validator the flags select.
func validatorFor(flags *ValidateFlags) (*validation.Validator, error) {
	var v *validation.Validator
	switch flags.Rules {
	case RulesDefault:
		v = validation.Default()
	case RulesBlank:
		v = validation.Blank()
	default:
		return nil, fmt.Errorf("invalid rules '%s'. Valid rule sets: %s, %s", flags.Rules, RulesDefault, RulesBlank)
	}
	if flags.RequirePaths {
		v = v.Adding(validation.DocumentContainsPaths)
	}
	if flags.Strict {
		v = v.Adding(
			validation.PathsContainOperations,
			validation.OperationsContainResponses,
			validation.ResponseCodesValid,
			validation.RequestBodyMediaTypesValid,
			validation.ResponseMediaTypesValid,
		)
	}
	return v, nil
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	// Fail fast on bad flags before loading anything.
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if err := validateOutputFile(flags.Output, flags.Format); err != nil {
		return err
	}
	v, err := validatorFor(flags)
	if err != nil {
		return err
	}

	startTime := time.Now()
	spec, err := loadSpec(context.Background(), specPath, loadConfig{
		external:  flags.External,
		allowHTTP: flags.AllowHTTP,
		logger:    NewLogger(flags.Verbose),
	})
	if err != nil {
		return err
	}
	doc := spec.result.Document

	report := validationReport{
		Valid:         true,
		Specification: FormatSpecPath(specPath),
		Version:       spec.result.Version,
		Stats:         statsOf(doc),
	}
	if err := v.Validate(doc); err != nil {
		var failures validation.ErrorCollection
		if !errors.As(err, &failures) {
			return fmt.Errorf("validating %s: %w", FormatSpecPath(specPath), err)
		}
		report.Valid = false
		report.ErrorCount = len(failures)
		report.Errors = make([]validationIssue, 0, len(failures))
		for _, f := range failures {
			report.Errors = append(report.Errors, validationIssue{Path: f.CodingPath.String(), Message: f.Reason})
		}
	}
	totalTime := time.Since(startTime)

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := emitStructured(flags.Output, report, flags.Format); err != nil {
			return err
		}
	} else if !flags.Quiet {
		cliutil.Heading(Stderr, "OpenAPI Document Validator")
		OutputSpecHeader(Stderr, specPath, report.Version)
		cliutil.Writef(Stderr, "Source Size: %s\n", parser.FormatBytes(spec.result.SourceSize))
		cliutil.Writef(Stderr, "Paths: %d\n", report.Stats.Paths)
		cliutil.Writef(Stderr, "Operations: %d\n", report.Stats.Operations)
		cliutil.Writef(Stderr, "Components: %d\n", report.Stats.Components)
		if spec.external != nil {
			cliutil.Writef(Stderr, "External Components: %d\n", spec.external.Slots())
		}
		cliutil.Writef(Stderr, "Rules: %d\n", v.Len())
		cliutil.Writef(Stderr, "Load Time: %v\n", spec.result.LoadTime)
		cliutil.Writef(Stderr, "Total Time: %v\n\n", totalTime)

		if len(report.Errors) > 0 {
			cliutil.Writef(Stderr, "Errors (%d):\n", report.ErrorCount)
			for _, e := range report.Errors {
				cliutil.Writef(Stderr, "  %s: %s\n", e.Path, e.Message)
			}
			cliutil.Writef(Stderr, "\n")
		}

		if report.Valid {
			cliutil.Writef(Stderr, "✓ Validation passed\n")
		} else {
			cliutil.Writef(Stderr, "✗ Validation failed: %d error(s)\n", report.ErrorCount)
		}
	}

	if !report.Valid {
		return ErrValidationFailed
	}
	return nil
}
