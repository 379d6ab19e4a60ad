package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"slices"
	"time"

	"github.com/erraggy/oaskit/internal/cliutil"
)

// DerefFlags contains flags for the deref command
type DerefFlags struct {
	External    bool
	AllowHTTP   bool
	Concurrency int
	Verbose     bool
	Format      string
	Output      string
}

// SetupDerefFlags creates and configures a FlagSet for the deref command.
func SetupDerefFlags() (*flag.FlagSet, *DerefFlags) {
	fs := flag.NewFlagSet("deref", flag.ContinueOnError)
	flags := &DerefFlags{}

	fs.BoolVar(&flags.External, "external", false, "load external references into components first")
	fs.BoolVar(&flags.AllowHTTP, "allow-http", false, "allow external references to be fetched over HTTP")
	fs.IntVar(&flags.Concurrency, "concurrency", 1, "number of external loads to run in parallel")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log loading and decoding events to stderr")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "write the json or yaml report to this file instead of stdout")

	fs.SetOutput(Stderr)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oaskit deref [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Resolve every reference reachable from paths, webhooks and security\n")
		cliutil.Writef(fs.Output(), "requirements, reporting the first reference that is missing or circular.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oaskit deref openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oaskit deref --external --concurrency 8 api/openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oaskit deref --format json openapi.yaml | jq '.externalComponents'\n")
		cliutil.Writef(fs.Output(), "  oaskit deref --external --format yaml -o deref.yaml openapi.yaml\n")
	}

	return fs, flags
}

// derefReport is the structured output of the deref command.
type derefReport struct {
	Specification      string        `json:"specification" yaml:"specification"`
	Version            string        `json:"version" yaml:"version"`
	Stats              documentStats `json:"stats" yaml:"stats"`
	ExternalComponents int           `json:"externalComponents" yaml:"externalComponents"`
	ExternalDocuments  []string      `json:"externalDocuments,omitempty" yaml:"externalDocuments,omitempty"`
	Webhooks           int           `json:"webhooks" yaml:"webhooks"`
}

// HandleDeref executes the deref command
func HandleDeref(args []string) error {
	fs, flags := SetupDerefFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("deref command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if err := validateOutputFile(flags.Output, flags.Format); err != nil {
		return err
	}
	if flags.Concurrency < 1 {
		return fmt.Errorf("invalid concurrency %d: must be at least 1", flags.Concurrency)
	}

	startTime := time.Now()
	spec, err := loadSpec(context.Background(), specPath, loadConfig{
		external:    flags.External,
		allowHTTP:   flags.AllowHTTP,
		concurrency: flags.Concurrency,
		logger:      NewLogger(flags.Verbose),
	})
	if err != nil {
		return err
	}
	doc := spec.result.Document

	resolved, err := doc.Dereferenced()
	if err != nil {
		return fmt.Errorf("dereferencing %s: %w", FormatSpecPath(specPath), err)
	}
	totalTime := time.Since(startTime)

	report := derefReport{
		Specification: FormatSpecPath(specPath),
		Version:       spec.result.Version,
		Stats:         statsOf(doc),
		Webhooks:      len(resolved.Webhooks),
	}
	if spec.external != nil {
		report.ExternalComponents = spec.external.Slots()
		report.ExternalDocuments = slices.Sorted(slices.Values(spec.loader.Documents()))
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return emitStructured(flags.Output, report, flags.Format)
	}

	cliutil.Heading(Stderr, "OpenAPI Dereferencer")
	OutputSpecHeader(Stderr, specPath, report.Version)
	cliutil.Writef(Stderr, "Paths: %d\n", report.Stats.Paths)
	cliutil.Writef(Stderr, "Webhooks: %d\n", report.Webhooks)
	cliutil.Writef(Stderr, "Operations: %d\n", report.Stats.Operations)
	cliutil.Writef(Stderr, "Components: %d\n", report.Stats.Components)
	if spec.external != nil {
		cliutil.Writef(Stderr, "External Components: %d\n", report.ExternalComponents)
		cliutil.Writef(Stderr, "External Documents (%d):\n", len(report.ExternalDocuments))
		for _, d := range report.ExternalDocuments {
			cliutil.Writef(Stderr, "  %s\n", d)
		}
	}
	cliutil.Writef(Stderr, "Total Time: %v\n\n", totalTime)
	cliutil.Writef(Stderr, "✓ All references resolved\n")
	return nil
}
