package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/erraggy/ramltools/parser"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Format string
	Quiet  bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format for the parsed document: json or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: ramltools parse [flags] <file|->\n\n")
		Writef(output, "Parse a RAML 1.0 document and output its document root.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  ramltools parse api.raml\n")
		Writef(output, "  ramltools parse --format yaml api.raml\n")
		Writef(output, "  cat api.raml | ramltools parse -q -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Parsing successful\n")
		Writef(output, "  1    Parsing failed\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or '-' for stdin")
	}
	if flags.Format != FormatJSON && flags.Format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", flags.Format, FormatJSON, FormatYAML)
	}

	specPath := fs.Arg(0)

	p := parser.New()

	var result *parser.ParseResult
	var err error
	if specPath == StdinFilePath {
		result, err = p.ParseReader(os.Stdin)
		if err != nil {
			return fmt.Errorf("parsing stdin: %w", err)
		}
	} else {
		result, err = p.Parse(specPath)
		if err != nil {
			return fmt.Errorf("parsing file: %w", err)
		}
	}

	// Print diagnostics to stderr to keep stdout clean for the document.
	if !flags.Quiet {
		Writef(os.Stderr, "RAML 1.0 Parser\n")
		Writef(os.Stderr, "===============\n\n")
		OutputSpecHeader(specPath)
		OutputSpecStats(result.SourceSize, result.LoadTime)
		Writef(os.Stderr, "\n")
		writeSummary(result.Raml)
		Writef(os.Stderr, "\n")
	}

	if err := OutputStructured(os.Stdout, result.Raml, flags.Format); err != nil {
		return err
	}

	if !flags.Quiet {
		Writef(os.Stderr, "\nParsing completed successfully!\n")
	}
	return nil
}

// writeSummary prints the human-readable document summary to stderr.
func writeSummary(doc *parser.Raml) {
	Writef(os.Stderr, "Title: %s\n", doc.Title)
	if doc.Version != "" {
		Writef(os.Stderr, "Version: %s\n", doc.Version)
	}
	if doc.Description != "" {
		Writef(os.Stderr, "Description: %s\n", doc.Description)
	}
	if doc.BaseURI != "" {
		Writef(os.Stderr, "Base URI: %s\n", doc.BaseURI)
	}
	if len(doc.Protocols) > 0 {
		Writef(os.Stderr, "Protocols:")
		for _, p := range doc.Protocols {
			Writef(os.Stderr, " %s", p)
		}
		Writef(os.Stderr, "\n")
	}
	if len(doc.MediaTypes) > 0 {
		Writef(os.Stderr, "Media Types:")
		for _, m := range doc.MediaTypes {
			Writef(os.Stderr, " %s", m)
		}
		Writef(os.Stderr, "\n")
	}
	if len(doc.Documentation) > 0 {
		Writef(os.Stderr, "Documentation:\n")
		for _, d := range doc.Documentation {
			Writef(os.Stderr, "  - %s\n", d.Title)
		}
	}
	if len(doc.SecuritySchemes) > 0 {
		names := make([]string, 0, len(doc.SecuritySchemes))
		for name := range doc.SecuritySchemes {
			names = append(names, name)
		}
		sort.Strings(names)
		Writef(os.Stderr, "Security Schemes:\n")
		for _, name := range names {
			scheme := doc.SecuritySchemes[name]
			Writef(os.Stderr, "  - %s (%s): %s\n", name, scheme.Type, SchemeDisplayName(name, scheme))
		}
	}
}
