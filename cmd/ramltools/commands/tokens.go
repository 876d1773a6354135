package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/ramltools/parser"
)

// TokensFlags contains flags for the tokens command
type TokensFlags struct {
	Format string
}

// SetupTokensFlags creates and configures a FlagSet for the tokens command.
// Returns the FlagSet and a TokensFlags struct with bound flag variables.
func SetupTokensFlags() (*flag.FlagSet, *TokensFlags) {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	flags := &TokensFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: ramltools tokens [flags] <file|->\n\n")
		Writef(output, "Tokenize a RAML document and print the normalized token stream\n")
		Writef(output, "the parser consumes, including synthesized block structure markers.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  ramltools tokens api.raml\n")
		Writef(output, "  ramltools tokens --format json api.raml\n")
		Writef(output, "  cat api.raml | ramltools tokens -\n")
	}

	return fs, flags
}

// HandleTokens executes the tokens command
func HandleTokens(args []string) error {
	fs, flags := SetupTokensFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("tokens command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)

	var data []byte
	var err error
	if specPath == StdinFilePath {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(specPath)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
	}

	toks, err := parser.Tokens(data)
	if err != nil {
		return fmt.Errorf("tokenizing document: %w", err)
	}

	if flags.Format == FormatText {
		WriteTokens(os.Stdout, toks)
		return nil
	}
	return OutputStructured(os.Stdout, toks, flags.Format)
}

// WriteTokens renders the token stream as one line per token.
func WriteTokens(w io.Writer, toks []parser.Token) {
	for _, t := range toks {
		if t.Value != "" {
			Writef(w, "%s %q at line %d column %d\n", t.Kind, t.Value, t.Pos.Line, t.Pos.Column)
			continue
		}
		Writef(w, "%s at line %d column %d\n", t.Kind, t.Pos.Line, t.Pos.Column)
	}
}
