// Package commands provides CLI command handlers for ramltools.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/ramltools"
	"github.com/erraggy/ramltools/internal/cliutil"
	"github.com/erraggy/ramltools/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to w.
// Returns an error if marshaling fails.
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(w, "%s\n", bytes)
	return nil
}

// FormatSpecPath returns a display-friendly path for the document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// OutputSpecHeader outputs the common document header to stderr.
// This includes ramltools version and the document path.
func OutputSpecHeader(specPath string) {
	Writef(os.Stderr, "ramltools version: %s\n", ramltools.Version())
	Writef(os.Stderr, "Document: %s\n", FormatSpecPath(specPath))
}

// OutputSpecStats outputs the common document statistics to stderr.
func OutputSpecStats(sourceSize int64, loadTime time.Duration) {
	Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(sourceSize))
	Writef(os.Stderr, "Load Time: %v\n", loadTime)
}

// schemeTitleCaser title-cases words of a scheme name for display.
var schemeTitleCaser = cases.Title(language.English)

// SchemeDisplayName returns the scheme's display name, falling back to a
// humanized form of its declared name ("oauth_2_0" becomes "Oauth 2 0").
func SchemeDisplayName(name string, scheme *parser.SecurityScheme) string {
	if scheme != nil && scheme.DisplayName != "" {
		return scheme.DisplayName
	}
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})
	for i, w := range words {
		words[i] = schemeTitleCaser.String(w)
	}
	return strings.Join(words, " ")
}
