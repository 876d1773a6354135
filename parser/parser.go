package parser

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/erraggy/ramltools/ramlerrors"
)

// versionComment is the required first line of every RAML 1.0 document.
const versionComment = "#%RAML 1.0"

// Parser handles RAML document parsing
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseResult contains the parsed RAML document and metadata.
//
// # Immutability
//
// While Go does not enforce immutability, callers should treat ParseResult as
// read-only after parsing. The Raml document may be shared across goroutines
// only under that contract.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name
	// of the method, e.g. "ParseReader.raml" or "ParseBytes.raml"
	SourcePath string
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// Raml is the parsed document root
	Raml *Raml
}

// Parse parses a RAML document from a local file path.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	p.log().Debug("loaded document", "path", specPath, "bytes", len(data))

	doc, err := p.parseDocument(data)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		SourcePath: specPath,
		SourceSize: int64(len(data)),
		LoadTime:   loadTime,
		Raml:       doc,
	}, nil
}

// ParseReader parses a RAML document from an io.Reader.
// Note: since there is no actual source path, ParseResult.SourcePath will be
// set to "ParseReader.raml".
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseReader.raml"
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses a RAML document from a byte slice.
// Note: since there is no actual source path, ParseResult.SourcePath will be
// set to "ParseBytes.raml".
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	doc, err := p.parseDocument(data)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		SourcePath: "ParseBytes.raml",
		SourceSize: int64(len(data)),
		Raml:       doc,
	}, nil
}

// parseDocument runs the full pipeline: version-comment check, tokenization,
// then recursive descent over the token stream.
func (p *Parser) parseDocument(data []byte) (*Raml, error) {
	source := string(data)
	if !hasVersionComment(source) {
		return nil, &ramlerrors.MissingVersionError{}
	}

	toks, err := scan(source)
	if err != nil {
		return nil, &ramlerrors.InvalidDocumentError{Cause: err}
	}
	p.log().Debug("scanned document", "tokens", len(toks))

	doc, err := parseRoot(newCursor(toks))
	if err != nil {
		return nil, err
	}
	p.log().Debug("parsed document root", "title", doc.Title)
	return doc, nil
}

// hasVersionComment reports whether the first line of the document, trimmed
// of surrounding whitespace, is exactly the RAML 1.0 version comment.
func hasVersionComment(source string) bool {
	first, _, _ := strings.Cut(source, "\n")
	return strings.TrimSpace(first) == versionComment
}
