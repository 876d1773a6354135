// Package ramltools provides tools for working with RAML 1.0 API documents.
//
// ramltools parses the document root of RAML 1.0 specifications: the title,
// version, description, baseUri, protocols, mediaType, documentation entries,
// and securitySchemes declared at the top level of a document.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - parser: Parse RAML 1.0 documents into typed document roots, or inspect
//     the normalized token stream the parser consumes
//   - ramlerrors: Typed errors describing exactly what failed and where
//
// RAML 1.0 reference: https://github.com/raml-org/raml-spec/blob/master/versions/raml-10/raml-10.md
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/ramltools
//
// # Quick Start
//
// Parse a RAML document:
//
//	import "github.com/erraggy/ramltools/parser"
//
//	p := parser.New()
//	result, err := p.Parse("api.raml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Title: %s\n", result.Raml.Title)
//	fmt.Printf("Base URI: %s\n", result.Raml.BaseURI)
//
// Every document must begin with the RAML version comment:
//
//	#%RAML 1.0
//	title: World Music API
//
// Documents without that first line fail with ramlerrors.MissingVersionError.
//
// # Parser Package
//
// The parser package tokenizes YAML source, synthesizes block structure
// markers, and walks the resulting stream with a recursive descent grammar.
// Parse, ParseReader, ParseBytes, and ParseWithOptions all produce a
// ParseResult whose Raml field holds the typed document root.
//
// Errors are typed and positioned. Use errors.As to inspect them:
//
//	_, err := p.Parse("api.raml")
//	var unexpected *ramlerrors.UnexpectedKeyError
//	if errors.As(err, &unexpected) {
//		fmt.Printf("unexpected %q at line %d\n", unexpected.Field, unexpected.Line)
//	}
//
// See the parser package documentation for more details.
//
// # Command Line Interface
//
// The ramltools command provides CLI access to the library:
//
//	# Parse a document and print its root as JSON
//	ramltools parse api.raml
//
//	# Print the normalized token stream
//	ramltools tokens api.raml
//
//	# Serve the parse and tokens tools over MCP stdio
//	ramltools mcp
//
// Use '-' as the file path to read from stdin, and --quiet to suppress
// diagnostics when pipelining.
//
// # Scope
//
// ramltools parses the document root only. Resources, methods, type
// declarations, traits, and include resolution are out of scope.
package ramltools
