// Package parser provides parsing for RAML 1.0 documents.
//
// The parser covers the document root of the RAML 1.0 specification: title,
// version, description, baseUri, protocols, mediaType, documentation entries,
// and security scheme declarations. It works by tokenizing the YAML source
// and walking the token stream with a recursive descent grammar, which keeps
// line and column information attached to every error.
//
// # Quick Start
//
// Parse a file using functional options:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("api.raml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Raml.Title)
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	result1, _ := p.Parse("api1.raml")
//	result2, _ := p.Parse("api2.raml")
//
// # Version Comment
//
// Every document must begin with the RAML version comment on its first line:
//
//	#%RAML 1.0
//	title: My API
//
// Documents missing the comment are rejected with
// ramlerrors.MissingVersionError before any tokenization happens.
//
// # Errors
//
// All parse failures are typed errors from the ramlerrors package. Structural
// errors carry the line and column of the offending token:
//
//	_, err := p.ParseBytes(data)
//	var unexpected *ramlerrors.UnexpectedKeyError
//	if errors.As(err, &unexpected) {
//		fmt.Printf("unknown key %q at %d:%d\n", unexpected.Field, unexpected.Line, unexpected.Column)
//	}
//
// # Token Inspection
//
// The Tokens function exposes the scanner's output directly. This is intended
// for debugging grammar issues and for the "ramltools tokens" command:
//
//	toks, err := parser.Tokens(data)
//	for _, t := range toks {
//		fmt.Printf("%s %q at %d:%d\n", t.Kind, t.Value, t.Pos.Line, t.Pos.Column)
//	}
package parser
