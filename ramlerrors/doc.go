// Package ramlerrors provides structured error types for the ramltools library.
//
// Import path: github.com/erraggy/ramltools/ramlerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors without
// parsing message strings.
//
// # Error Types
//
// The package provides one error type per grammar diagnostic:
//
//   - [InvalidDocumentError]: the YAML scanner rejected the document outright
//   - [MissingVersionError]: the leading "#%RAML 1.0" comment line is absent
//   - [UnexpectedEntryError]: a token of the wrong kind appeared in the stream
//   - [UnexpectedKeyError]: an unrecognized key at the document root, inside a
//     documentation entry, or inside a security scheme
//   - [MissingFieldError]: a required field was never observed before its
//     enclosing block ended
//   - [InvalidProtocolError]: a protocols entry was neither HTTP nor HTTPS
//   - [EmptyProtocolsError]: the protocols list was present but empty
//   - [InvalidSecuritySchemeTypeError]: a security scheme type matched none of
//     the known literals and lacked the "x-" extension prefix
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel for use with errors.Is():
// [ErrInvalidDocument], [ErrMissingVersion], [ErrUnexpectedEntry],
// [ErrUnexpectedKey], [ErrMissingField], [ErrInvalidProtocol],
// [ErrEmptyProtocols], and [ErrInvalidSecuritySchemeType].
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("api.raml"))
//	if errors.Is(err, ramlerrors.ErrMissingVersion) {
//	    // Not a RAML 1.0 document
//	}
//
// Extract error details with errors.As():
//
//	var keyErr *ramlerrors.UnexpectedKeyError
//	if errors.As(err, &keyErr) {
//	    fmt.Printf("unknown key %q at the %s\n", keyErr.Field, keyErr.Level)
//	}
//
// # Messages and Positions
//
// Error messages are deterministic strings. When an error carries a source
// position (Line > 0), the message ends with the scanner's standard
// " at line L column C" suffix, so lexical and grammar diagnostics render
// identically. Callers needing other formats must transform the typed
// fields rather than re-parse the message.
package ramlerrors
