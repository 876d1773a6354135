package ramlerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidDocument indicates the YAML scanner rejected the document.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrMissingVersion indicates the leading RAML version comment is absent.
	ErrMissingVersion = errors.New("missing RAML version comment")

	// ErrUnexpectedEntry indicates a token of the wrong kind in the stream.
	ErrUnexpectedEntry = errors.New("unexpected entry")

	// ErrUnexpectedKey indicates an unrecognized key in a mapping.
	ErrUnexpectedKey = errors.New("unexpected key")

	// ErrMissingField indicates a required field was never observed.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidProtocol indicates a protocols entry outside {http, https}.
	ErrInvalidProtocol = errors.New("invalid protocol")

	// ErrEmptyProtocols indicates an empty protocols list.
	ErrEmptyProtocols = errors.New("empty protocols")

	// ErrInvalidSecuritySchemeType indicates an unrecognized security scheme type.
	ErrInvalidSecuritySchemeType = errors.New("invalid security scheme type")
)

// Level identifies the hierarchy level a grammar diagnostic refers to.
type Level string

const (
	// LevelDocumentRoot is the top-level mapping of the document.
	LevelDocumentRoot Level = "document root"
	// LevelDocumentation is a documentation entry block.
	LevelDocumentation Level = "documentation"
	// LevelSecurityScheme is a security scheme block.
	LevelSecurityScheme Level = "security scheme"
)

// positionSuffix renders the scanner's standard position suffix, or an empty
// string when the position is unknown. Grammar errors use the exact same
// format the scanner uses for lexical errors, so the two are visually
// indistinguishable to the caller.
func positionSuffix(line, column int) string {
	if line <= 0 {
		return ""
	}
	return fmt.Sprintf(" at line %d column %d", line, column)
}

// InvalidDocumentError wraps a lexical-scan failure from the YAML scanner.
// The scanner's own rendered message (including its position) is preserved.
type InvalidDocumentError struct {
	// Cause is the underlying scanner error
	Cause error
}

// Error returns a human-readable error message.
func (e *InvalidDocumentError) Error() string {
	if e.Cause == nil {
		return "invalid document"
	}
	return "invalid document: " + e.Cause.Error()
}

// Unwrap returns the underlying cause for error chaining.
func (e *InvalidDocumentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InvalidDocumentError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// MissingVersionError reports a document whose first line is not the exact
// "#%RAML 1.0" comment. This is detected textually, before tokenization,
// so it never carries a position.
type MissingVersionError struct{}

// Error returns a human-readable error message.
func (e *MissingVersionError) Error() string {
	return "Document must start with the following RAML comment line: #%RAML 1.0"
}

// Is reports whether target matches this error type.
func (e *MissingVersionError) Is(target error) bool {
	return target == ErrMissingVersion
}

// UnexpectedEntryError reports a token whose kind differs from what the
// grammar required at that point. Expected holds the display names of the
// acceptable kinds in grammar order; Found is the display name of the kind
// actually read.
type UnexpectedEntryError struct {
	// Expected is the ordered list of acceptable token kind names
	Expected []string
	// Found is the kind name of the token actually read
	Found string
	// Line is the line number of the offending token (0 if unknown)
	Line int
	// Column is the column number of the offending token (0 if unknown)
	Column int
}

// Error returns a human-readable error message. A single expected kind
// renders as "Expected X"; multiple kinds render as "Expected one of X,Y"
// preserving list order.
func (e *UnexpectedEntryError) Error() string {
	var msg string
	if len(e.Expected) == 1 {
		msg = fmt.Sprintf("Unexpected entry found. Expected %s, Found %s", e.Expected[0], e.Found)
	} else {
		msg = fmt.Sprintf("Unexpected entry found. Expected one of %s, Found %s",
			strings.Join(e.Expected, ","), e.Found)
	}
	return msg + positionSuffix(e.Line, e.Column)
}

// Is reports whether target matches this error type.
func (e *UnexpectedEntryError) Is(target error) bool {
	return target == ErrUnexpectedEntry
}

// UnexpectedKeyError reports an unrecognized key in one of the grammar's
// mappings.
type UnexpectedKeyError struct {
	// Field is the unrecognized key as it appeared in the document
	Field string
	// Level is the hierarchy level the key appeared at
	Level Level
	// Line is the line number of the key (0 if unknown)
	Line int
	// Column is the column number of the key (0 if unknown)
	Column int
}

// Error returns a human-readable error message.
func (e *UnexpectedKeyError) Error() string {
	return fmt.Sprintf("Unexpected field found at the %s: %s", e.Level, e.Field) +
		positionSuffix(e.Line, e.Column)
}

// Is reports whether target matches this error type.
func (e *UnexpectedKeyError) Is(target error) bool {
	return target == ErrUnexpectedKey
}

// MissingFieldError reports a required field that was never observed before
// its enclosing block ended.
type MissingFieldError struct {
	// Field is the name of the missing field
	Field string
	// Level is the hierarchy level the field belongs to
	Level Level
	// Line is the line number of the enclosing block end (0 if unknown)
	Line int
	// Column is the column number of the enclosing block end (0 if unknown)
	Column int
}

// Error returns a human-readable error message.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Error parsing %s. Missing field: %s", e.Level, e.Field) +
		positionSuffix(e.Line, e.Column)
}

// Is reports whether target matches this error type.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvalidProtocolError reports a protocols entry that is neither "http" nor
// "https" (matched case-insensitively). It is positioned at the offending
// scalar.
type InvalidProtocolError struct {
	// Line is the line number of the offending scalar (0 if unknown)
	Line int
	// Column is the column number of the offending scalar (0 if unknown)
	Column int
}

// Error returns a human-readable error message.
func (e *InvalidProtocolError) Error() string {
	return "Error parsing document root. Unexpected protocol" + positionSuffix(e.Line, e.Column)
}

// Is reports whether target matches this error type.
func (e *InvalidProtocolError) Is(target error) bool {
	return target == ErrInvalidProtocol
}

// EmptyProtocolsError reports a protocols list that parsed successfully but
// contained no entries.
type EmptyProtocolsError struct{}

// Error returns a human-readable error message.
func (e *EmptyProtocolsError) Error() string {
	return "Error parsing document root. Protocols must not be empty"
}

// Is reports whether target matches this error type.
func (e *EmptyProtocolsError) Is(target error) bool {
	return target == ErrEmptyProtocols
}

// InvalidSecuritySchemeTypeError reports a security scheme type string that
// matched none of the known literals and did not carry the "x-" extension
// prefix.
type InvalidSecuritySchemeTypeError struct {
	// Value is the rejected type string as it appeared in the document
	Value string
	// Line is the line number of the offending scalar (0 if unknown)
	Line int
	// Column is the column number of the offending scalar (0 if unknown)
	Column int
}

// Error returns a human-readable error message.
func (e *InvalidSecuritySchemeTypeError) Error() string {
	return fmt.Sprintf("Error parsing security scheme. Unexpected security scheme type: %s", e.Value) +
		positionSuffix(e.Line, e.Column)
}

// Is reports whether target matches this error type.
func (e *InvalidSecuritySchemeTypeError) Is(target error) bool {
	return target == ErrInvalidSecuritySchemeType
}
