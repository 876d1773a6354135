package parser

import (
	"fmt"

	"github.com/erraggy/ramltools/ramlerrors"
)

// Kind is the parser-owned classification of a lexical token. The grammar
// never inspects the scanner's native token representation directly; every
// native token maps to exactly one Kind, which decouples the grammar from
// tokenizer internals.
type Kind int

// The closed set of token kinds. Display names are stable and appear
// verbatim in error messages.
const (
	// KindNoToken is the zero value; it is never produced by the scanner.
	KindNoToken Kind = iota
	// KindStreamStart marks the beginning of the token stream.
	KindStreamStart
	// KindStreamEnd marks the end of the token stream.
	KindStreamEnd
	// KindVersionDirective is a %YAML directive.
	KindVersionDirective
	// KindTagDirective is a %TAG directive.
	KindTagDirective
	// KindDocumentStart is an explicit "---" document marker.
	KindDocumentStart
	// KindDocumentEnd is an explicit "..." document marker.
	KindDocumentEnd
	// KindBlockSequenceStart opens an indentation-delimited sequence.
	KindBlockSequenceStart
	// KindBlockMappingStart opens an indentation-delimited mapping.
	KindBlockMappingStart
	// KindBlockEnd closes the innermost open block mapping or sequence.
	KindBlockEnd
	// KindFlowSequenceStart is "[".
	KindFlowSequenceStart
	// KindFlowSequenceEnd is "]".
	KindFlowSequenceEnd
	// KindFlowMappingStart is "{".
	KindFlowMappingStart
	// KindFlowMappingEnd is "}".
	KindFlowMappingEnd
	// KindBlockEntry is a "-" sequence entry marker.
	KindBlockEntry
	// KindFlowEntry is a "," separator inside flow collections.
	KindFlowEntry
	// KindKey precedes a mapping key.
	KindKey
	// KindValue precedes a mapping value.
	KindValue
	// KindAlias is a "*name" alias.
	KindAlias
	// KindAnchor is a "&name" anchor.
	KindAnchor
	// KindTag is a "!tag" node tag.
	KindTag
	// KindScalar is a leaf token carrying a string payload.
	KindScalar
)

// String returns the kind's stable display name, used verbatim in error
// messages. An out-of-range kind is a contract violation, not a renderable
// state.
func (k Kind) String() string {
	switch k {
	case KindNoToken:
		return "No-Token"
	case KindStreamStart:
		return "Stream-Start"
	case KindStreamEnd:
		return "Stream-End"
	case KindVersionDirective:
		return "Version-Directive"
	case KindTagDirective:
		return "Tag-Directive"
	case KindDocumentStart:
		return "Document-Start"
	case KindDocumentEnd:
		return "Document-End"
	case KindBlockSequenceStart:
		return "Block-Sequence-Start"
	case KindBlockMappingStart:
		return "Block-Mapping-Start"
	case KindBlockEnd:
		return "Block-End"
	case KindFlowSequenceStart:
		return "Flow-Sequence-Start"
	case KindFlowSequenceEnd:
		return "Flow-Sequence-End"
	case KindFlowMappingStart:
		return "Flow-Mapping-Start"
	case KindFlowMappingEnd:
		return "Flow-Mapping-End"
	case KindBlockEntry:
		return "Block-Entry"
	case KindFlowEntry:
		return "Flow-Entry"
	case KindKey:
		return "Key"
	case KindValue:
		return "Value"
	case KindAlias:
		return "Alias"
	case KindAnchor:
		return "Anchor"
	case KindTag:
		return "Tag"
	case KindScalar:
		return "Scalar"
	default:
		panic(fmt.Sprintf("parser: unknown token kind %d", int(k)))
	}
}

// MarshalText renders the kind as its display name, so tokens serialize
// readably in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Position is a source location as reported by the scanner. Line and
// Column are 1-based.
type Position struct {
	Line   int `json:"line"   yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Token is one lexical unit of the normalized stream the grammar consumes.
// Value is set only for scalar tokens; the parser never mutates tokens.
type Token struct {
	Kind  Kind     `json:"kind"            yaml:"kind"`
	Value string   `json:"value,omitempty" yaml:"value,omitempty"`
	Pos   Position `json:"position"        yaml:"position"`
}

// Tokens scans source and returns the full normalized token stream,
// including the synthetic Stream-Start/Stream-End markers. It is intended
// for debugging grammar issues (the ramltools "tokens" command); Parse and
// friends should be used for actual document parsing.
func Tokens(data []byte) ([]Token, error) {
	toks, err := scan(string(data))
	if err != nil {
		return nil, &ramlerrors.InvalidDocumentError{Cause: err}
	}
	return toks, nil
}
