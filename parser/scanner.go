package parser

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/token"
)

// scanError is a lexical-scan failure. Its rendering defines the standard
// position suffix format that grammar errors reuse, so both families of
// diagnostics look identical to the caller.
type scanError struct {
	msg string
	pos Position
}

func (e *scanError) Error() string {
	return fmt.Sprintf("%s at line %d column %d", e.msg, e.pos.Line, e.pos.Column)
}

type blockKind int

const (
	blockMappingKind blockKind = iota
	blockSequenceKind
)

// openBlock is one entry of the indentation stack: an open block mapping
// or block sequence anchored at a source column.
type openBlock struct {
	kind   blockKind
	column int
}

// scanState accumulates the normalized token stream. The underlying lexer
// is flat: it reports keys, values, and sequence entry markers but no
// block structure. scanState tracks anchor columns and synthesizes the
// Block-Mapping-Start, Block-Sequence-Start, and Block-End tokens the
// grammar consumes.
type scanState struct {
	out       []Token
	blocks    []openBlock
	flowDepth int
}

func (s *scanState) emit(t Token) {
	s.out = append(s.out, t)
}

// pop closes the innermost open block, emitting its Block-End at pos.
func (s *scanState) pop(pos Position) {
	s.blocks = s.blocks[:len(s.blocks)-1]
	s.emit(Token{Kind: KindBlockEnd, Pos: pos})
}

// openMappingForKey closes blocks the key's column has outdented past and
// opens a new block mapping unless the key is a sibling of the current one.
// A key at the column of an open sequence terminates that sequence
// (zero-indented sequences anchor at their parent mapping's column).
func (s *scanState) openMappingForKey(pos Position) {
	col := pos.Column
	for len(s.blocks) > 0 {
		top := s.blocks[len(s.blocks)-1]
		if top.column > col || (top.kind == blockSequenceKind && top.column == col) {
			s.pop(pos)
			continue
		}
		break
	}
	if len(s.blocks) > 0 {
		top := s.blocks[len(s.blocks)-1]
		if top.kind == blockMappingKind && top.column == col {
			return
		}
	}
	s.blocks = append(s.blocks, openBlock{kind: blockMappingKind, column: col})
	s.emit(Token{Kind: KindBlockMappingStart, Pos: pos})
}

// openSequenceForEntry closes blocks the entry's column has outdented past
// and opens a new block sequence unless one is already anchored there.
func (s *scanState) openSequenceForEntry(pos Position) {
	col := pos.Column
	for len(s.blocks) > 0 && s.blocks[len(s.blocks)-1].column > col {
		s.pop(pos)
	}
	if len(s.blocks) > 0 {
		top := s.blocks[len(s.blocks)-1]
		if top.kind == blockSequenceKind && top.column == col {
			return
		}
	}
	s.blocks = append(s.blocks, openBlock{kind: blockSequenceKind, column: col})
	s.emit(Token{Kind: KindBlockSequenceStart, Pos: pos})
}

// closeAll closes every open block, emitting Block-Ends at pos.
func (s *scanState) closeAll(pos Position) {
	for len(s.blocks) > 0 {
		s.pop(pos)
	}
}

func tokenPos(t *token.Token) Position {
	if t.Position == nil {
		return Position{}
	}
	return Position{Line: t.Position.Line, Column: t.Position.Column}
}

// isKeyAt reports whether the scalar at index i acts as a mapping key,
// which is the case exactly when the next significant token is the ":"
// value indicator. Scalars announced by an explicit "?" key marker are
// excluded; the marker already produced the Key token.
func isKeyAt(native []*token.Token, i int) bool {
	if i > 0 && native[i-1].Type == token.MappingKeyType {
		return false
	}
	return i+1 < len(native) && native[i+1].Type == token.MappingValueType
}

// scalarTypes is the set of native token types that carry a string payload
// and map to the Scalar kind.
func isScalarType(t token.Type) bool {
	switch t {
	case token.StringType, token.SingleQuoteType, token.DoubleQuoteType,
		token.BoolType, token.NullType,
		token.IntegerType, token.FloatType,
		token.BinaryIntegerType, token.OctetIntegerType, token.HexIntegerType,
		token.InfinityType, token.NanType,
		token.MergeKeyType:
		return true
	}
	return false
}

// scan tokenizes source and normalizes the lexer's flat token stream into
// the libyaml-shaped stream the grammar consumes: scalars acting as keys
// become Key+Scalar pairs, ":" becomes Value, "-" becomes Block-Entry, and
// block mapping/sequence boundaries are synthesized from indentation
// columns. The stream is bracketed by Stream-Start and Stream-End.
//
// The mapping from native token types to kinds is total; a native type
// outside the handled set is a contract violation with the lexer and
// panics rather than degrading silently.
func scan(source string) ([]Token, error) {
	raw := lexer.Tokenize(source)

	// Comments carry no grammar information; drop them up front so the
	// key lookahead only sees significant tokens.
	native := make([]*token.Token, 0, len(raw))
	for _, t := range raw {
		if t.Type == token.CommentType {
			continue
		}
		native = append(native, t)
	}

	s := &scanState{out: make([]Token, 0, len(native)*2+2)}
	s.emit(Token{Kind: KindStreamStart, Pos: Position{Line: 1, Column: 1}})

	for i, t := range native {
		pos := tokenPos(t)
		switch {
		case isScalarType(t.Type):
			if isKeyAt(native, i) {
				if s.flowDepth == 0 {
					s.openMappingForKey(pos)
				}
				s.emit(Token{Kind: KindKey, Pos: pos})
			}
			s.emit(Token{Kind: KindScalar, Value: t.Value, Pos: pos})

		case t.Type == token.MappingValueType:
			s.emit(Token{Kind: KindValue, Pos: pos})

		case t.Type == token.MappingKeyType:
			if s.flowDepth == 0 {
				s.openMappingForKey(pos)
			}
			s.emit(Token{Kind: KindKey, Pos: pos})

		case t.Type == token.SequenceEntryType:
			if s.flowDepth == 0 {
				s.openSequenceForEntry(pos)
			}
			s.emit(Token{Kind: KindBlockEntry, Pos: pos})

		case t.Type == token.SequenceStartType:
			s.flowDepth++
			s.emit(Token{Kind: KindFlowSequenceStart, Pos: pos})

		case t.Type == token.SequenceEndType:
			s.flowDepth--
			s.emit(Token{Kind: KindFlowSequenceEnd, Pos: pos})

		case t.Type == token.MappingStartType:
			s.flowDepth++
			s.emit(Token{Kind: KindFlowMappingStart, Pos: pos})

		case t.Type == token.MappingEndType:
			s.flowDepth--
			s.emit(Token{Kind: KindFlowMappingEnd, Pos: pos})

		case t.Type == token.CollectEntryType:
			s.emit(Token{Kind: KindFlowEntry, Pos: pos})

		case t.Type == token.AnchorType:
			s.emit(Token{Kind: KindAnchor, Value: t.Value, Pos: pos})

		case t.Type == token.AliasType:
			s.emit(Token{Kind: KindAlias, Value: t.Value, Pos: pos})

		case t.Type == token.TagType:
			s.emit(Token{Kind: KindTag, Value: t.Value, Pos: pos})

		case t.Type == token.LiteralType, t.Type == token.FoldedType:
			// Block scalar headers ("|", ">"). The content arrives as the
			// following string token, which becomes the Scalar.

		case t.Type == token.DocumentHeaderType:
			s.closeAll(pos)
			s.emit(Token{Kind: KindDocumentStart, Pos: pos})

		case t.Type == token.DocumentEndType:
			s.closeAll(pos)
			s.emit(Token{Kind: KindDocumentEnd, Pos: pos})

		case t.Type == token.DirectiveType:
			kind := KindTagDirective
			if strings.HasPrefix(strings.TrimPrefix(t.Value, "%"), "YAML") {
				kind = KindVersionDirective
			}
			s.emit(Token{Kind: kind, Value: t.Value, Pos: pos})

		case t.Type == token.SpaceType:
			// Whitespace is not significant in the normalized stream.

		case t.Type == token.InvalidType, t.Type == token.UnknownType:
			return nil, &scanError{msg: fmt.Sprintf("found invalid token %q", t.Value), pos: pos}

		default:
			panic(fmt.Sprintf("parser: unmapped native token type %v", t.Type))
		}
	}

	endPos := Position{Line: 1, Column: 1}
	if n := len(native); n > 0 {
		endPos = tokenPos(native[n-1])
	}
	s.closeAll(endPos)
	s.emit(Token{Kind: KindStreamEnd, Pos: endPos})
	return s.out, nil
}
