package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/ramltools/ramlerrors"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNoToken, "No-Token"},
		{KindStreamStart, "Stream-Start"},
		{KindStreamEnd, "Stream-End"},
		{KindVersionDirective, "Version-Directive"},
		{KindTagDirective, "Tag-Directive"},
		{KindDocumentStart, "Document-Start"},
		{KindDocumentEnd, "Document-End"},
		{KindBlockSequenceStart, "Block-Sequence-Start"},
		{KindBlockMappingStart, "Block-Mapping-Start"},
		{KindBlockEnd, "Block-End"},
		{KindFlowSequenceStart, "Flow-Sequence-Start"},
		{KindFlowSequenceEnd, "Flow-Sequence-End"},
		{KindFlowMappingStart, "Flow-Mapping-Start"},
		{KindFlowMappingEnd, "Flow-Mapping-End"},
		{KindBlockEntry, "Block-Entry"},
		{KindFlowEntry, "Flow-Entry"},
		{KindKey, "Key"},
		{KindValue, "Value"},
		{KindAlias, "Alias"},
		{KindAnchor, "Anchor"},
		{KindTag, "Tag"},
		{KindScalar, "Scalar"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestKindStringPanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() {
		_ = Kind(999).String()
	})
}

func TestKindMarshalText(t *testing.T) {
	b, err := KindScalar.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Scalar", string(b))
}

func TestTokenJSONRendering(t *testing.T) {
	tok := Token{Kind: KindScalar, Value: "title", Pos: Position{Line: 2, Column: 1}}
	b, err := json.Marshal(tok)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Scalar","value":"title","position":{"line":2,"column":1}}`, string(b))
}

func TestTokenJSONOmitsEmptyValue(t *testing.T) {
	tok := Token{Kind: KindStreamStart, Pos: Position{Line: 1, Column: 1}}
	b, err := json.Marshal(tok)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Stream-Start","position":{"line":1,"column":1}}`, string(b))
}

func TestTokens(t *testing.T) {
	toks, err := Tokens([]byte("#%RAML 1.0\ntitle: Test\n"))
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	assert.Equal(t, KindStreamStart, toks[0].Kind)
	assert.Equal(t, KindStreamEnd, toks[len(toks)-1].Kind)

	var values []string
	for _, tok := range toks {
		if tok.Kind == KindScalar {
			values = append(values, tok.Value)
		}
	}
	assert.Equal(t, []string{"title", "Test"}, values)
}

func TestTokensDoesNotRequireVersionComment(t *testing.T) {
	toks, err := Tokens([]byte("title: Test\n"))
	require.NoError(t, err)
	assert.NotEmpty(t, toks)
	assert.NotErrorIs(t, err, ramlerrors.ErrMissingVersion)
}
