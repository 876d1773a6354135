package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockMappingReadsEntries(t *testing.T) {
	toks, err := scan("title: Getting Started\ncontent: Read me first\n")
	require.NoError(t, err)

	c := newCursor(toks)
	require.NoError(t, c.expect(KindStreamStart))

	entries, err := blockMapping(c)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Getting Started", entries["title"].value)
	assert.Equal(t, Position{Line: 1, Column: 1}, entries["title"].pos)
	assert.Equal(t, "Read me first", entries["content"].value)
	assert.Equal(t, Position{Line: 2, Column: 1}, entries["content"].pos)
}

func TestBlockMappingRejectsSequence(t *testing.T) {
	toks, err := scan("- item\n")
	require.NoError(t, err)

	c := newCursor(toks)
	require.NoError(t, c.expect(KindStreamStart))

	_, err = blockMapping(c)
	require.Error(t, err)
	assert.Equal(t, "Unexpected entry found. Expected Block-Mapping-Start, Found Block-Sequence-Start at line 1 column 1", err.Error())
}
