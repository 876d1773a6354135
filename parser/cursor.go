package parser

import "github.com/erraggy/ramltools/ramlerrors"

// cursor is a forward-only view over the scanned token stream. Each parse
// owns its own cursor exclusively; nothing is shared across parses.
type cursor struct {
	toks []Token
	i    int
}

func newCursor(toks []Token) *cursor {
	return &cursor{toks: toks}
}

// next returns the next token. The grammar must never request a token past
// Stream-End without checking for it first; doing so is a programming
// error, not a parse failure, and panics.
func (c *cursor) next() Token {
	if c.i >= len(c.toks) {
		panic("parser: token requested past end of stream")
	}
	t := c.toks[c.i]
	c.i++
	return t
}

// expect consumes the next token and fails with an UnexpectedEntryError at
// the token's position if its kind differs from want. On success there is
// no payload to return; the caller already knows the kind.
func (c *cursor) expect(want Kind) error {
	t := c.next()
	if t.Kind != want {
		return &ramlerrors.UnexpectedEntryError{
			Expected: []string{want.String()},
			Found:    t.Kind.String(),
			Line:     t.Pos.Line,
			Column:   t.Pos.Column,
		}
	}
	return nil
}
