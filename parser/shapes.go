package parser

import "github.com/erraggy/ramltools/ramlerrors"

// The extractors below recognize the recurring value shapes of the RAML
// document root. All of them operate on a cursor positioned immediately
// after a recognized key token. Emptiness policy (e.g. "protocols must not
// be empty") belongs to callers, not extractors.

// flowEntry is one scalar of a flow sequence, with its position retained
// for later error reporting.
type flowEntry struct {
	value string
	pos   Position
}

// blockEntry is one value of a block mapping, with the position of its key
// retained for later error reporting.
type blockEntry struct {
	value string
	pos   Position
}

// blockEntries maps the keys of one block mapping to their values. Keys
// are unique within a block; a duplicate key overwrites the earlier value.
type blockEntries map[string]blockEntry

// scalarValue reads one scalar token and returns its payload.
func scalarValue(c *cursor) (string, error) {
	t := c.next()
	if t.Kind != KindScalar {
		return "", &ramlerrors.UnexpectedEntryError{
			Expected: []string{KindScalar.String()},
			Found:    t.Kind.String(),
			Line:     t.Pos.Line,
			Column:   t.Pos.Column,
		}
	}
	return t.Value, nil
}

// singleValue reads "Value Scalar" and returns the scalar payload.
func singleValue(c *cursor) (string, error) {
	e, err := singleValueEntry(c)
	if err != nil {
		return "", err
	}
	return e.value, nil
}

// singleValueEntry is singleValue retaining the scalar's position, for
// callers that validate the value's domain and need to point at it.
func singleValueEntry(c *cursor) (flowEntry, error) {
	if err := c.expect(KindValue); err != nil {
		return flowEntry{}, err
	}
	t := c.next()
	if t.Kind != KindScalar {
		return flowEntry{}, &ramlerrors.UnexpectedEntryError{
			Expected: []string{KindScalar.String()},
			Found:    t.Kind.String(),
			Line:     t.Pos.Line,
			Column:   t.Pos.Column,
		}
	}
	return flowEntry{value: t.Value, pos: t.Pos}, nil
}

// flowSequence reads scalar entries until Flow-Sequence-End, skipping the
// Flow-Entry separators. An empty sequence is syntactically legal.
func flowSequence(c *cursor) ([]flowEntry, error) {
	var values []flowEntry
	for {
		t := c.next()
		switch t.Kind {
		case KindScalar:
			values = append(values, flowEntry{value: t.Value, pos: t.Pos})
		case KindFlowEntry:
			// separator
		case KindFlowSequenceEnd:
			return values, nil
		default:
			return nil, &ramlerrors.UnexpectedEntryError{
				Expected: []string{KindFlowEntry.String(), KindFlowSequenceEnd.String()},
				Found:    t.Kind.String(),
				Line:     t.Pos.Line,
				Column:   t.Pos.Column,
			}
		}
	}
}

// multipleValues reads a strict flow sequence: "Value Flow-Sequence-Start"
// with no scalar shorthand.
func multipleValues(c *cursor) ([]flowEntry, error) {
	if err := c.expect(KindValue); err != nil {
		return nil, err
	}
	if err := c.expect(KindFlowSequenceStart); err != nil {
		return nil, err
	}
	return flowSequence(c)
}

// scalarOrSequence normalizes the scalar-or-sequence shape: a bare scalar
// becomes a one-element list, a flow sequence is read in full.
func scalarOrSequence(c *cursor) ([]flowEntry, error) {
	if err := c.expect(KindValue); err != nil {
		return nil, err
	}
	t := c.next()
	switch t.Kind {
	case KindScalar:
		return []flowEntry{{value: t.Value, pos: t.Pos}}, nil
	case KindFlowSequenceStart:
		return flowSequence(c)
	default:
		return nil, &ramlerrors.UnexpectedEntryError{
			Expected: []string{KindScalar.String(), KindFlowSequenceStart.String()},
			Found:    t.Kind.String(),
			Line:     t.Pos.Line,
			Column:   t.Pos.Column,
		}
	}
}

// keyValue reads one "Scalar Value Scalar" pair inside a block mapping.
func keyValue(c *cursor) (key, value string, err error) {
	if key, err = scalarValue(c); err != nil {
		return "", "", err
	}
	if err = c.expect(KindValue); err != nil {
		return "", "", err
	}
	if value, err = scalarValue(c); err != nil {
		return "", "", err
	}
	return key, value, nil
}

// blockMapping reads one block mapping of string pairs. Each entry retains
// the position of its Key token.
func blockMapping(c *cursor) (blockEntries, error) {
	if err := c.expect(KindBlockMappingStart); err != nil {
		return nil, err
	}
	result := make(blockEntries)
	for {
		t := c.next()
		switch t.Kind {
		case KindKey:
			key, value, err := keyValue(c)
			if err != nil {
				return nil, err
			}
			result[key] = blockEntry{value: value, pos: t.Pos}
		case KindBlockEnd:
			return result, nil
		default:
			return nil, &ramlerrors.UnexpectedEntryError{
				Expected: []string{KindKey.String(), KindBlockEnd.String()},
				Found:    t.Kind.String(),
				Line:     t.Pos.Line,
				Column:   t.Pos.Column,
			}
		}
	}
}

// blockSequenceOfMappings reads "Value Block-Sequence-Start" followed by
// one block mapping per Block-Entry, until Block-End.
func blockSequenceOfMappings(c *cursor) ([]blockEntries, error) {
	if err := c.expect(KindValue); err != nil {
		return nil, err
	}
	if err := c.expect(KindBlockSequenceStart); err != nil {
		return nil, err
	}
	var result []blockEntries
	for {
		t := c.next()
		switch t.Kind {
		case KindBlockEntry:
			entries, err := blockMapping(c)
			if err != nil {
				return nil, err
			}
			result = append(result, entries)
		case KindBlockEnd:
			return result, nil
		default:
			return nil, &ramlerrors.UnexpectedEntryError{
				Expected: []string{KindBlockEntry.String(), KindBlockEnd.String()},
				Found:    t.Kind.String(),
				Line:     t.Pos.Line,
				Column:   t.Pos.Column,
			}
		}
	}
}
