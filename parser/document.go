package parser

import "github.com/erraggy/ramltools/ramlerrors"

// docBuilder accumulates document-root fields while the grammar walks the
// token stream. It is owned exclusively by one parseRoot call and is
// converted into the immutable Raml model only at the single success exit,
// so a partially parsed document never escapes. Assignments are
// last-write-wins: a duplicate key simply overwrites the earlier value.
type docBuilder struct {
	title           *string
	version         string
	description     string
	baseURI         string
	protocols       []Protocol
	mediaTypes      []string
	documentation   []DocumentationEntry
	securitySchemes map[string]*SecurityScheme
}

func (b *docBuilder) build() *Raml {
	return &Raml{
		Title:           *b.title,
		Version:         b.version,
		Description:     b.description,
		BaseURI:         b.baseURI,
		Protocols:       b.protocols,
		MediaTypes:      b.mediaTypes,
		Documentation:   b.documentation,
		SecuritySchemes: b.securitySchemes,
	}
}

// parseRoot is the document-root state machine: Stream-Start,
// Block-Mapping-Start, then a Key dispatch loop until the Block-End that
// closes the root mapping. The first error aborts the walk.
func parseRoot(c *cursor) (*Raml, error) {
	if err := c.expect(KindStreamStart); err != nil {
		return nil, err
	}
	t := c.next()
	switch t.Kind {
	case KindBlockMappingStart:
	case KindStreamEnd:
		// An empty body cannot carry the required title.
		return nil, &ramlerrors.MissingFieldError{Field: "title", Level: ramlerrors.LevelDocumentRoot}
	default:
		return nil, &ramlerrors.UnexpectedEntryError{
			Expected: []string{KindBlockMappingStart.String()},
			Found:    t.Kind.String(),
			Line:     t.Pos.Line,
			Column:   t.Pos.Column,
		}
	}

	b := &docBuilder{}
	for {
		t := c.next()
		switch t.Kind {
		case KindKey:
			if err := parseRootKey(c, b); err != nil {
				return nil, err
			}
		case KindBlockEnd:
			if b.title == nil || *b.title == "" {
				return nil, &ramlerrors.MissingFieldError{Field: "title", Level: ramlerrors.LevelDocumentRoot}
			}
			return b.build(), nil
		default:
			return nil, &ramlerrors.UnexpectedEntryError{
				Expected: []string{KindKey.String()},
				Found:    t.Kind.String(),
				Line:     t.Pos.Line,
				Column:   t.Pos.Column,
			}
		}
	}
}

// parseRootKey reads the scalar naming the current root key and dispatches
// to the extractor or sub-parser for it.
func parseRootKey(c *cursor, b *docBuilder) error {
	t := c.next()
	if t.Kind != KindScalar {
		return &ramlerrors.UnexpectedEntryError{
			Expected: []string{KindScalar.String()},
			Found:    t.Kind.String(),
			Line:     t.Pos.Line,
			Column:   t.Pos.Column,
		}
	}

	switch t.Value {
	case "title":
		v, err := singleValue(c)
		if err != nil {
			return err
		}
		b.title = &v
	case "version":
		v, err := singleValue(c)
		if err != nil {
			return err
		}
		b.version = v
	case "description":
		v, err := singleValue(c)
		if err != nil {
			return err
		}
		b.description = v
	case "baseUri":
		v, err := singleValue(c)
		if err != nil {
			return err
		}
		b.baseURI = v
	case "protocols":
		protocols, err := parseProtocols(c)
		if err != nil {
			return err
		}
		b.protocols = protocols
	case "mediaType":
		mediaTypes, err := parseMediaTypes(c)
		if err != nil {
			return err
		}
		b.mediaTypes = mediaTypes
	case "documentation":
		documentation, err := parseDocumentation(c)
		if err != nil {
			return err
		}
		b.documentation = documentation
	case "securitySchemes":
		schemes, err := parseSecuritySchemes(c)
		if err != nil {
			return err
		}
		b.securitySchemes = schemes
	default:
		return &ramlerrors.UnexpectedKeyError{
			Field:  t.Value,
			Level:  ramlerrors.LevelDocumentRoot,
			Line:   t.Pos.Line,
			Column: t.Pos.Column,
		}
	}
	return nil
}

// parseProtocols reads a strict flow sequence and maps each element
// case-insensitively onto the protocol enumeration. The list must not be
// empty, and the emptiness check precedes element validation.
func parseProtocols(c *cursor) ([]Protocol, error) {
	entries, err := multipleValues(c)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &ramlerrors.EmptyProtocolsError{}
	}
	protocols := make([]Protocol, 0, len(entries))
	for _, e := range entries {
		p, ok := ParseProtocol(e.value)
		if !ok {
			return nil, &ramlerrors.InvalidProtocolError{Line: e.pos.Line, Column: e.pos.Column}
		}
		protocols = append(protocols, p)
	}
	return protocols, nil
}

// parseMediaTypes reads the shape-transparent mediaType value: a bare
// scalar and a one-element sequence produce the same result.
func parseMediaTypes(c *cursor) ([]string, error) {
	entries, err := scalarOrSequence(c)
	if err != nil {
		return nil, err
	}
	mediaTypes := make([]string, 0, len(entries))
	for _, e := range entries {
		mediaTypes = append(mediaTypes, e.value)
	}
	return mediaTypes, nil
}

// parseDocumentation reads a block sequence of mappings and reduces each
// block to a DocumentationEntry. Every block must carry exactly the keys
// "title" and "content"; anything else is rejected.
func parseDocumentation(c *cursor) ([]DocumentationEntry, error) {
	blocks, err := blockSequenceOfMappings(c)
	if err != nil {
		return nil, err
	}
	entries := make([]DocumentationEntry, 0, len(blocks))
	for _, block := range blocks {
		var title, content *string
		for key, entry := range block {
			switch key {
			case "title":
				v := entry.value
				title = &v
			case "content":
				v := entry.value
				content = &v
			default:
				return nil, &ramlerrors.UnexpectedKeyError{
					Field:  key,
					Level:  ramlerrors.LevelDocumentation,
					Line:   entry.pos.Line,
					Column: entry.pos.Column,
				}
			}
		}
		if title == nil {
			return nil, &ramlerrors.MissingFieldError{Field: "title", Level: ramlerrors.LevelDocumentation}
		}
		if content == nil {
			return nil, &ramlerrors.MissingFieldError{Field: "content", Level: ramlerrors.LevelDocumentation}
		}
		entries = append(entries, DocumentationEntry{Title: *title, Content: *content})
	}
	return entries, nil
}
