package parser

import "github.com/erraggy/ramltools/ramlerrors"

// parseSecuritySchemes reads the securitySchemes block: a block mapping of
// scheme name to scheme definition. A duplicate name overwrites the
// earlier definition.
func parseSecuritySchemes(c *cursor) (map[string]*SecurityScheme, error) {
	if err := c.expect(KindValue); err != nil {
		return nil, err
	}
	if err := c.expect(KindBlockMappingStart); err != nil {
		return nil, err
	}
	schemes := make(map[string]*SecurityScheme)
	for {
		t := c.next()
		switch t.Kind {
		case KindKey:
			name := c.next()
			if name.Kind != KindScalar {
				return nil, &ramlerrors.UnexpectedEntryError{
					Expected: []string{KindScalar.String()},
					Found:    name.Kind.String(),
					Line:     name.Pos.Line,
					Column:   name.Pos.Column,
				}
			}
			scheme, err := parseSecurityScheme(c)
			if err != nil {
				return nil, err
			}
			schemes[name.Value] = scheme
		case KindBlockEnd:
			return schemes, nil
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

// parseSecurityScheme reads one scheme definition block. The "type" key is
// required; displayName and description are optional; any other key is
// rejected at the security scheme level.
func parseSecurityScheme(c *cursor) (*SecurityScheme, error) {
	if err := c.expect(KindValue); err != nil {
		return nil, err
	}
	if err := c.expect(KindBlockMappingStart); err != nil {
		return nil, err
	}
	var scheme SecurityScheme
	typeSeen := false
	for {
		t := c.next()
		switch t.Kind {
		case KindKey:
			key := c.next()
			if key.Kind != KindScalar {
				return nil, &ramlerrors.UnexpectedEntryError{
					Expected: []string{KindScalar.String()},
					Found:    key.Kind.String(),
					Line:     key.Pos.Line,
					Column:   key.Pos.Column,
				}
			}
			switch key.Value {
			case "type":
				raw, err := singleValueEntry(c)
				if err != nil {
					return nil, err
				}
				schemeType, ok := ParseSecuritySchemeType(raw.value)
				if !ok {
					return nil, &ramlerrors.InvalidSecuritySchemeTypeError{
						Value:  raw.value,
						Line:   raw.pos.Line,
						Column: raw.pos.Column,
					}
				}
				scheme.Type = schemeType
				typeSeen = true
			case "displayName":
				v, err := singleValue(c)
				if err != nil {
					return nil, err
				}
				scheme.DisplayName = v
			case "description":
				v, err := singleValue(c)
				if err != nil {
					return nil, err
				}
				scheme.Description = v
			default:
				return nil, &ramlerrors.UnexpectedKeyError{
					Field:  key.Value,
					Level:  ramlerrors.LevelSecurityScheme,
					Line:   key.Pos.Line,
					Column: key.Pos.Column,
				}
			}
		case KindBlockEnd:
			if !typeSeen {
				return nil, &ramlerrors.MissingFieldError{Field: "type", Level: ramlerrors.LevelSecurityScheme}
			}
			return &scheme, nil
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
