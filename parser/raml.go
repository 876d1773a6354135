package parser

import "strings"

// Protocol is one of the two transfer protocols a RAML document may
// declare. Values are matched case-insensitively in the source document
// and stored in canonical form.
type Protocol string

const (
	// ProtocolHTTP is plain HTTP
	ProtocolHTTP Protocol = "HTTP"
	// ProtocolHTTPS is HTTP over TLS
	ProtocolHTTPS Protocol = "HTTPS"
)

// ParseProtocol matches s case-insensitively against the two known
// protocols. The second return value reports whether s matched.
func ParseProtocol(s string) (Protocol, bool) {
	switch strings.ToLower(s) {
	case "http":
		return ProtocolHTTP, true
	case "https":
		return ProtocolHTTPS, true
	}
	return "", false
}

// SecuritySchemeType classifies a security scheme. The five RAML 1.0
// literals are matched case-insensitively and stored in canonical form;
// any other value prefixed "x-" is carried through verbatim (lowercased)
// as an extension type, preserving round-trip fidelity.
type SecuritySchemeType string

const (
	// SchemeTypeOAuth1 is the "OAuth 1.0" scheme type
	SchemeTypeOAuth1 SecuritySchemeType = "OAuth 1.0"
	// SchemeTypeOAuth2 is the "OAuth 2.0" scheme type
	SchemeTypeOAuth2 SecuritySchemeType = "OAuth 2.0"
	// SchemeTypeBasicAuthentication is the "Basic Authentication" scheme type
	SchemeTypeBasicAuthentication SecuritySchemeType = "Basic Authentication"
	// SchemeTypeDigestAuthentication is the "Digest Authentication" scheme type
	SchemeTypeDigestAuthentication SecuritySchemeType = "Digest Authentication"
	// SchemeTypePassThrough is the "Pass Through" scheme type
	SchemeTypePassThrough SecuritySchemeType = "Pass Through"
)

// ParseSecuritySchemeType matches s case-insensitively against the known
// scheme type literals, falling back to the "x-" extension escape. The
// second return value reports whether s was recognized.
func ParseSecuritySchemeType(s string) (SecuritySchemeType, bool) {
	lower := strings.ToLower(s)
	switch lower {
	case "oauth 1.0":
		return SchemeTypeOAuth1, true
	case "oauth 2.0":
		return SchemeTypeOAuth2, true
	case "basic authentication":
		return SchemeTypeBasicAuthentication, true
	case "digest authentication":
		return SchemeTypeDigestAuthentication, true
	case "pass through":
		return SchemeTypePassThrough, true
	}
	if strings.HasPrefix(lower, "x-") {
		return SecuritySchemeType(lower), true
	}
	return "", false
}

// IsExtension reports whether the type is an "x-" extension rather than
// one of the five canonical literals.
func (t SecuritySchemeType) IsExtension() bool {
	return strings.HasPrefix(string(t), "x-")
}

// SecurityScheme describes one named authentication or authorization
// method at the document root. Type is always present; a scheme block
// without a type fails the parse.
type SecurityScheme struct {
	// Type classifies the scheme (required)
	Type SecuritySchemeType `json:"type" yaml:"type"`
	// DisplayName is an optional human-friendly name
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	// Description is an optional free-form description
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DocumentationEntry is one user-documentation page declared at the
// document root. Both fields are required; a block missing either fails
// the parse.
type DocumentationEntry struct {
	// Title is the page title (required)
	Title string `json:"title" yaml:"title"`
	// Content is the page body (required)
	Content string `json:"content" yaml:"content"`
}

// Raml is the parsed document-root model of a RAML 1.0 specification.
//
// # Immutability
//
// While Go does not enforce immutability, callers should treat Raml as
// read-only after parsing: it is created once per parse, fully populated
// for its present fields, and owned exclusively by the caller. Optional
// string fields are empty when absent; optional collections are nil.
type Raml struct {
	// Title is the API title (required, non-empty)
	Title string `json:"title" yaml:"title"`
	// Version is the API version, e.g. "v1" (optional)
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// Description is a free-form API description (optional)
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// BaseURI is the base URI template for all resources (optional)
	BaseURI string `json:"baseUri,omitempty" yaml:"baseUri,omitempty"`
	// Protocols lists the declared transfer protocols in document order
	// (optional; never empty when present)
	Protocols []Protocol `json:"protocols,omitempty" yaml:"protocols,omitempty"`
	// MediaTypes lists the default media types in document order (optional)
	MediaTypes []string `json:"mediaType,omitempty" yaml:"mediaType,omitempty"`
	// Documentation lists the user-documentation pages in document order
	// (optional)
	Documentation []DocumentationEntry `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	// SecuritySchemes maps scheme names to their definitions (optional).
	// Insertion order is not significant; a duplicate name overwrites the
	// earlier definition.
	SecuritySchemes map[string]*SecurityScheme `json:"securitySchemes,omitempty" yaml:"securitySchemes,omitempty"`
}
