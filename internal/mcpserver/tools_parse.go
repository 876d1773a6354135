package mcpserver

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"
)

type parseInput struct {
	Spec specInput `json:"spec"           jsonschema:"The RAML document to parse"`
	Full bool      `json:"full,omitempty" jsonschema:"Return the normalized document as YAML in addition to the summary"`
}

type parseSummaryScheme struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DisplayName string `json:"display_name,omitempty"`
}

type parseOutput struct {
	Title              string               `json:"title"`
	Version            string               `json:"version,omitempty"`
	Description        string               `json:"description,omitempty"`
	BaseURI            string               `json:"base_uri,omitempty"`
	Protocols          []string             `json:"protocols,omitempty"`
	MediaTypes         []string             `json:"media_types,omitempty"`
	DocumentationCount int                  `json:"documentation_count"`
	SecuritySchemes    []parseSummaryScheme `json:"security_schemes,omitempty"`
	FullDocument       string               `json:"full_document,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	doc := result.Raml
	output := parseOutput{
		Title:              doc.Title,
		Version:            doc.Version,
		Description:        doc.Description,
		BaseURI:            doc.BaseURI,
		MediaTypes:         doc.MediaTypes,
		DocumentationCount: len(doc.Documentation),
	}
	for _, p := range doc.Protocols {
		output.Protocols = append(output.Protocols, string(p))
	}
	for name, scheme := range doc.SecuritySchemes {
		output.SecuritySchemes = append(output.SecuritySchemes, parseSummaryScheme{
			Name:        name,
			Type:        string(scheme.Type),
			DisplayName: scheme.DisplayName,
		})
	}
	// Scheme map order is not stable; sort for deterministic output.
	sort.Slice(output.SecuritySchemes, func(i, j int) bool {
		return output.SecuritySchemes[i].Name < output.SecuritySchemes[j].Name
	})

	if input.Full {
		data, err := yaml.Marshal(doc)
		if err != nil {
			return errResult(err), parseOutput{}, nil
		}
		output.FullDocument = string(data)
	}

	return nil, output, nil
}
