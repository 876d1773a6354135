package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSpecRAML = `#%RAML 1.0
title: World Music API
version: v1
description: A RESTful catalog of world music
baseUri: https://api.example.com/{version}
protocols: [HTTP, HTTPS]
mediaType: [application/json]
documentation:
  - title: Home
    content: Welcome
securitySchemes:
  oauth_2_0:
    type: OAuth 2.0
    displayName: OAuth 2.0 flow
  basic:
    type: Basic Authentication
`

func TestParseTool_Summary(t *testing.T) {
	specCache.reset()
	input := parseInput{
		Spec: specInput{Content: testSpecRAML},
	}
	_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "World Music API", output.Title)
	assert.Equal(t, "v1", output.Version)
	assert.Equal(t, "A RESTful catalog of world music", output.Description)
	assert.Equal(t, "https://api.example.com/{version}", output.BaseURI)
	assert.Equal(t, []string{"HTTP", "HTTPS"}, output.Protocols)
	assert.Equal(t, []string{"application/json"}, output.MediaTypes)
	assert.Equal(t, 1, output.DocumentationCount)
	assert.Empty(t, output.FullDocument)

	require.Len(t, output.SecuritySchemes, 2)
	assert.Equal(t, "basic", output.SecuritySchemes[0].Name)
	assert.Equal(t, "Basic Authentication", output.SecuritySchemes[0].Type)
	assert.Equal(t, "oauth_2_0", output.SecuritySchemes[1].Name)
	assert.Equal(t, "OAuth 2.0", output.SecuritySchemes[1].Type)
	assert.Equal(t, "OAuth 2.0 flow", output.SecuritySchemes[1].DisplayName)
}

func TestParseTool_Full(t *testing.T) {
	specCache.reset()
	input := parseInput{
		Spec: specInput{Content: testSpecRAML},
		Full: true,
	}
	_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "World Music API", output.Title)
	assert.NotEmpty(t, output.FullDocument)
	assert.Contains(t, output.FullDocument, "World Music API")
	assert.Contains(t, output.FullDocument, "baseUri")
}

func TestParseTool_ParseErrorBecomesToolError(t *testing.T) {
	specCache.reset()
	input := parseInput{
		Spec: specInput{Content: "#%RAML 1.0\ntitle: Test\nunknown: field\n"},
	}
	result, _, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Unexpected field found at the document root: unknown")
}

func TestParseTool_NoInput(t *testing.T) {
	result, _, err := handleParse(context.Background(), &mcp.CallToolRequest{}, parseInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
