package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/ramltools/parser"
)

type tokensInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The RAML document to tokenize"`
	Offset int       `json:"offset,omitempty" jsonschema:"Number of tokens to skip"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of tokens to return"`
}

type tokenItem struct {
	Kind   string `json:"kind"`
	Value  string `json:"value,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type tokensOutput struct {
	Total  int         `json:"total"`
	Offset int         `json:"offset"`
	Tokens []tokenItem `json:"tokens"`
}

func handleTokens(_ context.Context, _ *mcp.CallToolRequest, input tokensInput) (*mcp.CallToolResult, tokensOutput, error) {
	data, err := input.Spec.raw()
	if err != nil {
		return errResult(err), tokensOutput{}, nil
	}

	toks, err := parser.Tokens(data)
	if err != nil {
		return errResult(err), tokensOutput{}, nil
	}

	page := paginate(toks, input.Offset, input.Limit)
	output := tokensOutput{
		Total:  len(toks),
		Offset: input.Offset,
		Tokens: make([]tokenItem, 0, len(page)),
	}
	for _, t := range page {
		output.Tokens = append(output.Tokens, tokenItem{
			Kind:   t.Kind.String(),
			Value:  t.Value,
			Line:   t.Pos.Line,
			Column: t.Pos.Column,
		})
	}
	return nil, output, nil
}
