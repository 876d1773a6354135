// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes ramltools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/ramltools"
)

const serverInstructions = `ramltools MCP server — parses RAML 1.0 documents and inspects their token streams.

Configuration: All defaults are configurable via RAMLTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- RAMLTOOLS_CACHE_FILE_TTL (default: 15m) — cache TTL for local file documents
- RAMLTOOLS_CACHE_CONTENT_TTL (default: 15m) — cache TTL for inline content
- RAMLTOOLS_CACHE_ENABLED (default: true) — disable document caching entirely
- RAMLTOOLS_MAX_INLINE_SIZE (default: 2MiB) — maximum inline content size
- RAMLTOOLS_TOKEN_LIMIT (default: 500) — default result limit for the tokens tool

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "ramltools", Version: ramltools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a RAML 1.0 document root. Returns title, version, description, baseUri, protocols, media types, documentation entries, and security schemes. Use full=true to also get the normalized document as YAML. Parse errors carry line and column positions.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tokens",
		Description: "Tokenize a RAML document and return the normalized token stream the parser consumes, including synthesized block structure markers. Each token carries its kind, scalar value (if any), and 1-based line/column position. Use offset/limit to paginate through large documents. Default limit is configurable via RAMLTOOLS_TOKEN_LIMIT (default 500).",
	}, handleTokens)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.TokenLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.TokenLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
