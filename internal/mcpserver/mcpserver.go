// Package mcpserver exposes the gloss snippet analysis over the Model
// Context Protocol so editors and agents can call it as tools.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and registers all gloss analysis tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server with all gloss tools registered.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gloss",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server}
	s.registerTools()
	s.registerPrompts()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// registerTools adds all gloss analyzer tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "review_snippet",
		Description: describeReview(),
	}, handleReviewSnippet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "explain_snippet",
		Description: describeExplain(),
	}, handleExplainSnippet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest_improvements",
		Description: describeSuggest(),
	}, handleSuggestImprovements)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_docs",
		Description: describeDocs(),
	}, handleGenerateDocs)
}
