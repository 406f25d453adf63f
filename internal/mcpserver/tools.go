package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/glosslabs/gloss/internal/output"
	"github.com/glosslabs/gloss/pkg/analyzer/advice"
	"github.com/glosslabs/gloss/pkg/review"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SnippetInput is the base input for all snippet tools.
type SnippetInput struct {
	Code   string `json:"code" jsonschema:"The source code snippet to analyze."`
	Format string `json:"format,omitempty" jsonschema:"Output format: toon (default) or json."`
}

// ReviewInput adds review-specific options.
type ReviewInput struct {
	SnippetInput
	LongFunctionLines int `json:"long_function_lines,omitempty" jsonschema:"Body line count above which the long-function advisory fires. Default 20."`
}

// newReviewer builds a reviewer honoring the tool options.
func newReviewer(input ReviewInput) *review.Reviewer {
	if input.LongFunctionLines > 0 {
		return review.New(review.WithAdvisor(
			advice.New(advice.WithLongFunctionThreshold(input.LongFunctionLines)),
		))
	}
	return review.New()
}

func formatOutput(data any, format string) (string, error) {
	if format == "json" {
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	return output.MarshalTOON(data)
}

func toolResult(data any, format string) (*mcp.CallToolResult, any, error) {
	text, err := formatOutput(data, format)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

// Tool handlers

func handleReviewSnippet(ctx context.Context, req *mcp.CallToolRequest, input ReviewInput) (*mcp.CallToolResult, any, error) {
	result, err := newReviewer(input).Review(input.Code)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(result, input.Format)
}

func handleExplainSnippet(ctx context.Context, req *mcp.CallToolRequest, input SnippetInput) (*mcp.CallToolResult, any, error) {
	result, err := review.New().Review(input.Code)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(map[string]any{
		"explanation": result.Explanation,
		"signatures":  result.Signatures,
	}, input.Format)
}

func handleSuggestImprovements(ctx context.Context, req *mcp.CallToolRequest, input ReviewInput) (*mcp.CallToolResult, any, error) {
	result, err := newReviewer(input).Review(input.Code)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(map[string]any{
		"suggestions": result.Suggestions,
		"advisories":  result.Advisories,
	}, input.Format)
}

func handleGenerateDocs(ctx context.Context, req *mcp.CallToolRequest, input SnippetInput) (*mcp.CallToolResult, any, error) {
	result, err := review.New().Review(input.Code)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(map[string]any{
		"documentation": result.Documentation,
	}, input.Format)
}
