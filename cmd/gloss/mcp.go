package main

import (
	"context"
	"fmt"

	"github.com/glosslabs/gloss/internal/mcpserver"
	"github.com/urfave/cli/v2"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP (Model Context Protocol) server for LLM tool integration",
		Description: `Starts an MCP server over stdio transport that exposes gloss's snippet
analysis as tools that LLMs can invoke. This lets AI assistants review
pasted Python and JavaScript snippets without executing them.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "gloss": {
        "command": "gloss",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - review_snippet        Full review: explanation, suggestions, docs
  - explain_snippet       Prose description of detected functions
  - suggest_improvements  Heuristic improvement advisories
  - generate_docs         Documentation skeleton for the snippet`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "manifest",
				Usage: "Print the MCP server manifest (server.json) and exit",
			},
		},
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	if c.Bool("manifest") {
		manifest, err := mcpserver.GenerateManifest(version)
		if err != nil {
			return err
		}
		fmt.Println(string(manifest))
		return nil
	}

	server := mcpserver.NewServer(version)
	return server.Run(context.Background())
}
