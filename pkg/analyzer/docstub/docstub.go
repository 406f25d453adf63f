// Package docstub synthesizes skeletal documentation for the functions
// discovered in a snippet.
//
// Discovery reuses extract.Functions verbatim so the stubs always agree
// with the extractor about which functions exist and in what order.
package docstub

import (
	"fmt"
	"strings"
	"time"

	"github.com/glosslabs/gloss/pkg/extract"
)

// Generator produces documentation blocks. Safe for concurrent use.
type Generator struct{}

// New creates a new documentation generator.
func New() *Generator {
	return &Generator{}
}

// Generate builds a documentation block for text. One stub is emitted per
// discovered signature, in extraction order; a generic three-line stub is
// emitted when no functions are found. Total over any input.
func (g *Generator) Generate(text string) *Block {
	block := &Block{
		Stubs:       make([]Stub, 0, 4),
		GeneratedAt: time.Now().UTC(),
	}

	sigs := extract.Functions(text)
	if len(sigs) == 0 {
		block.Generic = true
		return block
	}

	for _, sig := range sigs {
		block.Stubs = append(block.Stubs, Stub{
			Signature: sig,
			Lines:     stubLines(sig),
		})
	}
	return block
}

// stubLines renders the fixed-shape stub for one signature: header,
// description placeholder, parameter section, returns placeholder, and a
// blank separator line.
func stubLines(sig extract.Signature) []string {
	lines := []string{
		fmt.Sprintf("### %s()", sig.Name),
		"Description: TODO",
		"Parameters:",
	}

	params := extract.SplitParams(sig.Params)
	if len(params) == 0 {
		lines = append(lines, "- none")
	} else {
		for _, p := range params {
			lines = append(lines, fmt.Sprintf("- %s: TODO", p))
		}
	}

	lines = append(lines, "Returns: TODO", "")
	return lines
}

// genericLines is the stub emitted when no functions are discovered.
var genericLines = []string{
	"### Snippet",
	"Description: TODO",
	"Notes: no function definitions were detected.",
}

// Lines flattens the block into its display lines.
func (b *Block) Lines() []string {
	if b.Generic {
		out := make([]string, len(genericLines))
		copy(out, genericLines)
		return out
	}

	var out []string
	for _, stub := range b.Stubs {
		out = append(out, stub.Lines...)
	}
	return out
}

// Text renders the block as a single newline-joined string.
func (b *Block) Text() string {
	return strings.Join(b.Lines(), "\n")
}
