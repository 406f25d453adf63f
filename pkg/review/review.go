// Package review is the entry point for snippet analysis. One call runs
// the signature extractor, the heuristic advisor, and the documentation
// synthesizer over the same read-only input and bundles their outputs.
package review

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glosslabs/gloss/pkg/analyzer/advice"
	"github.com/glosslabs/gloss/pkg/analyzer/docstub"
	"github.com/glosslabs/gloss/pkg/extract"
	"github.com/zeebo/blake3"
)

// ErrEmptyInput is returned when the trimmed input has zero length.
// It is the only error the engine produces.
var ErrEmptyInput = errors.New("input is empty or contains only whitespace")

// Review is the full analysis result for one snippet.
type Review struct {
	// Input echoes the analyzed snippet verbatim.
	Input string `json:"input"`
	// Fingerprint is the BLAKE3 hash of the input, hex encoded.
	Fingerprint string `json:"fingerprint"`

	Signatures []extract.Signature `json:"signatures"`
	Advisories []advice.Advisory   `json:"advisories"`

	Explanation   string `json:"explanation"`
	Suggestions   string `json:"suggestions"`
	Documentation string `json:"documentation"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Reviewer runs the three analysis passes. Safe for concurrent use; each
// call is independent and keeps no state between invocations.
type Reviewer struct {
	advisor *advice.Analyzer
	docs    *docstub.Generator
}

// Option is a functional option for configuring Reviewer.
type Option func(*Reviewer)

// WithAdvisor replaces the default advice analyzer, e.g. to change the
// long-function threshold.
func WithAdvisor(a *advice.Analyzer) Option {
	return func(r *Reviewer) {
		if a != nil {
			r.advisor = a
		}
	}
}

// New creates a new reviewer.
func New(opts ...Option) *Reviewer {
	r := &Reviewer{
		advisor: advice.New(),
		docs:    docstub.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Review analyzes one snippet. Empty or whitespace-only input returns
// ErrEmptyInput and no artifacts; every other input succeeds.
func (r *Reviewer) Review(text string) (*Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	sigs := extract.Functions(text)
	advisories := r.advisor.Analyze(text)
	docs := r.docs.Generate(text)

	sum := blake3.Sum256([]byte(text))

	return &Review{
		Input:         text,
		Fingerprint:   hex.EncodeToString(sum[:]),
		Signatures:    sigs,
		Advisories:    advisories.Advisories,
		Explanation:   explain(sigs),
		Suggestions:   advisories.Joined(),
		Documentation: docs.Text(),
		GeneratedAt:   time.Now().UTC(),
	}, nil
}

// explain renders the extraction result as prose.
func explain(sigs []extract.Signature) string {
	if len(sigs) == 0 {
		return "No function definitions were detected; the snippet appears to be plain statements or expressions."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "This snippet defines %d %s.", len(sigs), pluralize("function", len(sigs)))

	for _, sig := range sigs {
		b.WriteString(" ")
		b.WriteString(describe(sig))
	}
	return b.String()
}

// describe renders one signature as a sentence.
func describe(sig extract.Signature) string {
	var kind string
	switch sig.Form {
	case extract.FormDef:
		kind = "a Python function"
	case extract.FormFunction:
		kind = "a JavaScript function"
	case extract.FormArrow:
		kind = "a JavaScript arrow function"
	default:
		kind = "a function"
	}

	params := extract.SplitParams(sig.Params)
	if len(params) == 0 {
		return fmt.Sprintf("%s is %s taking no parameters.", sig.Name, kind)
	}
	return fmt.Sprintf("%s is %s taking %d %s (%s).",
		sig.Name, kind, len(params), pluralize("parameter", len(params)), strings.Join(params, ", "))
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
