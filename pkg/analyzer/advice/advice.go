// Package advice runs a fixed sequence of heuristic checks over snippet
// text and produces improvement advisories.
//
// Checks are independent: each scans the full original text and appends at
// most one advisory no matter how many sites trigger it. When no check
// fires, two generic advisories are emitted instead.
package advice

import (
	"regexp"
	"strings"
	"time"
)

// Advisory messages, in the wording shown to users.
const (
	msgDocstring     = "Add a docstring right after each Python function definition to explain what it does."
	msgDeclaration   = "Declare variables with var, let, or const before assigning to them."
	msgDecomposition = "Some functions are getting long; consider breaking them into smaller, focused helpers."
	msgNaming        = "Use descriptive names for variables and functions."
	msgErrorHandling = "Consider how the code should handle unexpected inputs and errors."
)

var (
	// defHeaderPattern matches a Python function header up to the end of
	// its line. The parameter list stops at the first closing parenthesis.
	defHeaderPattern = regexp.MustCompile(`def\s+[A-Za-z_][A-Za-z0-9_]*\s*\([^)]*\)[^\n]*`)

	// assignmentPattern matches a bare identifier assignment at the start
	// of a line. Compound operators (==, =>, +=) are not assignments.
	assignmentPattern = regexp.MustCompile(`^[ \t]*[A-Za-z_][A-Za-z0-9_]*\s*=(\s|[^=>]|$)`)
)

// declarationKeywords suppress the undeclared-assignment check when they
// appear anywhere in the line. The check is a deliberate substring match:
// a keyword inside a string literal or a longer word also suppresses it.
var declarationKeywords = []string{"var", "let", "const"}

// DefaultLongFunctionLines is the body line count above which the
// decomposition advisory fires.
const DefaultLongFunctionLines = 20

// Analyzer runs the heuristic checks. Safe for concurrent use.
type Analyzer struct {
	longFunctionLines int
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithLongFunctionThreshold sets the body line count above which the
// long-function check fires.
func WithLongFunctionThreshold(lines int) Option {
	return func(a *Analyzer) {
		a.longFunctionLines = lines
	}
}

// New creates a new advisory analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		longFunctionLines: DefaultLongFunctionLines,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.longFunctionLines <= 0 {
		a.longFunctionLines = DefaultLongFunctionLines
	}
	return a
}

// Analyze runs every check against text, in fixed order. It is total over
// any input; empty text simply takes the fallback branch.
func (a *Analyzer) Analyze(text string) *Analysis {
	analysis := &Analysis{
		Advisories: make([]Advisory, 0, 2),
		Summary:    NewSummary(),
		AnalyzedAt: time.Now().UTC(),
	}

	if hasUndocumentedFunction(text) {
		analysis.append(Advisory{KindDocstring, SeverityLow, msgDocstring})
	}
	if hasUndeclaredAssignment(text) {
		analysis.append(Advisory{KindDeclaration, SeverityMedium, msgDeclaration})
	}
	if a.hasLongFunction(text) {
		analysis.append(Advisory{KindDecomposition, SeverityMedium, msgDecomposition})
	}

	if len(analysis.Advisories) == 0 {
		analysis.Summary.FallbackUsed = true
		analysis.append(Advisory{KindNaming, SeverityLow, msgNaming})
		analysis.append(Advisory{KindErrorHandling, SeverityLow, msgErrorHandling})
	}

	return analysis
}

// append records an advisory and updates the summary.
func (an *Analysis) append(adv Advisory) {
	an.Advisories = append(an.Advisories, adv)
	an.Summary.add(adv)
}

// Joined returns the advisory messages concatenated with a single space,
// in check order.
func (an *Analysis) Joined() string {
	msgs := make([]string, len(an.Advisories))
	for i, adv := range an.Advisories {
		msgs[i] = adv.Message
	}
	return strings.Join(msgs, " ")
}

// hasUndocumentedFunction reports whether any Python function header is
// immediately followed by one or more blank lines and not then by a
// triple-quote docstring. Running into end-of-text after the blank lines
// also counts as undocumented.
func hasUndocumentedFunction(text string) bool {
	for _, loc := range defHeaderPattern.FindAllStringIndex(text, -1) {
		rest := text[loc[1]:]
		if !strings.HasPrefix(rest, "\n") {
			continue // header runs to end of text
		}
		rest = rest[1:]

		blankLines := 0
		for {
			nl := strings.IndexByte(rest, '\n')
			if nl < 0 || strings.TrimSpace(rest[:nl]) != "" {
				break
			}
			blankLines++
			rest = rest[nl+1:]
		}

		if blankLines == 0 {
			continue
		}
		if !strings.HasPrefix(strings.TrimSpace(rest), `"""`) {
			return true
		}
	}
	return false
}

// hasUndeclaredAssignment reports whether any line assigns to a bare
// identifier without a declaration keyword somewhere in the line.
func hasUndeclaredAssignment(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if !assignmentPattern.MatchString(line) {
			continue
		}
		declared := false
		for _, kw := range declarationKeywords {
			if strings.Contains(line, kw) {
				declared = true
				break
			}
		}
		if !declared {
			return true
		}
	}
	return false
}

// hasLongFunction reports whether any Python function body, measured from
// the end of its header line to the next header or end of text, exceeds
// the configured line threshold.
func (a *Analyzer) hasLongFunction(text string) bool {
	headers := defHeaderPattern.FindAllStringIndex(text, -1)
	for i, loc := range headers {
		bodyStart := loc[1]
		bodyEnd := len(text)
		if i+1 < len(headers) {
			bodyEnd = headers[i+1][0]
		}
		body := text[bodyStart:bodyEnd]
		if len(strings.Split(body, "\n")) > a.longFunctionLines {
			return true
		}
	}
	return false
}
