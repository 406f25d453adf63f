package advice

import "time"

// Kind identifies which heuristic check produced an advisory.
type Kind string

// String implements fmt.Stringer for toon serialization.
func (k Kind) String() string {
	return string(k)
}

const (
	KindDocstring     Kind = "docstring"      // def header followed by blank lines, no """
	KindDeclaration   Kind = "declaration"    // assignment without var/let/const
	KindDecomposition Kind = "decomposition"  // function body over the line threshold
	KindNaming        Kind = "naming"         // generic fallback
	KindErrorHandling Kind = "error_handling" // generic fallback
)

// Severity represents the urgency of acting on an advisory.
type Severity string

// String implements fmt.Stringer for toon serialization.
func (s Severity) String() string {
	return string(s)
}

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
)

// Weight returns a numeric weight for sorting.
func (s Severity) Weight() int {
	switch s {
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Advisory is one improvement suggestion produced by a heuristic check.
type Advisory struct {
	Kind     Kind     `json:"kind" toon:"kind"`
	Severity Severity `json:"severity" toon:"severity"`
	Message  string   `json:"message" toon:"message"`
}

// Analysis is the full advisory result for one snippet.
type Analysis struct {
	Advisories []Advisory `json:"advisories"`
	Summary    Summary    `json:"summary"`
	AnalyzedAt time.Time  `json:"analyzed_at"`
}

// Summary provides aggregate statistics over the advisories.
type Summary struct {
	Total        int            `json:"total"`
	ByKind       map[string]int `json:"by_kind"`
	BySeverity   map[string]int `json:"by_severity"`
	FallbackUsed bool           `json:"fallback_used"`
}

// NewSummary creates an initialized summary.
func NewSummary() Summary {
	return Summary{
		ByKind:     make(map[string]int),
		BySeverity: make(map[string]int),
	}
}

// add updates the summary with a new advisory.
func (s *Summary) add(adv Advisory) {
	s.Total++
	s.ByKind[string(adv.Kind)]++
	s.BySeverity[string(adv.Severity)]++
}
