// Package extract discovers function-like signatures in raw snippet text.
//
// Discovery is intentionally shallow: three independent regular-expression
// passes over the full text, no lexing and no syntax tree. Parameter lists
// terminate at the first closing parenthesis, so nested calls and multi-line
// parameter lists are not recognized.
package extract

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Dialect identifies the language family a signature was matched in.
type Dialect string

// String implements fmt.Stringer for toon serialization.
func (d Dialect) String() string {
	return string(d)
}

const (
	DialectPython     Dialect = "python"
	DialectJavaScript Dialect = "javascript"
)

// Form identifies the surface syntax a signature was matched by.
type Form string

// String implements fmt.Stringer for toon serialization.
func (f Form) String() string {
	return string(f)
}

const (
	FormDef      Form = "def"      // Python keyword definition
	FormFunction Form = "function" // JavaScript keyword definition
	FormArrow    Form = "arrow"    // identifier = (params) =>
)

// Signature is one discovered function-like construct.
type Signature struct {
	Dialect Dialect `json:"dialect" toon:"dialect"`
	Form    Form    `json:"form" toon:"form"`
	Name    string  `json:"name" toon:"name"`
	// Params is the trimmed raw text between the parentheses. An empty
	// string means the parentheses were empty.
	Params string `json:"params" toon:"params"`
}

var (
	defPattern      = regexp.MustCompile(`def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(([^)]*)\)`)
	functionPattern = regexp.MustCompile(`function\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(([^)]*)\)`)
	arrowPattern    = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*=\s*\(([^)]*)\)\s*=>`)
)

// pass binds one pattern to the dialect and form it produces.
// Pass order is part of the contract: results are concatenated per pass,
// never interleaved or re-sorted by text position.
type pass struct {
	pattern *regexp.Regexp
	dialect Dialect
	form    Form
}

var passes = []pass{
	{defPattern, DialectPython, FormDef},
	{functionPattern, DialectJavaScript, FormFunction},
	{arrowPattern, DialectJavaScript, FormArrow},
}

// Functions returns every signature discovered in text, in pass order.
// It is a pure function of text and never fails; empty or unrecognizable
// input yields a nil slice.
func Functions(text string) []Signature {
	var sigs []Signature
	for _, p := range passes {
		for _, m := range p.pattern.FindAllStringSubmatch(text, -1) {
			sigs = append(sigs, Signature{
				Dialect: p.dialect,
				Form:    p.form,
				Name:    m[1],
				Params:  strings.TrimSpace(m[2]),
			})
		}
	}
	return sigs
}

// SplitParams splits raw parameter text on commas and trims each entry.
// Entries that are pure whitespace are dropped. Type annotations, defaults,
// and generic syntax are not understood; the split is purely textual.
func SplitParams(params string) []string {
	if strings.TrimSpace(params) == "" {
		return nil
	}
	parts := strings.Split(params, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// dialectExtensions maps file extensions to the dialect they usually carry.
var dialectExtensions = map[string]Dialect{
	".py":  DialectPython,
	".js":  DialectJavaScript,
	".jsx": DialectJavaScript,
	".mjs": DialectJavaScript,
	".cjs": DialectJavaScript,
	".ts":  DialectJavaScript,
	".tsx": DialectJavaScript,
}

// DetectDialect guesses the dialect of a file from its extension.
// The second return is false for extensions outside the supported families.
func DetectDialect(path string) (Dialect, bool) {
	d, ok := dialectExtensions[strings.ToLower(filepath.Ext(path))]
	return d, ok
}
