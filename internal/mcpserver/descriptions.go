package mcpserver

// Tool descriptions with interpretation guidance for LLMs.
// Each description explains what the tool does, when to use it,
// and how to interpret results.

func describeReview() string {
	return `Runs the full heuristic review of a code snippet: explanation, improvement suggestions, and a documentation skeleton.

USE WHEN:
- A user pastes a snippet and wants a quick, complete read on it
- You need all three artifacts (explanation, suggestions, docs) in one call

INTERPRETING RESULTS:
- signatures: function-like constructs found by three regex passes (Python def, JavaScript function, arrow assignment), in pass order
- advisories: at most one per heuristic check; two generic advisories appear when no check fired
- fingerprint: BLAKE3 hash of the snippet, stable across identical inputs

LIMITS:
- Pattern matching only; no parsing or execution. Parameter lists stop at the first closing parenthesis, so nested calls are truncated.
- Empty or whitespace-only code is rejected with an error.`
}

func describeExplain() string {
	return `Describes the function-like constructs in a code snippet as prose.

USE WHEN:
- A user asks "what does this snippet define?"
- You only need names, dialects, and parameter lists, not advice

INTERPRETING RESULTS:
- explanation: one sentence per discovered function, in extraction order
- signatures: the structured form of the same discovery

LIMITS:
- Regex-based discovery; anonymous and nested constructs are not recognized.`
}

func describeSuggest() string {
	return `Runs fixed heuristic checks over a snippet and returns improvement advisories.

USE WHEN:
- A user wants quick feedback on snippet hygiene

INTERPRETING RESULTS:
- Checks fire in fixed order: missing Python docstring, assignment without var/let/const, function body over the line threshold
- Each check contributes at most one advisory no matter how many sites triggered it
- When nothing fires, two generic advisories (naming, error handling) are returned

LIMITS:
- The declaration check is a naive substring scan; a keyword anywhere in the line, including inside a string literal, suppresses it.`
}

func describeDocs() string {
	return `Generates a skeletal documentation block for each function found in a snippet.

USE WHEN:
- A user wants a starting point for documenting pasted code

INTERPRETING RESULTS:
- One stub per function: header, description placeholder, one bullet per parameter, returns placeholder
- A generic three-line stub is returned when no functions are found

LIMITS:
- Parameter names are split on commas textually; type annotations and defaults are carried through untouched.`
}
