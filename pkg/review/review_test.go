package review

import (
	"errors"
	"strings"
	"testing"

	"github.com/glosslabs/gloss/pkg/analyzer/advice"
	"github.com/glosslabs/gloss/pkg/extract"
)

func TestReview_EmptyInput(t *testing.T) {
	r := New()
	for _, input := range []string{"", "   ", "\n\t\n", " \r\n "} {
		result, err := r.Review(input)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Review(%q) err = %v, want ErrEmptyInput", input, err)
		}
		if result != nil {
			t.Errorf("Review(%q) produced artifacts despite empty input", input)
		}
	}
}

func TestReview_PythonFunction(t *testing.T) {
	result, err := New().Review("def foo(x):\n    pass")
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if len(result.Signatures) != 1 {
		t.Fatalf("len(signatures) = %d, want 1", len(result.Signatures))
	}
	sig := result.Signatures[0]
	if sig.Dialect != extract.DialectPython || sig.Name != "foo" || sig.Params != "x" {
		t.Errorf("signature = %+v", sig)
	}

	if !strings.Contains(result.Explanation, "1 function") {
		t.Errorf("explanation should report one function: %q", result.Explanation)
	}
	if !strings.Contains(result.Explanation, "foo") || !strings.Contains(result.Explanation, "Python") {
		t.Errorf("explanation should name foo as Python: %q", result.Explanation)
	}
	if !strings.Contains(result.Documentation, "### foo()") {
		t.Errorf("documentation missing foo header:\n%s", result.Documentation)
	}
	if !strings.Contains(result.Documentation, "- x: TODO") {
		t.Errorf("documentation missing parameter bullet:\n%s", result.Documentation)
	}
}

func TestReview_ArrowFunction(t *testing.T) {
	result, err := New().Review("const add = (a, b) => a + b;")
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if len(result.Signatures) != 1 {
		t.Fatalf("len(signatures) = %d, want 1", len(result.Signatures))
	}
	if result.Signatures[0].Form != extract.FormArrow {
		t.Errorf("Form = %q, want %q", result.Signatures[0].Form, extract.FormArrow)
	}
	if !strings.Contains(result.Explanation, "arrow function") {
		t.Errorf("explanation should mention arrow form: %q", result.Explanation)
	}
	if !strings.Contains(result.Explanation, "a, b") {
		t.Errorf("explanation should list parameters: %q", result.Explanation)
	}
}

func TestReview_EchoesInput(t *testing.T) {
	input := "def f():\n    pass\n"
	result, err := New().Review(input)
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}
	if result.Input != input {
		t.Errorf("Input = %q, want verbatim echo", result.Input)
	}
}

func TestReview_FingerprintStable(t *testing.T) {
	input := "x = 1\n"
	first, err := New().Review(input)
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}
	second, err := New().Review(input)
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if first.Fingerprint == "" {
		t.Fatal("Fingerprint is empty")
	}
	if first.Fingerprint != second.Fingerprint {
		t.Errorf("fingerprints differ for identical input: %q vs %q", first.Fingerprint, second.Fingerprint)
	}

	other, err := New().Review("y = 2\n")
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}
	if other.Fingerprint == first.Fingerprint {
		t.Error("different inputs share a fingerprint")
	}
}

func TestReview_SuggestionsJoinedWithSpace(t *testing.T) {
	result, err := New().Review("print('hi')")
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	// Fallback path: exactly two generic advisories, one separating space.
	if len(result.Advisories) != 2 {
		t.Fatalf("len(advisories) = %d, want 2", len(result.Advisories))
	}
	want := result.Advisories[0].Message + " " + result.Advisories[1].Message
	if result.Suggestions != want {
		t.Errorf("Suggestions = %q, want %q", result.Suggestions, want)
	}
}

func TestReview_CustomAdvisor(t *testing.T) {
	code := "def tiny():\n    a = 1\n    b = 2\n    c = 3\n"

	r := New(WithAdvisor(advice.New(advice.WithLongFunctionThreshold(2))))
	result, err := r.Review(code)
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	found := false
	for _, adv := range result.Advisories {
		if adv.Kind == advice.KindDecomposition {
			found = true
		}
	}
	if !found {
		t.Errorf("custom threshold should fire decomposition, got %+v", result.Advisories)
	}
}

func TestExplain_NoFunctions(t *testing.T) {
	got := explain(nil)
	if !strings.Contains(got, "No function definitions") {
		t.Errorf("explain(nil) = %q", got)
	}
}

func TestDescribe_NoParameters(t *testing.T) {
	got := describe(extract.Signature{
		Dialect: extract.DialectJavaScript,
		Form:    extract.FormFunction,
		Name:    "ping",
	})
	if !strings.Contains(got, "no parameters") {
		t.Errorf("describe = %q, want no-parameter phrasing", got)
	}
}
