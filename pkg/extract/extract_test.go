package extract

import (
	"strings"
	"testing"
)

func TestFunctions_PythonDef(t *testing.T) {
	sigs := Functions("def foo(x):\n    pass")

	if len(sigs) != 1 {
		t.Fatalf("len(sigs) = %d, want 1", len(sigs))
	}
	sig := sigs[0]
	if sig.Dialect != DialectPython {
		t.Errorf("Dialect = %q, want %q", sig.Dialect, DialectPython)
	}
	if sig.Form != FormDef {
		t.Errorf("Form = %q, want %q", sig.Form, FormDef)
	}
	if sig.Name != "foo" {
		t.Errorf("Name = %q, want %q", sig.Name, "foo")
	}
	if sig.Params != "x" {
		t.Errorf("Params = %q, want %q", sig.Params, "x")
	}
}

func TestFunctions_JavaScriptFunction(t *testing.T) {
	sigs := Functions("function greet(name) {\n  return 'hi ' + name;\n}")

	if len(sigs) != 1 {
		t.Fatalf("len(sigs) = %d, want 1", len(sigs))
	}
	if sigs[0].Dialect != DialectJavaScript {
		t.Errorf("Dialect = %q, want %q", sigs[0].Dialect, DialectJavaScript)
	}
	if sigs[0].Form != FormFunction {
		t.Errorf("Form = %q, want %q", sigs[0].Form, FormFunction)
	}
	if sigs[0].Name != "greet" {
		t.Errorf("Name = %q, want %q", sigs[0].Name, "greet")
	}
}

func TestFunctions_ArrowAssignment(t *testing.T) {
	sigs := Functions("const add = (a, b) => a + b;")

	if len(sigs) != 1 {
		t.Fatalf("len(sigs) = %d, want 1", len(sigs))
	}
	if sigs[0].Form != FormArrow {
		t.Errorf("Form = %q, want %q", sigs[0].Form, FormArrow)
	}
	if sigs[0].Name != "add" {
		t.Errorf("Name = %q, want %q", sigs[0].Name, "add")
	}
	if sigs[0].Params != "a, b" {
		t.Errorf("Params = %q, want %q", sigs[0].Params, "a, b")
	}
}

func TestFunctions_PassOrderNotTextOrder(t *testing.T) {
	// The arrow definition appears first in the text, but def and function
	// passes run before the arrow pass, so it must come last.
	text := strings.Join([]string{
		"add = (a, b) => a + b",
		"function second() {}",
		"def third(x):",
		"    pass",
	}, "\n")

	sigs := Functions(text)
	if len(sigs) != 3 {
		t.Fatalf("len(sigs) = %d, want 3", len(sigs))
	}

	wantOrder := []string{"third", "second", "add"}
	for i, want := range wantOrder {
		if sigs[i].Name != want {
			t.Errorf("sigs[%d].Name = %q, want %q", i, sigs[i].Name, want)
		}
	}
}

func TestFunctions_EmptyParams(t *testing.T) {
	sigs := Functions("def noop():\n    pass")

	if len(sigs) != 1 {
		t.Fatalf("len(sigs) = %d, want 1", len(sigs))
	}
	if sigs[0].Params != "" {
		t.Errorf("Params = %q, want empty string", sigs[0].Params)
	}
}

func TestFunctions_NestedParensTruncated(t *testing.T) {
	// The parameter list terminates at the first closing parenthesis.
	sigs := Functions("def wrap(fn(x)):\n    pass")

	if len(sigs) != 1 {
		t.Fatalf("len(sigs) = %d, want 1", len(sigs))
	}
	if sigs[0].Params != "fn(x" {
		t.Errorf("Params = %q, want %q", sigs[0].Params, "fn(x")
	}
}

func TestFunctions_Idempotent(t *testing.T) {
	text := "def a():\n    pass\nfunction b(x) {}\nc = (y) => y"

	first := Functions(text)
	second := Functions(text)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("sigs[%d] differ: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestFunctions_NoMatches(t *testing.T) {
	for _, text := range []string{"", "x = 1\ny = 2", "print('hello')"} {
		if sigs := Functions(text); len(sigs) != 0 {
			t.Errorf("Functions(%q) = %v, want none", text, sigs)
		}
	}
}

func TestSplitParams(t *testing.T) {
	tests := []struct {
		params string
		want   []string
	}{
		{"a, b", []string{"a", "b"}},
		{"  a ,  b ,c ", []string{"a", "b", "c"}},
		{"", nil},
		{"   ", nil},
		{"single", []string{"single"}},
		{"a,,b", []string{"a", "b"}},
	}

	for _, tt := range tests {
		got := SplitParams(tt.params)
		if len(got) != len(tt.want) {
			t.Errorf("SplitParams(%q) = %v, want %v", tt.params, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitParams(%q)[%d] = %q, want %q", tt.params, i, got[i], tt.want[i])
			}
		}
	}
}

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		path string
		want Dialect
		ok   bool
	}{
		{"app.py", DialectPython, true},
		{"lib/util.js", DialectJavaScript, true},
		{"component.TSX", DialectJavaScript, true},
		{"main.go", "", false},
		{"README.md", "", false},
	}

	for _, tt := range tests {
		got, ok := DetectDialect(tt.path)
		if ok != tt.ok || got != tt.want {
			t.Errorf("DetectDialect(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}
