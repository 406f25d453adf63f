package docstub

import (
	"strings"
	"testing"

	"github.com/glosslabs/gloss/pkg/extract"
)

func TestGenerate_SingleFunction(t *testing.T) {
	block := New().Generate("def foo(x):\n    pass")

	if block.Generic {
		t.Fatal("Generic = true, want false")
	}
	if len(block.Stubs) != 1 {
		t.Fatalf("len(stubs) = %d, want 1", len(block.Stubs))
	}

	stub := block.Stubs[0]
	if stub.Signature.Name != "foo" {
		t.Errorf("Name = %q, want %q", stub.Signature.Name, "foo")
	}
	if stub.Lines[0] != "### foo()" {
		t.Errorf("header = %q, want %q", stub.Lines[0], "### foo()")
	}
	if !containsLine(stub.Lines, "- x: TODO") {
		t.Errorf("missing parameter bullet for x, lines = %v", stub.Lines)
	}
}

func TestGenerate_TwoParameterBullets(t *testing.T) {
	block := New().Generate("def pair(a, b):\n    pass")

	lines := block.Stubs[0].Lines
	var bullets []string
	for _, l := range lines {
		if strings.HasPrefix(l, "- ") && l != "- none" {
			bullets = append(bullets, l)
		}
	}

	if len(bullets) != 2 {
		t.Fatalf("parameter bullets = %d, want 2: %v", len(bullets), lines)
	}
	if bullets[0] != "- a: TODO" || bullets[1] != "- b: TODO" {
		t.Errorf("bullets = %v, want a then b", bullets)
	}
}

func TestGenerate_NoParameters(t *testing.T) {
	block := New().Generate("function ping() {}")

	if !containsLine(block.Stubs[0].Lines, "- none") {
		t.Errorf("expected 'no parameters' line, got %v", block.Stubs[0].Lines)
	}
}

func TestGenerate_GenericStub(t *testing.T) {
	block := New().Generate("x + y")

	if !block.Generic {
		t.Fatal("Generic = false, want true")
	}
	lines := block.Lines()
	if len(lines) != 3 {
		t.Errorf("generic stub lines = %d, want 3: %v", len(lines), lines)
	}
}

func TestGenerate_MatchesExtractorOrder(t *testing.T) {
	text := "add = (a) => a\nfunction mid(b) {}\ndef first(c):\n    pass"

	block := New().Generate(text)
	sigs := extract.Functions(text)

	if len(block.Stubs) != len(sigs) {
		t.Fatalf("stubs = %d, signatures = %d", len(block.Stubs), len(sigs))
	}
	for i := range sigs {
		if block.Stubs[i].Signature != sigs[i] {
			t.Errorf("stub[%d] signature %+v != extracted %+v", i, block.Stubs[i].Signature, sigs[i])
		}
	}
}

func TestText_SeparatorBetweenStubs(t *testing.T) {
	block := New().Generate("def a():\n    pass\ndef b():\n    pass")

	text := block.Text()
	if !strings.Contains(text, "Returns: TODO\n\n### b()") {
		t.Errorf("stubs not separated by a blank line:\n%s", text)
	}
}

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}
