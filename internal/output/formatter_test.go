package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"text", FormatText},
		{"TEXT", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"toon", FormatTOON},
		{"TOON", FormatTOON},
		{"", FormatText},
		{"invalid", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseFormat(tt.input)
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterToFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.json")

	f, err := NewFormatter(FormatJSON, path, true)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}

	if f.Colored() {
		t.Error("color should be disabled when writing to a file")
	}

	if err := f.Output(map[string]string{"key": "value"}); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["key"] != "value" {
		t.Errorf("decoded[key] = %q, want %q", decoded["key"], "value")
	}
}

func TestTableRenderText(t *testing.T) {
	table := NewTable(
		"Signatures",
		[]string{"Name", "Dialect", "Params"},
		[][]string{
			{"foo", "python", "x"},
			{"add", "javascript", "a, b"},
		},
		[]string{"Total: 2", "", ""},
		nil,
	)

	var buf bytes.Buffer
	if err := table.RenderText(&buf, false); err != nil {
		t.Fatalf("RenderText() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Signatures", "foo", "add", "javascript"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestTableRenderMarkdown(t *testing.T) {
	table := NewTable(
		"Advisories",
		[]string{"Kind", "Message"},
		[][]string{{"naming", "Use descriptive names."}},
		nil,
		nil,
	)

	var buf bytes.Buffer
	if err := table.RenderMarkdown(&buf); err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "## Advisories") {
		t.Errorf("markdown output missing header:\n%s", out)
	}
	if !strings.Contains(out, "| Kind | Message |") {
		t.Errorf("markdown output missing column row:\n%s", out)
	}
}

func TestTableRenderData(t *testing.T) {
	table := NewTable("", []string{"A", "B"}, [][]string{{"1", "2"}}, nil, nil)

	data, ok := table.RenderData().([]map[string]string)
	if !ok {
		t.Fatalf("RenderData() = %T, want []map[string]string", table.RenderData())
	}
	if len(data) != 1 || data[0]["A"] != "1" || data[0]["B"] != "2" {
		t.Errorf("RenderData() = %v", data)
	}
}

func TestSectionRenderText(t *testing.T) {
	section := &Section{
		Title:   "Explanation",
		Content: "This snippet defines 1 function.",
		Sections: []Section{
			{Title: "Details", Content: "foo takes x."},
		},
	}

	var buf bytes.Buffer
	if err := section.RenderText(&buf, false); err != nil {
		t.Fatalf("RenderText() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Explanation\n===========") {
		t.Errorf("top-level section should be underlined with =:\n%s", out)
	}
	if !strings.Contains(out, "Details\n-------") {
		t.Errorf("nested section should be underlined with -:\n%s", out)
	}
}

func TestReportRenderMarkdown(t *testing.T) {
	report := &Report{
		Title: "Snippet Review",
		Sections: []Renderable{
			&Section{Title: "Explanation", Content: "prose"},
			&Section{Title: "Suggestions", Content: "advice"},
		},
	}

	var buf bytes.Buffer
	if err := report.RenderMarkdown(&buf); err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "# Snippet Review") {
		t.Errorf("missing report title:\n%s", out)
	}
	if !strings.Contains(out, "## Explanation") || !strings.Contains(out, "## Suggestions") {
		t.Errorf("missing section headers:\n%s", out)
	}
}

func TestMarshalTOON(t *testing.T) {
	out, err := MarshalTOON(map[string]any{"functions": 1})
	if err != nil {
		t.Fatalf("MarshalTOON() error: %v", err)
	}
	if out == "" {
		t.Error("MarshalTOON() returned empty output")
	}
}
