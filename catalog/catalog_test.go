// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/satisfaction-polygon/survey"
)

func TestDefault(t *testing.T) {
	c := Default()

	if len(c.Elements) == 0 {
		t.Fatal("Expected default catalog to have elements")
	}
	for _, e := range c.Elements {
		if len(e.Questions) < survey.QuestionsPerElement {
			t.Errorf("element %q has only %d questions", e.Name, len(e.Questions))
		}
	}
}

func TestParse(t *testing.T) {
	valid := `
elements:
  - name: "  health  "
    questions: [a, b, c, d, e]
  - name: work
    questions: [q1, q2, q3, q4, q5, q6]
`
	c, err := Parse([]byte(valid))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(c.Elements) != 2 {
		t.Fatalf("Expected 2 elements, got %d", len(c.Elements))
	}
	if c.Elements[0].Name != "health" {
		t.Errorf("Expected trimmed name 'health', got %q", c.Elements[0].Name)
	}
	if len(c.Elements[1].Questions) != 6 {
		t.Errorf("Expected 6 questions, got %d", len(c.Elements[1].Questions))
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no elements", `elements: []`},
		{"missing name", `
elements:
  - questions: [a, b, c, d, e]
`},
		{"duplicate name", `
elements:
  - name: x
    questions: [a, b, c, d, e]
  - name: x
    questions: [a, b, c, d, e]
`},
		{"pool too small", `
elements:
  - name: x
    questions: [a, b, c, d]
`},
		{"repeated question", `
elements:
  - name: x
    questions: [a, b, c, d, a]
`},
		{"blank question", `
elements:
  - name: x
    questions: [a, b, c, d, "  "]
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("Expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("elements: [unclosed"))
	if err == nil {
		t.Fatal("Expected error for malformed YAML")
	}
	if errors.Is(err, ErrInvalidCatalog) {
		t.Error("Malformed YAML should be a decode error, not a validation error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := []byte(`
elements:
  - name: mood
    questions: [one, two, three, four, five]
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Elements[0].Name != "mood" {
		t.Errorf("Expected element 'mood', got %q", c.Elements[0].Name)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
