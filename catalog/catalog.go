// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/satisfaction-polygon/survey"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed default.yaml
var defaultCatalog []byte

// Element is a named survey element with its question pool
type Element struct {
	Name      string   `yaml:"name"`
	Questions []string `yaml:"questions"`
}

type Catalog struct {
	Elements []Element `yaml:"elements"`
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	for i := range c.Elements {
		c.Elements[i].Name = strings.TrimSpace(c.Elements[i].Name)
		for j, q := range c.Elements[i].Questions {
			c.Elements[i].Questions[j] = strings.TrimSpace(q)
		}
	}

	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Load reads a catalog file from disk
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Default returns the catalog compiled into the binary
func Default() Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic("embedded catalog is invalid: " + err.Error())
	}
	return c
}

// Validate checks that names are unique and every pool is large enough
// for sampling
func (c Catalog) Validate() error {
	if len(c.Elements) == 0 {
		return fmt.Errorf("%w: no elements", ErrInvalidCatalog)
	}

	names := make(map[string]bool, len(c.Elements))
	for i, e := range c.Elements {
		if e.Name == "" {
			return fmt.Errorf("%w: element %d has no name", ErrInvalidCatalog, i)
		}
		if names[e.Name] {
			return fmt.Errorf("%w: duplicate element %q", ErrInvalidCatalog, e.Name)
		}
		names[e.Name] = true

		if len(e.Questions) < survey.QuestionsPerElement {
			return fmt.Errorf("%w: element %q has %d questions, need at least %d",
				ErrInvalidCatalog, e.Name, len(e.Questions), survey.QuestionsPerElement)
		}

		seen := make(map[string]bool, len(e.Questions))
		for _, q := range e.Questions {
			if q == "" {
				return fmt.Errorf("%w: element %q has an empty question", ErrInvalidCatalog, e.Name)
			}
			if seen[q] {
				return fmt.Errorf("%w: element %q repeats question %q", ErrInvalidCatalog, e.Name, q)
			}
			seen[q] = true
		}
	}

	return nil
}
