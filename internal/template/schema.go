// Package template loads journey templates: named starting layouts of
// touchpoint cards per stage, shipped built in or read from a user directory.
package template

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Template is a named journey layout.
type Template struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Cards       []CardSpec `yaml:"cards"`

	// Source is the file the template came from ("builtin:<file>" for
	// embedded ones).
	Source string `yaml:"-"`
}

// CardSpec places one touchpoint card. Row 0 is the top of the stage's
// drawable band.
type CardSpec struct {
	Stage      string `yaml:"stage"`
	Touchpoint string `yaml:"touchpoint"`
	Row        int    `yaml:"row,omitempty"`
}

// Parse decodes a YAML template. Unknown keys are rejected.
func Parse(data []byte, source string) (*Template, error) {
	var t Template
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", source, err)
	}
	t.Source = source
	return &t, nil
}

// LoadFile reads and parses a template file.
func LoadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// StageCounts returns how many cards the template places on each stage.
func (t *Template) StageCounts() map[string]int {
	counts := make(map[string]int)
	for _, c := range t.Cards {
		counts[c.Stage]++
	}
	return counts
}
