// Package catalog loads option collections from YAML documents, for demos
// and tools that feed a select field from a file.
package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Entry is one option in a catalog. Value is the stable identity; an empty
// Label falls back to the value at extraction time.
type Entry struct {
	Value string `yaml:"value"`
	Label string `yaml:"label,omitempty"`
}

// Catalog is a named collection of options.
type Catalog struct {
	Title   string  `yaml:"title,omitempty"`
	Options []Entry `yaml:"options"`
}

// Parse parses catalog YAML bytes.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(c.Options) == 0 {
		return Catalog{}, fmt.Errorf("catalog has no options")
	}
	return c, nil
}

// Load reads and parses a catalog file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Marshal serializes a Catalog to YAML bytes.
func Marshal(c Catalog) ([]byte, error) {
	return yaml.Marshal(c)
}

// ToOptions converts the entries into the map shape the default option
// extractor understands.
func (c Catalog) ToOptions() []any {
	opts := make([]any, len(c.Options))
	for i, e := range c.Options {
		m := map[string]any{"value": e.Value}
		if e.Label != "" {
			m["label"] = e.Label
		}
		opts[i] = m
	}
	return opts
}
