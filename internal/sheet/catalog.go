package sheet

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// catalogYAML holds the number, name, title and notes of every section.
//
//go:embed catalog.yaml
var catalogYAML []byte

// CatalogEntry is one section's descriptive half.
type CatalogEntry struct {
	Number int    `yaml:"number"`
	Name   string `yaml:"name"`
	Title  string `yaml:"title"`
	Notes  string `yaml:"notes"`
}

// LoadCatalog parses the embedded catalogue.
func LoadCatalog() ([]CatalogEntry, error) {
	return parseCatalog(catalogYAML)
}

func parseCatalog(data []byte) ([]CatalogEntry, error) {
	var entries []CatalogEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return entries, nil
}

// Build joins catalogue entries with run functions by name, in catalogue
// order. Every entry needs a function and every function an entry.
func Build(entries []CatalogEntry, runs map[string]RunFunc) (*Registry, error) {
	reg := NewRegistry()
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		run, ok := runs[e.Name]
		if !ok {
			return nil, fmt.Errorf("%w: no run function for %q", ErrCatalogMismatch, e.Name)
		}
		seen[e.Name] = true
		if err := reg.Register(&Section{
			Number: e.Number,
			Name:   e.Name,
			Title:  e.Title,
			Notes:  e.Notes,
			Run:    run,
		}); err != nil {
			return nil, err
		}
	}
	for name := range runs {
		if !seen[name] {
			return nil, fmt.Errorf("%w: %q missing from catalog", ErrCatalogMismatch, name)
		}
	}
	return reg, nil
}
