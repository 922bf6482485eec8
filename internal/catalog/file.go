package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk shape of an externalized catalog.
type fileFormat struct {
	Categories []Category `yaml:"categories"`
}

// LoadFile reads a YAML catalog and validates it exactly like New.
// The file order becomes the match order.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a Catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("parsing catalog: no categories defined")
	}
	return New(f.Categories)
}

// Marshal encodes the catalog in the LoadFile format.
func (c *Catalog) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(fileFormat{Categories: c.CategoriesInOrder()})
	if err != nil {
		return nil, fmt.Errorf("marshalling catalog: %w", err)
	}
	return data, nil
}
