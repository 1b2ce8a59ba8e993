package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is a corpus definition: a named, ordered list of documents.
// Document order is load-bearing; it fixes the letter stream layout.
type Catalog struct {
	Name      string   `yaml:"name"`
	Documents []string `yaml:"documents"`
}

// DefaultCatalog returns the Torah in canonical book order.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Name: "torah",
		Documents: []string{
			"Genesis",
			"Exodus",
			"Leviticus",
			"Numbers",
			"Deuteronomy",
		},
	}
}

// LoadCatalog reads a YAML corpus definition from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if len(catalog.Documents) == 0 {
		return nil, fmt.Errorf("catalog %s: %w", path, ErrNoDocuments)
	}
	return &catalog, nil
}
