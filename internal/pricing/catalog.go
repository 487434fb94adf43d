// Package pricing owns the dumpster size catalog and quote calculation.
// Prices are always derived from the size key, never stored alongside a booking.
package pricing

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Size is a catalog entry for one dumpster size.
type Size struct {
	Key       string `json:"key" yaml:"-"`
	Name      string `json:"name" yaml:"name"`
	BasePrice int    `json:"basePrice" yaml:"basePrice"`
	Blurb     string `json:"blurb,omitempty" yaml:"blurb"`
}

// Catalog holds the size table and the quote constants.
type Catalog struct {
	sizes         map[string]Size
	keys          []string
	taxRate       float64
	includedMiles float64
	perMileRate   float64
}

type catalogFile struct {
	Sizes         map[string]Size `yaml:"sizes"`
	TaxRate       float64         `yaml:"taxRate"`
	IncludedMiles float64         `yaml:"includedMiles"`
	PerMileRate   float64         `yaml:"perMileRate"`
}

// LoadCatalog parses the embedded catalog file.
func LoadCatalog() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, fmt.Errorf("parse pricing catalog: %w", err)
	}
	if len(file.Sizes) == 0 {
		return nil, fmt.Errorf("pricing catalog has no sizes")
	}

	sizes := make(map[string]Size, len(file.Sizes))
	keys := make([]string, 0, len(file.Sizes))
	for key, size := range file.Sizes {
		size.Key = key
		if size.Name == "" || size.BasePrice <= 0 {
			return nil, fmt.Errorf("pricing catalog entry %q is incomplete", key)
		}
		sizes[key] = size
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return &Catalog{
		sizes:         sizes,
		keys:          keys,
		taxRate:       file.TaxRate,
		includedMiles: file.IncludedMiles,
		perMileRate:   file.PerMileRate,
	}, nil
}

// Lookup returns the catalog entry for the given size key.
func (c *Catalog) Lookup(key string) (Size, bool) {
	size, ok := c.sizes[key]
	return size, ok
}

// IsValidSize reports whether key is a defined catalog key.
func (c *Catalog) IsValidSize(key string) bool {
	_, ok := c.sizes[key]
	return ok
}

// Sizes returns the catalog entries in key order.
func (c *Catalog) Sizes() []Size {
	out := make([]Size, 0, len(c.keys))
	for _, key := range c.keys {
		out = append(out, c.sizes[key])
	}
	return out
}
