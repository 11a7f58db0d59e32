// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/estore-search/pkg/types"
)

// SeedFile is the on-disk representation of a starting catalog. It is read
// once at startup; the catalog is never written back.
type SeedFile struct {
	Books       []SeedBook       `yaml:"books"`
	Electronics []SeedElectronic `yaml:"electronics"`
}

// SeedProduct holds the fields common to seeded products. A missing price
// means the product has no price.
type SeedProduct struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Year  int      `yaml:"year"`
	Price *float64 `yaml:"price,omitempty"`
}

// SeedBook is a book entry in a seed file.
type SeedBook struct {
	SeedProduct `yaml:",inline"`
	Author      string `yaml:"author"`
	Publisher   string `yaml:"publisher"`
}

// SeedElectronic is an electronic entry in a seed file.
type SeedElectronic struct {
	SeedProduct `yaml:",inline"`
	Maker       string `yaml:"maker"`
}

// LoadSummary holds counts from a seed load.
type LoadSummary struct {
	Books       int
	Electronics int
}

// Total returns the number of products loaded.
func (s LoadSummary) Total() int {
	return s.Books + s.Electronics
}

// LoadFile reads a YAML seed file into a new catalog.
func LoadFile(path string) (*Catalog, LoadSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadSummary{}, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	c, summary, err := Load(f)
	if err != nil {
		return nil, LoadSummary{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, summary, nil
}

// Load decodes a YAML seed document into a new catalog. Every entry goes
// through the product constructors; the first invalid or duplicate entry
// fails the whole load.
func Load(r io.Reader) (*Catalog, LoadSummary, error) {
	var seed SeedFile
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil && err != io.EOF {
		return nil, LoadSummary{}, fmt.Errorf("parsing seed file: %w", err)
	}

	c := New()
	var summary LoadSummary

	for i, sb := range seed.Books {
		info, err := sb.info()
		if err != nil {
			return nil, LoadSummary{}, fmt.Errorf("book %d: %w", i+1, err)
		}
		book, err := types.NewBook(info, sb.Author, sb.Publisher)
		if err != nil {
			return nil, LoadSummary{}, fmt.Errorf("book %d: %w", i+1, err)
		}
		if err := c.Add(book); err != nil {
			return nil, LoadSummary{}, fmt.Errorf("book %d: %w", i+1, err)
		}
		summary.Books++
	}

	for i, se := range seed.Electronics {
		info, err := se.info()
		if err != nil {
			return nil, LoadSummary{}, fmt.Errorf("electronic %d: %w", i+1, err)
		}
		elec, err := types.NewElectronic(info, se.Maker)
		if err != nil {
			return nil, LoadSummary{}, fmt.Errorf("electronic %d: %w", i+1, err)
		}
		if err := c.Add(elec); err != nil {
			return nil, LoadSummary{}, fmt.Errorf("electronic %d: %w", i+1, err)
		}
		summary.Electronics++
	}

	return c, summary, nil
}

func (p SeedProduct) info() (types.Info, error) {
	price := types.NoPrice
	if p.Price != nil {
		price = *p.Price
	}
	return types.NewInfo(p.ID, p.Name, p.Year, price)
}
