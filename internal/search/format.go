// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/estore-search/pkg/types"
)

// Result is the serializable view of a matched product.
type Result struct {
	Kind      types.Kind `json:"kind" yaml:"kind"`
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Year      int        `json:"year" yaml:"year"`
	Price     *float64   `json:"price,omitempty" yaml:"price,omitempty"`
	Author    string     `json:"author,omitempty" yaml:"author,omitempty"`
	Publisher string     `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Maker     string     `json:"maker,omitempty" yaml:"maker,omitempty"`
}

// NewResult projects p into a Result.
func NewResult(p types.Product) Result {
	r := Result{
		Kind: p.Kind(),
		ID:   p.ID(),
		Name: p.Name(),
		Year: p.Year(),
	}
	if p.HasPrice() {
		price := p.Price()
		r.Price = &price
	}
	switch v := p.(type) {
	case *types.Book:
		r.Author = v.Author()
		r.Publisher = v.Publisher()
	case *types.Electronic:
		r.Maker = v.Maker()
	}
	return r
}

// Results projects every product, keeping order and duplicates.
func Results(products []types.Product) []Result {
	out := make([]Result, len(products))
	for i, p := range products {
		out[i] = NewResult(p)
	}
	return out
}

// Write renders products to w in the given format.
func Write(w io.Writer, products []types.Product, format types.OutputFormat) error {
	switch format {
	case types.OutputText, "":
		FormatText(w, products)
		return nil
	case types.OutputJSON:
		return FormatJSON(w, products)
	case types.OutputYAML:
		return FormatYAML(w, products)
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", format)
	}
}

// FormatText writes a header followed by each product's fields, in result
// order.
func FormatText(w io.Writer, products []types.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No matching products found.")
		return
	}

	noun := "products"
	if len(products) == 1 {
		noun = "product"
	}
	fmt.Fprintf(w, "Found %d %s:\n", len(products), noun)

	for _, p := range products {
		fmt.Fprintln(w)
		writeProduct(w, p)
	}
}

func writeProduct(w io.Writer, p types.Product) {
	fmt.Fprintf(w, "%s\n", kindLabel(p.Kind()))
	fmt.Fprintf(w, "  %-10s %s\n", "ID:", p.ID())
	fmt.Fprintf(w, "  %-10s %s\n", "Name:", p.Name())
	fmt.Fprintf(w, "  %-10s %d\n", "Year:", p.Year())
	if p.HasPrice() {
		fmt.Fprintf(w, "  %-10s $%.2f\n", "Price:", p.Price())
	} else {
		fmt.Fprintf(w, "  %-10s %s\n", "Price:", "n/a")
	}

	switch v := p.(type) {
	case *types.Book:
		fmt.Fprintf(w, "  %-10s %s\n", "Author:", v.Author())
		fmt.Fprintf(w, "  %-10s %s\n", "Publisher:", v.Publisher())
	case *types.Electronic:
		fmt.Fprintf(w, "  %-10s %s\n", "Maker:", v.Maker())
	}
}

func kindLabel(k types.Kind) string {
	switch k {
	case types.KindBook:
		return "Book"
	case types.KindElectronic:
		return "Electronic"
	default:
		return string(k)
	}
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(w io.Writer, products []types.Product) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Results(products))
}

// FormatYAML writes results as a YAML sequence to w.
func FormatYAML(w io.Writer, products []types.Product) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Results(products)); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
