// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog owns the in-memory collection of books and electronics.
// Products keep their insertion order, are never removed, and share a single
// ID namespace across both kinds.
package catalog

import (
	"errors"
	"fmt"

	"github.com/pdiddy/estore-search/pkg/types"
)

// ErrDuplicateID is returned when a product ID is already in the catalog.
var ErrDuplicateID = errors.New("ID already exists")

// Catalog holds books and electronics in insertion order.
// The zero value is not usable; call New.
type Catalog struct {
	books       []*types.Book
	electronics []*types.Electronic
	ids         map[string]types.Product
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{ids: make(map[string]types.Product)}
}

// AddBook appends b. It fails with ErrDuplicateID if any product already
// uses b's ID.
func (c *Catalog) AddBook(b *types.Book) error {
	if err := c.reserve(b); err != nil {
		return err
	}
	c.books = append(c.books, b)
	return nil
}

// AddElectronic appends e. It fails with ErrDuplicateID if any product
// already uses e's ID.
func (c *Catalog) AddElectronic(e *types.Electronic) error {
	if err := c.reserve(e); err != nil {
		return err
	}
	c.electronics = append(c.electronics, e)
	return nil
}

// Add appends p to the sequence matching its kind.
func (c *Catalog) Add(p types.Product) error {
	switch v := p.(type) {
	case *types.Book:
		return c.AddBook(v)
	case *types.Electronic:
		return c.AddElectronic(v)
	default:
		return fmt.Errorf("unsupported product kind %q", p.Kind())
	}
}

func (c *Catalog) reserve(p types.Product) error {
	if _, ok := c.ids[p.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID())
	}
	c.ids[p.ID()] = p
	return nil
}

// Contains reports whether a product with the given ID exists.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.ids[id]
	return ok
}

// Books returns the books in insertion order.
func (c *Catalog) Books() []*types.Book {
	return append([]*types.Book(nil), c.books...)
}

// Electronics returns the electronics in insertion order.
func (c *Catalog) Electronics() []*types.Electronic {
	return append([]*types.Electronic(nil), c.electronics...)
}

// Products returns every product, books first then electronics, each in
// insertion order. This is the scan order used by search.
func (c *Catalog) Products() []types.Product {
	all := make([]types.Product, 0, c.Len())
	for _, b := range c.books {
		all = append(all, b)
	}
	for _, e := range c.electronics {
		all = append(all, e)
	}
	return all
}

// Len returns the total number of products.
func (c *Catalog) Len() int {
	return len(c.books) + len(c.electronics)
}
