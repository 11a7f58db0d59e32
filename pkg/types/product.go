// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the product model shared by the catalog, the search
// engine, and the interactive shell.
//
// A Product is either a Book or an Electronic. Both are built through
// constructors that validate every field, so a value of either type is always
// complete and valid once a caller holds it.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// Year bounds and the price sentinel shared by every product.
const (
	MinYear = 1000
	MaxYear = 9999

	// NoPrice marks a product entered without a price.
	NoPrice = -1.0
)

// Validation errors returned by the constructors and raw-field parsers.
var (
	ErrInvalidIDFormat  = errors.New("invalid product ID")
	ErrInvalidName      = errors.New("invalid product name")
	ErrInvalidYearValue = errors.New("invalid year")
	ErrInvalidPrice     = errors.New("invalid price")
)

// Kind names the concrete product variant.
type Kind string

const (
	KindBook       Kind = "book"
	KindElectronic Kind = "electronic"
)

// Product is the read-only projection common to every catalog entry.
// The interface is sealed: Book and Electronic are its only implementations.
type Product interface {
	ID() string
	Name() string
	Year() int
	Price() float64
	HasPrice() bool
	Kind() Kind

	product()
}

// Info holds the fields common to all products. Its zero value is not valid;
// build one with NewInfo.
type Info struct {
	id    string
	name  string
	year  int
	price float64
}

// NewInfo validates the common product fields. price must be NoPrice or
// strictly positive.
func NewInfo(id, name string, year int, price float64) (Info, error) {
	id, err := ValidateID(id)
	if err != nil {
		return Info{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Info{}, fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	}
	if err := ValidateYear(year); err != nil {
		return Info{}, err
	}
	if price != NoPrice && !(price > 0) {
		return Info{}, fmt.Errorf("%w: %v must be greater than 0", ErrInvalidPrice, price)
	}
	return Info{id: id, name: name, year: year, price: price}, nil
}

func (i Info) ID() string { return i.id }
func (i Info) Name() string { return i.name }
func (i Info) Year() int { return i.year }
func (i Info) Price() float64 { return i.price }
func (i Info) HasPrice() bool { return i.price != NoPrice }

// Book is a product with an author and a publisher.
type Book struct {
	Info
	author    string
	publisher string
}

// NewBook builds a Book from validated common fields.
func NewBook(info Info, author, publisher string) (*Book, error) {
	if info.id == "" {
		return nil, fmt.Errorf("%w: book requires validated product info", ErrInvalidIDFormat)
	}
	return &Book{
		Info:      info,
		author:    strings.TrimSpace(author),
		publisher: strings.TrimSpace(publisher),
	}, nil
}

func (b *Book) Author() string { return b.author }
func (b *Book) Publisher() string { return b.publisher }
func (b *Book) Kind() Kind { return KindBook }
func (b *Book) product() {}

// Electronic is a product with a maker.
type Electronic struct {
	Info
	maker string
}

// NewElectronic builds an Electronic from validated common fields.
func NewElectronic(info Info, maker string) (*Electronic, error) {
	if info.id == "" {
		return nil, fmt.Errorf("%w: electronic requires validated product info", ErrInvalidIDFormat)
	}
	return &Electronic{Info: info, maker: strings.TrimSpace(maker)}, nil
}

func (e *Electronic) Maker() string { return e.maker }
func (e *Electronic) Kind() Kind { return KindElectronic }
func (e *Electronic) product() {}

// SameProduct reports whether a and b identify the same catalog entry.
// Products are equal by ID.
func SameProduct(a, b Product) bool {
	return a.ID() == b.ID()
}
