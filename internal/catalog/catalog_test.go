// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/estore-search/pkg/types"
)

// --- test helpers ---

func newBook(t *testing.T, id, name string, year int) *types.Book {
	t.Helper()
	info, err := types.NewInfo(id, name, year, types.NoPrice)
	require.NoError(t, err)
	b, err := types.NewBook(info, "Author", "Publisher")
	require.NoError(t, err)
	return b
}

func newElectronic(t *testing.T, id, name string, year int) *types.Electronic {
	t.Helper()
	info, err := types.NewInfo(id, name, year, 19.99)
	require.NoError(t, err)
	e, err := types.NewElectronic(info, "Maker")
	require.NoError(t, err)
	return e
}

func ids(products []types.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID()
	}
	return out
}

// --- catalog tests ---

func TestProductsOrder(t *testing.T) {
	c := New()
	require.NoError(t, c.AddElectronic(newElectronic(t, "E1", "Camera", 2018)))
	require.NoError(t, c.AddBook(newBook(t, "B1", "Go", 2015)))
	require.NoError(t, c.AddBook(newBook(t, "B2", "Rust", 2019)))
	require.NoError(t, c.AddElectronic(newElectronic(t, "E2", "Phone", 2020)))

	assert.Equal(t, []string{"B1", "B2", "E1", "E2"}, ids(c.Products()))
	assert.Equal(t, 4, c.Len())
	assert.Len(t, c.Books(), 2)
	assert.Len(t, c.Electronics(), 2)
}

func TestAddRejectsDuplicateAcrossKinds(t *testing.T) {
	c := New()
	require.NoError(t, c.AddBook(newBook(t, "X1", "Go", 2015)))

	err := c.AddElectronic(newElectronic(t, "X1", "Camera", 2018))
	require.ErrorIs(t, err, ErrDuplicateID)

	err = c.Add(newBook(t, "X1", "Other", 2001))
	require.ErrorIs(t, err, ErrDuplicateID)

	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Contains("X1"))
	assert.False(t, c.Contains("X2"))
}

func TestBooksReturnsCopy(t *testing.T) {
	c := New()
	require.NoError(t, c.AddBook(newBook(t, "B1", "Go", 2015)))

	books := c.Books()
	books[0] = nil
	assert.NotNil(t, c.Books()[0])
}

// --- seed tests ---

const sampleSeed = `books:
  - id: B1
    name: Go Programming
    year: 2015
    price: 39.99
    author: Alan Donovan
    publisher: Addison-Wesley
  - id: B2
    name: Harry Potter and the Sorcerer's Stone
    year: 1997
electronics:
  - id: E1
    name: Go Pro Camera
    year: 2018
    maker: GoPro
`

func TestLoad(t *testing.T) {
	c, summary, err := Load(strings.NewReader(sampleSeed))
	require.NoError(t, err)

	assert.Equal(t, LoadSummary{Books: 2, Electronics: 1}, summary)
	assert.Equal(t, 3, summary.Total())
	assert.Equal(t, []string{"B1", "B2", "E1"}, ids(c.Products()))

	books := c.Books()
	assert.Equal(t, 39.99, books[0].Price())
	assert.Equal(t, "Alan Donovan", books[0].Author())
	assert.False(t, books[1].HasPrice())
	assert.Equal(t, "GoPro", c.Electronics()[0].Maker())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		errMsg  string
	}{
		{
			name:    "duplicate id across kinds",
			doc:     "books:\n  - {id: X, name: A, year: 2000}\nelectronics:\n  - {id: X, name: B, year: 2001}\n",
			wantErr: ErrDuplicateID,
			errMsg:  "electronic 1",
		},
		{
			name:    "year out of range",
			doc:     "books:\n  - {id: B1, name: A, year: 20}\n",
			wantErr: types.ErrInvalidYearValue,
			errMsg:  "book 1",
		},
		{
			name:    "non-positive price",
			doc:     "electronics:\n  - {id: E1, name: A, year: 2000, price: 0}\n",
			wantErr: types.ErrInvalidPrice,
		},
		{
			name:    "missing name",
			doc:     "books:\n  - {id: B1, year: 2000}\n",
			wantErr: types.ErrInvalidName,
		},
		{
			name:   "malformed yaml",
			doc:    "books: [",
			errMsg: "parsing seed file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Nil(t, c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestLoadEmptyDocument(t *testing.T) {
	c, summary, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, summary.Total())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0o644))

	c, summary, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total())
	assert.Equal(t, 3, c.Len())

	_, _, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening seed file")
}
