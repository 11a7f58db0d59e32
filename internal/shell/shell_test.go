// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/estore-search/internal/catalog"
	"github.com/pdiddy/estore-search/pkg/types"
)

// --- test helpers ---

func testConfig() types.Config {
	return types.Config{Shell: types.ShellConfig{MaxAttempts: 3}}
}

// session runs a shell over cat with the given input lines and returns
// everything it printed.
func session(t *testing.T, cat *catalog.Catalog, cfg types.Config, lines ...string) string {
	t.Helper()
	var out strings.Builder
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, New(cat, in, &out, cfg).Run())
	return out.String()
}

func seeded(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, _, err := catalog.Load(strings.NewReader(`books:
  - {id: B1, name: Go Programming, year: 2015, author: Donovan, publisher: AW}
electronics:
  - {id: E1, name: Go Pro Camera, year: 2018, price: 299.99, maker: GoPro}
`))
	require.NoError(t, err)
	return cat
}

// --- session tests ---

func TestRunQuit(t *testing.T) {
	out := session(t, catalog.New(), testConfig(), "0")
	assert.Contains(t, out, "Welcome to EStore Search")
	assert.Equal(t, 1, strings.Count(out, "(1) Add\n"))
}

func TestRunEndOfInput(t *testing.T) {
	var out strings.Builder
	err := New(catalog.New(), strings.NewReader(""), &out, testConfig()).Run()
	assert.NoError(t, err)
}

func TestAddBook(t *testing.T) {
	cat := catalog.New()
	out := session(t, cat, testConfig(),
		"1",              // add
		"1",              // book
		"B1",             // id
		"Go Programming", // name
		"2015",           // year
		"39.99",          // price
		"Alan Donovan",   // author
		"Addison-Wesley", // publisher
		"0", "0",
	)

	assert.Contains(t, out, "Book B1 added.")
	require.Equal(t, 1, cat.Len())
	b := cat.Books()[0]
	assert.Equal(t, "Go Programming", b.Name())
	assert.Equal(t, 2015, b.Year())
	assert.Equal(t, 39.99, b.Price())
	assert.Equal(t, "Addison-Wesley", b.Publisher())
}

func TestAddElectronicRetriesInvalidFields(t *testing.T) {
	cat := catalog.New()
	out := session(t, cat, testConfig(),
		"1", "2",
		"E 1", "E1",         // id with space, then valid
		"", "Go Pro Camera", // blank name, then valid
		"18", "2018",        // out-of-range year, then valid
		"-5", "",            // bad price, then none
		"GoPro",
		"0", "0",
	)

	assert.Contains(t, out, "Electronic E1 added.")
	assert.Contains(t, out, types.ErrInvalidIDFormat.Error())
	assert.Contains(t, out, types.ErrInvalidYearValue.Error())
	assert.Contains(t, out, types.ErrInvalidPrice.Error())
	require.Equal(t, 1, cat.Len())
	assert.False(t, cat.Electronics()[0].HasPrice())
}

func TestAddRejectsExistingID(t *testing.T) {
	cat := seeded(t)
	out := session(t, cat, testConfig(),
		"1", "1",
		"E1", "B1", "B2",
		"Rust", "2019", "", "", "",
		"0", "0",
	)

	assert.Equal(t, 2, strings.Count(out, "ID already exists: "))
	assert.Contains(t, out, "Book B2 added.")
	assert.Equal(t, 3, cat.Len())
}

func TestAddAbandonedAfterTooManyAttempts(t *testing.T) {
	cat := catalog.New()
	out := session(t, cat, testConfig(),
		"1", "1",
		"B1", "Go",
		"x", "y", "z", // three bad years
		"0", "0",
	)

	assert.Contains(t, out, "Too many attempts!\n")
	assert.NotContains(t, out, "too many attempts")
	assert.Equal(t, 0, cat.Len())
	// Back at the add menu after the abandoned entry.
	assert.Equal(t, 2, strings.Count(out, "(1) Add book"))
}

func TestAddRespectsConfiguredAttempts(t *testing.T) {
	cfg := testConfig()
	cfg.Shell.MaxAttempts = 1
	cat := catalog.New()
	out := session(t, cat, cfg, "1", "1", "B 1", "0", "0")

	assert.Contains(t, out, "Too many attempts!")
	assert.Equal(t, 0, cat.Len())
}

func TestSearchFlow(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
		deny  []string
	}{
		{
			name:  "keyword and year",
			input: []string{"2", "", "go", "2015-2020", "0"},
			want:  []string{"Found 2 products:", "ID:        B1", "ID:        E1"},
		},
		{
			name:  "id only",
			input: []string{"2", "E1", "", "", "0"},
			want:  []string{"Found 1 product:", "Maker:     GoPro", "Price:     $299.99"},
			deny:  []string{"ID:        B1"},
		},
		{
			name:  "no criteria",
			input: []string{"2", "", "", "", "0"},
			want:  []string{"No matching products found."},
		},
		{
			name:  "malformed range retried",
			input: []string{"2", "", "", "19-99-2000", "2018", "0"},
			want:  []string{"invalid year range", "Found 1 product:", "ID:        E1"},
		},
		{
			name:  "search abandoned",
			input: []string{"2", "", "", "a", "b", "c", "0"},
			want:  []string{"Too many attempts!"},
			deny:  []string{"Found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := session(t, seeded(t), testConfig(), tt.input...)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, d := range tt.deny {
				assert.NotContains(t, out, d)
			}
		})
	}
}

func TestSearchDistinctOption(t *testing.T) {
	input := []string{"2", "B1", "go", "2015", "0"}

	out := session(t, seeded(t), testConfig(), input...)
	assert.Contains(t, out, "Found 2 products:")

	cfg := testConfig()
	cfg.Search.Distinct = true
	out = session(t, seeded(t), cfg, input...)
	assert.Contains(t, out, "Found 1 product:")
}

func TestAddThenSearch(t *testing.T) {
	cat := catalog.New()
	out := session(t, cat, testConfig(),
		"1", "1", "B1", "Harry Potter and the Sorcerer's Stone", "1997", "", "Rowling", "Bloomsbury", "0",
		"2", "", "harry potter", "", "0",
	)
	assert.Contains(t, out, "Found 1 product:")
	assert.Contains(t, out, "Author:    Rowling")
}
