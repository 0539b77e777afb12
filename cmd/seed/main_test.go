package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/loader"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestReadSeedFile(t *testing.T) {
	t.Run("decodes books", func(t *testing.T) {
		p := writeFile(t, `[{"title":"Dune","author":"Frank Herbert","publisher":"Chilton Books","isbn":"978-0441013593","price":9.99,"stock":3,"genre":"Science Fiction","published_date":"1965-08-01"}]`)

		books, err := readSeedFile(p)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Dune", books[0].Title)
		assert.Equal(t, "Chilton Books", books[0].Publisher)
		assert.Equal(t, 3, books[0].Stock)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		p := writeFile(t, `[{"title":"Dune","pages":412}]`)
		_, err := readSeedFile(p)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readSeedFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, loader.Report{BooksInserted: 2, Books: []loader.BookOutcome{}}))
	assert.Contains(t, buf.String(), `"books_inserted": 2`)
}
