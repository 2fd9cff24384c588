package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileFixtures(t *testing.T, opts Options) []File {
	t.Helper()

	tablesDoc, err := os.ReadFile(filepath.Join("testdata", "tables.json"))
	require.NoError(t, err)
	defsDoc, err := os.ReadFile(filepath.Join("testdata", "definitions.json"))
	require.NoError(t, err)

	files, err := Compile(tablesDoc, defsDoc, opts)
	require.NoError(t, err)
	return files
}

// Regenerate with: go test ./internal/compiler -update
func TestCompileGolden(t *testing.T) {
	files := compileFixtures(t, Options{Tables: true, Versions: []string{"2.5.1"}})
	require.Len(t, files, 3)
	assert.Equal(t, "tables_gen.go", files[0].Name)
	assert.Equal(t, "version_2_5_1_gen.go", files[1].Name)
	assert.Equal(t, "definitions_gen.go", files[2].Name)

	g := goldie.New(t)
	for _, f := range files {
		g.Assert(t, f.Name, f.Content)
	}
}

func TestCompileDeterministic(t *testing.T) {
	opts := Options{Tables: true, Versions: []string{"2.5.1"}}
	first := compileFixtures(t, opts)
	second := compileFixtures(t, opts)
	require.Equal(t, first, second)
}

// With the tables capability off the table maps are still declared, empty,
// so dependent lookups compile and find nothing.
func TestCompileTablesDisabledOutput(t *testing.T) {
	files := compileFixtures(t, Options{Versions: []string{"2.5.1"}})
	require.Equal(t, "tables_gen.go", files[0].Name)

	content := string(files[0].Content)
	assert.Contains(t, content, "var tableDescriptions = map[uint16]string{}")
	assert.Contains(t, content, "var tables = map[uint16]*table{}")
	assert.NotContains(t, content, "Query Priority")
}

func TestCompileNothingEnabled(t *testing.T) {
	files := compileFixtures(t, Options{})
	require.Len(t, files, 2)

	index := string(files[1].Content)
	assert.Contains(t, index, "var versions []string")
	assert.Contains(t, index, "var definitions = map[string]*Definition{}")
}

func TestIdent(t *testing.T) {
	assert.Equal(t, "2_5_1", ident("2.5.1"))
	assert.Equal(t, "2_3", ident("2.3"))
}
