package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTables = `{
	"91": {"desc": "Query Priority", "values": {"D": "Deferred", "I": "Immediate"}}
}`

const testDefs = `{
	"2.3": {
		"fields": {"ST": {"desc": "String Data", "subfields": []}},
		"segments": {},
		"messages": {}
	},
	"2.5.1": {
		"fields": {"ST": {"desc": "String Data", "subfields": []}},
		"segments": {
			"MSH": {"desc": "Message Header", "fields": [
				{"datatype": "ST", "desc": "Field Separator", "opt": 2, "rep": 1, "len": 1}
			]}
		},
		"messages": {}
	}
}`

func writeTestAssets(t *testing.T, manifest string) (assetsDir, manifestPath, outDir string) {
	t.Helper()
	dir := t.TempDir()

	assetsDir = filepath.Join(dir, "assets")
	require.NoError(t, os.Mkdir(assetsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "tables.json"), []byte(testTables), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "definitions.json"), []byte(testDefs), 0o644))

	manifestPath = filepath.Join(assetsDir, "hl7defgen.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0o644))

	outDir = filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))
	return assetsDir, manifestPath, outDir
}

func runGenerateCommand(t *testing.T, args []string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errBuf bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errBuf.String(), err
}

func TestGenerate(t *testing.T) {
	assetsDir, manifestPath, outDir := writeTestAssets(t,
		"tables: true\nversions:\n  - \"2.5.1\"\n")

	// A leftover from a previously enabled version must be cleaned up.
	stale := filepath.Join(outDir, "version_2_3_gen.go")
	require.NoError(t, os.WriteFile(stale, []byte("package hl7def\n"), 0o644))

	stdout, stderr, err := runGenerateCommand(t, []string{
		"generate", "--manifest", manifestPath, "--assets", assetsDir, "--out", outDir,
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "tables_gen.go"))
	assert.FileExists(t, filepath.Join(outDir, "version_2_5_1_gen.go"))
	assert.FileExists(t, filepath.Join(outDir, "definitions_gen.go"))
	assert.NoFileExists(t, stale)

	content, err := os.ReadFile(filepath.Join(outDir, "version_2_5_1_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"MSH"`)

	assert.Contains(t, stdout, "generated 3 file(s) for 1 version(s)")
	assert.Contains(t, stderr, "version 2.3 not enabled")
}

func TestGenerateNothingEnabled(t *testing.T) {
	assetsDir, manifestPath, outDir := writeTestAssets(t, "")

	_, stderr, err := runGenerateCommand(t, []string{
		"generate", "--manifest", manifestPath, "--assets", assetsDir, "--out", outDir,
	})
	require.NoError(t, err)

	assert.Contains(t, stderr, "tables capability not enabled")

	content, err := os.ReadFile(filepath.Join(outDir, "definitions_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "var versions []string")
}

func TestGenerateUnknownVersion(t *testing.T) {
	assetsDir, manifestPath, outDir := writeTestAssets(t,
		"versions:\n  - \"2.9\"\n")

	_, _, err := runGenerateCommand(t, []string{
		"generate", "--manifest", manifestPath, "--assets", assetsDir, "--out", outDir,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2.9")

	// A failed run never leaves partial output behind.
	assert.NoFileExists(t, filepath.Join(outDir, "tables_gen.go"))
	assert.NoFileExists(t, filepath.Join(outDir, "definitions_gen.go"))
}

func TestGenerateMissingCatalog(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "hl7defgen.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("tables: true\n"), 0o644))

	_, _, err := runGenerateCommand(t, []string{
		"generate", "--manifest", manifestPath, "--assets", dir, "--out", dir,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read table catalog")
}
