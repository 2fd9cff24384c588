// Package compiler lowers the catalog documents into the generated source
// files that make up the hl7def package's static store.
//
// Compilation runs in two passes. The table pass parses and sorts the coded
// tables, or produces structurally empty maps when the tables capability is
// not enabled, so dependent lookups still compile and simply find nothing.
// The definitions pass lowers each enabled version's datatypes, segments and
// message trees; versions are strictly opt-in and anything not enabled is
// skipped with a warning.
//
// Compile is a pure function of its inputs: the same documents and options
// always produce byte-identical files.
package compiler

// Options select what gets compiled in. Nothing is enabled by default.
type Options struct {
	// Tables enables the coded table capability.
	Tables bool
	// Versions lists the standard versions to compile in.
	Versions []string
	// Warn receives build warnings such as catalog versions that are not
	// enabled. Nil disables warnings.
	Warn func(format string, args ...any)
}

// File is one generated source file.
type File struct {
	Name    string
	Content []byte
}

// Compile lowers the table catalog and the definitions catalog into the
// generated files for the hl7def package.
func Compile(tablesDoc, defsDoc []byte, opts Options) ([]File, error) {
	tables, err := compileTables(tablesDoc, opts)
	if err != nil {
		return nil, err
	}

	versions, err := compileDefs(defsDoc, opts)
	if err != nil {
		return nil, err
	}

	files := []File{emitTables(tables)}
	for _, v := range versions {
		files = append(files, emitVersion(v))
	}
	files = append(files, emitIndex(versions))
	return files, nil
}
