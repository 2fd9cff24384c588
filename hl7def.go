// Package hl7def provides compiled-in reference data for the HL7 v2.x
// messaging standard: coded value tables, field and segment definitions,
// and message structure templates, queryable by standard version.
//
// The data ships inside the package as static literals generated ahead of
// time by cmd/hl7defgen from the catalog documents under assets/, so no
// parsing or I/O happens at runtime. Which versions are available, and
// whether coded tables are, is decided by the generation manifest; anything
// not compiled in simply looks up as absent.
//
// Every lookup is exact-match and case-sensitive. The store is immutable
// and safe for concurrent use without synchronization.
package hl7def

//go:generate go run ./cmd/hl7defgen generate --manifest assets/hl7defgen.yaml --assets assets --out .

// TableDescription returns the description of a coded table.
func TableDescription(id uint16) (string, bool) {
	desc, ok := tableDescriptions[id]
	return desc, ok
}

// TableValue returns the meaning of one code within a coded table.
func TableValue(id uint16, code string) (string, bool) {
	t, ok := tables[id]
	if !ok {
		return "", false
	}
	meaning, ok := t.values[code]
	return meaning, ok
}

// TableValues returns every code/meaning pair of a coded table in code
// order. The returned slice is shared static data and must not be modified.
func TableValues(id uint16) ([]TableEntry, bool) {
	t, ok := tables[id]
	if !ok {
		return nil, false
	}
	return t.entries, true
}

// GetDefinition returns the schema root for one standard version.
func GetDefinition(version string) (*Definition, bool) {
	def, ok := definitions[version]
	return def, ok
}

// GetField returns one datatype definition for a standard version.
func GetField(version, name string) (*Field, bool) {
	def, ok := definitions[version]
	if !ok {
		return nil, false
	}
	f, ok := def.Fields[name]
	return f, ok
}

// GetSegment returns one segment definition for a standard version.
func GetSegment(version, name string) (*Segment, bool) {
	def, ok := definitions[version]
	if !ok {
		return nil, false
	}
	s, ok := def.Segments[name]
	return s, ok
}

// GetMessage returns one message structure for a standard version.
func GetMessage(version, name string) (*Message, bool) {
	def, ok := definitions[version]
	if !ok {
		return nil, false
	}
	m, ok := def.Messages[name]
	return m, ok
}

// Versions lists the standard versions compiled into the package, in sorted
// order. The returned slice is shared static data and must not be modified.
func Versions() []string {
	return versions
}
