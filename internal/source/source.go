// Package source models the two externally authored catalog documents the
// generator consumes: the table catalog and the versioned definitions
// catalog.
package source

import (
	"fmt"

	"github.com/goccy/go-json"
)

// TableCatalog maps a table id (a decimal string in the document) to its
// table.
type TableCatalog map[string]Table

// Table is one coded table: a description and its code/meaning pairs.
type Table struct {
	Desc   string            `json:"desc"`
	Values map[string]string `json:"values"`
}

// DefsCatalog maps a version string to that version's definitions.
type DefsCatalog map[string]VersionDefs

// VersionDefs holds every definition of one standard version.
type VersionDefs struct {
	Fields   map[string]Field   `json:"fields"`
	Segments map[string]Segment `json:"segments"`
	Messages map[string]Message `json:"messages"`
}

// Field is a datatype definition: a description and its ordered components.
type Field struct {
	Desc      string     `json:"desc"`
	Subfields []SubField `json:"subfields"`
}

// SubField is the document shape shared by datatype components and segment
// fields. Opt and Rep are numeric codes resolved during lowering; Len and
// Table are absent when the standard states none.
type SubField struct {
	Datatype string `json:"datatype"`
	Desc     string `json:"desc"`
	Opt      int    `json:"opt"`
	Rep      int    `json:"rep"`
	Len      *int   `json:"len"`
	Table    *int   `json:"table"`
}

// Segment is a segment definition: a description and its fields in wire
// order.
type Segment struct {
	Desc   string     `json:"desc"`
	Fields []SubField `json:"fields"`
}

// Message is a message structure definition.
type Message struct {
	Desc     string       `json:"desc"`
	Name     string       `json:"name"`
	Segments MessageGroup `json:"segments"`
}

// MessageGroup is the root of a message's segment tree.
type MessageGroup struct {
	Desc     string           `json:"desc"`
	Segments []MessageSegment `json:"segments"`
}

// MessageSegment is one node of a message's segment tree. Group nodes carry
// Children; choice positions carry Compounds.
type MessageSegment struct {
	Name      string           `json:"name"`
	Desc      string           `json:"desc"`
	Min       int              `json:"min"`
	Max       int              `json:"max"`
	Children  []MessageSegment `json:"children,omitempty"`
	Compounds []Compound       `json:"compounds,omitempty"`
}

// Compound is one alternative of a choice position. Name is absent when the
// catalog leaves the alternative unnamed.
type Compound struct {
	Name *string `json:"name"`
	Desc string  `json:"desc"`
	Min  int     `json:"min"`
	Max  int     `json:"max"`
}

// ParseTables decodes a table catalog document.
func ParseTables(data []byte) (TableCatalog, error) {
	var cat TableCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse table catalog: %w", err)
	}
	return cat, nil
}

// ParseDefs decodes a definitions catalog document.
func ParseDefs(data []byte) (DefsCatalog, error) {
	var cat DefsCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse definitions catalog: %w", err)
	}
	return cat, nil
}
