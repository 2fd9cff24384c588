// Package ir holds the lowered, validated model the generator emits from.
// Everything is kept in slices sorted by key so emission order, and with it
// the generated output, is a pure function of the catalog contents.
package ir

// Optionality is a resolved optionality code.
type Optionality uint8

const (
	BackwardCompatibility Optionality = iota
	Optional
	Required
	Conditional
)

// Entry is one code/meaning pair of a coded table.
type Entry struct {
	Code    string
	Meaning string
}

// Table is one compiled coded table with its entries in code order.
type Table struct {
	ID      uint16
	Desc    string
	Entries []Entry
}

// SubField is one lowered datatype component or segment field.
type SubField struct {
	Datatype    string
	Desc        string
	Optionality Optionality
	// Repeat is the repeat bound: 0 unbounded, 1 single, n an explicit
	// upper bound.
	Repeat    int
	MaxLength int // 0 when unspecified
	Table     int // 0 when none
}

// Field is one lowered datatype.
type Field struct {
	Name      string
	Desc      string
	Subfields []SubField
}

// Segment is one lowered segment.
type Segment struct {
	Name   string
	Desc   string
	Fields []SubField
}

// MessageSegment is one node of a lowered message tree. Nesting mirrors the
// catalog exactly; nothing is flattened.
type MessageSegment struct {
	Name      string
	Desc      string
	Min       int
	Max       int
	Children  []MessageSegment
	Compounds []Compound
}

// Compound is one alternative of a choice position. Name is empty when the
// catalog leaves the alternative unnamed.
type Compound struct {
	Name string
	Desc string
	Min  int
	Max  int
}

// Message is one lowered message structure.
type Message struct {
	Name     string
	Desc     string
	Segments []MessageSegment
}

// Version is one compiled standard version with entities in name order.
type Version struct {
	Name     string
	Fields   []Field
	Segments []Segment
	Messages []Message
}
