package hl7def

import "strconv"

// Optionality states how required a field is within its parent segment or
// datatype.
type Optionality uint8

const (
	// BackwardCompatibility marks a field retained only for compatibility
	// with earlier versions of the standard. The catalogs also use it as the
	// catch-all for optionality codes they do not otherwise define.
	BackwardCompatibility Optionality = iota
	// Optional fields may be omitted.
	Optional
	// Required fields must always be present.
	Required
	// Conditional fields are required only under conditions described in the
	// standard's narrative.
	Conditional
)

func (o Optionality) String() string {
	switch o {
	case Optional:
		return "optional"
	case Required:
		return "required"
	case Conditional:
		return "conditional"
	default:
		return "backwards compatibility"
	}
}

// Repeatability states how many times a field may repeat. Unbounded and
// Single are the common cases; any value above one is an explicit upper
// bound on the repeat count.
type Repeatability int

const (
	Unbounded Repeatability = 0
	Single    Repeatability = 1
)

// Bounded reports whether the repeat count has an explicit upper bound
// greater than one.
func (r Repeatability) Bounded() bool { return r > 1 }

func (r Repeatability) String() string {
	switch r {
	case Unbounded:
		return "unbounded"
	case Single:
		return "singular"
	default:
		return "maximum " + strconv.Itoa(int(r))
	}
}

// SubField describes one component of a datatype or one field of a segment:
// the leaf level of the schema.
type SubField struct {
	// Datatype names the Field describing this component's own type.
	Datatype      string
	Description   string
	Optionality   Optionality
	Repeatability Repeatability
	// MaxLength is the maximum length in characters, or zero when the
	// standard does not state one.
	MaxLength int
	// Table is the id of the coded table holding this component's valid
	// values, or zero when none applies.
	Table int
}

// Field is a datatype: a named composite of ordered components. Primitive
// datatypes such as ST have no components.
type Field struct {
	Description string
	Subfields   []SubField
}

// Segment is a named record type (MSH, PID, ...) with its fields in wire
// order.
type Segment struct {
	Description string
	Fields      []SubField
}

// MessageSegment is one node of a message's structure tree. Leaf nodes name
// a segment; group nodes carry Children, and choice positions carry
// Compounds. Min of zero means the node is optional; Max of zero means it
// may repeat without bound.
type MessageSegment struct {
	Name        string
	Description string
	Min         int
	Max         int
	Children    []MessageSegment
	Compounds   []MessageCompound
}

// MessageCompound is one alternative of a choice position within a message.
type MessageCompound struct {
	// Name is the segment name of the alternative, empty when the catalog
	// leaves the choice unnamed.
	Name        string
	Description string
	Min         int
	Max         int
}

// Message is a named structural template (ADT_A01, ...) with its top-level
// segment nodes in order.
type Message struct {
	Name        string
	Description string
	Segments    []MessageSegment
}

// Definition is the schema root for one version of the standard.
type Definition struct {
	Fields   map[string]*Field
	Segments map[string]*Segment
	Messages map[string]*Message
}

// TableEntry is one code/meaning pair of a coded table.
type TableEntry struct {
	Code    string
	Meaning string
}

// table pairs a code lookup map with the same entries in code order.
type table struct {
	values  map[string]string
	entries []TableEntry
}
