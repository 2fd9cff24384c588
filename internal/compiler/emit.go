package compiler

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/hl7kit/hl7def/internal/ir"
)

// The emitter writes a fixed canonical layout (one entry per line, a single
// space after each colon) instead of routing through go/format, so output
// bytes depend only on the compiled model and never on printer internals.

const header = "// Code generated by hl7defgen. DO NOT EDIT.\n\npackage hl7def\n\n"

// emitTables renders the table store. With no tables compiled in it still
// declares both maps, empty, so every table lookup compiles and finds
// nothing.
func emitTables(tables []ir.Table) File {
	var b bytes.Buffer
	b.WriteString(header)

	if len(tables) == 0 {
		b.WriteString("var tableDescriptions = map[uint16]string{}\n")
		b.WriteString("\nvar tables = map[uint16]*table{}\n")
		return File{Name: "tables_gen.go", Content: b.Bytes()}
	}

	b.WriteString("var tableDescriptions = map[uint16]string{\n")
	for _, t := range tables {
		fmt.Fprintf(&b, "\t%d: %q,\n", t.ID, t.Desc)
	}
	b.WriteString("}\n")

	for _, t := range tables {
		fmt.Fprintf(&b, "\nvar table%d = table{\n", t.ID)
		b.WriteString("\tvalues: map[string]string{\n")
		for _, e := range t.Entries {
			fmt.Fprintf(&b, "\t\t%q: %q,\n", e.Code, e.Meaning)
		}
		b.WriteString("\t},\n")
		b.WriteString("\tentries: []TableEntry{\n")
		for _, e := range t.Entries {
			fmt.Fprintf(&b, "\t\t{%q, %q},\n", e.Code, e.Meaning)
		}
		b.WriteString("\t},\n")
		b.WriteString("}\n")
	}

	b.WriteString("\nvar tables = map[uint16]*table{\n")
	for _, t := range tables {
		fmt.Fprintf(&b, "\t%d: &table%d,\n", t.ID, t.ID)
	}
	b.WriteString("}\n")

	return File{Name: "tables_gen.go", Content: b.Bytes()}
}

// emitVersion renders one version's Definition literal.
func emitVersion(v ir.Version) File {
	var b bytes.Buffer
	b.WriteString(header)
	fmt.Fprintf(&b, "var version%s = Definition{\n", ident(v.Name))

	b.WriteString("\tFields: map[string]*Field{\n")
	for _, f := range v.Fields {
		if len(f.Subfields) == 0 {
			fmt.Fprintf(&b, "\t\t%q: {Description: %q},\n", f.Name, f.Desc)
			continue
		}
		fmt.Fprintf(&b, "\t\t%q: {\n", f.Name)
		fmt.Fprintf(&b, "\t\t\tDescription: %q,\n", f.Desc)
		b.WriteString("\t\t\tSubfields: []SubField{\n")
		for _, s := range f.Subfields {
			fmt.Fprintf(&b, "\t\t\t\t%s,\n", subFieldLit(s))
		}
		b.WriteString("\t\t\t},\n")
		b.WriteString("\t\t},\n")
	}
	b.WriteString("\t},\n")

	b.WriteString("\tSegments: map[string]*Segment{\n")
	for _, s := range v.Segments {
		fmt.Fprintf(&b, "\t\t%q: {\n", s.Name)
		fmt.Fprintf(&b, "\t\t\tDescription: %q,\n", s.Desc)
		b.WriteString("\t\t\tFields: []SubField{\n")
		for _, f := range s.Fields {
			fmt.Fprintf(&b, "\t\t\t\t%s,\n", subFieldLit(f))
		}
		b.WriteString("\t\t\t},\n")
		b.WriteString("\t\t},\n")
	}
	b.WriteString("\t},\n")

	b.WriteString("\tMessages: map[string]*Message{\n")
	for _, m := range v.Messages {
		fmt.Fprintf(&b, "\t\t%q: {\n", m.Name)
		fmt.Fprintf(&b, "\t\t\tName: %q,\n", m.Name)
		fmt.Fprintf(&b, "\t\t\tDescription: %q,\n", m.Desc)
		b.WriteString("\t\t\tSegments: []MessageSegment{\n")
		for _, seg := range m.Segments {
			writeMessageSegment(&b, seg, 4)
		}
		b.WriteString("\t\t\t},\n")
		b.WriteString("\t\t},\n")
	}
	b.WriteString("\t},\n")

	b.WriteString("}\n")
	return File{Name: "version_" + ident(v.Name) + "_gen.go", Content: b.Bytes()}
}

// emitIndex renders the version list and the version lookup map.
func emitIndex(versions []ir.Version) File {
	var b bytes.Buffer
	b.WriteString(header)

	if len(versions) == 0 {
		b.WriteString("var versions []string\n")
		b.WriteString("\nvar definitions = map[string]*Definition{}\n")
		return File{Name: "definitions_gen.go", Content: b.Bytes()}
	}

	b.WriteString("var versions = []string{")
	for i, v := range versions {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", v.Name)
	}
	b.WriteString("}\n")

	b.WriteString("\nvar definitions = map[string]*Definition{\n")
	for _, v := range versions {
		fmt.Fprintf(&b, "\t%q: &version%s,\n", v.Name, ident(v.Name))
	}
	b.WriteString("}\n")

	return File{Name: "definitions_gen.go", Content: b.Bytes()}
}

func subFieldLit(s ir.SubField) string {
	parts := []string{
		fmt.Sprintf("Datatype: %q", s.Datatype),
		fmt.Sprintf("Description: %q", s.Desc),
		"Optionality: " + optLit(s.Optionality),
		"Repeatability: " + repLit(s.Repeat),
	}
	if s.MaxLength > 0 {
		parts = append(parts, "MaxLength: "+strconv.Itoa(s.MaxLength))
	}
	if s.Table > 0 {
		parts = append(parts, "Table: "+strconv.Itoa(s.Table))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func optLit(o ir.Optionality) string {
	switch o {
	case ir.Optional:
		return "Optional"
	case ir.Required:
		return "Required"
	case ir.Conditional:
		return "Conditional"
	default:
		return "BackwardCompatibility"
	}
}

func repLit(n int) string {
	switch n {
	case 0:
		return "Unbounded"
	case 1:
		return "Single"
	default:
		return "Repeatability(" + strconv.Itoa(n) + ")"
	}
}

// writeMessageSegment renders one message tree node at the given tab depth,
// recursing into children so the generated literal nests exactly like the
// catalog.
func writeMessageSegment(b *bytes.Buffer, s ir.MessageSegment, depth int) {
	ind := strings.Repeat("\t", depth)

	if len(s.Children) == 0 && len(s.Compounds) == 0 {
		fmt.Fprintf(b, "%s{Name: %q, Description: %q, Min: %d, Max: %d},\n",
			ind, s.Name, s.Desc, s.Min, s.Max)
		return
	}

	fmt.Fprintf(b, "%s{\n", ind)
	fmt.Fprintf(b, "%s\tName: %q,\n", ind, s.Name)
	fmt.Fprintf(b, "%s\tDescription: %q,\n", ind, s.Desc)
	fmt.Fprintf(b, "%s\tMin: %d,\n", ind, s.Min)
	fmt.Fprintf(b, "%s\tMax: %d,\n", ind, s.Max)
	if len(s.Children) > 0 {
		fmt.Fprintf(b, "%s\tChildren: []MessageSegment{\n", ind)
		for _, c := range s.Children {
			writeMessageSegment(b, c, depth+2)
		}
		fmt.Fprintf(b, "%s\t},\n", ind)
	}
	if len(s.Compounds) > 0 {
		fmt.Fprintf(b, "%s\tCompounds: []MessageCompound{\n", ind)
		for _, c := range s.Compounds {
			if c.Name == "" {
				fmt.Fprintf(b, "%s\t\t{Description: %q, Min: %d, Max: %d},\n", ind, c.Desc, c.Min, c.Max)
			} else {
				fmt.Fprintf(b, "%s\t\t{Name: %q, Description: %q, Min: %d, Max: %d},\n", ind, c.Name, c.Desc, c.Min, c.Max)
			}
		}
		fmt.Fprintf(b, "%s\t},\n", ind)
	}
	fmt.Fprintf(b, "%s},\n", ind)
}

// ident turns a version string into a Go identifier suffix.
func ident(version string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '-':
			return '_'
		default:
			return r
		}
	}, version)
}
