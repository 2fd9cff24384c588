package compiler

import (
	"maps"
	"slices"

	"github.com/hl7kit/hl7def/internal/ir"
	"github.com/hl7kit/hl7def/internal/source"
)

func parseTables(doc []byte) (source.TableCatalog, error) {
	cat, err := source.ParseTables(doc)
	if err != nil {
		return nil, &CompileError{Code: ErrBadDocument, Key: "tables", Message: err.Error()}
	}
	return cat, nil
}

func parseDefs(doc []byte) (source.DefsCatalog, error) {
	cat, err := source.ParseDefs(doc)
	if err != nil {
		return nil, &CompileError{Code: ErrBadDocument, Key: "definitions", Message: err.Error()}
	}
	return cat, nil
}

// compileDefs runs the definitions pass. Catalog versions are opt-in: any
// version not listed in the options is skipped with a warning, and enabling
// a version the catalog does not carry is a fatal error.
func compileDefs(doc []byte, opts Options) ([]ir.Version, error) {
	cat, err := parseDefs(doc)
	if err != nil {
		return nil, err
	}

	enabled := make(map[string]bool, len(opts.Versions))
	for _, v := range opts.Versions {
		if _, ok := cat[v]; !ok {
			return nil, &CompileError{
				Code:    ErrUnknownVersion,
				Key:     v,
				Message: "enabled version is not in the definitions catalog",
			}
		}
		enabled[v] = true
	}

	var out []ir.Version
	for _, name := range slices.Sorted(maps.Keys(cat)) {
		if !enabled[name] {
			if opts.Warn != nil {
				opts.Warn("version %s not enabled; its definitions will NOT be available", name)
			}
			continue
		}
		out = append(out, lowerVersion(name, cat[name]))
	}
	return out, nil
}

func lowerVersion(name string, src source.VersionDefs) ir.Version {
	v := ir.Version{Name: name}

	for _, fname := range slices.Sorted(maps.Keys(src.Fields)) {
		f := src.Fields[fname]
		v.Fields = append(v.Fields, ir.Field{
			Name:      fname,
			Desc:      f.Desc,
			Subfields: lowerSubFields(f.Subfields),
		})
	}

	for _, sname := range slices.Sorted(maps.Keys(src.Segments)) {
		s := src.Segments[sname]
		v.Segments = append(v.Segments, ir.Segment{
			Name:   sname,
			Desc:   s.Desc,
			Fields: lowerSubFields(s.Fields),
		})
	}

	for _, mname := range slices.Sorted(maps.Keys(src.Messages)) {
		m := src.Messages[mname]
		v.Messages = append(v.Messages, ir.Message{
			Name:     mname,
			Desc:     m.Desc,
			Segments: lowerTree(m.Segments.Segments),
		})
	}

	return v
}

func lowerSubFields(src []source.SubField) []ir.SubField {
	out := make([]ir.SubField, len(src))
	for i, s := range src {
		out[i] = ir.SubField{
			Datatype:    s.Datatype,
			Desc:        s.Desc,
			Optionality: lowerOptionality(s.Opt),
			Repeat:      s.Rep,
			MaxLength:   intOrZero(s.Len),
			Table:       intOrZero(s.Table),
		}
	}
	return out
}

// lowerOptionality resolves a catalog optionality code. The catalog treats
// every code outside 1..3, including zero, as backward compatibility; that
// catch-all is preserved rather than rejected.
func lowerOptionality(code int) ir.Optionality {
	switch code {
	case 1:
		return ir.Optional
	case 2:
		return ir.Required
	case 3:
		return ir.Conditional
	default:
		return ir.BackwardCompatibility
	}
}

// lowerTree lowers a message segment tree, preserving nesting and order
// exactly.
func lowerTree(src []source.MessageSegment) []ir.MessageSegment {
	if len(src) == 0 {
		return nil
	}
	out := make([]ir.MessageSegment, len(src))
	for i, s := range src {
		node := ir.MessageSegment{
			Name:     s.Name,
			Desc:     s.Desc,
			Min:      s.Min,
			Max:      s.Max,
			Children: lowerTree(s.Children),
		}
		for _, c := range s.Compounds {
			node.Compounds = append(node.Compounds, ir.Compound{
				Name: stringOrEmpty(c.Name),
				Desc: c.Desc,
				Min:  c.Min,
				Max:  c.Max,
			})
		}
		out[i] = node
	}
	return out
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func stringOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
