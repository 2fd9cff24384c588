package compiler

import (
	"sort"
	"strconv"

	"github.com/hl7kit/hl7def/internal/ir"
)

// compileTables runs the table pass. With the capability disabled it
// returns nothing, which the emitter turns into empty lookup maps.
func compileTables(doc []byte, opts Options) ([]ir.Table, error) {
	if !opts.Tables {
		if opts.Warn != nil {
			opts.Warn("tables capability not enabled; tables will NOT be available")
		}
		return nil, nil
	}

	cat, err := parseTables(doc)
	if err != nil {
		return nil, err
	}

	out := make([]ir.Table, 0, len(cat))
	for id, tbl := range cat {
		n, err := strconv.ParseUint(id, 10, 16)
		if err != nil {
			return nil, &CompileError{
				Code:    ErrBadTableID,
				Key:     id,
				Message: "table id must be an unsigned 16-bit integer",
			}
		}

		entries := make([]ir.Entry, 0, len(tbl.Values))
		for code, meaning := range tbl.Values {
			entries = append(entries, ir.Entry{Code: code, Meaning: meaning})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })

		out = append(out, ir.Table{ID: uint16(n), Desc: tbl.Desc, Entries: entries})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
