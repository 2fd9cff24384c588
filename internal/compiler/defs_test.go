package compiler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hl7kit/hl7def/internal/ir"
)

const defsDoc = `{
	"2.5.1": {
		"fields": {
			"ST": {"desc": "String Data", "subfields": []},
			"AD": {"desc": "Address", "subfields": [
				{"datatype": "ST", "desc": "Street Address", "opt": 2, "rep": 1, "len": 120},
				{"datatype": "ID", "desc": "Country", "opt": 1, "rep": 1, "len": 3, "table": 399}
			]}
		},
		"segments": {
			"MSH": {"desc": "Message Header", "fields": [
				{"datatype": "ST", "desc": "Field Separator", "opt": 2, "rep": 1, "len": 1},
				{"datatype": "ID", "desc": "Character Set", "opt": 1, "rep": 0, "len": 16, "table": 211}
			]}
		},
		"messages": {
			"ADT_A01": {"desc": "Admit/Visit Notification", "name": "ADT_A01", "segments": {
				"desc": "ADT_A01",
				"segments": [
					{"name": "MSH", "desc": "Message Header", "min": 1, "max": 1},
					{"name": "PROCEDURE", "desc": "Procedure", "min": 0, "max": 0, "children": [
						{"name": "PR1", "desc": "Procedures", "min": 1, "max": 1}
					]},
					{"name": "CHOICE", "desc": "Choice", "min": 1, "max": 1, "compounds": [
						{"name": "OBR", "desc": "Observation Request", "min": 1, "max": 1},
						{"desc": "Unnamed choice", "min": 0, "max": 1}
					]}
				]
			}}
		}
	},
	"2.3": {
		"fields": {"ST": {"desc": "String Data", "subfields": []}},
		"segments": {},
		"messages": {}
	}
}`

func TestCompileDefs(t *testing.T) {
	versions, err := compileDefs([]byte(defsDoc), Options{Versions: []string{"2.5.1", "2.3"}})
	require.NoError(t, err)
	require.Len(t, versions, 2)

	// Sorted by version name.
	assert.Equal(t, "2.3", versions[0].Name)
	assert.Equal(t, "2.5.1", versions[1].Name)

	v := versions[1]
	require.Len(t, v.Fields, 2)
	assert.Equal(t, "AD", v.Fields[0].Name)
	assert.Equal(t, "ST", v.Fields[1].Name)

	street := v.Fields[0].Subfields[0]
	assert.Equal(t, ir.SubField{
		Datatype:    "ST",
		Desc:        "Street Address",
		Optionality: ir.Required,
		Repeat:      1,
		MaxLength:   120,
	}, street)

	country := v.Fields[0].Subfields[1]
	assert.Equal(t, 399, country.Table)

	require.Len(t, v.Segments, 1)
	assert.Equal(t, 0, v.Segments[0].Fields[1].Repeat)
}

func TestCompileDefsSkipsNotEnabled(t *testing.T) {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	versions, err := compileDefs([]byte(defsDoc), Options{Versions: []string{"2.5.1"}, Warn: warn})
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, "2.5.1", versions[0].Name)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "version 2.3 not enabled")
}

func TestCompileDefsUnknownVersion(t *testing.T) {
	_, err := compileDefs([]byte(defsDoc), Options{Versions: []string{"2.9"}})
	require.Error(t, err)

	var cerr *CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrUnknownVersion, cerr.Code)
	assert.Equal(t, "2.9", cerr.Key)
}

func TestCompileDefsMalformedDocument(t *testing.T) {
	_, err := compileDefs([]byte(`{"2.5.1": []}`), Options{Versions: []string{"2.5.1"}})
	require.Error(t, err)

	var cerr *CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrBadDocument, cerr.Code)
}

func TestLowerTreePreservesNesting(t *testing.T) {
	versions, err := compileDefs([]byte(defsDoc), Options{Versions: []string{"2.5.1"}})
	require.NoError(t, err)

	msgs := versions[0].Messages
	require.Len(t, msgs, 1)
	tree := msgs[0].Segments
	require.Len(t, tree, 3)

	assert.Equal(t, "MSH", tree[0].Name)
	assert.Empty(t, tree[0].Children)

	require.Len(t, tree[1].Children, 1)
	assert.Equal(t, "PR1", tree[1].Children[0].Name)

	require.Len(t, tree[2].Compounds, 2)
	assert.Equal(t, "OBR", tree[2].Compounds[0].Name)
	assert.Equal(t, "", tree[2].Compounds[1].Name)
	assert.Equal(t, "Unnamed choice", tree[2].Compounds[1].Desc)
}

// The catalog maps every optionality code outside 1..3 to backward
// compatibility; zero and garbage codes must not be rejected.
func TestLowerOptionality(t *testing.T) {
	cases := []struct {
		code int
		want ir.Optionality
	}{
		{0, ir.BackwardCompatibility},
		{1, ir.Optional},
		{2, ir.Required},
		{3, ir.Conditional},
		{4, ir.BackwardCompatibility},
		{9, ir.BackwardCompatibility},
		{-1, ir.BackwardCompatibility},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, lowerOptionality(tc.code), "code %d", tc.code)
	}
}
