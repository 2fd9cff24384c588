package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTables(t *testing.T) {
	cat, err := ParseTables([]byte(`{
		"3": {"desc": "Event type", "values": {"A01": "ADT/ACK - Admit/visit notification"}}
	}`))
	require.NoError(t, err)
	require.Len(t, cat, 1)
	assert.Equal(t, "Event type", cat["3"].Desc)
	assert.Equal(t, "ADT/ACK - Admit/visit notification", cat["3"].Values["A01"])
}

func TestParseTablesMalformed(t *testing.T) {
	_, err := ParseTables([]byte(`{"3": "not a table"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse table catalog")
}

func TestParseDefs(t *testing.T) {
	cat, err := ParseDefs([]byte(`{
		"2.5.1": {
			"fields": {
				"TS": {"desc": "Time Stamp", "subfields": [
					{"datatype": "DTM", "desc": "Time", "opt": 2, "rep": 1, "len": 24}
				]}
			},
			"segments": {
				"MSH": {"desc": "Message Header", "fields": [
					{"datatype": "ST", "desc": "Field Separator", "opt": 2, "rep": 1, "len": 1}
				]}
			},
			"messages": {
				"ACK": {"desc": "General acknowledgment", "name": "ACK", "segments": {
					"desc": "ACK",
					"segments": [
						{"name": "MSH", "desc": "Message Header", "min": 1, "max": 1},
						{"name": "GROUP", "desc": "Group", "min": 0, "max": 0,
							"children": [{"name": "MSA", "desc": "Message Acknowledgment", "min": 1, "max": 1}],
							"compounds": [{"desc": "Unnamed choice", "min": 0, "max": 1}]}
					]
				}}
			}
		}
	}`))
	require.NoError(t, err)

	v, ok := cat["2.5.1"]
	require.True(t, ok)

	ts := v.Fields["TS"]
	require.Len(t, ts.Subfields, 1)
	require.NotNil(t, ts.Subfields[0].Len)
	assert.Equal(t, 24, *ts.Subfields[0].Len)
	assert.Nil(t, ts.Subfields[0].Table)

	require.Len(t, v.Segments["MSH"].Fields, 1)

	ack := v.Messages["ACK"]
	require.Len(t, ack.Segments.Segments, 2)
	group := ack.Segments.Segments[1]
	require.Len(t, group.Children, 1)
	require.Len(t, group.Compounds, 1)
	assert.Nil(t, group.Compounds[0].Name)
}

func TestParseDefsMalformed(t *testing.T) {
	_, err := ParseDefs([]byte(`[1, 2, 3]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse definitions catalog")
}
