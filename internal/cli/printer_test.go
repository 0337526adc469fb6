package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"beszelctl/internal/hub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "yaml"} {
		format, err := ParseOutputFormat(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, OutputFormat(valid), format)
	}

	for _, invalid := range []string{"", "TABLE", "xml", "wide"} {
		_, err := ParseOutputFormat(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestRecordsTableOutput(t *testing.T) {
	var buf bytes.Buffer
	printer := &Printer{Format: FormatTable, Out: &buf}

	records := []hub.Record{
		{"id": "sys1", "name": "web-01", "status": "up"},
		{"id": "sys2", "name": "db-01", "status": "down"},
	}
	columns := []Column{
		Field("ID", "id"),
		Field("NAME", "name"),
	}

	require.NoError(t, printer.Records(columns, records))

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "web-01")
	assert.Contains(t, out, "db-01")
	assert.NotContains(t, out, "status", "unselected columns stay out of the table")
}

func TestRecordsEmptyList(t *testing.T) {
	var buf bytes.Buffer
	printer := &Printer{Format: FormatTable, Out: &buf}

	require.NoError(t, printer.Records(nil, nil))
	assert.Contains(t, buf.String(), "No records found")
}

func TestRecordsJSONPreservesStructure(t *testing.T) {
	var buf bytes.Buffer
	printer := &Printer{Format: FormatJSON, Out: &buf}

	records := []hub.Record{
		{"id": "sys1", "stats": map[string]interface{}{"cpu": 12.5}},
	}
	require.NoError(t, printer.Records([]Column{Field("ID", "id")}, records))

	var decoded []hub.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	// Machine output carries the full record, columns notwithstanding.
	stats, ok := decoded[0]["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 12.5, stats["cpu"])
}

func TestRecordsJSONEmptyList(t *testing.T) {
	var buf bytes.Buffer
	printer := &Printer{Format: FormatJSON, Out: &buf}

	require.NoError(t, printer.Records(nil, []hub.Record{}))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestRecordsYAML(t *testing.T) {
	var buf bytes.Buffer
	printer := &Printer{Format: FormatYAML, Out: &buf}

	require.NoError(t, printer.Records(nil, []hub.Record{{"id": "sys1", "name": "web-01"}}))
	assert.Contains(t, buf.String(), "name: web-01")
}

func TestRecordsNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	printer := &Printer{Format: FormatTable, NoHeaders: true, Out: &buf}

	require.NoError(t, printer.Records([]Column{Field("HOSTLABEL", "name")}, []hub.Record{{"name": "web-01"}}))
	assert.NotContains(t, buf.String(), "HOSTLABEL")
	assert.Contains(t, buf.String(), "web-01")
}

func TestSingleRecordTable(t *testing.T) {
	var buf bytes.Buffer
	printer := &Printer{Format: FormatTable, Out: &buf}

	require.NoError(t, printer.Record(hub.Record{"id": "sys1", "name": "web-01"}))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "web-01")
}
