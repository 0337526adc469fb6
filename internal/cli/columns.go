package cli

import (
	"fmt"
	"sort"
	"strings"

	"beszelctl/internal/hub"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Column describes one table column: a header and how to extract and
// format the cell from a record.
type Column struct {
	// Header is the column title.
	Header string
	// Value produces the cell content for a record.
	Value func(hub.Record) string
}

func (c Column) cell(r hub.Record) string {
	return c.Value(r)
}

// Field returns a column showing a record field verbatim, with long
// values truncated.
func Field(header, field string) Column {
	return Column{Header: header, Value: func(r hub.Record) string {
		return formatValue(r[field])
	}}
}

// TimeField returns a column showing a record timestamp field in
// normalized form.
func TimeField(header, field string) Column {
	return Column{Header: header, Value: func(r hub.Record) string {
		return normalizeTimestamp(r.GetString(field))
	}}
}

// StatusField returns a column that colors the well-known system status
// values: green for up, red for down, yellow otherwise.
func StatusField(header, field string) Column {
	return Column{Header: header, Value: func(r hub.Record) string {
		status := r.GetString(field)
		switch status {
		case "up":
			return text.FgGreen.Sprint(status)
		case "down":
			return text.FgRed.Sprint(status)
		case "":
			return "-"
		default:
			return text.FgYellow.Sprint(status)
		}
	}}
}

// maxAutoColumns caps column derivation for the generic records view so
// wide collections stay readable.
const maxAutoColumns = 8

// deriveColumns builds columns from a record's scalar fields, id first,
// the rest alphabetical. Nested objects and arrays are skipped; the
// machine-readable formats carry them instead.
func deriveColumns(first hub.Record) []Column {
	var fields []string
	for key, value := range first {
		switch value.(type) {
		case map[string]interface{}, []interface{}:
			continue
		}
		if key != "id" {
			fields = append(fields, key)
		}
	}
	sort.Strings(fields)

	if _, ok := first["id"]; ok {
		fields = append([]string{"id"}, fields...)
	}
	if len(fields) > maxAutoColumns {
		fields = fields[:maxAutoColumns]
	}

	columns := make([]Column, 0, len(fields))
	for _, field := range fields {
		columns = append(columns, Field(strings.ToUpper(field), field))
	}
	return columns
}

// maxCellWidth bounds free-form cell content.
const maxCellWidth = 50

// formatValue renders an arbitrary record value as a table cell.
func formatValue(value interface{}) string {
	if value == nil {
		return "-"
	}

	switch v := value.(type) {
	case map[string]interface{}:
		if len(v) == 0 {
			return "{}"
		}
		return fmt.Sprintf("{%d fields}", len(v))
	case []interface{}:
		if len(v) == 0 {
			return "[]"
		}
		return fmt.Sprintf("[%d items]", len(v))
	case float64:
		// JSON numbers decode as float64; print integers without decimals.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%.2f", v)
	}

	s := fmt.Sprintf("%v", value)
	if s == "" {
		return "-"
	}
	// Truncate on runes so a multi-byte character is never split.
	if runes := []rune(s); len(runes) > maxCellWidth {
		return string(runes[:maxCellWidth-3]) + "..."
	}
	return s
}

// normalizeTimestamp simplifies hub timestamps by dropping sub-second
// precision and timezone markers: "2024-01-01 12:34:56.789Z" becomes
// "2024-01-01 12:34:56".
func normalizeTimestamp(timestamp string) string {
	if timestamp == "" {
		return "-"
	}

	s := strings.Replace(timestamp, "T", " ", 1)
	if dot := strings.Index(s, "."); dot != -1 {
		s = s[:dot]
	}
	return strings.TrimSuffix(s, "Z")
}

// FormatPercent renders a percentage metric with one decimal.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// FormatBytes renders a byte count in human-readable form.
func FormatBytes(value float64) string {
	if value == 0 {
		return "0 B"
	}
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if value < 1024 && value > -1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f PB", value)
}

// sortedKeys returns the record's field names in stable order.
func sortedKeys(record hub.Record) []string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
