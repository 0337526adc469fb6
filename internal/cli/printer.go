package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"beszelctl/internal/hub"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the desired output format.
type OutputFormat string

const (
	FormatTable OutputFormat = "table" // Human-readable table output
	FormatJSON  OutputFormat = "json"  // Machine-readable JSON output
	FormatYAML  OutputFormat = "yaml"  // Machine-readable YAML output
)

// ParseOutputFormat validates an --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatTable, FormatJSON, FormatYAML:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected table, json, or yaml)", s)
	}
}

// Printer renders hub records in the selected output format. Table mode
// is the human-facing default; json and yaml emit records unmodified in
// structure and order for scripting.
type Printer struct {
	// Format selects table, json, or yaml output.
	Format OutputFormat
	// NoHeaders suppresses the header row in table output.
	NoHeaders bool
	// Out is the destination writer, normally os.Stdout.
	Out io.Writer
}

// NewPrinter creates a printer writing to stdout.
func NewPrinter(format OutputFormat) *Printer {
	return &Printer{Format: format, Out: os.Stdout}
}

// Records renders a list of records. In table mode the given columns are
// shown; when columns is nil they are derived from the first record's
// scalar fields. Machine formats always emit the full records.
func (p *Printer) Records(columns []Column, records []hub.Record) error {
	switch p.Format {
	case FormatJSON:
		return p.printJSON(records)
	case FormatYAML:
		return p.printYAML(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(p.Out, text.FgHiBlack.Sprint("No records found"))
		return nil
	}

	if columns == nil {
		columns = deriveColumns(records[0])
	}

	t := p.newTable()
	if !p.NoHeaders {
		header := table.Row{}
		for _, col := range columns {
			header = append(header, text.FgHiCyan.Sprint(col.Header))
		}
		t.AppendHeader(header)
	}

	for _, record := range records {
		row := table.Row{}
		for _, col := range columns {
			row = append(row, col.cell(record))
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}

// Record renders a single record: key-value table in table mode, the raw
// record otherwise.
func (p *Printer) Record(record hub.Record) error {
	switch p.Format {
	case FormatJSON:
		return p.printJSON(record)
	case FormatYAML:
		return p.printYAML(record)
	}

	t := p.newTable()
	if !p.NoHeaders {
		t.AppendHeader(table.Row{text.FgHiCyan.Sprint("FIELD"), text.FgHiCyan.Sprint("VALUE")})
	}
	for _, key := range sortedKeys(record) {
		t.AppendRow(table.Row{key, formatValue(record[key])})
	}
	t.Render()
	return nil
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleRounded)
	return t
}

func (p *Printer) printJSON(data interface{}) error {
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

func (p *Printer) printYAML(data interface{}) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode YAML output: %w", err)
	}
	_, err = p.Out.Write(out)
	return err
}
