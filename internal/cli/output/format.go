// Package output renders query results for the command line.
package output

import (
	"fmt"
	"io"
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatText writes one value per line. It is the default.
	FormatText Format = "text"
	// FormatTable outputs values in a single-column table.
	FormatTable Format = "table"
	// FormatJSON outputs values as a JSON array.
	FormatJSON Format = "json"
	// FormatYAML outputs values as a YAML sequence.
	FormatYAML Format = "yaml"
)

// Formats lists the accepted format names.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON, FormatYAML}
}

// ParseFormat parses a string into a Format, returning an error if invalid.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %q (valid: text, table, json, yaml)", s)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Printer handles formatted output to a writer.
type Printer struct {
	out    io.Writer
	format Format
}

// NewPrinter creates a new Printer.
func NewPrinter(out io.Writer, format Format) *Printer {
	if format == "" {
		format = FormatText
	}
	return &Printer{
		out:    out,
		format: format,
	}
}

// Format returns the printer's output format.
func (p *Printer) Format() Format {
	return p.format
}

// Writer returns the printer's output writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Print outputs data in the configured format.
// For text, data must implement LineRenderer; for table, TableRenderer.
// JSON and YAML marshal data directly.
func (p *Printer) Print(data any) error {
	switch p.format {
	case FormatText:
		if renderer, ok := data.(LineRenderer); ok {
			return PrintLines(p.out, renderer)
		}
		return fmt.Errorf("text output not supported for %T", data)
	case FormatTable:
		if renderer, ok := data.(TableRenderer); ok {
			return PrintTable(p.out, renderer)
		}
		// Fallback to JSON if data doesn't implement TableRenderer
		return PrintJSON(p.out, data)
	case FormatJSON:
		return PrintJSON(p.out, data)
	case FormatYAML:
		return PrintYAML(p.out, data)
	default:
		return fmt.Errorf("unknown format: %s", p.format)
	}
}
