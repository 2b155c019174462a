package output

import (
	"bufio"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Values is an ordered list of selected values under a column title.
// It renders as lines, a one-column table, or a plain JSON/YAML list.
type Values struct {
	Header string
	Items  []string
}

// Lines implements LineRenderer.
func (v *Values) Lines() []string {
	return v.Items
}

// Headers implements TableRenderer.
func (v *Values) Headers() []string {
	return []string{v.Header}
}

// Rows implements TableRenderer.
func (v *Values) Rows() [][]string {
	rows := make([][]string, len(v.Items))
	for i, item := range v.Items {
		rows[i] = []string{item}
	}
	return rows
}

// MarshalJSON encodes the values as a JSON array of strings.
func (v *Values) MarshalJSON() ([]byte, error) {
	items := v.Items
	if items == nil {
		items = []string{}
	}
	return json.Marshal(items)
}

// MarshalYAML encodes the values as a YAML sequence.
func (v *Values) MarshalYAML() (any, error) {
	return v.Items, nil
}

var (
	_ LineRenderer   = (*Values)(nil)
	_ TableRenderer  = (*Values)(nil)
	_ json.Marshaler = (*Values)(nil)
	_ yaml.Marshaler = (*Values)(nil)
)

// ValueWriter receives values one at a time, in output order.
//
// Text output is streamed line by line as values arrive. The structured
// formats are buffered and rendered once by Close; when no value was
// written, Close prints nothing.
type ValueWriter struct {
	printer *Printer
	values  Values
	text    *bufio.Writer
}

// NewValueWriter creates a ValueWriter printing through p. header titles
// the column of tabular output.
func NewValueWriter(p *Printer, header string) *ValueWriter {
	vw := &ValueWriter{
		printer: p,
		values:  Values{Header: header},
	}
	if p.Format() == FormatText {
		vw.text = bufio.NewWriter(p.Writer())
	}
	return vw
}

// Emit records one value.
func (vw *ValueWriter) Emit(value string) error {
	if vw.text != nil {
		if _, err := vw.text.WriteString(value); err != nil {
			return err
		}
		return vw.text.WriteByte('\n')
	}
	vw.values.Items = append(vw.values.Items, value)
	return nil
}

// Close flushes text output or renders the buffered values.
func (vw *ValueWriter) Close() error {
	if vw.text != nil {
		return vw.text.Flush()
	}
	if len(vw.values.Items) == 0 {
		return nil
	}
	return vw.printer.Print(&vw.values)
}
