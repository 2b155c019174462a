package output

import (
	"bufio"
	"io"
)

// LineRenderer is implemented by types that print one line per element.
type LineRenderer interface {
	Lines() []string
}

// PrintLines writes each line followed by a newline.
func PrintLines(w io.Writer, data LineRenderer) error {
	bw := bufio.NewWriter(w)
	for _, line := range data.Lines() {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
