package mounts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/marmos91/mountinfo/internal/logger"
	"github.com/spf13/afero"
)

// DefaultTablePath is the kernel's view of the mount table on Linux.
const DefaultTablePath = "/proc/mounts"

// maxLineSize bounds a single mount-table line. Longer lines are skipped
// like any other malformed line.
const maxLineSize = 64 * 1024

// TableSource reads a mount-table file in fstab(5) layout:
//
//	source target fstype options [freq passno]
//
// Fields are whitespace separated. Lines with fewer than four fields, and
// lines longer than 64 KiB, are skipped. Escape sequences such as \040 are
// reported as-is.
type TableSource struct {
	Path string
	Fs   afero.Fs
}

// NewTableSource creates a TableSource reading path from the OS filesystem.
func NewTableSource(path string) *TableSource {
	if path == "" {
		path = DefaultTablePath
	}
	return &TableSource{
		Path: path,
		Fs:   afero.NewOsFs(),
	}
}

// Enumerate implements Source.
func (t *TableSource) Enumerate(visit func(Record)) error {
	fs := t.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	f, err := fs.Open(t.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMountTable, err)
	}
	defer func() { _ = f.Close() }()

	r := bufio.NewReader(f)
	lineNo := 0
	for {
		line, tooLong, err := readLine(r, maxLineSize)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrMountTable, t.Path, err)
		}
		lineNo++

		if tooLong {
			logger.Debug("skipping oversized mount table line",
				logger.KeyPath, t.Path,
				logger.KeyLine, lineNo)
			continue
		}
		rec, ok := parseTableLine(line)
		if !ok {
			logger.Debug("skipping malformed mount table line",
				logger.KeyPath, t.Path,
				logger.KeyLine, lineNo)
			continue
		}
		visit(rec)
	}
}

// readLine reads one line without its terminator. A line longer than limit
// is consumed and discarded, and tooLong is set. io.EOF is returned only
// when no line remains.
func readLine(r *bufio.Reader, limit int) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, more, err := r.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > limit {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !more {
			return string(buf), tooLong, nil
		}
	}
}

// parseTableLine splits one mount-table line. Extra fields are ignored.
func parseTableLine(line string) (Record, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Record{}, false
	}
	return Record{
		Source:  fields[0],
		Target:  fields[1],
		FSType:  fields[2],
		Options: fields[3],
	}, true
}
