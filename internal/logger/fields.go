package logger

import "log/slog"

// Standard field keys for structured logging. Use these consistently so
// json output can be queried.
const (
	// Mount records
	KeySource  = "source"  // Mount source (device, remote export, pseudo fs name)
	KeyTarget  = "target"  // Mount point
	KeyFSType  = "fstype"  // Filesystem type
	KeyOptions = "options" // Mount options string

	// Mount table input
	KeyPath = "path" // Mount table file path
	KeyLine = "line" // 1-based line number in the mount table

	// Pipeline
	KeyStage    = "stage"    // Predicate stage that decided a record
	KeyField    = "field"    // Selected output field
	KeyValue    = "value"    // Selected output value
	KeyPattern  = "pattern"  // Regular expression source
	KeyRecords  = "records"  // Number of records enumerated
	KeySelected = "selected" // Number of distinct selected values
	KeyEmitted  = "emitted"  // Number of values surviving the point filter

	// Operation metadata
	KeyError      = "error"       // Error message
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
)

// Err returns an error attribute.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Stage returns a predicate stage attribute.
func Stage(stage string) slog.Attr {
	return slog.String(KeyStage, stage)
}

// Target returns a mount point attribute.
func Target(target string) slog.Attr {
	return slog.String(KeyTarget, target)
}
