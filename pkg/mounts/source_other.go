//go:build !linux && !freebsd && !darwin

package mounts

import (
	"fmt"
	"runtime"
)

// Default returns a source that always fails: there is no native mount
// enumeration for this platform. A mount-table file can still be read with
// NewTableSource.
func Default() Source {
	return SourceFunc(func(func(Record)) error {
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	})
}
