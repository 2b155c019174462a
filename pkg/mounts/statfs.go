//go:build freebsd || darwin

package mounts

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// StatfsSource enumerates mounts with a single getfsstat(2) call and
// rebuilds each options string from the statfs flag bitmask.
type StatfsSource struct {
	// Flags names the bits of Statfs_t.Flags, in output order.
	Flags []FlagName

	getfsstat func(buf []unix.Statfs_t, flags int) (int, error)
}

// NewStatfsSource creates a StatfsSource using the platform flag table.
func NewStatfsSource() *StatfsSource {
	return &StatfsSource{
		Flags:     platformFlagNames,
		getfsstat: unix.Getfsstat,
	}
}

// Default returns the mount source for this platform: getfsstat(2).
func Default() Source {
	return NewStatfsSource()
}

// Enumerate implements Source.
func (s *StatfsSource) Enumerate(visit func(Record)) error {
	getfsstat := s.getfsstat
	if getfsstat == nil {
		getfsstat = unix.Getfsstat
	}

	// First call sizes the buffer, second call fills it.
	n, err := getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil {
		return fmt.Errorf("%w: getfsstat: %w", ErrEnumeration, err)
	}
	if n == 0 {
		return nil
	}

	buf := make([]unix.Statfs_t, n)
	n, err = getfsstat(buf, unix.MNT_NOWAIT)
	if err != nil {
		return fmt.Errorf("%w: getfsstat: %w", ErrEnumeration, err)
	}

	for _, fs := range buf[:n] {
		visit(Record{
			Source:  unix.ByteSliceToString(fs.Mntfromname[:]),
			Target:  unix.ByteSliceToString(fs.Mntonname[:]),
			FSType:  unix.ByteSliceToString(fs.Fstypename[:]),
			Options: FlagOptions(uint64(fs.Flags), s.Flags),
		})
	}
	return nil
}
