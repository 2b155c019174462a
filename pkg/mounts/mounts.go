// Package mounts enumerates the filesystems currently mounted on the host.
//
// A Source yields Records in the order the operating system reports them.
// Two realizations exist:
//   - TableSource reads a mount-table file such as /proc/mounts
//   - StatfsSource calls getfsstat(2) on FreeBSD and macOS
//
// Default returns the realization for the platform the binary was built for.
package mounts

import (
	"errors"
	"fmt"
)

var (
	// ErrMountTable indicates the mount-table file could not be opened or read.
	ErrMountTable = errors.New("cannot read mount table")

	// ErrEnumeration indicates the system mount enumeration call failed.
	ErrEnumeration = errors.New("mount enumeration failed")

	// ErrUnsupportedPlatform indicates no mount source exists for this platform.
	ErrUnsupportedPlatform = errors.New("mount enumeration not supported on this platform")
)

// Record is one entry of the live mount table.
type Record struct {
	Source  string `json:"source" yaml:"source"`
	Target  string `json:"target" yaml:"target"`
	FSType  string `json:"fstype" yaml:"fstype"`
	Options string `json:"options" yaml:"options"`
}

func (r Record) String() string {
	return fmt.Sprintf("%s %s %s %s", r.Source, r.Target, r.FSType, r.Options)
}

// Source produces the mounted filesystems known to the operating system.
type Source interface {
	// Enumerate calls visit once per mount, in enumeration order. The record
	// passed to visit must not be retained after visit returns.
	Enumerate(visit func(Record)) error
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func(visit func(Record)) error

// Enumerate implements Source.
func (f SourceFunc) Enumerate(visit func(Record)) error {
	return f(visit)
}

// Static is a Source over a fixed list of records.
type Static []Record

// Enumerate implements Source.
func (s Static) Enumerate(visit func(Record)) error {
	for _, r := range s {
		visit(r)
	}
	return nil
}
