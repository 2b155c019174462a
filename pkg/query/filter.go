// Package query implements the mount query pipeline.
//
// A query makes exactly two passes:
//
//  1. Record pass: every Record from a mounts.Source goes through Evaluate.
//     Accepted records contribute their selected field to a sorted,
//     duplicate-free set.
//  2. Value pass: the set is reversed (descending order) and each value goes
//     through the point filter. Survivors are emitted.
//
// Mount-level filters always test fixed fields (source, fstype, options,
// target) whatever field is selected. The point filter tests the selected
// value itself.
package query

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/marmos91/mountinfo/pkg/mounts"
)

// Field names the record attribute reported for each accepted mount.
type Field int

const (
	// FieldTarget reports the mount point. It is the default.
	FieldTarget Field = iota
	// FieldSource reports the mounted device or remote.
	FieldSource
	// FieldFSType reports the filesystem type.
	FieldFSType
	// FieldOptions reports the options string.
	FieldOptions
)

func (f Field) String() string {
	switch f {
	case FieldTarget:
		return "target"
	case FieldSource:
		return "source"
	case FieldFSType:
		return "fstype"
	case FieldOptions:
		return "options"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Header is the column title used by tabular output.
func (f Field) Header() string {
	switch f {
	case FieldSource:
		return "SOURCE"
	case FieldFSType:
		return "FSTYPE"
	case FieldOptions:
		return "OPTIONS"
	default:
		return "TARGET"
	}
}

// Of returns the value of f in r.
func (f Field) Of(r mounts.Record) (string, bool) {
	switch f {
	case FieldTarget:
		return r.Target, true
	case FieldSource:
		return r.Source, true
	case FieldFSType:
		return r.FSType, true
	case FieldOptions:
		return r.Options, true
	default:
		return "", false
	}
}

// ParseField parses a field name. "node" and "point" are accepted as
// aliases of source and target.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "target", "point", "":
		return FieldTarget, nil
	case "source", "node":
		return FieldSource, nil
	case "fstype":
		return FieldFSType, nil
	case "options":
		return FieldOptions, nil
	default:
		return 0, fmt.Errorf("invalid field: %q (valid: target, source, fstype, options)", s)
	}
}

// Filter is the complete query configuration. Build it once, then treat it
// as read-only: Evaluate and Run never modify it.
type Filter struct {
	// Mount-level filters. A nil pattern is unset.
	NodeInclude    *Pattern // matched against Record.Source
	NodeExclude    *Pattern
	FSTypeInclude  *Pattern // matched against Record.FSType
	FSTypeExclude  *Pattern
	OptionsInclude *Pattern // matched against Record.Options
	OptionsExclude *Pattern

	// Targets, when non-empty, restricts the query to these exact mount points.
	Targets []string

	// Select is the field reported for each accepted record.
	Select Field

	// Point filters, applied to the selected values.
	PointInclude *Pattern
	PointExclude *Pattern

	// Quiet suppresses output. The exit status is computed as usual.
	Quiet bool
}

// AddTarget appends an explicit mount point. The path must be absolute.
func (f *Filter) AddTarget(p string) error {
	if !path.IsAbs(p) {
		return NewNotMountPointError(p)
	}
	f.Targets = append(f.Targets, p)
	return nil
}

func (f *Filter) hasTarget(target string) bool {
	return slices.Contains(f.Targets, target)
}
