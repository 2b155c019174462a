package query

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned by Run when no value survived the point filter.
// It is not a failure of the query itself; callers map it to a nonzero
// exit status without a diagnostic.
var ErrNoMatch = errors.New("no matching mounts")

// ErrorCode classifies fatal query errors.
type ErrorCode int

const (
	// ErrInvalidPattern indicates a regular expression failed to compile.
	ErrInvalidPattern ErrorCode = iota + 1

	// ErrNotMountPoint indicates an explicit mount point is not an absolute path.
	ErrNotMountPoint

	// ErrMountTable indicates the mount-table file could not be read.
	ErrMountTable

	// ErrEnumeration indicates the system mount enumeration failed.
	ErrEnumeration

	// ErrUnsupported indicates the platform has no mount source.
	ErrUnsupported

	// ErrOutput indicates writing results failed.
	ErrOutput
)

// String returns a human-readable name for the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidPattern:
		return "InvalidPattern"
	case ErrNotMountPoint:
		return "NotMountPoint"
	case ErrMountTable:
		return "MountTable"
	case ErrEnumeration:
		return "Enumeration"
	case ErrUnsupported:
		return "Unsupported"
	case ErrOutput:
		return "Output"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Error is a fatal query error.
type Error struct {
	Code    ErrorCode
	Message string
	Arg     string // offending argument, if any
	Err     error  // underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Arg != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Arg)
	}
	if e.Err != nil {
		if msg == "" {
			return e.Err.Error()
		}
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsCode reports whether err is an *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var qe *Error
	return errors.As(err, &qe) && qe.Code == code
}

// NewInvalidPatternError creates an Error for a pattern that failed to compile.
func NewInvalidPatternError(expr string, err error) *Error {
	return &Error{Code: ErrInvalidPattern, Message: "invalid regex", Arg: expr, Err: err}
}

// NewNotMountPointError creates an Error for a relative mount point argument.
func NewNotMountPointError(arg string) *Error {
	return &Error{Code: ErrNotMountPoint, Message: "not a mount point", Arg: arg}
}
