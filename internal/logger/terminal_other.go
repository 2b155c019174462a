//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly && !windows

package logger

func isTerminal(uintptr) bool {
	return false
}
