//go:build darwin || freebsd || openbsd || netbsd || dragonfly

package logger

import "golang.org/x/sys/unix"

// isTerminal checks if the file descriptor is a terminal on BSD and macOS
func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TIOCGETA)
	return err == nil
}
