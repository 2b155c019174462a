//go:build linux

package mounts

// Default returns the mount source for Linux: the /proc/mounts table.
func Default() Source {
	return NewTableSource(DefaultTablePath)
}
