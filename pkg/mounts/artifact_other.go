//go:build !linux

package mounts

// artifactFSType is empty: no platform artifact outside Linux.
const artifactFSType = ""
