//go:build linux

package mounts

// artifactFSType is the initial root filesystem the kernel mounts before
// the real root. It shadows "/" in /proc/mounts and is never interesting.
const artifactFSType = "rootfs"
