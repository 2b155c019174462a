package mounts

// IsPlatformArtifact reports whether fstype names the synthetic bootstrap
// filesystem of this platform. Such mounts are dropped before any user
// filter runs.
func IsPlatformArtifact(fstype string) bool {
	return artifactFSType != "" && fstype == artifactFSType
}
