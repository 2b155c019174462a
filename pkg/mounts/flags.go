package mounts

import "strings"

// FlagName pairs a mount flag bit with its human readable name.
type FlagName struct {
	Flag uint64
	Name string
}

// FlagOptions renders a mount flag bitmask as a comma separated list of
// names, in table order. Bits without an entry in table are ignored. A
// bitmask with no named bits yields the empty string.
func FlagOptions(flags uint64, table []FlagName) string {
	var sb strings.Builder
	for _, fn := range table {
		if flags == 0 {
			break
		}
		if flags&fn.Flag == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(fn.Name)
		flags &^= fn.Flag
	}
	return sb.String()
}
