package config

import "strings"

// Switch is an rc-style boolean: only "yes" (any case) turns it on.
type Switch bool

// ParseSwitch interprets an rc-style value. Anything but "yes" is off,
// including "true" and "1".
func ParseSwitch(s string) Switch {
	return Switch(strings.EqualFold(strings.TrimSpace(s), "yes"))
}

func (s Switch) String() string {
	if s {
		return "yes"
	}
	return "no"
}

// MarshalYAML writes the switch as yes/no so saved files read back the same.
func (s Switch) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
