package commands

import (
	"strconv"

	"github.com/marmos91/mountinfo/pkg/query"
	"github.com/spf13/pflag"
)

// patternValue is a pflag.Value that compiles its argument on every
// occurrence. The last occurrence replaces earlier ones, but an invalid
// earlier occurrence still fails the parse.
type patternValue struct {
	target **query.Pattern
}

func newPatternValue(target **query.Pattern) *patternValue {
	return &patternValue{target: target}
}

func (p *patternValue) Set(s string) error {
	pat, err := query.CompilePattern(s)
	if err != nil {
		return err
	}
	*p.target = pat
	return nil
}

func (p *patternValue) String() string {
	if p.target == nil {
		return ""
	}
	return (*p.target).String()
}

func (p *patternValue) Type() string {
	return "regex"
}

// selectValue is a boolean flag that points the shared field selector at
// one field when set. Several selectValues share one target, so the last
// one given on the command line wins.
type selectValue struct {
	target *query.Field
	field  query.Field
	set    bool
}

func newSelectValue(target *query.Field, field query.Field) *selectValue {
	return &selectValue{target: target, field: field}
}

func (s *selectValue) Set(v string) error {
	on, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	s.set = on
	if on {
		*s.target = s.field
	}
	return nil
}

func (s *selectValue) String() string {
	return strconv.FormatBool(s.set)
}

func (s *selectValue) Type() string {
	return "bool"
}

// addSelectFlag registers a selector so it can be given without a value.
func addSelectFlag(fs *pflag.FlagSet, v *selectValue, name, shorthand, usage string) {
	f := fs.VarPF(v, name, shorthand, usage)
	f.NoOptDefVal = "true"
}
