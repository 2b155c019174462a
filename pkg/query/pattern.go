package query

import "regexp"

// Pattern is a compiled POSIX extended regular expression used as a
// match/no-match filter. A nil *Pattern means the filter is unset.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// CompilePattern compiles expr with POSIX ERE syntax. Matching is
// case-sensitive and unanchored.
func CompilePattern(expr string) (*Pattern, error) {
	re, err := regexp.CompilePOSIX(expr)
	if err != nil {
		return nil, NewInvalidPatternError(expr, err)
	}
	return &Pattern{expr: expr, re: re}, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(expr string) *Pattern {
	p, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// MatchString reports whether s contains a match of the pattern.
func (p *Pattern) MatchString(s string) bool {
	return p.re.MatchString(s)
}

// String returns the source expression.
func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.expr
}
