package query

// PointMatch reports whether a selected value survives the point filter.
func (f *Filter) PointMatch(value string) bool {
	if f.PointInclude != nil && !f.PointInclude.MatchString(value) {
		return false
	}
	if f.PointExclude != nil && f.PointExclude.MatchString(value) {
		return false
	}
	return true
}
