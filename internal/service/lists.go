package service

// emptyIfNil keeps empty collections encoding as [] rather than null; the
// gateway leaves the destination slice nil when no rows match.
func emptyIfNil[T any](xs []T) []T {
	if xs == nil {
		return []T{}
	}
	return xs
}
