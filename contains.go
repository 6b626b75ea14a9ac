package inlinearray

// Contains reports whether some slot compares equal to target, scanning from
// slot 0 upwards and stopping at the first match. O(n).
func Contains[T comparable, P Policy](a *Array[T, P], target T) bool {
	for i := range a.buf {
		if a.buf[i] == target {
			return true
		}
	}
	return false
}

// ContainsFunc is Contains with caller-supplied equality, for element types
// that are not comparable or need domain-specific matching.
func ContainsFunc[T any, P Policy](a *Array[T, P], eq func(T) bool) bool {
	for i := range a.buf {
		if eq(a.buf[i]) {
			return true
		}
	}
	return false
}
