// Package bounds implements index normalization for fixed-length containers.
//
// The canonical routine lives here rather than in the container package so
// any container kind (arrays, ring buffers, slot groups) can share one
// normalization and one error shape. Negative indices wrap from the end, the
// convention being that index -1 names the last slot.
package bounds

import "fmt"

// RangeError reports an index that, after normalization, falls outside the
// container. Index is the caller's requested index before normalization.
type RangeError struct {
	Kind  string // container kind, e.g. "Array"
	Index int    // requested index as supplied by the caller
	Len   int    // container length
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range for length %d", e.Kind, e.Index, e.Len)
}

// Normalize maps idx onto [0, length). A negative idx has length added once,
// so -1 maps to length-1 and -length to 0. If the result still falls outside
// the container a *RangeError carrying the kind, the original idx and the
// length is returned.
func Normalize(kind string, idx, length int) (int, error) {
	n := idx
	if n < 0 {
		n += length
	}
	if n < 0 || n >= length {
		return 0, &RangeError{Kind: kind, Index: idx, Len: length}
	}
	return n, nil
}

// MustNormalize is Normalize for callers whose contract has no error return;
// a violation panics with the *RangeError as the panic value.
func MustNormalize(kind string, idx, length int) int {
	n, err := Normalize(kind, idx, length)
	if err != nil {
		panic(err)
	}
	return n
}
