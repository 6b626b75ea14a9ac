package inlinearray

import (
	"unsafe"

	"github.com/hupe1980/inlinearray/bounds"
	"github.com/hupe1980/inlinearray/internal/assert"
)

// kind is the container name reported in bounds violations.
const kind = "Array"

// Get returns the element at idx. Negative indices count from the end:
// Get(-1) is the last slot, Get(-Len()) the first. A normalized index outside
// [0, Len()) panics with a *bounds.RangeError naming the container kind, the
// requested index and the length.
func (a *Array[T, P]) Get(idx int) T {
	return a.buf[bounds.MustNormalize(kind, idx, len(a.buf))]
}

// Set stores value at idx with the same normalization and bounds behavior as
// Get.
func (a *Array[T, P]) Set(idx int, value T) {
	a.buf[bounds.MustNormalize(kind, idx, len(a.buf))] = value
}

// UnsafeGet returns a pointer to slot idx with no normalization and no bounds
// check, addressing the slot directly off the buffer base pointer. It exists
// for hot paths that have already validated idx.
//
// Precondition: 0 <= idx < Len(). Checked only under the arraydebug build
// tag; in regular builds a violation dereferences memory outside the buffer.
// The returned pointer is invalidated when the Array value is reassigned or
// destroyed.
func (a *Array[T, P]) UnsafeGet(idx int) *T {
	assert.Truef(idx >= 0 && idx < len(a.buf), "inlinearray: unsafe index %d outside [0, %d)", idx, len(a.buf))
	var zero T
	base := unsafe.Pointer(unsafe.SliceData(a.buf))
	return (*T)(unsafe.Add(base, uintptr(idx)*unsafe.Sizeof(zero)))
}

// UnsafeSet stores value at slot idx without normalization or bounds checks.
// Same precondition and hazards as UnsafeGet.
func (a *Array[T, P]) UnsafeSet(idx int, value T) {
	*a.UnsafeGet(idx) = value
}
