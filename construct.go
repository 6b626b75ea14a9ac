package inlinearray

import (
	"fmt"

	"github.com/hupe1980/inlinearray/internal/assert"
	"github.com/hupe1980/inlinearray/uninit"
)

// newBuffer allocates the backing buffer for n slots. A non-positive n is a
// programming error, rejected immediately with a precise message so a broken
// instance can never escape a constructor.
func newBuffer[T any](n int) []T {
	if n <= 0 {
		panic(fmt.Sprintf("inlinearray: array length must be positive, got %d", n))
	}
	return make([]T, n)
}

// adopt wraps an exact-length buffer without copying. The caller relinquishes
// the slice: using it afterwards aliases live elements and can lead to double
// finalization. Internal construction paths funnel through here so the
// declared length is checked (under the arraydebug build tag) in one place.
func adopt[T any, P Policy](buf []T, n int) Array[T, P] {
	assert.Truef(len(buf) == n, "inlinearray: adopted buffer has length %d, declared %d", len(buf), n)
	return Array[T, P]{buf: buf}
}

// Fill constructs an array of n slots, each holding a copy of value. O(n).
// Panics if n <= 0.
func Fill[T any, P Policy](n int, value T) Array[T, P] {
	buf := newBuffer[T](n)
	for i := range buf {
		buf[i] = value
	}
	return adopt[T, P](buf, n)
}

// Of constructs an array from exactly the given values, placed in argument
// order. The length is the number of arguments; ownership of the values
// transfers to the array. Panics if called with no values (the length must be
// positive).
func Of[T any, P Policy](values ...T) Array[T, P] {
	buf := newBuffer[T](len(values))
	copy(buf, values)
	return adopt[T, P](buf, len(values))
}

// FromSlots constructs an array by moving the value out of every wrapper
// slot, in slot order. Each slot relinquishes its value through Take, so an
// element assembled elsewhere is owned by exactly one container afterwards.
//
// Precondition: every slot has been initialized. Under the arraydebug build
// tag Take panics on an uninitialized slot; in regular builds the violation
// goes undetected and the resulting array holds an unspecified value in that
// position.
func FromSlots[T any, P Policy](slots []uninit.Slot[T]) Array[T, P] {
	buf := newBuffer[T](len(slots))
	for i := range slots {
		buf[i] = slots[i].Take()
	}
	return adopt[T, P](buf, len(slots))
}

// UnsafeUninitialized constructs an array of n slots whose contents are
// unspecified as far as the container contract is concerned. It is the only
// construction path that hands out slots the caller has not populated, and it
// is deliberately named so the hazard shows up at the call site.
//
// Precondition for all later use: the caller writes every slot exactly once
// (Set or UnsafeGet) before reading or destroying it. The container does not
// track which slots have been written.
func UnsafeUninitialized[T any, P Policy](n int) Array[T, P] {
	return adopt[T, P](newBuffer[T](n), n)
}
