package inlinearray

import (
	"testing"
	"unsafe"

	"github.com/hupe1980/inlinearray/bounds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rangeError runs fn, which must panic with a *bounds.RangeError, and returns
// the error for inspection.
func rangeError(t *testing.T, fn func()) *bounds.RangeError {
	t.Helper()
	var re *bounds.RangeError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a bounds panic")
			var ok bool
			re, ok = r.(*bounds.RangeError)
			require.True(t, ok, "panic value %#v is not a *bounds.RangeError", r)
		}()
		fn()
	}()
	return re
}

func TestGet_NegativeIndicesWrap(t *testing.T) {
	a := Of[int, KeepElements](1, 2, 3, 4)

	assert.Equal(t, a.Get(3), a.Get(-1))
	assert.Equal(t, a.Get(0), a.Get(-4))
	assert.Equal(t, 4, a.Get(-1))
	assert.Equal(t, 1, a.Get(-4))
}

func TestGet_OutOfRange(t *testing.T) {
	a := Of[int, KeepElements](1, 2, 3, 4)

	re := rangeError(t, func() { a.Get(4) })
	assert.Equal(t, "Array", re.Kind)
	assert.Equal(t, 4, re.Index)
	assert.Equal(t, 4, re.Len)
	assert.Equal(t, "Array index 4 out of range for length 4", re.Error())

	re = rangeError(t, func() { a.Get(-5) })
	assert.Equal(t, -5, re.Index)
}

func TestSet(t *testing.T) {
	a := Fill[int, KeepElements](3, 0)

	a.Set(1, 7)
	a.Set(-1, 9)

	assert.Equal(t, 0, a.Get(0))
	assert.Equal(t, 7, a.Get(1))
	assert.Equal(t, 9, a.Get(2))

	rangeError(t, func() { a.Set(3, 1) })
}

func TestUnsafeGet_AddressesSlotsOffTheBasePointer(t *testing.T) {
	a := Of[uint64, KeepElements](5, 6, 7)

	base := a.Data()
	require.NotNil(t, base)
	assert.Equal(t, uint64(5), *base)

	for i := 0; i < a.Len(); i++ {
		p := a.UnsafeGet(i)
		assert.Equal(t, a.Get(i), *p)
		// slot i sits at offset i*sizeof(T) from slot 0
		want := unsafe.Add(unsafe.Pointer(base), uintptr(i)*unsafe.Sizeof(uint64(0)))
		assert.Equal(t, want, unsafe.Pointer(p))
	}
}

func TestUnsafeGet_WriteThrough(t *testing.T) {
	a := Fill[int, KeepElements](2, 0)

	*a.UnsafeGet(1) = 11
	a.UnsafeSet(0, 22)

	assert.Equal(t, 22, a.Get(0))
	assert.Equal(t, 11, a.Get(1))
}
