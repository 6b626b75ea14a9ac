// Package inlinearray provides a fixed-capacity, homogeneous array container
// with explicit control over the element lifecycle. It is a low-level building
// block for code that wants deterministic layout and no indirection beyond a
// single contiguous buffer: the capacity is fixed at construction, slots are
// laid out back to back, and every mutation goes through indexed access.
// Typical usage:
//  1. Construct through exactly one lifecycle path (Fill, Of, FromSlots or,
//     for incrementally assembled buffers, UnsafeUninitialized)
//  2. Read and write slots via Get / Set (negative indices wrap from the end)
//  3. Release with Destroy, which finalizes elements or not depending on the
//     array's Policy type parameter
//
// The zero value of Array is not a valid container. Constructors are the only
// supported way to obtain a usable instance; a zero-value Array has length
// zero and every indexed access on it reports a bounds violation.
//
// Pointers obtained from an Array (Data, UnsafeGet) stay valid only as long
// as the Array value itself is neither reassigned nor destroyed. Re-derive
// them after any move.
//
// The container is a plain value with single logical ownership. It performs
// no locking; mutating one instance from multiple goroutines without external
// synchronization is a data race.
package inlinearray

import (
	"unsafe"
)

// Policy selects, at the type level, whether Destroy visits elements. The two
// implementations are KeepElements and FinalizeElements; the method is
// unexported so the set is closed (same closed-set marker pattern as a sealed
// interface).
type Policy interface {
	finalizeOnDestroy() bool
}

// KeepElements is the compatibility policy: Destroy releases the buffer
// without calling any element finalizer. Elements that own external resources
// must be cleaned up by the caller before the array goes away.
type KeepElements struct{}

func (KeepElements) finalizeOnDestroy() bool { return false }

// FinalizeElements makes Destroy call Finalize on every element that
// implements Finalizer, in ascending slot order. This is the semantically
// complete behavior; KeepElements exists for callers porting code that
// predates element finalization.
type FinalizeElements struct{}

func (FinalizeElements) finalizeOnDestroy() bool { return true }

// Array is a fixed-capacity array of exactly n slots of T, backed by one
// contiguous buffer allocated at construction. The length never changes after
// construction and is always positive.
//
// The P type parameter fixes the destroy behavior when the Array type is
// written down, so the choice between "finalize elements" and "leave elements
// alone" is visible at every construction site instead of being a silent
// default. See the Plain and Managed aliases for the two spellings.
//
// Assigning an Array value to another variable aliases the same buffer; it is
// a move, not a duplication. Use Copy to duplicate contents.
type Array[T any, P Policy] struct {
	buf []T // len(buf) == cap(buf) == n, allocated once
}

// Plain is an Array whose Destroy never touches elements (KeepElements).
type Plain[T any] = Array[T, KeepElements]

// Managed is an Array whose Destroy finalizes elements (FinalizeElements).
type Managed[T any] = Array[T, FinalizeElements]

// Len returns the number of slots. Zero only for the invalid zero value.
func (a *Array[T, P]) Len() int { return len(a.buf) }

// Data returns a raw pointer to slot 0. Slot i lives at offset i*sizeof(T)
// from this pointer. The pointer is invalidated when the Array value is
// reassigned or destroyed; nil for the zero value.
func (a *Array[T, P]) Data() *T { return unsafe.SliceData(a.buf) }
