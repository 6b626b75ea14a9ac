// Package uninit provides a per-slot "possibly uninitialized" wrapper for
// code that assembles container contents incrementally before moving them in
// bulk into a fixed array.
//
// A Slot starts empty. Init places a value exactly once, AssumeInit reads it
// in place, and Take moves it out, returning the slot to the empty state so
// ownership transfers to exactly one receiver. Misuse (double Init, reading
// or taking an empty slot) is the caller's responsibility; it panics under
// the arraydebug build tag and goes undetected otherwise.
package uninit

import "github.com/hupe1980/inlinearray/internal/assert"

// Slot holds either nothing or exactly one T. The zero value is an empty
// slot, ready for Init.
type Slot[T any] struct {
	value T
	init  bool
}

// Init places value into the slot. Precondition: the slot is empty.
func (s *Slot[T]) Init(value T) {
	assert.Truef(!s.init, "uninit: Init on an already initialized slot")
	s.value = value
	s.init = true
}

// AssumeInit returns the contained value without consuming it.
// Precondition: the slot is initialized.
func (s *Slot[T]) AssumeInit() T {
	assert.Truef(s.init, "uninit: AssumeInit on an uninitialized slot")
	return s.value
}

// Take moves the value out and empties the slot, so the value is owned by the
// caller alone afterwards. Precondition: the slot is initialized.
func (s *Slot[T]) Take() T {
	assert.Truef(s.init, "uninit: Take on an uninitialized slot")
	v := s.value
	var zero T
	s.value = zero
	s.init = false
	return v
}
