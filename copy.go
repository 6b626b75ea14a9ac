package inlinearray

// Copy duplicates the array: an internally uninitialized allocation of the
// same length followed by an index-wise copy of every element. O(n). The
// result owns its own buffer, so mutating it never affects the receiver.
//
// This is the only supported duplication; assigning an Array value aliases
// the original buffer. Panics on the zero value (no valid length to copy).
func (a *Array[T, P]) Copy() Array[T, P] {
	dst := UnsafeUninitialized[T, P](len(a.buf))
	for i := range a.buf {
		dst.buf[i] = a.buf[i]
	}
	return dst
}
