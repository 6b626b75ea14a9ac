package inlinearray

// Finalizer is implemented by element types that own external resources and
// need an explicit release step when their container goes away. Destroy calls
// it only on arrays whose Policy is FinalizeElements.
type Finalizer interface {
	Finalize()
}

// Destroy releases the array. With FinalizeElements it finalizes each element
// in ascending slot order (0..Len()-1) before dropping the buffer; with
// KeepElements it drops the buffer and makes no per-element calls. After
// Destroy the array behaves like the zero value; destroying again, or
// destroying a zero value, is a no-op.
//
// Every element must be a live, initialized value when Destroy runs. An array
// built via UnsafeUninitialized whose slots were never written finalizes
// whatever the unspecified contents are.
func (a *Array[T, P]) Destroy() {
	if a.buf == nil {
		return
	}
	var p P
	if p.finalizeOnDestroy() {
		for i := range a.buf {
			finalize(&a.buf[i])
		}
	}
	a.buf = nil
}

// finalize invokes the element's Finalizer implementation, if any. The
// pointer assertion covers pointer-receiver methods; the value assertion
// covers element types that are themselves pointers or interfaces.
func finalize[T any](elem *T) {
	if f, ok := any(elem).(Finalizer); ok {
		f.Finalize()
		return
	}
	if f, ok := any(*elem).(Finalizer); ok {
		f.Finalize()
	}
}
