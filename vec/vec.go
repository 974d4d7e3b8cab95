// Package vec provides a small generic growable sequence, the Go
// counterpart of the macro-based stack the checker's trail and pending
// clause scratchpad are built on.
package vec

// Vec is a growable, stack-shaped sequence of T. The zero value is an
// empty Vec ready to use.
type Vec[T any] struct {
	data []T
}

// Push appends x to the end of the sequence.
func (v *Vec[T]) Push(x T) {
	v.data = append(v.data, x)
}

// Pop removes and returns the last element. It panics if the sequence is
// empty.
func (v *Vec[T]) Pop() T {
	n := len(v.data) - 1
	x := v.data[n]
	v.data = v.data[:n]
	return x
}

// Top returns the last element without removing it.
func (v *Vec[T]) Top() T {
	return v.data[len(v.data)-1]
}

// At returns the element at index i.
func (v *Vec[T]) At(i int) T {
	return v.data[i]
}

// Set overwrites the element at index i.
func (v *Vec[T]) Set(i int, x T) {
	v.data[i] = x
}

// Len returns the number of elements currently held.
func (v *Vec[T]) Len() int {
	return len(v.data)
}

// Empty reports whether the sequence holds no elements.
func (v *Vec[T]) Empty() bool {
	return len(v.data) == 0
}

// Clear empties the sequence without releasing its backing storage, so
// that repeated use amortizes allocation the way a reused scratchpad
// should.
func (v *Vec[T]) Clear() {
	v.data = v.data[:0]
}

// Slice exposes the backing slice directly. Callers may mutate it
// in place (normalization shrinks it by compaction) but must not retain
// it past the next Push, which may reallocate.
func (v *Vec[T]) Slice() []T {
	return v.data
}

// SetSlice replaces the backing slice, used by callers that compact the
// slice returned from Slice and need to record the new length.
func (v *Vec[T]) SetSlice(s []T) {
	v.data = s
}
