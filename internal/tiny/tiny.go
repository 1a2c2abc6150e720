// Package tiny provides fixed-capacity inline containers for the game core.
// The engine stores action menus, classmate sets and player names in these
// so that driving the simulation allocates nothing on the heap.
package tiny

import "fmt"

// Vec16 is an inline vector with a fixed capacity of 16 elements, sized
// for action menus. The zero value is an empty vector.
type Vec16[T any] struct {
	buf [16]T
	len int
}

// Push appends an element. Panics when the vector is full; the capacity
// limits are part of the engine contract, overflow is a programmer error.
func (v *Vec16[T]) Push(x T) {
	if v.len == len(v.buf) {
		panic(fmt.Sprintf("tiny: vector overflow (capacity %d)", len(v.buf)))
	}
	v.buf[v.len] = x
	v.len++
}

// Len returns the number of elements.
func (v *Vec16[T]) Len() int { return v.len }

// At returns the element at index i. Panics when out of range.
func (v *Vec16[T]) At(i int) T {
	if i < 0 || i >= v.len {
		panic(fmt.Sprintf("tiny: index %d out of range (len %d)", i, v.len))
	}
	return v.buf[i]
}

// Slice returns a view of the live elements. The view aliases the vector;
// callers that need a stable copy must clone it.
func (v *Vec16[T]) Slice() []T { return v.buf[:v.len] }

// Clear resets the vector to empty.
func (v *Vec16[T]) Clear() {
	var zero T
	for i := 0; i < v.len; i++ {
		v.buf[i] = zero
	}
	v.len = 0
}

// Contains reports whether the vector holds an element equal to x.
func Contains[T comparable](v *Vec16[T], x T) bool {
	for _, e := range v.Slice() {
		if e == x {
			return true
		}
	}
	return false
}

// IndexOf returns the position of x, or -1.
func IndexOf[T comparable](v *Vec16[T], x T) int {
	for i, e := range v.Slice() {
		if e == x {
			return i
		}
	}
	return -1
}

// String is an inline byte string with a fixed capacity of 128 bytes,
// large enough for player names.
type String struct {
	buf [128]byte
	len int
}

// NewString copies s into an inline string. Panics when s exceeds the
// capacity.
func NewString(s string) String {
	var t String
	t.Append(s)
	return t
}

// Append adds s to the end. Panics on overflow.
func (t *String) Append(s string) {
	if t.len+len(s) > len(t.buf) {
		panic(fmt.Sprintf("tiny: string overflow (capacity %d)", len(t.buf)))
	}
	copy(t.buf[t.len:], s)
	t.len += len(s)
}

// Len returns the byte length.
func (t *String) Len() int { return t.len }

// String returns the contents as a Go string.
func (t *String) String() string { return string(t.buf[:t.len]) }

// BitSet16 is a set over small indices 0..15, used to track which
// classmates already approached the player during an exam sitting.
type BitSet16 uint16

// Set marks index i.
func (b *BitSet16) Set(i int) { *b |= 1 << uint(i) }

// Clear unmarks index i.
func (b *BitSet16) Clear(i int) { *b &^= 1 << uint(i) }

// Has reports whether index i is marked.
func (b BitSet16) Has(i int) bool { return b&(1<<uint(i)) != 0 }

// Count returns the number of marked indices.
func (b BitSet16) Count() int {
	n := 0
	for v := uint16(b); v != 0; v &= v - 1 {
		n++
	}
	return n
}
