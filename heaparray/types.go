// SPDX-License-Identifier: MIT

package heaparray

// Array1D is a fixed-length sequence of T owned by its holder.
// Factory-built arrays have len == cap, so append never writes in place.
type Array1D[T any] []T

// Array2D is a sequence of rows. Rows produced by the factory all have the
// same length and never share elements.
type Array2D[T any] []Array1D[T]

// Array3D is a sequence of planes with the same guarantees as Array2D,
// applied to both inner dimensions.
type Array3D[T any] []Array2D[T]

// Optional holds either a value of T or nothing.
// The zero value is absent, which is what Create* relies on.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns the absent Optional. Equivalent to Optional[T]{}.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether o holds a value.
func (o Optional[T]) IsPresent() bool { return o.present }

// Get returns the held value and true, or the zero T and false.
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

// OrElse returns the held value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.present {
		return def
	}

	return o.value
}
