// SPDX-License-Identifier: MIT
// Package heaparray: sentinel error set.
// Constructors panic with these sentinels wrapped (programmer errors);
// inspection helpers return them. Tests match via errors.Is.

package heaparray

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize is the panic payload (wrapped) when any requested
	// dimension is below zero.
	ErrNegativeSize = errors.New("heaparray: negative size")

	// ErrSizeOverflow is the panic payload (wrapped) when the total element
	// count of a flat buffer does not fit in an int.
	ErrSizeOverflow = errors.New("heaparray: size overflows int")

	// ErrNotRectangular indicates that rows (or planes) disagree in length.
	ErrNotRectangular = errors.New("heaparray: array is not rectangular")
)

// sizeErrorf wraps err with the constructor name and the requested dimensions.
func sizeErrorf(op string, dims []int, err error) error {
	return fmt.Errorf("%s%v: %w", op, dims, err)
}
