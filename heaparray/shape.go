// SPDX-License-Identifier: MIT

package heaparray

import "fmt"

// Shape2D reports the dimensions of a and checks rectangularity.
// An empty array has shape (0, 0).
// Errors: ErrNotRectangular when some row length differs from row 0.
// Complexity: O(rows).
func Shape2D[T any](a Array2D[T]) (rows, cols int, err error) {
	rows = len(a)
	if rows == 0 {
		return 0, 0, nil
	}
	cols = len(a[0])
	for i := 1; i < rows; i++ {
		if len(a[i]) != cols {
			return 0, 0, fmt.Errorf("Shape2D: row %d has %d elements, want %d: %w", i, len(a[i]), cols, ErrNotRectangular)
		}
	}

	return rows, cols, nil
}

// Shape3D is Shape2D applied to every plane; all planes must agree.
// Complexity: O(x*y).
func Shape3D[T any](a Array3D[T]) (x, y, z int, err error) {
	x = len(a)
	if x == 0 {
		return 0, 0, 0, nil
	}
	if y, z, err = Shape2D(a[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("Shape3D: plane 0: %w", err)
	}
	var py, pz int
	for i := 1; i < x; i++ {
		if py, pz, err = Shape2D(a[i]); err != nil {
			return 0, 0, 0, fmt.Errorf("Shape3D: plane %d: %w", i, err)
		}
		// an empty plane has no column count to compare
		if py != y || (py > 0 && pz != z) {
			return 0, 0, 0, fmt.Errorf("Shape3D: plane %d is %dx%d, want %dx%d: %w", i, py, pz, y, z, ErrNotRectangular)
		}
	}

	return x, y, z, nil
}

// Flatten2D copies a into a fresh row-major Array1D.
// Ragged input is copied as-is, row after row.
func Flatten2D[T any](a Array2D[T]) Array1D[T] {
	n := 0
	for _, row := range a {
		n += len(row)
	}
	out := make(Array1D[T], 0, n)
	for _, row := range a {
		out = append(out, row...)
	}

	return out
}
