// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape checks used by constructors.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    add their own context uniformly.
//
// Determinism & Performance:
//  - Shape checks are O(1) and allocate nothing on success.
//  - validateData is O(rows).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linealg/heaparray"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows and cols are non-negative.
// Zero is legal and yields an empty matrix.
// Errors: ErrBadShape.
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateSquareShape – Composite: Shape → rows == cols.
//
// Errors: ErrBadShape, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareShape(rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return validatorErrorf("ValidateSquareShape", err)
	}
	if rows != cols {
		return validatorErrorf("ValidateSquareShape", ErrDimensionMismatch)
	}

	return nil
}

// validateData checks that data really is rows×cols.
// A matrix with zero rows has no row to carry its column count,
// so only len(data) is compared in that case.
func validateData(tag string, rows, cols int, data heaparray.Array2D[float32]) error {
	r, c, err := heaparray.Shape2D(data)
	if err != nil {
		return validatorErrorf(tag, err)
	}
	if r != rows || (r > 0 && c != cols) {
		return validatorErrorf(tag, fmt.Errorf("data is %dx%d, header says %dx%d: %w", r, c, rows, cols, ErrNotRectangular))
	}

	return nil
}
