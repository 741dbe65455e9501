// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors MUST return these sentinels (possibly wrapped with
// context via %w) and tests MUST check them via errors.Is. No constructor
// panics on a user-supplied shape.

package matrix

import (
	"errors"

	"github.com/katalvlaran/linealg/heaparray"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency.
// ERROR PRIORITY (documented, enforced in tests):
// nil -> bad shape (negative) -> dimension mismatch -> structural violations.

var (
	// ErrBadShape is returned when a requested dimension is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch signals that a square matrix was requested with
	// rows != cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Square or *Rectangular was validated.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrNotRectangular is reported by Validate when Data rows disagree in length.
// It aliases the heaparray sentinel so errors.Is matches either name.
var ErrNotRectangular = heaparray.ErrNotRectangular
