// SPDX-License-Identifier: MIT

// Package matrix - dynamically-sized matrices (Square, Rectangular).
//
// Purpose:
//   - Hold a runtime shape plus heap storage produced by heaparray.Zeros2DF32.
//   - Report invalid shapes as sentinel errors, never panic on user input.
//
// Invariants (established by every constructor, re-checked by Validate):
//   - len(Data) == Rows and len(Data[i]) == Cols for every i.
//   - Square additionally has Rows == Cols.
//   - Rows never share storage with each other or with a Clone.
//
// Complexity quicksheet:
//   - Zeros*/New*/Identity*: O(r*c); Clone: O(r*c); Validate: O(r); String: O(r*c).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linealg/heaparray"
)

// ---------- error context tags ----------

const (
	ctxZerosSquare         = "ZerosSquare"
	ctxIdentitySquare      = "IdentitySquare"
	ctxZerosRectangular    = "ZerosRectangular"
	ctxIdentityRectangular = "IdentityRectangular"
	ctxValidateSquare      = "Square.Validate"
	ctxValidateRectangular = "Rectangular.Validate"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// shapeErrorf wraps err with the constructor name and the requested shape.
func shapeErrorf(ctor string, rows, cols int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", ctor, rows, cols, err)
}

// Square is an N×N float32 matrix with heap-allocated rows.
type Square struct {
	Rows int                        // row count
	Cols int                        // column count, equal to Rows
	Data heaparray.Array2D[float32] // Rows rows of Cols elements
}

// Rectangular is an N×M float32 matrix with heap-allocated rows.
type Rectangular struct {
	Rows int                        // row count
	Cols int                        // column count
	Data heaparray.Array2D[float32] // Rows rows of Cols elements
}

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Square)(nil)
	_ fmt.Stringer = (*Rectangular)(nil)
)

// ZerosSquare creates a rows×cols zero matrix and requires rows == cols.
//
// Errors:
//   - ErrBadShape when a dimension is negative.
//   - ErrDimensionMismatch when rows != cols.
func ZerosSquare(rows, cols int) (*Square, error) {
	if err := ValidateSquareShape(rows, cols); err != nil {
		return nil, shapeErrorf(ctxZerosSquare, rows, cols, err)
	}

	return &Square{Rows: rows, Cols: cols, Data: heaparray.Zeros2DF32(rows, cols)}, nil
}

// NewSquare creates an n×n zero matrix. Same as ZerosSquare(n, n).
func NewSquare(n int) (*Square, error) {
	return ZerosSquare(n, n)
}

// IdentitySquare creates the rows×cols identity.
// The shape is validated exactly as in ZerosSquare, so unequal dimensions
// are ErrDimensionMismatch rather than a partial diagonal.
func IdentitySquare(rows, cols int) (*Square, error) {
	if err := ValidateSquareShape(rows, cols); err != nil {
		return nil, shapeErrorf(ctxIdentitySquare, rows, cols, err)
	}
	data := heaparray.Zeros2DF32(rows, cols)
	setDiagonal(data, rows)

	return &Square{Rows: rows, Cols: cols, Data: data}, nil
}

// Shape returns (Rows, Cols).
func (m *Square) Shape() (rows, cols int) { return m.Rows, m.Cols }

// Validate re-checks the invariants. Useful after Data was edited by hand.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotRectangular.
func (m *Square) Validate() error {
	if m == nil {
		return validatorErrorf(ctxValidateSquare, ErrNilMatrix)
	}
	if err := ValidateSquareShape(m.Rows, m.Cols); err != nil {
		return validatorErrorf(ctxValidateSquare, err)
	}

	return validateData(ctxValidateSquare, m.Rows, m.Cols, m.Data)
}

// Clone returns a deep copy with freshly allocated rows. Clone of nil is nil.
func (m *Square) Clone() *Square {
	if m == nil {
		return nil
	}

	return &Square{Rows: m.Rows, Cols: m.Cols, Data: cloneData(m.Data, m.Rows, m.Cols)}
}

// String renders rows as "[a, b]\n" lines for diagnostics.
func (m *Square) String() string { return formatData(m.Data) }

// ZerosRectangular creates a rows×cols zero matrix. Any non-negative shape is legal.
//
// Errors: ErrBadShape when a dimension is negative.
func ZerosRectangular(rows, cols int) (*Rectangular, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, shapeErrorf(ctxZerosRectangular, rows, cols, err)
	}

	return &Rectangular{Rows: rows, Cols: cols, Data: heaparray.Zeros2DF32(rows, cols)}, nil
}

// NewRectangular creates a rows×cols zero matrix. Same as ZerosRectangular.
func NewRectangular(rows, cols int) (*Rectangular, error) {
	return ZerosRectangular(rows, cols)
}

// IdentityRectangular creates a rows×cols matrix with ones on the leading
// diagonal (i, i) for i < min(rows, cols) and zeros elsewhere.
//
// Errors: ErrBadShape when a dimension is negative.
func IdentityRectangular(rows, cols int) (*Rectangular, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, shapeErrorf(ctxIdentityRectangular, rows, cols, err)
	}
	data := heaparray.Zeros2DF32(rows, cols)
	setDiagonal(data, min(rows, cols))

	return &Rectangular{Rows: rows, Cols: cols, Data: data}, nil
}

// Shape returns (Rows, Cols).
func (m *Rectangular) Shape() (rows, cols int) { return m.Rows, m.Cols }

// Validate re-checks the invariants.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrNotRectangular.
func (m *Rectangular) Validate() error {
	if m == nil {
		return validatorErrorf(ctxValidateRectangular, ErrNilMatrix)
	}
	if err := ValidateShape(m.Rows, m.Cols); err != nil {
		return validatorErrorf(ctxValidateRectangular, err)
	}

	return validateData(ctxValidateRectangular, m.Rows, m.Cols, m.Data)
}

// Clone returns a deep copy with freshly allocated rows. Clone of nil is nil.
func (m *Rectangular) Clone() *Rectangular {
	if m == nil {
		return nil
	}

	return &Rectangular{Rows: m.Rows, Cols: m.Cols, Data: cloneData(m.Data, m.Rows, m.Cols)}
}

// String renders rows as "[a, b]\n" lines for diagnostics.
func (m *Rectangular) String() string { return formatData(m.Data) }

// ---------- shared helpers ----------

// setDiagonal writes 1 at (i, i) for i < n. Caller guarantees n <= min(rows, cols).
func setDiagonal(data heaparray.Array2D[float32], n int) {
	for i := 0; i < n; i++ {
		data[i][i] = 1
	}
}

// cloneData copies src into new factory storage. Elements beyond the header
// shape (hand-edited rows) are dropped; missing ones stay zero.
func cloneData(src heaparray.Array2D[float32], rows, cols int) heaparray.Array2D[float32] {
	dst := heaparray.Zeros2DF32(rows, cols)
	for i := 0; i < rows && i < len(src); i++ {
		copy(dst[i], src[i])
	}

	return dst
}

// formatData dumps data row by row with %g.
func formatData(data heaparray.Array2D[float32]) string {
	var b strings.Builder
	for _, row := range data {
		b.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
