// Package matrix offers float32 matrix value types backed by heaparray.
//
// The matrix package provides:
//
//   - Fixed-size Matrix2x2, Matrix3x3, Matrix4x4 stored inline (Go arrays),
//     with Identity constructors and row-major conversion to and from
//     golang.org/x/image/math/f32.
//   - Square (N×N) and Rectangular (N×M) matrices whose Data is allocated by
//     heaparray.Zeros2DF32, with Zeros/New/Identity constructors.
//
// The package only allocates and initializes storage. There is no
// arithmetic (add, multiply, transpose, inverse) and no bounds-checked
// accessor: read and write Data[i][j] directly.
//
// Invalid shapes are reported as sentinel errors (ErrBadShape,
// ErrDimensionMismatch) matched with errors.Is.
package matrix
