// Package linealg is a small numeric-foundations library: rectangular array
// allocation plus the matrix and vector value types built on top of it.
//
// What is in linealg?
//
//	A pure-Go library with no runtime state that brings together:
//		• heaparray: fixed-length 1-D/2-D/3-D arrays, absent-filled or zero-filled
//		• matrix:    inline 2×2/3×3/4×4 identities, heap-backed Square and Rectangular
//		• vector:    2D/3D/4D vectors and 2D/3D line segments
//
// Everything is construction only: no arithmetic, no I/O, no goroutines.
//
// Packages:
//
//	heaparray/ - Create*/Zeros* constructors, Optional[T], Shape2D/Shape3D, layout options
//	matrix/    - Matrix2x2/3x3/4x4, Square, Rectangular, shape validators
//	vector/    - Vector2D/3D/4D, Line2D/3D
//
// Data flows one way: heaparray → matrix. vector stands alone.
//
//	heaparray.Zeros2DF32(3, 3)      →  3 independent rows of 3 zeros
//	matrix.IdentitySquare(3, 3)     →  3×3 zeros with 1 on the diagonal
//	matrix.ZerosSquare(3, 4)        →  ErrDimensionMismatch
//
//	go get github.com/katalvlaran/linealg
package linealg
