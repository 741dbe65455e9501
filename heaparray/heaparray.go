// SPDX-License-Identifier: MIT

// Package heaparray - allocation kernels and public constructors.
//
// Implementation:
//   - Stage 1: validate every dimension is >= 0 (panic otherwise).
//   - Stage 2: allocate storage according to the resolved Layout.
//   - Stage 3: return; make() has already initialized every element
//     (zero for numbers, absent for Optional).
//
// Complexity quicksheet:
//   - 1-D: O(n); 2-D: O(r*c); 3-D: O(x*y*z). Flat layout does two
//     allocations for 2-D and three for 3-D regardless of shape.
package heaparray

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ---------- constructor tags (used in panic messages) ----------

const (
	ctxCreate1D = "Create1D"
	ctxCreate2D = "Create2D"
	ctxCreate3D = "Create3D"
	ctxZeros1D  = "Zeros1D"
	ctxZeros2D  = "Zeros2D"
	ctxZeros3D  = "Zeros3D"
)

// zeroable restricts the numeric zero-fill kernels.
// Only the float32 and int32 instantiations are exported.
type zeroable interface {
	constraints.Float | constraints.Integer
}

// ---------- 1-D ----------

// Create1D returns size absent elements. size == 0 yields an empty, non-nil array.
func Create1D[T any](size int) Array1D[Optional[T]] {
	checkDims(ctxCreate1D, size)

	return alloc1D[Optional[T]](size)
}

// Zeros1DF32 returns size float32 zeros.
func Zeros1DF32(size int) Array1D[float32] { return zeros1D[float32](size) }

// Zeros1DI32 returns size int32 zeros.
func Zeros1DI32(size int) Array1D[int32] { return zeros1D[int32](size) }

func zeros1D[T zeroable](size int) Array1D[T] {
	checkDims(ctxZeros1D, size)

	return alloc1D[T](size)
}

// ---------- 2-D ----------

// Create2D returns a rows×cols array with every element absent.
func Create2D[T any](rows, cols int, opts ...Option) Array2D[Optional[T]] {
	checkDims(ctxCreate2D, rows, cols)

	return alloc2D[Optional[T]](rows, cols, gatherOptions(opts...).layout)
}

// Zeros2DF32 returns a rows×cols array of float32 zeros.
func Zeros2DF32(rows, cols int, opts ...Option) Array2D[float32] {
	return zeros2D[float32](rows, cols, opts)
}

// Zeros2DI32 returns a rows×cols array of int32 zeros.
func Zeros2DI32(rows, cols int, opts ...Option) Array2D[int32] {
	return zeros2D[int32](rows, cols, opts)
}

func zeros2D[T zeroable](rows, cols int, opts []Option) Array2D[T] {
	checkDims(ctxZeros2D, rows, cols)

	return alloc2D[T](rows, cols, gatherOptions(opts...).layout)
}

// ---------- 3-D ----------

// Create3D returns an x×y×z array with every element absent.
func Create3D[T any](x, y, z int, opts ...Option) Array3D[Optional[T]] {
	checkDims(ctxCreate3D, x, y, z)

	return alloc3D[Optional[T]](x, y, z, gatherOptions(opts...).layout)
}

// Zeros3DF32 returns an x×y×z array of float32 zeros.
func Zeros3DF32(x, y, z int, opts ...Option) Array3D[float32] {
	return zeros3D[float32](x, y, z, opts)
}

// Zeros3DI32 returns an x×y×z array of int32 zeros.
func Zeros3DI32(x, y, z int, opts ...Option) Array3D[int32] {
	return zeros3D[int32](x, y, z, opts)
}

func zeros3D[T zeroable](x, y, z int, opts []Option) Array3D[T] {
	checkDims(ctxZeros3D, x, y, z)

	return alloc3D[T](x, y, z, gatherOptions(opts...).layout)
}

// ---------- kernels ----------

// checkDims panics when a dimension is negative or the product overflows int.
func checkDims(op string, dims ...int) {
	total := 1
	for _, d := range dims {
		if d < 0 {
			panic(sizeErrorf(op, dims, ErrNegativeSize))
		}
		if d != 0 && total > math.MaxInt/d {
			panic(sizeErrorf(op, dims, ErrSizeOverflow))
		}
		total *= d
	}
}

func alloc1D[T any](size int) Array1D[T] {
	return make(Array1D[T], size)
}

// alloc2D builds rows×cols rows. Dimensions are already validated.
func alloc2D[T any](rows, cols int, layout Layout) Array2D[T] {
	out := make(Array2D[T], rows)
	if layout == LayoutNested {
		for i := range out {
			out[i] = make(Array1D[T], cols)
		}

		return out
	}
	carveRows(out, make([]T, rows*cols), cols)

	return out
}

// alloc3D builds x planes of y×z. In the flat layout the row headers of
// all planes also live in one slice, and each plane is a capped window into it.
func alloc3D[T any](x, y, z int, layout Layout) Array3D[T] {
	out := make(Array3D[T], x)
	if layout == LayoutNested {
		for i := range out {
			out[i] = alloc2D[T](y, z, LayoutNested)
		}

		return out
	}

	rows := make([]Array1D[T], x*y)
	carveRows(rows, make([]T, x*y*z), z)
	var lo, hi int
	for i := range out {
		hi = lo + y
		out[i] = rows[lo:hi:hi]
		lo = hi
	}

	return out
}

// carveRows points every header in rows at a distinct width-long window of buf.
// Windows use a full slice expression so cap == width.
func carveRows[T any](rows []Array1D[T], buf []T, width int) {
	var lo, hi int
	for i := range rows {
		hi = lo + width
		rows[i] = buf[lo:hi:hi]
		lo = hi
	}
}
