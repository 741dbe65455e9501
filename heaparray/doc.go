// SPDX-License-Identifier: MIT

// Package heaparray allocates fixed-length, rectangular 1-D, 2-D and 3-D arrays.
//
// What & Why:
//
//	Every multi-dimensional buffer in linealg comes from this package. The
//	factory guarantees that a returned array is fully initialized (every
//	element either absent or numeric zero) and rectangular (every row of a
//	2-D array, and every plane of a 3-D array, has the same length).
//
// Constructors:
//
//	Create1D / Create2D / Create3D  - elements are Optional[T], all absent.
//	Zeros1DF32 / Zeros2DF32 / ...   - float32 zeros.
//	Zeros1DI32 / Zeros2DI32 / ...   - int32 zeros.
//
// Layout:
//
//	By default (LayoutFlat) a 2-D or 3-D array is carved from one contiguous
//	buffer. Each row is a capacity-capped sub-slice, so writing to a row (or
//	appending to it) never reaches a neighbouring row. WithLayout(LayoutNested)
//	allocates every row separately instead.
//
//	  flat:   buf = [r0c0 r0c1 r0c2 | r1c0 r1c1 r1c2]
//	          rows[0] = buf[0:3:3], rows[1] = buf[3:6:6]
//
// Errors:
//
//	Negative sizes are programmer errors: constructors panic with an error
//	wrapping ErrNegativeSize (or ErrSizeOverflow when the element count does
//	not fit in an int). Shape2D/Shape3D return ErrNotRectangular for ragged
//	input.
//
// Complexity:
//
//	All constructors run in O(number of elements) time and memory.
package heaparray
