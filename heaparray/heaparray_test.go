// Package heaparray_test contains unit tests for the array factory.
package heaparray_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linealg/heaparray"
	"github.com/stretchr/testify/require"
)

// TestCreate1D_AllAbsent checks every slot starts absent, including size 0.
func TestCreate1D_AllAbsent(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 10, 257} {
		data := heaparray.Create1D[int32](n)
		require.NotNil(t, data)
		require.Len(t, data, n)
		require.Equal(t, n, cap(data))
		for i, v := range data {
			require.Falsef(t, v.IsPresent(), "index %d", i)
		}
	}
}

func TestZeros1D(t *testing.T) {
	t.Parallel()

	const size = 100
	f := heaparray.Zeros1DF32(size)
	require.Len(t, f, size)
	for _, v := range f {
		require.Equal(t, float32(0), v)
	}

	i := heaparray.Zeros1DI32(size)
	require.Len(t, i, size)
	for _, v := range i {
		require.Equal(t, int32(0), v)
	}

	require.Empty(t, heaparray.Zeros1DF32(0))
	require.Empty(t, heaparray.Zeros1DI32(0))
}

// TestCreate2D_AllAbsent is the 10×10 scenario: 100 absent elements.
func TestCreate2D_AllAbsent(t *testing.T) {
	t.Parallel()

	for _, layout := range layouts {
		data := heaparray.Create2D[int32](10, 10, heaparray.WithLayout(layout))
		require.Len(t, data, 10)
		count := 0
		for _, row := range data {
			require.Len(t, row, 10)
			for _, v := range row {
				require.False(t, v.IsPresent())
				count++
			}
		}
		require.Equal(t, 100, count, layout.String())
	}
}

// TestZeros2DI32_TenThousand is the 100×100 scenario: 10,000 zeros.
func TestZeros2DI32_TenThousand(t *testing.T) {
	t.Parallel()

	data := heaparray.Zeros2DI32(100, 100)
	count := 0
	for _, row := range data {
		for _, v := range row {
			require.Equal(t, int32(0), v)
			count++
		}
	}
	require.Equal(t, 10000, count)
}

func TestZeros2DF32_Shape(t *testing.T) {
	t.Parallel()

	for _, layout := range layouts {
		data := heaparray.Zeros2DF32(7, 3, heaparray.WithLayout(layout))
		rows, cols, err := heaparray.Shape2D(data)
		require.NoError(t, err)
		require.Equal(t, 7, rows)
		require.Equal(t, 3, cols)
		for _, row := range data {
			require.Equal(t, len(row), cap(row))
			require.Equal(t, []float32{0, 0, 0}, []float32(row))
		}
	}
}

// TestZeros2D_RowIndependence mutates one row at a time, under both layouts.
func TestZeros2D_RowIndependence(t *testing.T) {
	t.Parallel()

	for _, layout := range layouts {
		for _, shape := range [][2]int{{1, 1}, {2, 5}, {5, 2}, {16, 16}} {
			layout, shape := layout, shape
			t.Run(fmt.Sprintf("%s/%dx%d", layout, shape[0], shape[1]), func(t *testing.T) {
				requireRowsIndependent2D(t, heaparray.Zeros2DI32(shape[0], shape[1], heaparray.WithLayout(layout)))
			})
		}
	}
}

func TestCreate2D_RowIndependence(t *testing.T) {
	t.Parallel()

	for _, layout := range layouts {
		data := heaparray.Create2D[string](3, 2, heaparray.WithLayout(layout))
		data[1][0] = heaparray.Some("x")
		for i, row := range data {
			for j, v := range row {
				if i == 1 && j == 0 {
					got, ok := v.Get()
					require.True(t, ok)
					require.Equal(t, "x", got)
					continue
				}
				require.Falsef(t, v.IsPresent(), "%s: (%d,%d)", layout, i, j)
			}
		}
	}
}

func TestZeroSized2D(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
	}{
		{"0x0", 0, 0},
		{"0x5", 0, 5},
		{"5x0", 5, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			for _, layout := range layouts {
				data := heaparray.Zeros2DF32(tc.rows, tc.cols, heaparray.WithLayout(layout))
				require.NotNil(t, data)
				require.Len(t, data, tc.rows)
				for _, row := range data {
					require.NotNil(t, row)
					require.Empty(t, row)
				}
			}
		})
	}
}

func TestCreate3D_AllAbsent(t *testing.T) {
	t.Parallel()

	const size = 20
	for _, layout := range layouts {
		data := heaparray.Create3D[int32](size, size, size, heaparray.WithLayout(layout))
		x, y, z, err := heaparray.Shape3D(data)
		require.NoError(t, err)
		require.Equal(t, [3]int{size, size, size}, [3]int{x, y, z})
		for _, plane := range data {
			for _, row := range plane {
				for _, v := range row {
					require.False(t, v.IsPresent())
				}
			}
		}
	}
}

func TestZeros3D(t *testing.T) {
	t.Parallel()

	for _, layout := range layouts {
		fs := heaparray.Zeros3DF32(4, 3, 2, heaparray.WithLayout(layout))
		is := heaparray.Zeros3DI32(4, 3, 2, heaparray.WithLayout(layout))
		require.Len(t, fs, 4)
		require.Len(t, is, 4)
		for p := 0; p < 4; p++ {
			require.Len(t, fs[p], 3)
			require.Len(t, is[p], 3)
			for r := 0; r < 3; r++ {
				require.Equal(t, []float32{0, 0}, []float32(fs[p][r]))
				require.Equal(t, []int32{0, 0}, []int32(is[p][r]))
			}
		}
	}
}

// TestZeros3D_Independence checks planes and rows within planes never alias,
// including when a plane's row slice is appended to.
func TestZeros3D_Independence(t *testing.T) {
	t.Parallel()

	for _, layout := range layouts {
		data := heaparray.Zeros3DI32(3, 4, 5, heaparray.WithLayout(layout))
		for p := range data {
			for r := range data[p] {
				for c := range data[p][r] {
					data[p][r][c] = int32(100*p + r)
				}
			}
		}
		for p := range data {
			for r := range data[p] {
				for c := range data[p][r] {
					require.Equalf(t, int32(100*p+r), data[p][r][c], "%s (%d,%d,%d)", layout, p, r, c)
				}
			}
			requireRowsIndependent2D(t, data[p])
		}

		// Growing plane 0 must not overwrite plane 1's row headers.
		plane1 := append(heaparray.Array2D[int32](nil), data[1]...)
		data[0] = append(data[0], heaparray.Zeros1DI32(5))
		require.Equal(t, plane1, data[1])
	}
}

func TestNegativeSizePanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"Create1D", func() { heaparray.Create1D[int32](-1) }},
		{"Zeros1DF32", func() { heaparray.Zeros1DF32(-1) }},
		{"Zeros1DI32", func() { heaparray.Zeros1DI32(-3) }},
		{"Create2D rows", func() { heaparray.Create2D[int32](-1, 2) }},
		{"Zeros2DF32 cols", func() { heaparray.Zeros2DF32(2, -1) }},
		{"Zeros2DI32", func() { heaparray.Zeros2DI32(-2, -2) }},
		{"Create3D z", func() { heaparray.Create3D[int32](1, 1, -1) }},
		{"Zeros3DF32 y", func() { heaparray.Zeros3DF32(1, -1, 1) }},
		{"Zeros3DI32 x", func() { heaparray.Zeros3DI32(-1, 1, 1) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			requirePanicsIs(t, heaparray.ErrNegativeSize, tc.fn)
		})
	}
}

func TestSizeOverflowPanics(t *testing.T) {
	t.Parallel()

	const huge = int(^uint(0) >> 1)
	requirePanicsIs(t, heaparray.ErrSizeOverflow, func() { heaparray.Zeros2DF32(huge, 2) })
	requirePanicsIs(t, heaparray.ErrSizeOverflow, func() { heaparray.Create3D[int32](2, huge, 2) })
}
