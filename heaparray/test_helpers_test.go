// SPDX-License-Identifier: MIT
// Package heaparray_test contains shared test helpers.

package heaparray_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/linealg/heaparray"
	"github.com/stretchr/testify/require"
)

// layouts lists every layout so properties are asserted for both.
var layouts = []heaparray.Layout{heaparray.LayoutFlat, heaparray.LayoutNested}

// requirePanicsIs RUNS fn and fails unless it panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered, "expected panic")
	err, ok := recovered.(error)
	require.Truef(t, ok, "panic value %v is not an error", recovered)
	require.Truef(t, errors.Is(err, target), "expected errors.Is(%v, %v)", err, target)
}

// requireRowsIndependent2D WRITES a marker into every row in turn and checks
// no other row observes it. Also appends to row 0 and checks row 1 is intact.
func requireRowsIndependent2D(t *testing.T, a heaparray.Array2D[int32]) {
	t.Helper()
	for i := range a {
		for j := range a[i] {
			a[i][j] = int32(i + 1)
		}
	}
	for i := range a {
		for j := range a[i] {
			require.Equalf(t, int32(i+1), a[i][j], "row %d col %d", i, j)
		}
	}
	if len(a) > 1 && len(a[0]) > 0 {
		before := append([]int32(nil), a[1]...)
		a[0] = append(a[0], -1)
		require.Equal(t, before, []int32(a[1]), "append to row 0 leaked into row 1")
	}
}
