// SPDX-License-Identifier: MIT

package matrix

import "golang.org/x/image/math/f32"

// Matrix2x2 is a 2×2 float32 matrix; m[r][c] is row r, column c.
type Matrix2x2 [2][2]float32

// Matrix3x3 is a 3×3 float32 matrix; m[r][c] is row r, column c.
type Matrix3x3 [3][3]float32

// Matrix4x4 is a 4×4 float32 matrix; m[r][c] is row r, column c.
type Matrix4x4 [4][4]float32

// Identity2x2 returns the 2×2 identity.
func Identity2x2() Matrix2x2 {
	return Matrix2x2{
		{1, 0},
		{0, 1},
	}
}

// Identity3x3 returns the 3×3 identity.
func Identity3x3() Matrix3x3 {
	return Matrix3x3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Identity4x4 returns the 4×4 identity.
func Identity4x4() Matrix4x4 {
	return Matrix4x4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// F32 returns m in the row-major layout of f32.Mat3 (m[3*r+c]).
func (m Matrix3x3) F32() (out f32.Mat3) {
	for r := range m {
		copy(out[3*r:3*r+3], m[r][:])
	}

	return out
}

// Matrix3x3FromF32 is the inverse of Matrix3x3.F32.
func Matrix3x3FromF32(a f32.Mat3) (m Matrix3x3) {
	for r := range m {
		copy(m[r][:], a[3*r:3*r+3])
	}

	return m
}

// F32 returns m in the row-major layout of f32.Mat4 (m[4*r+c]).
func (m Matrix4x4) F32() (out f32.Mat4) {
	for r := range m {
		copy(out[4*r:4*r+4], m[r][:])
	}

	return out
}

// Matrix4x4FromF32 is the inverse of Matrix4x4.F32.
func Matrix4x4FromF32(a f32.Mat4) (m Matrix4x4) {
	for r := range m {
		copy(m[r][:], a[4*r:4*r+4])
	}

	return m
}
