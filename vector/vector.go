// SPDX-License-Identifier: MIT

package vector

import "golang.org/x/image/math/f32"

// Vector2D is a 2-component vector.
type Vector2D struct {
	X, Y float32
}

// Vector3D is a 3-component vector.
type Vector3D struct {
	X, Y, Z float32
}

// Vector4D is a 4-component vector. W comes first, in field and slice order.
type Vector4D struct {
	W, X, Y, Z float32
}

// NewVector2D returns Vector2D{x, y}.
func NewVector2D(x, y float32) Vector2D {
	return Vector2D{X: x, Y: y}
}

// Vector2DFromSlice reads X and Y from v[0] and v[1].
// Panics if len(v) < 2.
func Vector2DFromSlice(v []float32) Vector2D {
	_ = v[1] // bounds check hint
	return Vector2D{X: v[0], Y: v[1]}
}

// F32 returns [X, Y].
func (v Vector2D) F32() f32.Vec2 { return f32.Vec2{v.X, v.Y} }

// NewVector3D returns Vector3D{x, y, z}.
func NewVector3D(x, y, z float32) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// Vector3DFromSlice reads X, Y, Z from v[0..2]. Panics if len(v) < 3.
func Vector3DFromSlice(v []float32) Vector3D {
	_ = v[2]
	return Vector3D{X: v[0], Y: v[1], Z: v[2]}
}

// F32 returns [X, Y, Z].
func (v Vector3D) F32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }

// NewVector4D returns Vector4D{w, x, y, z}.
func NewVector4D(w, x, y, z float32) Vector4D {
	return Vector4D{W: w, X: x, Y: y, Z: z}
}

// Vector4DFromSlice reads W, X, Y, Z from v[0..3]. Panics if len(v) < 4.
func Vector4DFromSlice(v []float32) Vector4D {
	_ = v[3]
	return Vector4D{W: v[0], X: v[1], Y: v[2], Z: v[3]}
}

// F32 returns [W, X, Y, Z].
func (v Vector4D) F32() f32.Vec4 { return f32.Vec4{v.W, v.X, v.Y, v.Z} }
