// Package vector defines float32 vector and line-segment value types.
//
// Vector2D, Vector3D and Vector4D are plain field aggregates; their Go zero
// value is the all-zero default vector. Line2D and Line3D pair a start and an
// end point of matching dimensionality, with no geometric validation
// (zero-length segments are fine).
//
// The *FromSlice constructors read leading values from a caller-supplied
// slice and panic with an index-out-of-range runtime error when the slice is
// too short; a short slice is a programmer error, not a recoverable condition.
//
// F32 methods convert to the array types of golang.org/x/image/math/f32.
// There is no vector arithmetic in this package.
package vector
