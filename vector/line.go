// SPDX-License-Identifier: MIT

package vector

// Line2D is a segment between two 2D points.
type Line2D struct {
	Start Vector2D
	End   Vector2D
}

// Line3D is a segment between two 3D points.
type Line3D struct {
	Start Vector3D
	End   Vector3D
}

// NewLine2D returns the segment start→end. start == end is allowed.
func NewLine2D(start, end Vector2D) Line2D {
	return Line2D{Start: start, End: end}
}

// NewLine3D returns the segment start→end. start == end is allowed.
func NewLine3D(start, end Vector3D) Line3D {
	return Line3D{Start: start, End: end}
}
