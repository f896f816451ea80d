// Package rotation implements 3D rotation algebra on float64 value types:
// quaternions, their 4×4 matrix embedding, 3×3 rotation matrices and 3-vectors.
package rotation

import "math"

// Quaternion is a + b·i + c·j + d·k. A is the scalar part.
// Only unit quaternions represent rotations; callers normalize with Unit.
type Quaternion struct {
	A, B, C, D float64
}

func NewQuaternion(a, b, c, d float64) Quaternion {
	return Quaternion{A: a, B: b, C: c, D: d}
}

// IdentityQuaternion returns (1, 0, 0, 0), the rotation that leaves every point in place.
func IdentityQuaternion() Quaternion {
	return Quaternion{A: 1}
}

// FromEulerAngle builds the unit quaternion for a rotation of angle radians about axis.
// The axis must already be unit length.
func FromEulerAngle(angle float64, axis Double3) Quaternion {
	s, c := math.Sincos(angle / 2)
	return Quaternion{c, axis.X * s, axis.Y * s, axis.Z * s}
}

func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.A + o.A, q.B + o.B, q.C + o.C, q.D + o.D}
}

func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.A * s, q.B * s, q.C * s, q.D * s}
}

func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.A, -q.B, -q.C, -q.D}
}

// Mul returns the Hamilton product q·o. Rotating by the result applies o first, then q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		q.A*o.A - q.B*o.B - q.C*o.C - q.D*o.D,
		q.A*o.B + q.B*o.A + q.C*o.D - q.D*o.C,
		q.A*o.C - q.B*o.D + q.C*o.A + q.D*o.B,
		q.A*o.D + q.B*o.C - q.C*o.B + q.D*o.A,
	}
}

// Conjugate negates the vector part. For a unit quaternion this is the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.A, -q.B, -q.C, -q.D}
}

// Norm is computed as hypot(a, |(b,c,d)|).
func (q Quaternion) Norm() float64 {
	return math.Hypot(q.A, math.Sqrt(q.B*q.B+q.C*q.C+q.D*q.D))
}

// Unit scales q to norm 1. A zero quaternion yields NaN components.
func (q Quaternion) Unit() Quaternion {
	return q.Scale(1 / q.Norm())
}

// ScalarProduct is the 4-component dot product.
func (q Quaternion) ScalarProduct(o Quaternion) float64 {
	return q.A*o.A + q.B*o.B + q.C*o.C + q.D*o.D
}

// CrossProduct is a cyclic component-difference product over all four components.
// It is not the vector cross product of the imaginary parts and does not satisfy
// the usual quaternion identities.
func (q Quaternion) CrossProduct(o Quaternion) Quaternion {
	return Quaternion{
		q.B*o.C - q.C*o.B,
		q.C*o.D - q.D*o.C,
		q.D*o.A - q.A*o.D,
		q.A*o.B - q.B*o.A,
	}
}

// Vector returns the imaginary part (b, c, d).
func (q Quaternion) Vector() Double3 {
	return Double3{q.B, q.C, q.D}
}

func (q Quaternion) Array() [4]float64 {
	return [4]float64{q.A, q.B, q.C, q.D}
}

// ToMatrix returns the 4×4 matrix L(q) with L(q)·p == q·p for any quaternion p
// written as a column (a, b, c, d).
func (q Quaternion) ToMatrix() QuaternionMatrix {
	return QuaternionMatrix{
		q.A, -q.B, -q.C, -q.D,
		q.B, q.A, -q.D, q.C,
		q.C, q.D, q.A, -q.B,
		q.D, -q.C, q.B, q.A,
	}
}

// RotationMatrix normalizes q and returns the equivalent 3×3 rotation matrix
// acting on column vectors.
func (q Quaternion) RotationMatrix() RotationMatrix {
	u := q.Unit()
	w, x, y, z := u.A, u.B, u.C, u.D
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return RotationMatrix{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// IsUnit reports whether |Norm()-1| <= tol.
func (q Quaternion) IsUnit(tol float64) bool {
	return math.Abs(q.Norm()-1) <= tol
}

// ApproxEqual compares component-wise within tol.
func (q Quaternion) ApproxEqual(o Quaternion, tol float64) bool {
	return math.Abs(q.A-o.A) <= tol && math.Abs(q.B-o.B) <= tol &&
		math.Abs(q.C-o.C) <= tol && math.Abs(q.D-o.D) <= tol
}

// SameRotation reports whether q and o describe the same rotation, i.e. q ≈ o or q ≈ -o.
func (q Quaternion) SameRotation(o Quaternion, tol float64) bool {
	return q.ApproxEqual(o, tol) || q.ApproxEqual(o.Neg(), tol)
}
