package rotation

import "math"

// RotationMatrix is a 3×3 matrix stored row-major: [a1, a2, a3, b1, b2, b3, c1, c2, c3].
// It acts on column vectors. It is a valid rotation only when proper orthonormal,
// which holds for matrices built from a unit quaternion or the Rot* factories.
type RotationMatrix [9]float64

func NewRotationMatrix(a1, a2, a3, b1, b2, b3, c1, c2, c3 float64) RotationMatrix {
	return RotationMatrix{a1, a2, a3, b1, b2, b3, c1, c2, c3}
}

func IdentityRotation() RotationMatrix {
	return RotationMatrix{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// RotX returns the rotation by a radians around the X axis.
func RotX(a float64) RotationMatrix {
	s, c := math.Sincos(a)
	return RotationMatrix{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns the rotation by a radians around the Y axis.
func RotY(a float64) RotationMatrix {
	s, c := math.Sincos(a)
	return RotationMatrix{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns the rotation by a radians around the Z axis.
func RotZ(a float64) RotationMatrix {
	s, c := math.Sincos(a)
	return RotationMatrix{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

func (m RotationMatrix) At(r, c int) float64 {
	return m[r*3+c]
}

func (m RotationMatrix) Scale(s float64) RotationMatrix {
	var out RotationMatrix
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// MatMul returns m × o, i.e. the rotation that applies o first.
func (m RotationMatrix) MatMul(o RotationMatrix) RotationMatrix {
	var out RotationMatrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3+0]*o[0*3+c] + m[r*3+1]*o[1*3+c] + m[r*3+2]*o[2*3+c]
		}
	}
	return out
}

// Apply returns m × v.
func (m RotationMatrix) Apply(v Double3) Double3 {
	return Double3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transpose is the inverse rotation for an orthonormal m.
func (m RotationMatrix) Transpose() RotationMatrix {
	return RotationMatrix{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m RotationMatrix) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// IsOrthonormal reports whether mᵀm ≈ I and det(m) ≈ +1 within tol.
func (m RotationMatrix) IsOrthonormal(tol float64) bool {
	p := m.Transpose().MatMul(m)
	id := IdentityRotation()
	for i := range p {
		if math.Abs(p[i]-id[i]) > tol {
			return false
		}
	}
	return math.Abs(m.Det()-1) <= tol
}

func (m RotationMatrix) ColumnMajor() [9]float64 {
	return [9]float64(m.Transpose())
}

// ToQuaternion extracts the unit quaternion of a proper rotation matrix.
//
// The branch picks the largest of the four candidates 4a², 4b², 4c², 4d²
// (the denominators 1±a1±b2±c3) so that the division is never by a value
// close to zero, including for half-turns where the trace is near -1.
// The chosen t is at least 1 for any finite input. Input that is not a proper
// rotation is not rejected; it yields a quaternion that is not unit length.
func (m RotationMatrix) ToQuaternion() Quaternion {
	a1, a2, a3 := m[0], m[1], m[2]
	b1, b2, b3 := m[3], m[4], m[5]
	c1, c2, c3 := m[6], m[7], m[8]

	var t float64
	var q Quaternion
	if c3 < 0 {
		if a1 > b2 {
			t = 1 + a1 - b2 - c3
			q = Quaternion{c2 - b3, t, a2 + b1, c1 + a3}
		} else {
			t = 1 - a1 + b2 - c3
			q = Quaternion{a3 - c1, a2 + b1, t, b3 + c2}
		}
	} else {
		if a1 < -b2 {
			t = 1 - a1 - b2 + c3
			q = Quaternion{b1 - a2, c1 + a3, b3 + c2, t}
		} else {
			t = 1 + a1 + b2 + c3
			q = Quaternion{t, c2 - b3, a3 - c1, b1 - a2}
		}
	}
	return q.Scale(0.5 / math.Sqrt(t))
}
