package transform

import (
	"math"

	"quat-cube-renderer/rotation"
)

// Mat4 is a 4×4 homogeneous matrix stored row-major, acting on column vectors.
type Mat4 [16]float64

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns a × b.
func Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// Model builds the affine transform "rotate by r, then translate by t".
func Model(r rotation.RotationMatrix, t rotation.Double3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], t.X,
		r[3], r[4], r[5], t.Y,
		r[6], r[7], r[8], t.Z,
		0, 0, 0, 1,
	}
}

func Translation(t rotation.Double3) Mat4 {
	return Model(rotation.IdentityRotation(), t)
}

// Perspective returns an OpenGL-style projection with an infinite far plane.
// fovY is in radians; near must be positive.
func Perspective(fovY, aspect, near float64) Mat4 {
	f := 1 / math.Tan(fovY/2)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, -1, -2 * near,
		0, 0, -1, 0,
	}
}

// MulPoint transforms a point (w=1) and drops the homogeneous coordinate.
func (m Mat4) MulPoint(v rotation.Double3) rotation.Double3 {
	return rotation.Double3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// Project transforms a point to clip space and returns normalized device
// coordinates together with the clip w (positive in front of the camera).
func (m Mat4) Project(v rotation.Double3) (rotation.Double3, float64) {
	p := m.MulPoint(v)
	w := m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]
	return p.Scale(1 / w), w
}

// Rotation returns the upper-left 3×3 block.
func (m Mat4) Rotation() rotation.RotationMatrix {
	return rotation.NewRotationMatrix(
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	)
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	id := Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > 1e-8 || d < -1e-8 {
			return false
		}
	}
	return true
}

// ColumnMajor flattens m for glUniformMatrix4fv with transpose = GL_FALSE.
func (m Mat4) ColumnMajor() [16]float32 {
	var out [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = float32(m[r*4+c])
		}
	}
	return out
}
