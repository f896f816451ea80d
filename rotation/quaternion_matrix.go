package rotation

// QuaternionMatrix is a 4×4 matrix stored row-major:
// [a1, a2, a3, a4, b1, ..., d4]. It is the matrix form of left
// multiplication by a quaternion (see Quaternion.ToMatrix).
type QuaternionMatrix [16]float64

func NewQuaternionMatrix(
	a1, a2, a3, a4,
	b1, b2, b3, b4,
	c1, c2, c3, c4,
	d1, d2, d3, d4 float64,
) QuaternionMatrix {
	return QuaternionMatrix{
		a1, a2, a3, a4,
		b1, b2, b3, b4,
		c1, c2, c3, c4,
		d1, d2, d3, d4,
	}
}

func IdentityQuaternionMatrix() QuaternionMatrix {
	return QuaternionMatrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c (both 0-based).
func (m QuaternionMatrix) At(r, c int) float64 {
	return m[r*4+c]
}

func (m QuaternionMatrix) Scale(s float64) QuaternionMatrix {
	var out QuaternionMatrix
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// MatMul returns m × o.
func (m QuaternionMatrix) MatMul(o QuaternionMatrix) QuaternionMatrix {
	var out QuaternionMatrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[r*4+0]*o[0*4+c] + m[r*4+1]*o[1*4+c] +
				m[r*4+2]*o[2*4+c] + m[r*4+3]*o[3*4+c]
		}
	}
	return out
}

// ToQuaternion reads back (a1, b1, c1, d1). It inverts ToMatrix exactly and
// is meaningless for matrices that are not quaternion embeddings.
func (m QuaternionMatrix) ToQuaternion() Quaternion {
	return Quaternion{m[0], m[4], m[8], m[12]}
}

func (m QuaternionMatrix) Transpose() QuaternionMatrix {
	var out QuaternionMatrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r*4+c]
		}
	}
	return out
}

// ColumnMajor flattens m column by column, the layout OpenGL expects for
// uniform upload without transposition.
func (m QuaternionMatrix) ColumnMajor() [16]float64 {
	return [16]float64(m.Transpose())
}
