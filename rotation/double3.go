package rotation

import "math"

// Double3 is a 3-component vector used for points, axes and directions.
type Double3 struct {
	X, Y, Z float64
}

func NewDouble3(x, y, z float64) Double3 {
	return Double3{X: x, Y: y, Z: z}
}

func (v Double3) Add(o Double3) Double3 {
	return Double3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Double3) Sub(o Double3) Double3 {
	return Double3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Double3) Scale(s float64) Double3 {
	return Double3{v.X * s, v.Y * s, v.Z * s}
}

func (v Double3) Dot(o Double3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Double3) Cross(o Double3) Double3 {
	return Double3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Double3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Unit returns v / |v|. The zero vector yields NaN components.
func (v Double3) Unit() Double3 {
	return v.Scale(1 / v.Norm())
}

// RotateMatrix returns m × v.
func (v Double3) RotateMatrix(m RotationMatrix) Double3 {
	return m.Apply(v)
}

// RotateQuaternion returns the vector part of q·(0, v)·q*. q must be unit;
// otherwise the result is scaled by |q|².
func (v Double3) RotateQuaternion(q Quaternion) Double3 {
	p := Quaternion{0, v.X, v.Y, v.Z}
	return q.Mul(p).Mul(q.Conjugate()).Vector()
}

func (v Double3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func (v Double3) ApproxEqual(o Double3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol && math.Abs(v.Z-o.Z) <= tol
}
