package rotation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCross_Basis(t *testing.T) {
	x, y, z := Double3{1, 0, 0}, Double3{0, 1, 0}, Double3{0, 0, 1}
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, z.Scale(-1), y.Cross(x))
}

// Third component is x·y₂ − y·x₂. Writing y·y₂ instead still passes the basis
// case above but not this one.
func TestCross_ThirdComponent(t *testing.T) {
	a := Double3{2, 3, 0}
	b := Double3{5, 7, 0}
	assert.Equal(t, Double3{0, 0, 2*7 - 3*5}, a.Cross(b))
}

func TestCross_Orthogonal(t *testing.T) {
	f := newFuzzer(23)
	for n := 0; n < 100; n++ {
		var a, b Double3
		f.Fuzz(&a)
		f.Fuzz(&b)
		c := a.Cross(b)
		require.InDelta(t, 0, c.Dot(a), 1e-9)
		require.InDelta(t, 0, c.Dot(b), 1e-9)
	}
}

func TestDouble3_NormUnit(t *testing.T) {
	v := Double3{3, 4, 12}
	assert.Equal(t, 13.0, v.Norm())
	assertVec(t, Double3{3.0 / 13, 4.0 / 13, 12.0 / 13}, v.Unit())

	zero := Double3{}.Unit()
	assert.True(t, math.IsNaN(zero.X) && math.IsNaN(zero.Y) && math.IsNaN(zero.Z))
}

func TestDouble3_Arithmetic(t *testing.T) {
	a := Double3{1, 2, 3}
	b := Double3{-4, 0.5, 2}
	assert.Equal(t, Double3{-3, 2.5, 5}, a.Add(b))
	assert.Equal(t, Double3{5, 1.5, 1}, a.Sub(b))
	assert.Equal(t, Double3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, 3.0, a.Dot(b))
	assert.Equal(t, [3]float64{1, 2, 3}, a.Array())
}

func TestRotateMatrix(t *testing.T) {
	got := Double3{1, 0, 0}.RotateMatrix(RotZ(math.Pi / 2))
	assertVec(t, Double3{0, 1, 0}, got)

	m := NewRotationMatrix(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, Double3{14, 32, 50}, Double3{1, 2, 3}.RotateMatrix(m))
}

// The quaternion path keeps the axis order (b, c, d) -> (X, Y, Z).
func TestRotateQuaternion_NoAxisSwap(t *testing.T) {
	q := FromEulerAngle(math.Pi/2, Double3{1, 0, 0})
	got := Double3{0, 1, 0}.RotateQuaternion(q)
	assertVec(t, Double3{0, 0, 1}, got)
}

func TestRotateQuaternion_NonUnitScales(t *testing.T) {
	q := FromEulerAngle(0.4, Double3{0, 0, 1}).Scale(2)
	p := Double3{1, 0, 0}
	assert.InDelta(t, 4, p.RotateQuaternion(q).Norm(), eps)
}
