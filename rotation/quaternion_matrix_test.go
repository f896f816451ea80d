package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuaternionMatrix_Layout(t *testing.T) {
	m := Quaternion{1, 2, 3, 4}.ToMatrix()
	want := NewQuaternionMatrix(
		1, -2, -3, -4,
		2, 1, -4, 3,
		3, 4, 1, -2,
		4, -3, 2, 1,
	)
	assert.Equal(t, want, m)
	assert.Equal(t, -4.0, m.At(1, 2))
}

func TestQuaternionMatrix_Scale(t *testing.T) {
	m := Quaternion{1, 2, 3, 4}.ToMatrix()
	assert.Equal(t, Quaternion{1, 2, 3, 4}.Scale(3).ToMatrix(), m.Scale(3))
}

func TestQuaternionMatrix_MatMul(t *testing.T) {
	m := NewQuaternionMatrix(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	assert.Equal(t, m, m.MatMul(IdentityQuaternionMatrix()))
	assert.Equal(t, m, IdentityQuaternionMatrix().MatMul(m))

	got := m.MatMul(m)
	assert.Equal(t, QuaternionMatrix{
		90, 100, 110, 120,
		202, 228, 254, 280,
		314, 356, 398, 440,
		426, 484, 542, 600,
	}, got)
}

func TestQuaternionMatrix_NotCommutative(t *testing.T) {
	a := Quaternion{0, 1, 0, 0}.ToMatrix()
	b := Quaternion{0, 0, 1, 0}.ToMatrix()
	assert.NotEqual(t, a.MatMul(b), b.MatMul(a))
	assert.Equal(t, Quaternion{0, 0, 0, 1}, a.MatMul(b).ToQuaternion())
}

// For a unit quaternion the embedding is orthogonal and its transpose embeds the conjugate.
func TestQuaternionMatrix_TransposeIsConjugate(t *testing.T) {
	q := Quaternion{1, 2, 3, 4}.Unit()
	assert.Equal(t, q.Conjugate().ToMatrix(), q.ToMatrix().Transpose())

	got := q.ToMatrix().MatMul(q.ToMatrix().Transpose())
	want := IdentityQuaternionMatrix()
	assert.InDeltaSlice(t, want[:], got[:], eps)
}

func TestQuaternionMatrix_ColumnMajor(t *testing.T) {
	m := Quaternion{1, 2, 3, 4}.ToMatrix()
	cm := m.ColumnMajor()
	assert.Equal(t, [4]float64{1, 2, 3, 4}, [4]float64(cm[:4]))
}
