package rotation

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

// newFuzzer fills Quaternion values with random unit quaternions and Double3
// values with points in [-10, 10)³.
func newFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.NewWithSeed(seed).NilChance(0).Funcs(
		func(q *Quaternion, c fuzz.Continue) {
			for {
				*q = Quaternion{c.NormFloat64(), c.NormFloat64(), c.NormFloat64(), c.NormFloat64()}
				if q.Norm() > 1e-3 {
					break
				}
			}
			*q = q.Unit()
		},
		func(v *Double3, c fuzz.Continue) {
			*v = Double3{c.Float64()*20 - 10, c.Float64()*20 - 10, c.Float64()*20 - 10}
		},
	)
}

func assertVec(t *testing.T, want, got Double3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func assertQuat(t *testing.T, want, got Quaternion) {
	t.Helper()
	w, g := want.Array(), got.Array()
	assert.InDeltaSlice(t, w[:], g[:], eps)
}
