package pose

import (
	"math"

	"quat-cube-renderer/rotation"
)

// Spin rotates about this axis; it is normalized once at package init.
var spinAxis = rotation.Double3{X: 1, Y: 1}.Unit()

// Pose is the orientation of both demo cubes at one instant.
type Pose struct {
	Time  float64 // seconds
	Angle float64 // radians

	// Composed is Pre · spin(Angle) · Post, the quaternion-driven orientation.
	Composed rotation.Quaternion
	// QuaternionModel is Composed converted to a rotation matrix.
	QuaternionModel rotation.RotationMatrix
	// MatrixModel is the reference orientation built directly as a Z rotation.
	MatrixModel rotation.RotationMatrix
}

// Animator turns a timestamp into a Pose. The angle grows linearly with time.
type Animator struct {
	Speed float64 // radians per second
	Pre   rotation.Quaternion
	Post  rotation.Quaternion
}

// NewAnimator tilts the spinning cube 45° about X before and 45° about Y after the spin.
func NewAnimator(speed float64) Animator {
	return Animator{
		Speed: speed,
		Pre:   rotation.FromEulerAngle(math.Pi/4, rotation.Double3{X: 1}),
		Post:  rotation.FromEulerAngle(math.Pi/4, rotation.Double3{Y: 1}),
	}
}

func (a Animator) At(t float64) Pose {
	angle := t * a.Speed
	spin := rotation.FromEulerAngle(angle, spinAxis)
	composed := a.Pre.Mul(spin).Mul(a.Post).Unit()

	return Pose{
		Time:            t,
		Angle:           angle,
		Composed:        composed,
		QuaternionModel: composed.RotationMatrix(),
		MatrixModel:     rotation.RotZ(angle),
	}
}

// Frames samples n poses at the given frame rate starting from t = 0.
func (a Animator) Frames(n int, fps float64) []Pose {
	poses := make([]Pose, n)
	for i := range poses {
		poses[i] = a.At(float64(i) / fps)
	}
	return poses
}
