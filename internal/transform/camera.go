package transform

import (
	"math"

	"quat-cube-renderer/rotation"
)

// Camera holds the view and projection halves of the pipeline.
type Camera struct {
	View       Mat4
	Projection Mat4
}

// NewCamera looks down -Z from (0, 0, distance) with a 90° vertical field of view
// and the near plane at 1.
func NewCamera(distance, aspect float64) Camera {
	return Camera{
		View:       Translation(rotation.Double3{Z: -distance}),
		Projection: Perspective(math.Pi/2, aspect, 1),
	}
}

// ViewProjection returns Projection × View.
func (c Camera) ViewProjection() Mat4 {
	return Mul(c.Projection, c.View)
}

// ToScreen maps NDC to pixel coordinates; y grows downward and depth grows
// toward the viewer so the z-buffer keeps the largest value.
func ToScreen(ndc rotation.Double3, width, height int) (x, y, depth float64) {
	x = (ndc.X + 1) / 2 * float64(width)
	y = (1 - ndc.Y) / 2 * float64(height)
	return x, y, -ndc.Z
}
