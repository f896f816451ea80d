package raster

import (
	"math"

	"quat-cube-renderer/rotation"
)

// LightConfig holds precomputed lighting parameters. Directions are in view
// space and point from the surface toward the light.
type LightConfig struct {
	LightDir rotation.Double3
	RimDir   rotation.Double3
	HalfMain rotation.Double3 // precomputed half-vector for Blinn-Phong
	Ambient  float64
	Direct   float64
	Rim      float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig is a key light from the upper right front and a dim rim
// light from behind on the left.
func DefaultLightConfig() LightConfig {
	lightDir := rotation.Double3{X: 0.45, Y: 0.65, Z: 0.6}.Unit()
	rimDir := rotation.Double3{X: -0.5, Y: 0.4, Z: -0.6}.Unit()
	viewDir := rotation.Double3{Z: 1}

	return LightConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		HalfMain: lightDir.Add(viewDir).Unit(),
		Ambient:  0.25,
		Direct:   0.85,
		Rim:      0.25,
		SpecInt:  0.35,
		SpecPow:  24.0,
		Exposure: 1.05,
		InvGamma: 1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a unit face normal
// that faces the viewer.
func (lc *LightConfig) ComputeShade(normal rotation.Double3) float64 {
	ndlMain := math.Max(normal.Dot(lc.LightDir), 0)
	ndlRim := math.Max(normal.Dot(lc.RimDir), 0)

	ndh := math.Max(normal.Dot(lc.HalfMain), 0)
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// shadeColor lights an sRGB color and returns it tone mapped and re-encoded.
func (lc *LightConfig) shadeColor(c uint8, shade float64) uint8 {
	lin := srgbToLinear[c] * shade * lc.Exposure
	return clamp255(math.Pow(ACESTonemap(lin), lc.InvGamma) * 255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
