package raster

import (
	"image"
	"image/color"
	"math"
)

// Vertex is a projected vertex: pixel position, depth (larger is closer) and texture coordinates.
type Vertex struct {
	X, Y, Depth float64
	U, V        float64
}

// RasterizeTriangle fills one triangle with z-buffering. The triangle is
// flat shaded with shade (see LightConfig.ComputeShade); texels come from tex,
// or base when tex is nil. Colors are lit in linear space, ACES tone mapped and
// re-encoded to sRGB.
//
// Hot path: no allocations in the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, tri [3]Vertex, tex *image.NRGBA, base color.NRGBA, shade float64, lc *LightConfig) {
	x0, y0, z0 := tri[0].X, tri[0].Y, tri[0].Depth
	x1, y1, z1 := tri[1].X, tri[1].Y, tri[1].Depth
	x2, y2, z2 := tri[2].X, tri[2].Y, tri[2].Depth

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		// Sample at pixel centers.
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			c := base
			if tex != nil {
				u := w0*tri[0].U + w1*tri[1].U + w2*tri[2].U
				v := w0*tri[0].V + w1*tri[1].V + w2*tri[2].V
				c = SampleTexture(tex, u, v)
			}

			// Skip transparent texels
			if c.A < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = lc.shadeColor(c.R, shade)
			fb.Color[pxIdx+1] = lc.shadeColor(c.G, shade)
			fb.Color[pxIdx+2] = lc.shadeColor(c.B, shade)
			fb.Color[pxIdx+3] = 255
		}
	}
}
