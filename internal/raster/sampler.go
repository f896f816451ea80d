package raster

import (
	"image"
	"image/color"
	"math"
)

// SampleTexture performs bilinear filtering with repeat wrapping.
// Reads tex.Pix directly to stay allocation free.
func SampleTexture(tex *image.NRGBA, u, v float64) color.NRGBA {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	u -= math.Floor(u)
	v -= math.Floor(v)

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0, y0 := int(fx), int(fy)
	x1, y1 := (x0+1)%w, (y0+1)%h
	dx, dy := fx-float64(x0), fy-float64(y0)

	i00 := tex.PixOffset(tex.Rect.Min.X+x0, tex.Rect.Min.Y+y0)
	i10 := tex.PixOffset(tex.Rect.Min.X+x1, tex.Rect.Min.Y+y0)
	i01 := tex.PixOffset(tex.Rect.Min.X+x0, tex.Rect.Min.Y+y1)
	i11 := tex.PixOffset(tex.Rect.Min.X+x1, tex.Rect.Min.Y+y1)

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	pix := tex.Pix
	ch := func(k int) uint8 {
		f := float64(pix[i00+k])*w00 + float64(pix[i10+k])*w10 +
			float64(pix[i01+k])*w01 + float64(pix[i11+k])*w11
		return uint8(f + 0.5)
	}
	return color.NRGBA{R: ch(0), G: ch(1), B: ch(2), A: ch(3)}
}
