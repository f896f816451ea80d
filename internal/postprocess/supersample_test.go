package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fill(img *image.NRGBA, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func TestDownsample_Size(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 8))
	fill(src, color.NRGBA{R: 255, A: 255})

	out := Downsample(src, 8, 4)
	assert.Equal(t, image.Rect(0, 0, 8, 4), out.Bounds())
	c := out.NRGBAAt(3, 2)
	assert.Equal(t, uint8(255), c.A)
	assert.InDelta(t, 255, int(c.R), 1)
}

func TestDownsample_NoopWhenSmall(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, src, Downsample(src, 4, 4))
}

// Half-transparent edges keep their color instead of fading toward black.
func TestDownsample_NoDarkHalo(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}

	out := Downsample(src, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := out.NRGBAAt(x, y)
			if c.A > 64 {
				assert.InDelta(t, 200, int(c.R), 15, "pixel %d,%d", x, y)
			}
		}
	}
}
