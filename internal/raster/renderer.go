package raster

import (
	"image"
	"image/color"

	"quat-cube-renderer/internal/mesh"
	"quat-cube-renderer/internal/transform"
)

// Object is one mesh instance placed in the world by Model.
type Object struct {
	Mesh    *mesh.Mesh
	Model   transform.Mat4
	Color   color.NRGBA
	Texture *image.NRGBA // optional; overrides Color
}

// Options controls the output image.
type Options struct {
	Width      int
	Height     int
	Background color.NRGBA
	Light      LightConfig
}

// Render rasterizes all objects into a new NRGBA image. Triangles facing away
// from the camera are culled, so meshes must wind counter-clockwise seen from outside.
func Render(objects []Object, cam transform.Camera, opts Options) *image.NRGBA {
	fb := NewFrameBuffer(opts.Width, opts.Height, opts.Background)
	lc := opts.Light

	for _, obj := range objects {
		if obj.Mesh == nil || len(obj.Mesh.Positions) == 0 {
			continue
		}

		modelView := transform.Mul(cam.View, obj.Model)
		viewPos := obj.Mesh.Transformed(modelView.MulPoint).Positions

		screen := make([]Vertex, len(viewPos))
		visible := make([]bool, len(viewPos))
		for i, p := range viewPos {
			ndc, w := cam.Projection.Project(p)
			if w <= 0 {
				continue
			}
			x, y, depth := transform.ToScreen(ndc, opts.Width, opts.Height)
			uv := obj.Mesh.UVs[i]
			screen[i] = Vertex{X: x, Y: y, Depth: depth, U: uv[0], V: uv[1]}
			visible[i] = true
		}

		for t := 0; t < obj.Mesh.Triangles(); t++ {
			idx := obj.Mesh.Triangle(t)
			if !visible[idx[0]] || !visible[idx[1]] || !visible[idx[2]] {
				continue
			}

			p0, p1, p2 := viewPos[idx[0]], viewPos[idx[1]], viewPos[idx[2]]
			n := p1.Sub(p0).Cross(p2.Sub(p0))
			if n.Norm() < 1e-12 || n.Dot(p0) >= 0 {
				continue
			}
			shade := lc.ComputeShade(n.Unit())

			tri := [3]Vertex{screen[idx[0]], screen[idx[1]], screen[idx[2]]}
			RasterizeTriangle(fb, tri, obj.Texture, obj.Color, shade, &lc)
		}
	}

	return fb.Image()
}
