package batch

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"quat-cube-renderer/internal/mesh"
	"quat-cube-renderer/internal/pose"
	"quat-cube-renderer/internal/postprocess"
	"quat-cube-renderer/internal/raster"
	"quat-cube-renderer/internal/texture"
	"quat-cube-renderer/internal/transform"
	"quat-cube-renderer/rotation"

	"github.com/HugoSmits86/nativewebp"
	"k8s.io/klog/v2"
)

var (
	quaternionCubeColor = color.NRGBA{R: 230, G: 140, B: 60, A: 255}
	matrixCubeColor     = color.NRGBA{R: 70, G: 130, B: 220, A: 255}
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	TexResolver texture.Resolver
	TexturePath string
	Width       int
	Height      int
	Supersample int
	Workers     int
	Spacing     float64
	Distance    float64
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string // relative to OutputDir
	Success bool
	Error   string
}

// FrameName is the file name of frame i inside the output directory.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%04d.webp", i)
}

// Run renders all poses using a worker pool. Results are indexed like poses.
func Run(cfg Config, poses []pose.Pose) []Result {
	total := len(poses)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()
	cube := mesh.Cube(1)

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					klog.Infof("[%d/%d] %.1f frames/sec", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, cube, idx, poses[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range poses {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// sceneObjects places the quaternion-driven cube on the left and the
// matrix-driven cube on the right.
func sceneObjects(cfg Config, cube *mesh.Mesh, p pose.Pose, tex *image.NRGBA) []raster.Object {
	return []raster.Object{
		{
			Mesh:    cube,
			Model:   transform.Model(p.QuaternionModel, rotation.Double3{X: -cfg.Spacing}),
			Color:   quaternionCubeColor,
			Texture: tex,
		},
		{
			Mesh:    cube,
			Model:   transform.Model(p.MatrixModel, rotation.Double3{X: cfg.Spacing}),
			Color:   matrixCubeColor,
			Texture: tex,
		},
	}
}

func renderFrame(cfg Config, cube *mesh.Mesh, p pose.Pose) *image.NRGBA {
	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	w, h := cfg.Width*ss, cfg.Height*ss

	var tex *image.NRGBA
	if cfg.TexResolver != nil {
		tex = cfg.TexResolver.Resolve(cfg.TexturePath)
	}

	cam := transform.NewCamera(cfg.Distance, float64(w)/float64(h))
	img := raster.Render(sceneObjects(cfg, cube, p, tex), cam, raster.Options{
		Width:  w,
		Height: h,
		Light:  raster.DefaultLightConfig(),
	})

	// Post-processing: supersample downsample
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	return img
}

func processFrame(cfg Config, cube *mesh.Mesh, idx int, p pose.Pose) Result {
	name := FrameName(idx)
	fail := func(format string, args ...any) Result {
		msg := fmt.Sprintf(format, args...)
		klog.Errorf("frame %d: %s", idx, msg)
		return Result{Frame: idx, Path: name, Error: msg}
	}

	img := renderFrame(cfg, cube, p)
	klog.V(2).Infof("frame %d: t=%.3fs angle=%.4f q=%v", idx, p.Time, p.Angle, p.Composed)

	outPath := filepath.Join(cfg.OutputDir, name)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fail("%v", err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fail("%v", err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fail("WebP encode: %v", err)
	}

	return Result{Frame: idx, Path: name, Success: true}
}
