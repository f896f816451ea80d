package batch

import (
	"encoding/json"
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"quat-cube-renderer/internal/mesh"
	"quat-cube-renderer/internal/pose"
	"quat-cube-renderer/rotation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"
)

func testConfig(dir string) Config {
	return Config{
		OutputDir:   dir,
		Width:       48,
		Height:      32,
		Supersample: 2,
		Workers:     2,
		Spacing:     2,
		Distance:    5,
	}
}

func TestRun_WritesFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	poses := pose.NewAnimator(math.Pi / 4).Frames(4, 2)

	results := Run(cfg, poses)
	require.Len(t, results, 4)

	for i, r := range results {
		require.True(t, r.Success, "frame %d: %s", i, r.Error)
		assert.Equal(t, i, r.Frame)
		assert.Equal(t, FrameName(i), r.Path)

		f, err := os.Open(filepath.Join(dir, r.Path))
		require.NoError(t, err)
		conf, err := webp.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 48, conf.Width)
		assert.Equal(t, 32, conf.Height)
	}
}

func TestRun_OutputDirIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	cfg := testConfig(blocker)
	cfg.Workers = 0
	results := Run(cfg, pose.NewAnimator(1).Frames(2, 1))
	for _, r := range results {
		assert.False(t, r.Success)
		assert.NotEmpty(t, r.Error)
	}
}

type fixedResolver struct {
	tex   *image.NRGBA
	calls int
}

func (r *fixedResolver) Resolve(string) *image.NRGBA {
	r.calls++
	return r.tex
}

func TestRenderFrame_BothCubesVisible(t *testing.T) {
	cfg := testConfig("")
	cfg.Supersample = 1
	cfg.Width, cfg.Height = 160, 120
	res := &fixedResolver{}
	cfg.TexResolver = res

	img := renderFrame(cfg, mesh.Cube(1), pose.NewAnimator(1).At(0.5))
	require.Equal(t, image.Rect(0, 0, 160, 120), img.Bounds())
	assert.Equal(t, 1, res.calls)

	covered := func(x0, x1 int) int {
		n := 0
		for y := 0; y < 120; y++ {
			for x := x0; x < x1; x++ {
				if img.NRGBAAt(x, y).A != 0 {
					n++
				}
			}
		}
		return n
	}
	left, right := covered(0, 80), covered(80, 160)
	assert.Greater(t, left, 100)
	assert.Greater(t, right, 100)
	// background stays transparent at the corners
	assert.Zero(t, img.NRGBAAt(0, 0).A)
	assert.Zero(t, img.NRGBAAt(159, 119).A)
}

func TestSceneObjects_Placement(t *testing.T) {
	cfg := testConfig("")
	p := pose.NewAnimator(1).At(1)
	objs := sceneObjects(cfg, mesh.Cube(1), p, nil)
	require.Len(t, objs, 2)

	assert.Equal(t, rotation.Double3{X: -2}, objs[0].Model.MulPoint(rotation.Double3{}))
	assert.Equal(t, rotation.Double3{X: 2}, objs[1].Model.MulPoint(rotation.Double3{}))

	want, got := p.QuaternionModel, objs[0].Model.Rotation()
	assert.InDeltaSlice(t, want[:], got[:], 1e-12)
	want, got = p.MatrixModel, objs[1].Model.Rotation()
	assert.InDeltaSlice(t, want[:], got[:], 1e-12)
}

func TestManifest(t *testing.T) {
	cfg := testConfig("")
	poses := pose.NewAnimator(math.Pi / 4).Frames(2, 1)
	results := []Result{
		{Frame: 0, Path: FrameName(0), Success: true},
		{Frame: 1, Path: FrameName(1), Error: "boom"},
	}

	m := NewManifest(cfg, poses, results)
	m.FPS = 1
	require.Len(t, m.Frames, 2)
	assert.Equal(t, "frame_0000.webp", m.Frames[0].Image)
	assert.Empty(t, m.Frames[1].Image)
	assert.Equal(t, "boom", m.Frames[1].Error)
	assert.InDelta(t, math.Pi/4, m.Frames[1].Angle, 1e-12)

	// column-major: translation is in the last column, elements 12..14
	mm := m.Frames[1].MatrixModel
	assert.Equal(t, float32(2), mm[12])
	assert.Equal(t, float32(0), mm[13])
	assert.Equal(t, float32(1), mm[15])
	qm := m.Frames[1].QuaternionModel
	assert.Equal(t, float32(-2), qm[12])

	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, WriteManifest(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var back Manifest
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 48, back.Width)
	assert.Equal(t, m.Frames[0].Quaternion, back.Frames[0].Quaternion)
}

func TestWriteManifest_BadPath(t *testing.T) {
	err := WriteManifest(filepath.Join(t.TempDir(), "missing", "manifest.json"), Manifest{})
	assert.ErrorContains(t, err, "batch: write")
}
