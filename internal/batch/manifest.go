package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"quat-cube-renderer/internal/pose"
	"quat-cube-renderer/internal/transform"
	"quat-cube-renderer/rotation"
)

// Manifest describes a rendered sequence.
type Manifest struct {
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	FPS         float64         `json:"fps"`
	Speed       float64         `json:"speed"`
	WebPQuality int             `json:"webp_quality"`
	Frames      []ManifestEntry `json:"frames"`
}

// ManifestEntry records the orientation of both cubes in one frame.
// Model matrices are column-major, ready for upload as GPU uniforms.
type ManifestEntry struct {
	Frame           int         `json:"frame"`
	Time            float64     `json:"time"`
	Angle           float64     `json:"angle"`
	Quaternion      [4]float64  `json:"quaternion"`
	Rotation        [9]float64  `json:"rotation"`
	QuaternionModel [16]float32 `json:"quaternion_model"`
	MatrixModel     [16]float32 `json:"matrix_model"`
	Image           string      `json:"image,omitempty"`
	Error           string      `json:"error,omitempty"`
}

// NewManifest pairs every pose with its render result. Failed frames keep
// their orientation data but carry the error instead of an image.
func NewManifest(cfg Config, poses []pose.Pose, results []Result) Manifest {
	m := Manifest{
		Width:  cfg.Width,
		Height: cfg.Height,
		Frames: make([]ManifestEntry, len(poses)),
	}
	for i, p := range poses {
		e := ManifestEntry{
			Frame:           i,
			Time:            p.Time,
			Angle:           p.Angle,
			Quaternion:      p.Composed.Array(),
			Rotation:        [9]float64(p.QuaternionModel),
			QuaternionModel: transform.Model(p.QuaternionModel, rotation.Double3{X: -cfg.Spacing}).ColumnMajor(),
			MatrixModel:     transform.Model(p.MatrixModel, rotation.Double3{X: cfg.Spacing}).ColumnMajor(),
		}
		if i < len(results) {
			if results[i].Success {
				e.Image = results[i].Path
			} else {
				e.Error = results[i].Error
			}
		}
		m.Frames[i] = e
	}
	return m
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}
