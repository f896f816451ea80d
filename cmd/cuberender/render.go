package main

import (
	"fmt"
	"path/filepath"
	"time"

	"quat-cube-renderer/internal/batch"
	"quat-cube-renderer/internal/config"
	"quat-cube-renderer/internal/pose"
	"quat-cube-renderer/internal/texture"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

type renderOptions struct {
	configFile string
	flags      config.Flags
}

func newRenderCommand() *cobra.Command {
	o := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the animation frames and a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}

	o.addFlags(cmd.Flags())
	return cmd
}

func (o *renderOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configFile, "config", "", "Path to a YAML or JSON config file")
	fs.StringVarP(&o.flags.OutputDir, "output", "o", "", "Output directory (default: frames)")
	fs.StringVar(&o.flags.Texture, "texture", "", "Face texture (.tga, .png or .jpg)")
	fs.IntVar(&o.flags.Width, "width", 0, "Frame width in pixels (default: 800)")
	fs.IntVar(&o.flags.Height, "height", 0, "Frame height in pixels (default: 600)")
	fs.IntVar(&o.flags.Supersample, "supersample", 0, "Supersampling factor (default: 2)")
	fs.IntVar(&o.flags.Workers, "workers", 0, "Number of worker goroutines (default: NumCPU)")
	fs.IntVarP(&o.flags.Frames, "frames", "n", 0, "Number of frames (default: 48)")
	fs.Float64Var(&o.flags.FPS, "fps", 0, "Frames per second (default: 12)")
}

func (o *renderOptions) run(cmd *cobra.Command) error {
	var cfg config.Config
	if o.configFile != "" {
		var err error
		cfg, err = config.Load(o.configFile)
		if err != nil {
			return err
		}
	}

	// CLI flags override config file
	cfg.Resolve(o.flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Quaternion cube renderer → WebP")
	fmt.Fprintf(out, "Frames: %d @ %.1f fps, %dx%d (x%d), Workers: %d\n",
		cfg.Frames, cfg.FPS, cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Fprintf(out, "Output: %s\n", cfg.OutputDir)
	fmt.Fprintln(out, "------------------------------------------------------------")

	texCache := texture.NewCache()
	if cfg.Texture != "" && texCache.Resolve(cfg.Texture) == nil {
		klog.Warningf("texture %s unavailable, using flat colors", cfg.Texture)
	}

	poses := pose.NewAnimator(cfg.Speed).Frames(cfg.Frames, cfg.FPS)
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		TexResolver: texCache,
		TexturePath: cfg.Texture,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Spacing:     cfg.Spacing,
		Distance:    cfg.Distance,
	}

	start := time.Now()
	results := batch.Run(batchCfg, poses)

	fmt.Fprintln(out, "------------------------------------------------------------")
	fmt.Fprintf(out, "Done in %.1fs\n", time.Since(start).Seconds())

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Fprintf(out, "Rendered: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Fprintf(out, "\nFailed (%d):\n", len(failed))
		limit := min(len(failed), 20)
		for _, r := range failed[:limit] {
			fmt.Fprintf(out, "  frame %d: %s\n", r.Frame, r.Error)
		}
	}

	m := batch.NewManifest(batchCfg, poses, results)
	m.FPS = cfg.FPS
	m.Speed = cfg.Speed
	m.WebPQuality = cfg.WebPQuality

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, m); err != nil {
		klog.Warningf("manifest write failed: %v", err)
	} else {
		fmt.Fprintf(out, "Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d frames failed", len(failed), len(results))
	}
	return nil
}
