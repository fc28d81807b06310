// Command raytracer renders a built-in scene to a PNG file.
package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/df07/go-progressive-raytracer/pkg/rtconfig"
	"github.com/df07/go-progressive-raytracer/pkg/rtlog"
	"github.com/df07/go-progressive-raytracer/pkg/scene"
	"github.com/df07/go-progressive-raytracer/pkg/scheduler"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	cfg := rtconfig.Defaults()

	cmd := &cobra.Command{
		Use:   "raytracer",
		Short: "Render a scene with the Monte-Carlo path tracer",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := rtconfig.Load(configPath)
			if err != nil {
				return err
			}
			overlayFlags(cmd, &loaded, cfg)
			return run(cmd.Context(), loaded)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to a YAML render config")
	flags.StringVar(&cfg.Scene, "scene", cfg.Scene, "built-in scene: default, cornell, spheregrid")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	flags.Float64Var(&cfg.AspectRatio, "aspect", cfg.AspectRatio, "image width/height ratio")
	flags.IntVar(&cfg.SamplesPerPixel, "samples", cfg.SamplesPerPixel, "samples per pixel")
	flags.IntVar(&cfg.MaxDepth, "depth", cfg.MaxDepth, "maximum bounce depth")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker count (0 = runtime.NumCPU())")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "base RNG seed")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output PNG path")

	return cmd
}

// overlayFlags copies any flag the user explicitly set on the command
// line on top of the config loaded from file, so file < flags in
// precedence.
func overlayFlags(cmd *cobra.Command, loaded *rtconfig.Config, flagDefaults rtconfig.Config) {
	flags := cmd.Flags()
	if flags.Changed("scene") {
		loaded.Scene = flagDefaults.Scene
	}
	if flags.Changed("width") {
		loaded.Width = flagDefaults.Width
	}
	if flags.Changed("aspect") {
		loaded.AspectRatio = flagDefaults.AspectRatio
	}
	if flags.Changed("samples") {
		loaded.SamplesPerPixel = flagDefaults.SamplesPerPixel
	}
	if flags.Changed("depth") {
		loaded.MaxDepth = flagDefaults.MaxDepth
	}
	if flags.Changed("workers") {
		loaded.Workers = flagDefaults.Workers
	}
	if flags.Changed("seed") {
		loaded.Seed = flagDefaults.Seed
	}
	if flags.Changed("output") {
		loaded.Output = flagDefaults.Output
	}
}

func run(ctx context.Context, cfg rtconfig.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := rtlog.NewDevelopment()
	if err != nil {
		return fmt.Errorf("raytracer: building logger: %w", err)
	}
	defer log.Sync()

	log = log.With("scene", cfg.Scene, "workers", cfg.Workers, "samples", cfg.SamplesPerPixel)
	log.Infof("building scene")

	sc, err := buildScene(cfg.Scene)
	if err != nil {
		return fmt.Errorf("raytracer: %w", err)
	}

	schedCfg := scheduler.Config{
		Width:           cfg.Width,
		Height:          cfg.Height(),
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		Workers:         cfg.Workers,
		Seed:            cfg.Seed,
	}

	log.Infof("rendering %dx%d", schedCfg.Width, schedCfg.Height)
	start := time.Now()

	img, err := scheduler.Render(ctx, sc, schedCfg)
	if err != nil {
		return fmt.Errorf("raytracer: rendering: %w", err)
	}

	log.Infof("render finished in %s", time.Since(start))

	if err := writePNG(cfg.Output, img); err != nil {
		return fmt.Errorf("raytracer: writing output: %w", err)
	}
	log.Infof("wrote %s", cfg.Output)
	return nil
}

// buildScene resolves a scene name to its builder. External scene
// description parsing (PBRT, OBJ/MTL) is out of scope; only the
// programmatically constructed built-ins are available here.
func buildScene(name string) (scheduler.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(), nil
	case "cornell":
		return scene.NewCornellScene(), nil
	case "spheregrid":
		return scene.NewSphereGridScene(10), nil
	default:
		return scheduler.Scene{}, fmt.Errorf("unknown scene %q (want default, cornell, or spheregrid)", name)
	}
}

// writePNG converts the scheduler's byte triples into an image.RGBA and
// encodes it to path. Image encoding is out of the core's scope; this
// is the thin external collaborator spec.md assumes exists.
func writePNG(path string, img *scheduler.Image) error {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			idx := (y*img.Width + x) * 3
			out.Set(x, y, color.RGBA{
				R: img.Pix[idx+0],
				G: img.Pix[idx+1],
				B: img.Pix[idx+2],
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, out)
}
