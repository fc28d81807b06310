// Package scheduler implements the parallel pixel scheduler: a shuffled
// pixel list dealt round-robin to a fixed worker pool, each worker
// owning its own per-thread sampler with no cross-thread coordination
// (spec.md §4.8/§5).
package scheduler

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-progressive-raytracer/pkg/camera"
	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/integrator"
)

// Scene bundles the read-only inputs shared by every worker: the
// accelerated world, the explicit light list for MIS, the background
// texture, and the camera. Constructed once before Render starts.
type Scene struct {
	World      core.Hittable
	Lights     *geometry.HittableList
	Background core.Texture
	Camera     *camera.Camera
}

// Config controls a render pass.
type Config struct {
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int   // 0 selects runtime.NumCPU()
	Seed            int64 // base seed: drives the pixel shuffle; worker i uses Seed+int64(i)+1
}

// pixel is one (i,j) screen coordinate awaiting a color.
type pixel struct {
	i, j int
}

// Image is a row-major width*height*3 buffer of gamma-corrected,
// clamped byte triples, row 0 at the top (after row inversion).
type Image struct {
	Width, Height int
	Pix           []byte
}

// Render shuffles every pixel coordinate, deals them round-robin into
// cfg.Workers tasks, and runs each task on its own goroutine with an
// independent Sampler. Workers never communicate; the only rendezvous
// is errgroup.Wait after all tasks finish.
func Render(ctx context.Context, scene Scene, cfg Config) (*Image, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pixels := make([]pixel, 0, cfg.Width*cfg.Height)
	for j := 0; j < cfg.Height; j++ {
		for i := 0; i < cfg.Width; i++ {
			pixels = append(pixels, pixel{i, j})
		}
	}

	shuffleSampler := core.NewSampler(cfg.Seed)
	shufflePixels(pixels, shuffleSampler)

	tasks := dealRoundRobin(pixels, workers)

	img := &Image{Width: cfg.Width, Height: cfg.Height, Pix: make([]byte, cfg.Width*cfg.Height*3)}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		task := tasks[w]
		g.Go(func() error {
			return renderTask(gctx, scene, cfg, task, w, img)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

// shufflePixels performs a Fisher-Yates shuffle using the scheduler's
// own sampler so the pixel-to-thread assignment is a deterministic
// function of the seed, per spec.md §5's ordering guarantee.
func shufflePixels(pixels []pixel, sampler *core.Sampler) {
	for i := len(pixels) - 1; i > 0; i-- {
		j := sampler.Intn(i + 1)
		pixels[i], pixels[j] = pixels[j], pixels[i]
	}
}

// dealRoundRobin distributes the shuffled pixel list into n disjoint
// tasks by round-robin index, as spec.md §4.8 step 2 describes.
func dealRoundRobin(pixels []pixel, n int) [][]pixel {
	tasks := make([][]pixel, n)
	for idx, p := range pixels {
		slot := idx % n
		tasks[slot] = append(tasks[slot], p)
	}
	return tasks
}

// renderTask processes one worker's pixel list serially with its own
// sampler, writing each finished pixel directly into img (safe because
// each task's pixels are disjoint from every other task's).
func renderTask(ctx context.Context, scene Scene, cfg Config, task []pixel, workerID int, img *Image) error {
	sampler := core.NewSampler(cfg.Seed + int64(workerID) + 1)

	for _, p := range task {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		color := samplePixel(scene, cfg, p.i, p.j, sampler)
		writePixel(img, p.i, p.j, color)
	}
	return nil
}

// samplePixel accumulates cfg.SamplesPerPixel jittered samples of
// RayColor, replaces any NaN before averaging, and returns the linear
// (pre-gamma) color.
func samplePixel(scene Scene, cfg Config, i, j int, sampler *core.Sampler) core.Color {
	sum := core.Color{}
	for s := 0; s < cfg.SamplesPerPixel; s++ {
		u := (float64(i) + sampler.Float64()) / float64(cfg.Width-1)
		v := (float64(cfg.Height-1-j) + sampler.Float64()) / float64(cfg.Height-1)

		r := scene.Camera.GetRay(u, v, sampler)
		c := integrator.RayColor(r, scene.Background, scene.World, scene.Lights, cfg.MaxDepth, u, v, sampler)
		sum = sum.Add(c)
	}

	sum = sum.NaNToZero()
	return sum.Multiply(1.0 / float64(cfg.SamplesPerPixel))
}

// writePixel gamma-corrects (gamma 2.0, i.e. sqrt), clamps to
// [0,0.99], scales to a byte, and stores at row j (top-down; callers
// already compute v with the bottom-up convention, so no further
// inversion is needed here since i,j index the output grid directly).
func writePixel(img *Image, i, j int, color core.Color) {
	gamma := color.Sqrt().Clamp(0, 0.99)
	idx := (j*img.Width + i) * 3
	img.Pix[idx+0] = byte(gamma.X * 256)
	img.Pix[idx+1] = byte(gamma.Y * 256)
	img.Pix[idx+2] = byte(gamma.Z * 256)
}
