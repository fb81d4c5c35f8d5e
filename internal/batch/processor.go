package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"go.uber.org/zap"

	"robot-scene/internal/postprocess"
	"robot-scene/internal/raster"
	"robot-scene/internal/scene"
	"robot-scene/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	TexResolver texture.Resolver
	Width       int
	Height      int
	Supersample int
	Workers     int
	Lit         bool
	HUD         bool // burn the status line into each frame
	Logger      *zap.Logger
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Image   string // path relative to OutputDir
	Success bool
	Error   string
}

// FrameName is the file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%04d.webp", i)
}

// Run renders all frames using a worker pool. A failing frame is reported in
// its Result and does not stop the others.
func Run(cfg Config, frames []scene.Frame) []Result {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

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
					logger.Info("rendering",
						zap.Int64("done", p),
						zap.Int("total", total),
						zap.Float64("frames_per_sec", float64(p)/elapsed))
				}
			}
		}
	}()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		close(done)
		for i := range results {
			results[i] = Result{Frame: i, Image: FrameName(i), Error: err.Error()}
		}
		return results
	}

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, idx, frames[idx])
				processed.Add(1)
				if !results[idx].Success {
					logger.Warn("frame failed", zap.Int("frame", idx), zap.String("error", results[idx].Error))
				}
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func processFrame(cfg Config, idx int, f scene.Frame) Result {
	res := Result{Frame: idx, Image: FrameName(idx)}

	img := raster.RenderFrame(f, cfg.TexResolver, raster.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Lit:         cfg.Lit,
	})

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	if cfg.HUD {
		postprocess.DrawHUD(img, []string{f.Status})
	}

	// Save as WebP
	out, err := os.Create(filepath.Join(cfg.OutputDir, res.Image))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer out.Close()

	if err := nativewebp.Encode(out, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}
