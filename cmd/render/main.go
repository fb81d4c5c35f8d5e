package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"robot-scene/internal/batch"
	"robot-scene/internal/config"
	"robot-scene/internal/cue"
	"robot-scene/internal/pose"
	"robot-scene/internal/scene"
	"robot-scene/internal/texture"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup always happens.
func run(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)

	// CLI flags
	configFile := fs.String("config", "", "Path to config.json file")
	baseDir := fs.String("base", "", "Base directory for relative paths (default: cwd)")
	outputDir := fs.String("output", "", "Output directory (default: <base>/frames)")
	textureDir := fs.String("textures", "", "Directory searched for slot textures by name")
	width := fs.Int("width", 0, "Frame width (default: 640)")
	height := fs.Int("height", 0, "Frame height (default: 480)")
	supersample := fs.Int("supersample", 0, "Supersample factor (default: 2)")
	workers := fs.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	fps := fs.Int("fps", 0, "Simulation rate in frames per second (default: 30)")
	frames := fs.Int("frames", 0, "Number of frames to simulate (default: 90)")
	target := fs.String("target", "", "Initial control target (default: rightArm)")
	fov := fs.String("fov", "", "Field of view in degrees")
	distance := fs.String("distance", "", "Camera distance")
	preset := fs.String("preset", "", "Camera preset (lft, rbb, ...)")
	logLevel := fs.String("log", "", "Log level (debug, info, warn, error)")
	autostart := fs.Bool("autostart", false, "Start the animation on frame 0")
	lit := fs.Bool("lit", false, "Apply flat lighting")
	hud := fs.Bool("hud", false, "Burn the status line into each frame")
	volume := fs.Float64("volume", 0.5, "Easter egg riff volume for easter_egg.wav")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			return err
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		BaseDir:     *baseDir,
		OutputDir:   *outputDir,
		TextureDir:  *textureDir,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Workers:     *workers,
		FPS:         *fps,
		Frames:      *frames,
		Target:      *target,
		FOV:         *fov,
		Distance:    *distance,
		Preset:      *preset,
		LogLevel:    *logLevel,
		Autostart:   *autostart,
		Lit:         *lit,
	})

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	tgt, ok := pose.ParseTarget(cfg.Target)
	if !ok {
		return fmt.Errorf("unknown target %q", cfg.Target)
	}

	// Textures
	texIndex := texture.BuildIndex(cfg.TextureDir)
	lib := texture.NewLibrary(texIndex, logger.Named("texture"))
	lib.LoadAll(cfg.Textures.Map())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := lib.Wait(ctx); err != nil {
		logger.Warn("texture loads still pending, rendering with placeholders", zap.Error(err))
	}
	cancel()
	fmt.Printf("Textures: %d indexed\n", texIndex.Len())

	// Scene
	sc := scene.New(nil, scene.Options{
		Target:    tgt,
		Autostart: cfg.Autostart,
		MaxStep:   cfg.MaxFrameDelta,
		Logger:    logger.Named("scene"),
	})
	for _, err := range sc.ApplySettings(string(cfg.FOV), string(cfg.Distance), cfg.Preset) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	timeline := make([]batch.Cue, len(cfg.Timeline))
	for i, c := range cfg.Timeline {
		timeline[i] = batch.Cue{Frame: c.Frame, Command: c.Command}
	}

	fmt.Println("Robot Scene → WebP frames")
	fmt.Printf("Frames: %d @ %d fps, %dx%d (x%d), Workers: %d\n",
		cfg.Frames, cfg.FPS, cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	sim := batch.Simulate(sc, cfg.Frames, cfg.FPS, timeline)
	for _, err := range sim.Rejected {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		TexResolver: lib,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Lit:         cfg.Lit,
		HUD:         *hud,
		Logger:      logger.Named("batch"),
	}, sim.Frames)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Image, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, cfg.FPS, sim.Frames, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(sim.EasterEggs) > 0 {
		fmt.Printf("Easter egg at frame %d\n", sim.EasterEggs[0])
		if err := writeRiff(filepath.Join(cfg.OutputDir, "easter_egg.wav"), *volume); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d frames failed", failed, len(results))
	}
	return nil
}

func writeRiff(path string, volume float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cue.WriteWAV(f, volume); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
