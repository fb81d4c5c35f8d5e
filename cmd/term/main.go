// Command term runs the robot scene inside a truecolor terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"robot-scene/internal/config"
	"robot-scene/internal/cue"
	"robot-scene/internal/input"
	"robot-scene/internal/pose"
	"robot-scene/internal/raster"
	"robot-scene/internal/scene"
	"robot-scene/internal/termview"
	"robot-scene/internal/texture"
)

// cellPixels approximates a terminal cell's width in device pixels, so a
// drag across the screen turns the camera about as far as in a window.
const cellPixels = 8

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup always happens.
func run(args []string) error {
	fs := flag.NewFlagSet("term", flag.ContinueOnError)
	configFile := fs.String("config", "", "Path to config.json file")
	baseDir := fs.String("base", "", "Base directory for relative paths (default: cwd)")
	textureDir := fs.String("textures", "", "Directory searched for slot textures by name")
	fps := fs.Int("fps", 0, "Redraw rate (default: 30)")
	target := fs.String("target", "", "Initial control target (default: rightArm)")
	logFile := fs.String("logfile", "", "Write logs here instead of discarding them")
	autostart := fs.Bool("autostart", false, "Start the animation immediately")
	lit := fs.Bool("lit", false, "Apply flat lighting")
	mute := fs.Bool("mute", false, "Disable audio")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			return err
		}
	}
	cfg.Resolve(config.Flags{
		BaseDir:    *baseDir,
		TextureDir: *textureDir,
		FPS:        *fps,
		Target:     *target,
		Autostart:  *autostart,
		Lit:        *lit,
	})

	// The terminal is the display; logs only go to a file.
	logger := zap.NewNop()
	if *logFile != "" {
		zc := zap.NewDevelopmentConfig()
		zc.OutputPaths = []string{*logFile}
		zc.ErrorOutputPaths = []string{*logFile}
		l, err := zc.Build()
		if err != nil {
			return err
		}
		logger = l
	}
	defer logger.Sync()

	tgt, ok := pose.ParseTarget(cfg.Target)
	if !ok {
		return fmt.Errorf("unknown target %q", cfg.Target)
	}

	lib := texture.NewLibrary(texture.BuildIndex(cfg.TextureDir), logger.Named("texture"))
	lib.LoadAll(cfg.Textures.Map())

	sc := scene.New(nil, scene.Options{
		Target:    tgt,
		Autostart: cfg.Autostart,
		MaxStep:   cfg.MaxFrameDelta,
		Logger:    logger.Named("scene"),
	})
	sc.ApplySettings(string(cfg.FOV), string(cfg.Distance), cfg.Preset)

	player := cue.NewPlayer(0.5)
	if !*mute {
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	loop(screen, sc, viewer{lib: lib, player: player, logger: logger, lit: cfg.Lit}, cfg.FPS)
	return nil
}

type viewer struct {
	lib    *texture.Library
	player *cue.Player
	logger *zap.Logger
	lit    bool
}

// loop redraws at fps until the user quits. The screen must be initialised.
func loop(screen tcell.Screen, sc *scene.Scene, v viewer, fps int) {
	screen.EnableMouse()
	screen.Clear()

	quit := make(chan struct{})
	go pump(screen, sc.Queue(), quit)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var meter scene.FPSMeter
	last := time.Now()
	for {
		select {
		case <-quit:
			return
		case now := <-ticker.C:
			res := sc.Tick(now.Sub(last).Seconds())
			last = now
			if res.EasterEggActivated {
				v.logger.Info("easter egg")
				v.player.PlayEasterEgg()
			}
			draw(screen, sc.Frame(), v.lib, v.lit, meter.Tick(now))
		}
	}
}

// pump turns terminal events into scene input until the user quits.
func pump(screen tcell.Screen, q *input.Queue, quit chan<- struct{}) {
	var dragging bool
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			close(quit)
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				close(quit)
				return
			case tcell.KeyCtrlR:
				q.Push(input.Simple(input.KindResetCamera))
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					close(quit)
					return
				}
				key := input.Key{
					Rune:  ev.Rune(),
					Ctrl:  ev.Modifiers()&tcell.ModCtrl != 0,
					Shift: ev.Modifiers()&tcell.ModShift != 0,
				}
				if e, ok := input.Bind(key); ok {
					q.Push(e)
				}
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			px, py := float64(x*cellPixels), float64(y*cellPixels*2)
			buttons := ev.Buttons()
			switch {
			case buttons&tcell.WheelUp != 0:
				q.Push(input.Wheel(input.WheelTick(-1)))
			case buttons&tcell.WheelDown != 0:
				q.Push(input.Wheel(input.WheelTick(1)))
			case buttons&tcell.Button1 != 0 && !dragging:
				dragging = true
				q.Push(input.DragStart(px, py))
			case buttons&tcell.Button1 != 0:
				q.Push(input.DragMove(px, py))
			case dragging:
				dragging = false
				q.Push(input.DragEnd())
			}
		}
	}
}

func draw(screen tcell.Screen, f scene.Frame, lib *texture.Library, lit bool, fps int) {
	cols, rows := screen.Size()
	if cols < 1 || rows < 2 {
		return
	}
	w, h := termview.PixelSize(cols, rows-1)
	img := raster.RenderFrame(f, lib, raster.Options{Width: w, Height: h, Lit: lit})
	termview.Blit(screen, img, 0, 0)

	status := fmt.Sprintf(" %s | %s | %d fps | q quits", f.Status, f.Target, fps)
	status += strings.Repeat(" ", max(0, cols-len(status)))
	termview.Text(screen, 0, rows-1, status, tcell.StyleDefault.Reverse(true))

	if f.Help != "" {
		for i, line := range strings.Split(f.Help, "\n") {
			termview.Text(screen, 1, 1+i, line, tcell.StyleDefault)
		}
	}
	screen.Show()
}
