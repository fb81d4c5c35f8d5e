// Command viewer shows the robot scene in a desktop window.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"robot-scene/internal/config"
	"robot-scene/internal/cue"
	"robot-scene/internal/input"
	"robot-scene/internal/pose"
	"robot-scene/internal/postprocess"
	"robot-scene/internal/raster"
	"robot-scene/internal/scene"
	"robot-scene/internal/texture"
)

const tps = 60

type game struct {
	sc     *scene.Scene
	lib    *texture.Library
	player *cue.Player
	logger *zap.Logger

	width, height int
	supersample   int
	lit           bool

	fps      scene.FPSMeter
	dragging bool
	screen   *ebiten.Image
	keys     []ebiten.Key
}

func (g *game) Update() error {
	q := g.sc.Queue()
	g.pollMouse(q)
	g.pollKeys(q)

	res := g.sc.Tick(1.0 / tps)
	if res.EasterEggActivated {
		g.logger.Info("easter egg")
		g.player.PlayEasterEgg()
	}
	return nil
}

func (g *game) pollMouse(q *input.Queue) {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.dragging = true
		q.Push(input.DragStart(float64(x), float64(y)))
	case g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.dragging = false
		q.Push(input.DragEnd())
	case g.dragging:
		q.Push(input.DragMove(float64(x), float64(y)))
	}

	// ebiten reports scrolling up as a positive offset.
	if _, dy := ebiten.Wheel(); dy != 0 {
		q.Push(input.Wheel(input.WheelTick(-dy)))
	}
}

func (g *game) pollKeys(q *input.Queue) {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		key, ok := translateKey(k)
		if !ok {
			continue
		}
		key.Ctrl, key.Shift = ctrl, shift
		if ev, ok := input.Bind(key); ok {
			q.Push(ev)
		}
	}
}

// translateKey maps letters, digits and space; everything else is ignored.
func translateKey(k ebiten.Key) (input.Key, bool) {
	name := k.String()
	switch {
	case k == ebiten.KeySpace:
		return input.Key{Name: "space"}, true
	case len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z':
		return input.Key{Rune: rune(name[0] - 'A' + 'a')}, true
	case strings.HasPrefix(name, "Digit") && len(name) == 6:
		return input.Key{Rune: rune(name[5])}, true
	}
	return input.Key{}, false
}

func (g *game) Draw(screen *ebiten.Image) {
	f := g.sc.Frame()
	img := raster.RenderFrame(f, g.lib, raster.Options{
		Width:       g.width,
		Height:      g.height,
		Supersample: g.supersample,
		Lit:         g.lit,
	})
	if g.supersample > 1 {
		img = postprocess.Resample(img, g.width, g.height, postprocess.Fast)
	}

	if g.screen == nil {
		g.screen = ebiten.NewImage(g.width, g.height)
	}
	g.screen.WritePixels(img.Pix)
	screen.DrawImage(g.screen, nil)

	fps := g.fps.Tick(time.Now())
	text := fmt.Sprintf("%s\nTarget: %s  FPS: %d", f.Status, f.Target, fps)
	if f.Help != "" {
		text += "\n\n" + f.Help
	}
	ebitenutil.DebugPrint(screen, text)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup always happens.
func run(args []string) error {
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	configFile := fs.String("config", "", "Path to config.json file")
	baseDir := fs.String("base", "", "Base directory for relative paths (default: cwd)")
	textureDir := fs.String("textures", "", "Directory searched for slot textures by name")
	width := fs.Int("width", 0, "Window width (default: 640)")
	height := fs.Int("height", 0, "Window height (default: 480)")
	supersample := fs.Int("supersample", 1, "Supersample factor")
	target := fs.String("target", "", "Initial control target (default: rightArm)")
	logLevel := fs.String("log", "", "Log level (debug, info, warn, error)")
	autostart := fs.Bool("autostart", false, "Start the animation immediately")
	lit := fs.Bool("lit", false, "Apply flat lighting")
	mute := fs.Bool("mute", false, "Disable audio")
	volume := fs.Float64("volume", 0.5, "Audio volume 0-1")
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
		BaseDir:     *baseDir,
		TextureDir:  *textureDir,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Target:      *target,
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

	// Textures stream in while the window is already up.
	lib := texture.NewLibrary(texture.BuildIndex(cfg.TextureDir), logger.Named("texture"))
	lib.LoadAll(cfg.Textures.Map())

	sc := scene.New(nil, scene.Options{
		Target:    tgt,
		Autostart: cfg.Autostart,
		MaxStep:   cfg.MaxFrameDelta,
		Logger:    logger.Named("scene"),
	})
	sc.ApplySettings(string(cfg.FOV), string(cfg.Distance), cfg.Preset)

	player := cue.NewPlayer(*volume)
	if !*mute {
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		}
	}
	defer player.Close()

	g := &game{
		sc:          sc,
		lib:         lib,
		player:      player,
		logger:      logger,
		width:       cfg.Width,
		height:      cfg.Height,
		supersample: cfg.Supersample,
		lit:         cfg.Lit,
	}

	ebiten.SetWindowTitle("Robot Scene")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)
	return ebiten.RunGame(g)
}
