package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Textures holds optional image paths per texture slot.
type Textures struct {
	Metal  string `json:"metal"`
	Head   string `json:"head"`
	Floor  string `json:"floor"`
	Skybox string `json:"skybox"`
}

// Map returns the paths keyed by slot name.
func (t Textures) Map() map[string]string {
	return map[string]string{
		"metal":  t.Metal,
		"head":   t.Head,
		"floor":  t.Floor,
		"skybox": t.Skybox,
	}
}

// Cue is one scripted command of a timeline, applied before the given frame.
type Cue struct {
	Frame   int    `json:"frame"`
	Command string `json:"command"`
}

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir    string   `json:"base_dir"`
	Textures   Textures `json:"textures"`
	TextureDir string   `json:"texture_dir"`
	OutputDir  string   `json:"output_dir"`

	// Render settings
	Width       int  `json:"width"`
	Height      int  `json:"height"`
	Supersample int  `json:"supersample"`
	Workers     int  `json:"workers"`
	Lit         bool `json:"lit"`

	// Simulation
	FPS           int     `json:"fps"`
	Frames        int     `json:"frames"`
	MaxFrameDelta float64 `json:"max_frame_delta"`
	Target        string  `json:"target"`
	Autostart     bool    `json:"autostart"`
	Timeline      []Cue   `json:"timeline"`

	// Camera settings, applied as fov, then distance, then preset.
	// Values are validated by the camera, not here.
	FOV      Setting `json:"fov"`
	Distance Setting `json:"distance"`
	Preset   string  `json:"preset"`

	LogLevel string `json:"log_level"`
}

// Setting is a camera value as typed by the user. In JSON it may be a
// number (45) or a string ("45"); either way the raw text is kept.
type Setting string

func (s *Setting) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = Setting(text)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("config: setting %s: %w", data, err)
	}
	*s = Setting(n)
	return nil
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Target != "" {
		c.Target = flags.Target
	}
	if flags.FOV != "" {
		c.FOV = Setting(flags.FOV)
	}
	if flags.Distance != "" {
		c.Distance = Setting(flags.Distance)
	}
	if flags.Preset != "" {
		c.Preset = flags.Preset
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	c.Autostart = c.Autostart || flags.Autostart
	c.Lit = c.Lit || flags.Lit

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	// Resolve relative paths against base dir
	if c.TextureDir == "" {
		if dir := filepath.Join(c.BaseDir, "textures"); isDir(dir) {
			c.TextureDir = dir
		}
	} else {
		c.TextureDir = c.abs(c.TextureDir)
	}
	c.Textures.Metal = c.abs(c.Textures.Metal)
	c.Textures.Head = c.abs(c.Textures.Head)
	c.Textures.Floor = c.abs(c.Textures.Floor)
	c.Textures.Skybox = c.abs(c.Textures.Skybox)

	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.BaseDir, "frames")
	} else {
		c.OutputDir = c.abs(c.OutputDir)
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Frames <= 0 {
		c.Frames = 90
	}
	if c.MaxFrameDelta <= 0 {
		c.MaxFrameDelta = 0.25
	}
	if c.Target == "" {
		c.Target = "rightArm"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) abs(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	BaseDir     string
	OutputDir   string
	TextureDir  string
	Width       int
	Height      int
	Supersample int
	Workers     int
	FPS         int
	Frames      int
	Target      string
	FOV         string
	Distance    string
	Preset      string
	LogLevel    string
	Autostart   bool
	Lit         bool
}

// Logger builds a console logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	return zc.Build()
}
