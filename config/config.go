// Package config holds every tunable value of the game and loads
// overrides from a YAML file on top of the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Detector names accepted by WebcamConfig.Detector.
const (
	DetectorPigo = "pigo"
	DetectorHaar = "haar"
)

// Scaling filters accepted by ScreenConfig.Filter.
const (
	FilterLinear  = "linear"
	FilterNearest = "nearest"
)

// Input modes accepted by Config.Input.
const (
	InputAuto  = "auto"
	InputFace  = "face"
	InputMouse = "mouse"
)

// Config is the root of the configuration tree.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Bird   BirdConfig   `yaml:"bird"`
	Pipe   PipeConfig   `yaml:"pipe"`
	Ground GroundConfig `yaml:"ground"`
	Webcam WebcamConfig `yaml:"webcam"`
	Sound  SoundConfig  `yaml:"sound"`
	Assets AssetsConfig `yaml:"assets"`
	Input  string       `yaml:"input"`
	Debug  bool         `yaml:"debug"`
}

// ScreenConfig defines the logical resolution, tick rate and how the
// logical canvas is scaled onto the window.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`

	// Engine ticks per update. Shakes are measured in ticks.
	TickRate int `yaml:"tick_rate"`

	// Fill the window without letterbox borders, distorting the game.
	Stretch bool   `yaml:"stretch"`
	Filter  string `yaml:"filter"`
}

// BirdConfig defines the bird size and easing parameters.
type BirdConfig struct {
	X                 int     `yaml:"x"`
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	PositionSpeed     float64 `yaml:"position_speed"`
	PositionSnap      float64 `yaml:"position_snap"`
	AngleSpeed        float64 `yaml:"angle_speed"`
	AngleSnap         float64 `yaml:"angle_snap"`
	MaxAngle          float64 `yaml:"max_angle"`
	MovementThreshold float64 `yaml:"movement_threshold"`
	AnimationSpeed    float64 `yaml:"animation_speed"`
}

// PipeConfig defines pipe geometry, scrolling and spawning.
type PipeConfig struct {
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	Gap           int           `yaml:"gap"`
	Speed         int           `yaml:"speed"`
	MinY          int           `yaml:"min_y"`
	MaxY          int           `yaml:"max_y"`
	// A duration string such as "1500ms". Bare integers are read as
	// nanoseconds and rejected by Validate.
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	PassMargin    int           `yaml:"pass_margin"`
}

// GroundConfig defines the scrolling ground strip.
type GroundConfig struct {
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
}

// WebcamConfig defines capture and face detection parameters.
type WebcamConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Device        int     `yaml:"device"`
	CaptureWidth  int     `yaml:"capture_width"`
	CaptureHeight int     `yaml:"capture_height"`
	FPS           int     `yaml:"fps"`
	QueueSize     int     `yaml:"queue_size"`
	History       int     `yaml:"history"`
	Detector      string  `yaml:"detector"`
	Cascade       string  `yaml:"cascade"`
	MinFace       int     `yaml:"min_face"`
	MaxFace       int     `yaml:"max_face"`
	ScaleFactor   float64 `yaml:"scale_factor"`
	MinNeighbors  int     `yaml:"min_neighbors"`
	RectPadding   int     `yaml:"rect_padding"`
	RectThickness int     `yaml:"rect_thickness"`
	Mirror        bool    `yaml:"mirror"`
}

// SoundConfig defines playback volumes and status timeouts.
type SoundConfig struct {
	Enabled       bool          `yaml:"enabled"`
	ButtonVolume  float64       `yaml:"button_volume"`
	PointVolume   float64       `yaml:"point_volume"`
	StatusTimeout time.Duration `yaml:"status_timeout"`
	SampleRate    int           `yaml:"sample_rate"`
}

// AssetsConfig points at the asset directory tree.
type AssetsConfig struct {
	Root string `yaml:"root"`
}

// Default returns the configuration the game ships with.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:    540,
			Height:   1080,
			Title:    "Flappy Bird CV",
			TPS:      60,
			TickRate: 1,
			Filter:   FilterLinear,
		},
		Bird: BirdConfig{
			X:                 100,
			Width:             50,
			Height:            35,
			PositionSpeed:     0.1,
			PositionSnap:      0.5,
			AngleSpeed:        0.2,
			AngleSnap:         0.1,
			MaxAngle:          30,
			MovementThreshold: 2,
			AnimationSpeed:    0.2,
		},
		Pipe: PipeConfig{
			Width:         78,
			Height:        1080,
			Gap:           200,
			Speed:         3,
			MinY:          320,
			MaxY:          860,
			SpawnInterval: 1500 * time.Millisecond,
			PassMargin:    80,
		},
		Ground: GroundConfig{
			Height: 100,
			Speed:  3,
		},
		Webcam: WebcamConfig{
			Enabled:       true,
			Device:        0,
			CaptureWidth:  640,
			CaptureHeight: 480,
			FPS:           15,
			QueueSize:     2,
			History:       5,
			Detector:      DetectorPigo,
			MinFace:       32,
			MaxFace:       320,
			ScaleFactor:   1.1,
			MinNeighbors:  5,
			RectPadding:   2,
			RectThickness: 2,
			Mirror:        true,
		},
		Sound: SoundConfig{
			Enabled:       true,
			ButtonVolume:  0.7,
			PointVolume:   0.75,
			StatusTimeout: time.Second,
			SampleRate:    44100,
		},
		Assets: AssetsConfig{Root: "assets"},
		Input:  InputAuto,
	}
}

// Load reads path and overlays it on Default. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.ClampPipeRange()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ClampPipeRange keeps the gap centre at least 200 units away from
// both screen edges.
func (self *Config) ClampPipeRange() {
	self.Pipe.MinY = max(200, self.Pipe.MinY)
	self.Pipe.MaxY = min(self.Screen.Height-200, self.Pipe.MaxY)
}

// SpawnIntervalTicks converts the pipe spawn interval to game ticks.
func (self *Config) SpawnIntervalTicks() int {
	ticks := int(self.Pipe.SpawnInterval.Seconds() * float64(self.Screen.TPS))
	return max(ticks, 1)
}

// TickDuration returns the time one update takes.
func (self *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(self.Screen.TPS)
}

// Validate reports the first inconsistent value.
func (self *Config) Validate() error {
	switch {
	case self.Screen.Width < 1 || self.Screen.Height < 1:
		return fmt.Errorf("%w: screen size must be positive, got %dx%d", ErrInvalid, self.Screen.Width, self.Screen.Height)
	case self.Screen.TPS < 1:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalid, self.Screen.TPS)
	case self.Screen.TickRate < 1:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, self.Screen.TickRate)
	case self.Screen.Filter != FilterLinear && self.Screen.Filter != FilterNearest:
		return fmt.Errorf("%w: unknown scaling filter %q", ErrInvalid, self.Screen.Filter)
	case self.Bird.Width < 1 || self.Bird.Height < 1:
		return fmt.Errorf("%w: bird size must be positive", ErrInvalid)
	case self.Pipe.Width < 1 || self.Pipe.Height < 1 || self.Pipe.Gap < 1:
		return fmt.Errorf("%w: pipe size and gap must be positive", ErrInvalid)
	case self.Pipe.MinY > self.Pipe.MaxY:
		return fmt.Errorf("%w: pipe min_y %d is above max_y %d", ErrInvalid, self.Pipe.MinY, self.Pipe.MaxY)
	case self.Pipe.SpawnInterval < self.TickDuration():
		return fmt.Errorf("%w: pipe spawn_interval %s is shorter than one tick (%s)", ErrInvalid, self.Pipe.SpawnInterval, self.TickDuration())
	case self.Ground.Height < 0 || self.Ground.Height > self.Screen.Height:
		return fmt.Errorf("%w: ground height %d out of range", ErrInvalid, self.Ground.Height)
	case self.Webcam.FPS < 1:
		return fmt.Errorf("%w: webcam fps must be positive, got %d", ErrInvalid, self.Webcam.FPS)
	case self.Webcam.QueueSize < 1:
		return fmt.Errorf("%w: webcam queue_size must be positive", ErrInvalid)
	case self.Webcam.History < 1:
		return fmt.Errorf("%w: webcam history must be positive", ErrInvalid)
	case self.Webcam.CaptureWidth < 1 || self.Webcam.CaptureHeight < 1:
		return fmt.Errorf("%w: capture size must be positive", ErrInvalid)
	case self.Webcam.Detector != DetectorPigo && self.Webcam.Detector != DetectorHaar:
		return fmt.Errorf("%w: unknown detector %q", ErrInvalid, self.Webcam.Detector)
	case self.Input != InputAuto && self.Input != InputFace && self.Input != InputMouse:
		return fmt.Errorf("%w: unknown input mode %q", ErrInvalid, self.Input)
	case self.Sound.SampleRate < 1:
		return fmt.Errorf("%w: sound sample_rate must be positive", ErrInvalid)
	}
	return nil
}
