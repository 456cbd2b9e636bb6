package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edwinsyarief/flapcam"
	"github.com/edwinsyarief/flapcam/config"
	"github.com/edwinsyarief/flapcam/game"
	"github.com/edwinsyarief/flapcam/shaker"
	"github.com/edwinsyarief/flapcam/sound"
	"github.com/edwinsyarief/flapcam/webcam"
	"github.com/edwinsyarief/flapcam/webcam/cvcapture"
	"github.com/edwinsyarief/flapcam/world"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	rootCmd = &cobra.Command{
		Use:          "flapcam",
		Short:        "Flappy Bird steered with your face",
		Long:         `Guide the bird through the pipes by moving your head up and down in front of the webcam.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}
	flags cliFlags
)

type cliFlags struct {
	configPath string
	assets     string
	device     int
	detector   string
	noWebcam   bool
	debug      bool
	logLevel   string
	input      string
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "YAML file overriding the built-in settings")
	f.StringVarP(&flags.assets, "assets", "a", "", "asset directory (default \"assets\")")
	f.IntVarP(&flags.device, "device", "d", 0, "webcam device id")
	f.StringVar(&flags.detector, "detector", "", "face detector: pigo or haar")
	f.BoolVar(&flags.noWebcam, "no-webcam", false, "play with the mouse and the default background")
	f.BoolVar(&flags.debug, "debug", false, "draw debug information")
	f.StringVarP(&flags.logLevel, "log-level", "l", "info", "log level")
	f.StringVarP(&flags.input, "input", "i", "", "steering input: auto, face or mouse")
}

func Execute() error {
	return rootCmd.Execute()
}

// applyFlags overlays the flags the user set on cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("assets") {
		cfg.Assets.Root = flags.assets
	}
	if changed("device") {
		cfg.Webcam.Device = flags.device
	}
	if changed("detector") {
		cfg.Webcam.Detector = flags.detector
	}
	if flags.noWebcam {
		cfg.Webcam.Enabled = false
	}
	if flags.debug {
		cfg.Debug = true
	}
	if changed("input") {
		cfg.Input = flags.input
	}
	return cfg.Validate()
}

func run(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(flags.logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger := logrus.StandardLogger()

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	applyScreen(cfg.Screen)
	logger.WithFields(logrus.Fields{
		"resolution": fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height),
		"filter":     flapcam.Scaling().GetFilter().String(),
		"stretch":    flapcam.Scaling().GetStretchingAllowed(),
	}).Debug("screen configured")
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowSize(windowSize(cfg.Screen.Width, cfg.Screen.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	assets, err := game.LoadAssets(cfg.Assets.Root, cfg, logger)
	if err != nil {
		return err
	}

	opts := game.Options{
		Config: cfg,
		Assets: assets,
		Sounds: loadSounds(cfg, logger),
		Logger: logger,
		Rand:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	if cfg.Webcam.Enabled {
		opts.Pipeline, opts.Closers = openWebcam(cfg, logger)
	}

	g := game.New(opts)
	defer g.Close()
	if opts.Pipeline != nil {
		opts.Pipeline.Start(context.Background())
	}

	err = flapcam.Run(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// applyScreen configures the engine resolution, tick rate, scaling
// and camera shaker.
func applyScreen(screen config.ScreenConfig) {
	flapcam.SetResolution(screen.Width, screen.Height)
	flapcam.Camera().SetShaker(&shaker.Random{Amplitude: 0.025, Every: 2})
	flapcam.Tick().SetUPS(screen.TPS)
	flapcam.Tick().SetRate(screen.TickRate)
	flapcam.Scaling().SetStretchingAllowed(screen.Stretch)
	if screen.Filter == config.FilterNearest {
		flapcam.Scaling().SetFilter(flapcam.Nearest)
	} else {
		flapcam.Scaling().SetFilter(flapcam.Linear)
	}
}

// Returns a window size with the game's aspect ratio that fits
// comfortably on the primary monitor.
func windowSize(width, height int) (int, int) {
	monitor := ebiten.Monitor()
	if monitor == nil {
		return width, height
	}
	_, monitorH := monitor.Size()
	if monitorH <= 0 {
		return width, height
	}
	maxH := monitorH * 9 / 10
	if height <= maxH {
		return width, height
	}
	return width * maxH / height, maxH
}

func loadSounds(cfg *config.Config, logger logrus.FieldLogger) *sound.Manager {
	if !cfg.Sound.Enabled {
		return sound.NewManager(nil, logger)
	}
	actx := audio.NewContext(cfg.Sound.SampleRate)
	lib, err := sound.LoadLibrary(actx, filepath.Join(cfg.Assets.Root, "sounds"), logger)
	if err != nil {
		logger.WithError(err).Warn("sounds disabled")
		return sound.NewManager(nil, logger)
	}
	return sound.NewManager(lib, logger)
}

// openWebcam opens the camera and the face detector. A missing
// camera disables the webcam entirely; a missing detector keeps the
// webcam background but disables face steering.
func openWebcam(cfg *config.Config, logger logrus.FieldLogger) (*webcam.Pipeline, []io.Closer) {
	wc := cfg.Webcam
	log := logger.WithField("component", "webcam")

	camera, err := cvcapture.Open(wc.Device, wc.CaptureWidth, wc.CaptureHeight)
	if err != nil {
		log.WithError(err).Warn("webcam unavailable, using the default background")
		return nil, nil
	}
	closers := []io.Closer{camera}

	var detector webcam.Detector
	detector, err = openDetector(cfg)
	if err != nil {
		log.WithError(err).Warn("face detector unavailable, face steering disabled")
		detector = nil
	} else {
		closers = append(closers, detector)
	}

	pipeline := webcam.NewPipeline(camera, detector, webcam.Options{
		FPS:           wc.FPS,
		QueueSize:     wc.QueueSize,
		History:       wc.History,
		RectPadding:   wc.RectPadding,
		RectThickness: wc.RectThickness,
		RectColor:     world.BirdRed,
		Width:         cfg.Screen.Width,
		Height:        cfg.Screen.Height,
		Mirror:        wc.Mirror,
	}, logger)
	return pipeline, closers
}

// Returns the configured cascade, or the model shipped in the asset
// tree for the selected detector.
func cascadePath(cfg *config.Config) string {
	if cfg.Webcam.Cascade != "" {
		return cfg.Webcam.Cascade
	}
	models := filepath.Join(cfg.Assets.Root, "models")
	if cfg.Webcam.Detector == config.DetectorHaar {
		return filepath.Join(models, "haarcascade_frontalface_alt.xml")
	}
	return filepath.Join(models, "facefinder")
}

func openDetector(cfg *config.Config) (webcam.Detector, error) {
	wc := cfg.Webcam
	path := cascadePath(cfg)
	switch wc.Detector {
	case config.DetectorHaar:
		return cvcapture.LoadHaarDetector(path, cvcapture.HaarParams{
			ScaleFactor:  wc.ScaleFactor,
			MinNeighbors: wc.MinNeighbors,
			MinSize:      wc.MinFace,
			MaxSize:      wc.MaxFace,
		})
	default:
		params := webcam.DefaultPigoParams()
		params.MinSize, params.MaxSize = wc.MinFace, wc.MaxFace
		params.ScaleFactor = wc.ScaleFactor
		return webcam.LoadPigoDetector(path, params)
	}
}
