// Package game renders a world.Session with the flapcam engine and
// connects it to the webcam pipeline and the sound manager.
package game

import (
	"errors"
	"io"
	"math/rand/v2"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/edwinsyarief/flapcam"
	"github.com/edwinsyarief/flapcam/config"
	"github.com/edwinsyarief/flapcam/sound"
	"github.com/edwinsyarief/flapcam/webcam"
	"github.com/edwinsyarief/flapcam/world"
)

// Screen shake played when the bird crashes, in ticks.
const (
	crashShakeDuration flapcam.TicksDuration = 18
	crashShakeFadeOut  flapcam.TicksDuration = 24
)

// Options wire a Game to its collaborators. Only Config and Assets
// are required.
type Options struct {
	Config   *config.Config
	Assets   *Assets
	Sounds   *sound.Manager
	Pipeline *webcam.Pipeline
	Rand     *rand.Rand
	Logger   logrus.FieldLogger

	// Closed by Game.Close after the pipeline stops, typically the
	// camera and the face detector.
	Closers []io.Closer
}

// Game implements [flapcam.Game].
type Game struct {
	cfg      *config.Config
	assets   *Assets
	sounds   *sound.Manager
	pipeline *webcam.Pipeline
	closers  []io.Closer
	logger   logrus.FieldLogger
	session  *world.Session

	ui          *flapcam.Offscreen
	webcamImage *ebiten.Image
	webcamSeq   uint64
	opts        ebiten.DrawImageOptions
	crashTick   uint64
	crashed     bool

	closeOnce sync.Once
	closeErr  error
}

func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Sounds == nil {
		opts.Sounds = sound.NewManager(nil, opts.Logger)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Game{
		cfg:      opts.Config,
		assets:   opts.Assets,
		sounds:   opts.Sounds,
		pipeline: opts.Pipeline,
		closers:  opts.Closers,
		logger:   opts.Logger.WithField("component", "game"),
		session:  world.NewSession(opts.Config, opts.Rand, opts.Assets.Masks),
	}
}

// Returns the session the game is playing.
func (self *Game) Session() *world.Session {
	return self.session
}

func (self *Game) Update() error {
	if flapcam.LayoutHasChanged() {
		self.logger.WithFields(logrus.Fields{
			"width":  flapcam.HiRes().Width(),
			"height": flapcam.HiRes().Height(),
		}).Debug("layout changed")
	}

	events := self.session.Update(self.input())
	playSounds(self.sounds, self.cfg.Sound, self.session.State(), events)

	for _, event := range events {
		switch event {
		case world.EventCrash:
			self.logger.WithField("score", self.session.Score()).Info("bird crashed")
			flapcam.Camera().TriggerShake(flapcam.ZeroTicks, crashShakeDuration, crashShakeFadeOut)
			self.crashTick, self.crashed = flapcam.Tick().Now(), true
		case world.EventRestart:
			self.crashed = false
		case world.EventStart:
			self.logger.Debug("session started")
		}
	}
	if self.session.QuitRequested() {
		return ebiten.Termination
	}

	if self.cfg.Debug {
		self.debugInfo()
	}
	return nil
}

func (self *Game) input() world.Input {
	cx, cy := ebiten.CursorPosition()
	gx, gy := flapcam.Convert().ToGameResolution(cx, cy)
	in := world.Input{
		CursorX: int(gx),
		CursorY: int(gy),
		Pressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}

	var centroid webcam.Centroid
	var frameHeight int
	if self.pipeline != nil {
		centroid = self.pipeline.Centroid()
		_, frameHeight = self.pipeline.FrameSize()
	}
	in.TargetY, in.HasTarget = steeringTarget(self.cfg.Input, centroid, frameHeight, self.cfg.Screen.Height, in.CursorY)
	return in
}

func (self *Game) debugInfo() {
	debug := flapcam.Debug()
	w, h := flapcam.GetResolution()
	rate := uint64(flapcam.Tick().GetRate())
	debug.Printfr(rate, rate, "flapcam %dx%d, input %s, tick rate %d\n", w, h, self.cfg.Input, flapcam.Tick().GetRate())

	debug.Drawf("[%.1f FPS / %.1f TPS]", ebiten.ActualFPS(), ebiten.ActualTPS())
	cx, cy := ebiten.CursorPosition()
	lx, ly := flapcam.Convert().ToLogicalCoords(cx, cy)
	rx, ry := flapcam.Convert().ToRelativeCoords(cx, cy)
	debug.Drawf("cursor: (%.0f, %.0f) rel (%.2f, %.2f), camera %v", lx, ly, rx, ry, flapcam.Camera().Area().Min)
	debug.Drawf("state: %s, score: %d", self.session.State(), self.session.Score())
	bird := self.session.Bird()
	debug.Drawf("bird y: %.1f -> %.1f, angle: %.1f", bird.Y(), bird.TargetY(), bird.Angle())
	debug.Printfk(ebiten.KeyShiftLeft, "bird y %.1f target %.1f angle %.1f pipes %d\n", bird.Y(), bird.TargetY(), bird.Angle(), len(self.session.Pipes()))
	if self.pipeline != nil {
		c := self.pipeline.Centroid()
		_, seq := self.pipeline.Background()
		debug.Drawf("face: (%d, %d) valid: %t", c.X, c.Y, c.Valid)
		everySecond := uint64(flapcam.Tick().TPS())
		debug.Printfe(everySecond, "webcam frame %d, face (%d, %d) valid %t\n", seq, c.X, c.Y, c.Valid)
	}
}

// Close stops the webcam pipeline, releases the closers and
// silences every sound. It is safe to call more than once.
func (self *Game) Close() error {
	self.closeOnce.Do(func() {
		if self.pipeline != nil {
			self.pipeline.Stop()
		}
		var errs []error
		for _, closer := range self.closers {
			if err := closer.Close(); err != nil {
				self.logger.WithError(err).Warn("release failed")
				errs = append(errs, err)
			}
		}
		self.sounds.StopAll()
		self.closeErr = errors.Join(errs...)
	})
	return self.closeErr
}
