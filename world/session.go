package world

import (
	"math"
	"math/rand/v2"

	"github.com/edwinsyarief/flapcam/config"
)

// State is the phase a session is in.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StateGameOver
)

func (self State) String() string {
	switch self {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event is something the session wants the outside world to react
// to, typically with a sound or a screen shake.
type Event int

const (
	EventStart Event = iota
	EventQuit
	EventRestart
	EventPoint
	EventCrash
)

// Input is everything the session reads from the player in one tick.
// Cursor coordinates are logical screen coordinates.
type Input struct {
	CursorX, CursorY int
	Pressed          bool

	// Height the bird should move towards, in screen coordinates.
	TargetY   float64
	HasTarget bool
}

// FaceToScreenY maps a face centre height from a capture of height
// captureHeight onto a screen of height screenHeight, clamped to the
// screen and truncated to a whole pixel.
func FaceToScreenY(centerY, captureHeight, screenHeight int) float64 {
	if captureHeight <= 0 {
		return 0
	}
	y := float64(centerY) / float64(captureHeight) * float64(screenHeight)
	return math.Trunc(min(max(y, 0), float64(screenHeight)))
}

// Session is one run of the game from the title screen through
// game over and back.
type Session struct {
	Start   *Button
	Quit    *Button
	Restart *Button

	cfg        *config.Config
	rng        *rand.Rand
	masks      []*Mask
	state      State
	bird       *Bird
	ground     *Ground
	pipes      []*Pipe
	score      int
	quit       bool
	sinceSpawn int
	spawnEvery int
}

// NewSession builds a session on the title screen. masks holds one
// collision mask per bird animation frame; when empty, the bird's
// bounding box is used.
func NewSession(cfg *config.Config, rng *rand.Rand, masks []*Mask) *Session {
	if len(masks) == 0 {
		masks = []*Mask{NewFilledMask(cfg.Bird.Width, cfg.Bird.Height)}
	}
	w, h := cfg.Screen.Width, cfg.Screen.Height
	s := &Session{
		Restart: NewButton(w/2-100, h/2+60, 200, 60, "RESTART", GrassGreen, GrassDarkGreen),
		Start:   NewButton(w/2-100, h/2+8, 200, 60, "START", GrassGreen, GrassDarkGreen),
		Quit:    NewButton(w/2-100, h/2+80, 200, 60, "QUIT", BirdRed, BirdDarkRed),

		cfg:        cfg,
		rng:        rng,
		masks:      masks,
		spawnEvery: cfg.SpawnIntervalTicks(),
	}
	s.Reset()
	// the first pipe shows up as soon as play starts
	s.sinceSpawn = s.spawnEvery
	return s
}

// Reset returns to the title screen with a fresh bird and ground.
// The spawn clock keeps running across resets.
func (self *Session) Reset() {
	self.bird = NewBird(self.cfg.Bird.X, float64(self.cfg.Screen.Height/2), len(self.masks), self.cfg.Bird)
	self.ground = NewGround(self.cfg.Screen.Width, self.cfg.Screen.Height, self.cfg.Ground)
	self.pipes = nil
	self.score = 0
	self.state = StateTitle
}

// Update advances the session by one tick and returns the events
// that happened during it.
func (self *Session) Update(in Input) []Event {
	var events []Event

	switch self.state {
	case StateTitle:
		self.Start.CheckHover(in.CursorX, in.CursorY)
		self.Quit.CheckHover(in.CursorX, in.CursorY)
		if self.Start.Clicked(in.CursorX, in.CursorY, in.Pressed) {
			events = append(events, EventStart)
			self.state = StatePlaying
		}
		if self.Quit.Clicked(in.CursorX, in.CursorY, in.Pressed) {
			events = append(events, EventQuit)
			self.quit = true
		}
	case StateGameOver:
		self.Restart.CheckHover(in.CursorX, in.CursorY)
		if self.Restart.Clicked(in.CursorX, in.CursorY, in.Pressed) {
			events = append(events, EventRestart)
			self.Reset()
		}
	}

	if self.state == StatePlaying {
		events = self.step(in, events)
	}
	return events
}

func (self *Session) step(in Input, events []Event) []Event {
	self.sinceSpawn += 1
	if in.HasTarget {
		self.bird.SetPosition(in.TargetY)
	}
	self.bird.Update()
	self.ground.Update()

	if self.sinceSpawn > self.spawnEvery {
		span := max(self.cfg.Pipe.MaxY-self.cfg.Pipe.MinY, 0)
		gapY := self.cfg.Pipe.MinY + self.rng.IntN(span+1)
		self.pipes = append(self.pipes, NewPipe(self.cfg.Screen.Width, self.cfg.Screen.Height, gapY, self.cfg.Pipe))
		self.sinceSpawn = 0
	}

	kept := self.pipes[:0]
	for _, pipe := range self.pipes {
		pipe.Update()
		if !pipe.Passed && pipe.Cleared(self.bird.X()) {
			pipe.Passed = true
			self.score += 1
			events = append(events, EventPoint)
		}
		if !pipe.OffScreen() {
			kept = append(kept, pipe)
		}
	}
	clear(self.pipes[len(kept):])
	self.pipes = kept

	mask := self.BirdMask()
	crashed := self.ground.Collide(self.bird)
	for _, pipe := range self.pipes {
		if pipe.Collide(self.bird, mask) {
			crashed = true
			break
		}
	}
	if crashed {
		self.state = StateGameOver
		events = append(events, EventCrash)
	}
	return events
}

// BirdMask is the collision mask of the bird's current frame.
func (self *Session) BirdMask() *Mask {
	return self.masks[self.bird.Frame()%len(self.masks)]
}

func (self *Session) State() State { return self.state }
func (self *Session) Started() bool { return self.state != StateTitle }
func (self *Session) Score() int { return self.score }
func (self *Session) Bird() *Bird { return self.bird }
func (self *Session) Ground() *Ground { return self.ground }
func (self *Session) Pipes() []*Pipe { return self.pipes }
func (self *Session) QuitRequested() bool { return self.quit }
