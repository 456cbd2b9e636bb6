package world

import "github.com/edwinsyarief/flapcam/config"

// Pipe is a pair of obstacles sharing a gap centred on GapY.
type Pipe struct {
	Passed bool

	cfg    config.PipeConfig
	x      int
	gapY   int
	top    Rect
	bottom Rect
	solid  *Mask
}

// NewPipe creates a pipe pair at x whose gap is centred on gapY.
func NewPipe(x, screenHeight, gapY int, cfg config.PipeConfig) *Pipe {
	half := cfg.Gap / 2
	return &Pipe{
		cfg:    cfg,
		x:      x,
		gapY:   gapY,
		top:    Rect{X: x, Y: 0, W: cfg.Width, H: gapY - half},
		bottom: Rect{X: x, Y: gapY + half, W: cfg.Width, H: screenHeight - (gapY + half)},
		solid:  NewFilledMask(cfg.Width, cfg.Height),
	}
}

func (self *Pipe) Update() {
	self.x -= self.cfg.Speed
	self.top.X = self.x
	self.bottom.X = self.x
}

func (self *Pipe) X() int { return self.x }
func (self *Pipe) GapY() int { return self.gapY }
func (self *Pipe) TopRect() Rect { return self.top }
func (self *Pipe) BottomRect() Rect { return self.bottom }

// TopImageY is where the flipped pipe image starts so that its
// lower end meets the top of the gap.
func (self *Pipe) TopImageY() int { return self.top.H - self.cfg.Height }

// BottomImageY is where the upright pipe image starts.
func (self *Pipe) BottomImageY() int { return self.bottom.Y }

// Cleared reports whether the pipe is fully behind birdX.
func (self *Pipe) Cleared(birdX int) bool {
	return self.x+self.cfg.PassMargin < birdX
}

// OffScreen reports whether the pipe scrolled past the left edge.
func (self *Pipe) OffScreen() bool {
	return self.x+self.cfg.PassMargin < 0
}

// Collide tests the bird's current frame mask against both pipe
// images.
func (self *Pipe) Collide(bird *Bird, birdMask *Mask) bool {
	offX := self.x - bird.X()
	topOffY := int(float64(self.TopImageY()) - bird.Y())
	bottomOffY := int(float64(self.BottomImageY()) - bird.Y())
	return birdMask.Overlap(self.solid, offX, topOffY) || birdMask.Overlap(self.solid, offX, bottomOffY)
}
