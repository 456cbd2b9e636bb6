package world

import (
	"github.com/edwinsyarief/flapcam/config"
	"github.com/edwinsyarief/flapcam/tracker"
)

// Bird eases towards a target height and tilts in the direction
// it is moving.
type Bird struct {
	// Tracker moves the bird towards its target height. The
	// horizontal axis is always kept at the bird's x.
	Tracker tracker.Tracker

	cfg config.BirdConfig

	x          int
	y          float64
	targetY    float64
	lastY      float64
	speedY     float64
	angle      float64
	frames     int
	frame      int
	animCursor float64
	rect       Rect
}

// NewBird places a bird with the given number of animation frames
// at (x, y). A frame count below one is treated as one.
func NewBird(x int, y float64, frames int, cfg config.BirdConfig) *Bird {
	return &Bird{
		Tracker: &tracker.Eased{Factor: cfg.PositionSpeed, Snap: cfg.PositionSnap},
		cfg:     cfg,
		x:       x,
		y:       y,
		targetY: y,
		lastY:   y,
		frames:  max(frames, 1),
		rect:    Rect{X: x, Y: int(y), W: cfg.Width, H: cfg.Height},
	}
}

// SetPosition sets the height the bird will move towards.
func (self *Bird) SetPosition(targetY float64) {
	self.targetY = targetY
}

func (self *Bird) Update() {
	x := float64(self.x)
	_, dy := self.Tracker.Update(x, self.y, x, self.targetY, 0, self.speedY)
	self.y += dy
	self.speedY = dy

	movement := self.y - self.lastY
	var targetAngle float64
	switch {
	case movement < -self.cfg.MovementThreshold:
		targetAngle = -self.cfg.MaxAngle
	case movement > self.cfg.MovementThreshold:
		targetAngle = self.cfg.MaxAngle
	}
	self.angle = tracker.Approach(self.angle, targetAngle, self.cfg.AngleSpeed, self.cfg.AngleSnap)
	self.angle = min(max(self.angle, -self.cfg.MaxAngle), self.cfg.MaxAngle)

	self.animCursor += self.cfg.AnimationSpeed
	if self.animCursor >= 1 {
		self.frame = (self.frame + 1) % self.frames
		self.animCursor = 0
	}

	self.lastY = self.y
	self.rect.Y = int(self.y)
}

func (self *Bird) X() int { return self.x }
func (self *Bird) Y() float64 { return self.y }
func (self *Bird) TargetY() float64 { return self.targetY }

// Angle is the tilt in degrees; positive values point the beak down.
func (self *Bird) Angle() float64 { return self.angle }
func (self *Bird) Frame() int { return self.frame }
func (self *Bird) Rect() Rect { return self.rect }
