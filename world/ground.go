package world

import "github.com/edwinsyarief/flapcam/config"

// Ground is two screen-wide tiles scrolling left one after the other.
type Ground struct {
	width int
	speed int
	x1    int
	x2    int
	rect  Rect
}

// NewGround lays the strip along the bottom of a width x screenHeight
// screen.
func NewGround(width, screenHeight int, cfg config.GroundConfig) *Ground {
	y := screenHeight - cfg.Height
	return &Ground{
		width: width,
		speed: cfg.Speed,
		x1:    0,
		x2:    width,
		rect:  Rect{X: 0, Y: y, W: width, H: cfg.Height},
	}
}

func (self *Ground) Update() {
	self.x1 -= self.speed
	self.x2 -= self.speed
	if self.x1+self.width < 0 {
		self.x1 = self.x2 + self.width
	}
	if self.x2+self.width < 0 {
		self.x2 = self.x1 + self.width
	}
}

// Tiles returns the x positions of both tiles.
func (self *Ground) Tiles() (int, int) { return self.x1, self.x2 }

func (self *Ground) Y() int { return self.rect.Y }

func (self *Ground) Collide(bird *Bird) bool {
	return bird.Rect().Bottom() >= self.rect.Y
}
