package shaker

import (
	"math/rand/v2"

	"github.com/edwinsyarief/flapcam/internal"
)

var _ Shaker = (*Random)(nil)

// A shaker that jumps to random offsets every few updates,
// interpolating between them in the meantime.
//
// The zero value is usable: Amplitude defaults to 0.01 (as a
// fraction of the smaller logical dimension) and points change
// every 3 updates.
type Random struct {
	Amplitude float64 // fraction of min(width, height)
	Every     int     // updates between new random points
	Seed      uint64

	rng          *rand.Rand
	fromX, fromY float64
	toX, toY     float64
	elapsed      int
}

func (self *Random) GetShakeOffsets(level float64) (float64, float64) {
	if level == 0 {
		self.fromX, self.fromY = 0, 0
		self.toX, self.toY = 0, 0
		self.elapsed = 0
		return 0, 0
	}
	if self.rng == nil {
		self.rng = rand.New(rand.NewPCG(self.Seed, self.Seed^0x9E3779B97F4A7C15))
	}

	every := self.Every
	if every <= 0 {
		every = 3
	}
	if self.elapsed%every == 0 {
		self.fromX, self.fromY = self.toX, self.toY
		self.toX = self.rng.Float64()*2 - 1
		self.toY = self.rng.Float64()*2 - 1
	}
	t := float64(self.elapsed%every+1) / float64(every)
	self.elapsed += 1

	amplitude := self.Amplitude
	if amplitude == 0 {
		amplitude = 0.01
	}
	w, h := internal.GetResolution()
	scale := amplitude * float64(min(w, h)) * smoothstep(level)
	x := self.fromX + (self.toX-self.fromX)*t
	y := self.fromY + (self.toY-self.fromY)*t
	return x * scale, y * scale
}

func smoothstep(t float64) float64 {
	t = min(max(t, 0), 1)
	return t * t * (3.0 - 2.0*t)
}
