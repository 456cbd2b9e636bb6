package flapcam

import "github.com/edwinsyarief/flapcam/shaker"

// A shaker channel drives one shaker through a fade in, a hold and
// a fade out, all measured in ticks. A hold of maxUint32 lasts until
// End is called.
type shakerChannel struct {
	shaker    shaker.Shaker
	active    bool
	elapsed   TicksDuration
	fadeIn    TicksDuration
	duration  TicksDuration
	fadeOut   TicksDuration
	offsetX   float64
	offsetY   float64
	wasActive bool
}

func (self *shakerChannel) Trigger(fadeIn, duration, fadeOut TicksDuration) {
	self.Start(fadeIn)
	self.duration = duration
	self.fadeOut = fadeOut
}

// Starts shaking until End is called. A channel that is already
// shaking keeps its current intensity and fades in from there.
func (self *shakerChannel) Start(fadeIn TicksDuration) {
	if self.fadeIn == fadeIn && self.IsFadingIn() {
		return
	}
	activity := self.Activity()
	self.active = true
	self.fadeIn = fadeIn
	self.duration = maxUint32
	self.fadeOut = 0
	self.elapsed = TicksDuration(float64(fadeIn) * activity)
}

// Fades the shake out from its current intensity.
func (self *shakerChannel) End(fadeOut TicksDuration) {
	if !self.IsShaking() {
		return
	}
	if self.fadeOut == fadeOut && self.IsFadingOut() {
		return
	}
	activity := self.Activity()
	self.fadeIn = 0
	self.duration = 0
	self.fadeOut = fadeOut
	self.elapsed = TicksDuration(float64(fadeOut) * (1.0 - activity))
}

func (self *shakerChannel) total() uint64 {
	return uint64(self.fadeIn) + uint64(self.duration) + uint64(self.fadeOut)
}

func (self *shakerChannel) IsShaking() bool {
	return self.active && uint64(self.elapsed) < self.total()
}

func (self *shakerChannel) IsFadingIn() bool {
	return self.IsShaking() && self.elapsed < self.fadeIn
}

func (self *shakerChannel) IsFadingOut() bool {
	return self.IsShaking() && uint64(self.elapsed) >= uint64(self.fadeIn)+uint64(self.duration)
}

// Returns the shake intensity in [0, 1].
func (self *shakerChannel) Activity() float64 {
	if !self.IsShaking() {
		return 0
	}
	if self.elapsed < self.fadeIn {
		return float64(self.elapsed) / float64(self.fadeIn)
	}
	held := uint64(self.elapsed) - uint64(self.fadeIn)
	if held < uint64(self.duration) {
		return 1.0
	}
	out := held - uint64(self.duration)
	return 1.0 - float64(out)/float64(self.fadeOut)
}

func (self *shakerChannel) Update(index int, tickRate uint64) {
	var selfShaker shaker.Shaker = self.shaker
	if selfShaker == nil {
		if index != 0 {
			return
		}
		if defaultShaker == nil {
			defaultShaker = &shaker.Random{}
		}
		selfShaker = defaultShaker
	}

	if self.IsShaking() {
		self.wasActive = true
		self.offsetX, self.offsetY = selfShaker.GetShakeOffsets(self.Activity())
		self.elapsed = TicksDuration(min(uint64(self.elapsed)+tickRate, maxUint32))
	} else if self.wasActive {
		_, _ = selfShaker.GetShakeOffsets(0.0) // termination call
		self.offsetX, self.offsetY = 0.0, 0.0
		self.wasActive = false
		self.active = false
	}
}
