package flapcam

import (
	"image"
	"math"

	"github.com/edwinsyarief/flapcam/internal"
	"github.com/edwinsyarief/flapcam/shaker"
)

func (self *controller) cameraAreaGet() image.Rectangle {
	return self.cameraArea
}

func (self *controller) cameraAreaF64() (minX, minY, maxX, maxY float64) {
	minX, minY = self.shakerOffsetX, self.shakerOffsetY
	return minX, minY, minX + float64(self.logicalWidth), minY + float64(self.logicalHeight)
}

func (self *controller) updateCameraArea() {
	minX, minY, maxX, maxY := self.cameraAreaF64()
	self.cameraArea = image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
	internal.BridgedCameraOrigin = self.cameraArea.Min
}

func (self *controller) cameraFlush() {
	if self.lastFlushTick == self.currentTick {
		return
	}
	self.lastFlushTick = self.currentTick
	self.updateShake()
	self.updateCameraArea()
}

func (self *controller) updateShake() {
	var offsetX, offsetY float64
	for i := range self.shakerChannels {
		self.shakerChannels[i].Update(i, self.tickRate)
		offsetX += self.shakerChannels[i].offsetX
		offsetY += self.shakerChannels[i].offsetY
	}
	self.shakerOffsetX = offsetX
	self.shakerOffsetY = offsetY
}

// ---- screenshake ----

func (self *controller) cameraSetShaker(newShaker shaker.Shaker, channels ...shaker.Channel) {
	if self.inDraw {
		panic("can't SetShaker during draw stage")
	}
	if len(channels) > 1 {
		panic("can't pass multiple shaker channels to SetShaker")
	} else if len(channels) == 0 {
		self.shakerChannels[0].shaker = newShaker
	} else {
		index := int(channels[0])
		if newShaker == nil && index >= len(self.shakerChannels) {
			return
		}
		newChan := shakerChannel{shaker: newShaker}
		self.shakerChannels = setAt(self.shakerChannels, newChan, index)

		// compact nils at the end of the slice
		compactCount := 0
		for i := len(self.shakerChannels) - 1; i > 0; i-- {
			if self.shakerChannels[i].shaker != nil {
				break
			}
			compactCount += 1
		}
		if compactCount > 0 {
			self.shakerChannels = self.shakerChannels[:len(self.shakerChannels)-compactCount]
		}
	}
}

func (self *controller) cameraGetShaker(channels ...shaker.Channel) shaker.Shaker {
	if len(channels) == 0 {
		return self.shakerChannels[0].shaker
	} else if len(channels) > 1 {
		panic("can't GetShaker for multiple shaker channels at once")
	} else if int(channels[0]) >= len(self.shakerChannels) {
		return nil
	} else {
		return self.shakerChannels[channels[0]].shaker
	}
}

func (self *controller) cameraStartShake(fadeIn TicksDuration, channels ...shaker.Channel) {
	if self.inDraw {
		panic("can't StartShake during draw stage")
	}
	if len(channels) == 0 {
		self.shakerChannels[0].Start(fadeIn)
	} else {
		for _, channel := range channels {
			if !self.shakerChannelAccessible(channel) {
				panic("can't StartShake on uninitialized channels")
			}
			self.shakerChannels[channel].Start(fadeIn)
		}
	}
}

func (self *controller) cameraEndShake(fadeOut TicksDuration, channels ...shaker.Channel) {
	if self.inDraw {
		panic("can't EndShake during draw stage")
	}
	if len(channels) == 0 {
		self.shakerChannels[0].End(fadeOut)
	} else {
		for _, channel := range channels {
			if !self.shakerChannelAccessible(channel) {
				panic("can't EndShake on uninitialized channels")
			}
			self.shakerChannels[channel].End(fadeOut)
		}
	}
}

func (self *controller) cameraTriggerShake(fadeIn, duration, fadeOut TicksDuration, channels ...shaker.Channel) {
	if self.inDraw {
		panic("can't TriggerShake during draw stage")
	}
	if len(channels) == 0 {
		self.shakerChannels[0].Trigger(fadeIn, duration, fadeOut)
	} else {
		for _, channel := range channels {
			if !self.shakerChannelAccessible(channel) {
				panic("can't TriggerShake on uninitialized channels")
			}
			self.shakerChannels[channel].Trigger(fadeIn, duration, fadeOut)
		}
	}
}

func (self *controller) cameraIsShaking(channels ...shaker.Channel) bool {
	if len(channels) > 1 {
		panic("IsShaking accepts at most one shaker channel as argument")
	}

	if len(channels) == 0 {
		for i := range self.shakerChannels {
			if self.shakerChannels[i].IsShaking() {
				return true
			}
		}
		return false
	} else if !self.shakerChannelAccessible(channels[0]) {
		return false
	} else {
		return self.shakerChannels[channels[0]].IsShaking()
	}
}

func (self *controller) shakerChannelAccessible(channel shaker.Channel) bool {
	return (channel == 0 || (int(channel) < len(self.shakerChannels) &&
		self.shakerChannels[channel].shaker != nil))
}
