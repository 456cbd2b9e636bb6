package flapcam

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

func (self *controller) convertToRelativeCoords(x, y int) (float64, float64) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	area := self.activeArea(image.Rect(0, 0, self.hiResWidth, self.hiResHeight))
	return relativeCoords(float64(x)*scale, float64(y)*scale, area)
}

func (self *controller) convertToGameResolution(x, y int) (float64, float64) {
	relX, relY := self.convertToRelativeCoords(x, y)
	return relX * float64(self.logicalWidth), relY * float64(self.logicalHeight)
}

func (self *controller) convertToLogicalCoords(x, y int) (float64, float64) {
	gameX, gameY := self.convertToGameResolution(x, y)
	minX, minY, _, _ := self.cameraAreaF64()
	return minX + gameX, minY + gameY
}

// Maps a high resolution point into [0, 1] relative to area.
func relativeCoords(hiX, hiY float64, area image.Rectangle) (float64, float64) {
	if area.Empty() {
		return 0, 0
	}
	relX := (hiX - float64(area.Min.X)) / float64(area.Dx())
	relY := (hiY - float64(area.Min.Y)) / float64(area.Dy())
	return relX, relY
}
