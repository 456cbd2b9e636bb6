package flapcam

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/edwinsyarief/flapcam/utils"
)

// Height of a line of the debug font.
const debugLineHeight = 16

func (self *controller) debugDrawf(format string, args ...any) {
	self.debugInfo = append(self.debugInfo, fmt.Sprintf(format, args...))
}

func (self *controller) debugPrintfr(firstTick, lastTick uint64, format string, args ...any) {
	if self.currentTick >= firstTick && self.currentTick <= lastTick {
		fmt.Printf(format, args...)
	}
}

func (self *controller) debugPrintfe(everyNTicks uint64, format string, args ...any) {
	if everyNTicks == 0 || self.currentTick%everyNTicks == 0 {
		fmt.Printf(format, args...)
	}
}

func (self *controller) debugPrintfk(key ebiten.Key, format string, args ...any) {
	if ebiten.IsKeyPressed(key) {
		fmt.Printf(format, args...)
	}
}

func (self *controller) debugDrawAll(target *ebiten.Image) {
	if len(self.debugInfo) == 0 {
		return
	}

	bounds := target.Bounds()
	width := 0
	for _, info := range self.debugInfo {
		width = max(width, len(info)*6)
	}
	height := len(self.debugInfo) * debugLineHeight
	ox, oy := bounds.Min.X+4, bounds.Min.Y+4
	utils.FillOverRect(target, utils.Rect(ox-2, oy-2, ox+width+4, oy+height+2), color.RGBA{0, 0, 0, 160})
	for i, info := range self.debugInfo {
		ebitenutil.DebugPrintAt(target, info, ox, oy+i*debugLineHeight)
	}
	self.debugInfo = self.debugInfo[:0]
}
