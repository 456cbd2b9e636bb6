package internal

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Helper type used for fades and durations of some effects.
type TicksDuration uint32

// Values bridged from the main package so subpackages can
// stay resolution independent without import cycles.
var (
	BridgedLogicalWidth  int
	BridgedLogicalHeight int
	BridgedCameraOrigin  image.Point
)

func GetResolution() (int, int) {
	return BridgedLogicalWidth, BridgedLogicalHeight
}

func GetUPS() int {
	return ebiten.TPS()
}

// Similar to [ebiten.Image.Fill](), but with alpha blending.
func FillOver(target *ebiten.Image, fillColor color.Color) {
	FillOverRect(target, target.Bounds(), fillColor)
}

func FillOverRect(target *ebiten.Image, bounds image.Rectangle, fillColor color.Color) {
	if bounds.Empty() {
		return
	}
	FillOverRectF32(
		target,
		float32(bounds.Min.X), float32(bounds.Min.Y),
		float32(bounds.Max.X), float32(bounds.Max.Y),
		fillColor,
	)
}

func FillOverRectF32(target *ebiten.Image, minX, minY, maxX, maxY float32, fillColor color.Color) {
	vector.DrawFilledRect(target, minX, minY, maxX-minX, maxY-minY, fillColor, false)
}
