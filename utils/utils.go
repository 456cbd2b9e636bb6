// Package utils collects small drawing helpers shared by the engine
// and the game.
package utils

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/edwinsyarief/flapcam/internal"
)

// Syntax sugar for [ebiten.Image.SubImage]() passing explicit
// coordinates instead of [image.Rectangle] and returning [*ebiten.Image]
// instead of [image.Image].
func SubImage(source *ebiten.Image, minX, minY, maxX, maxY int) *ebiten.Image {
	return source.SubImage(Rect(minX, minY, maxX, maxY)).(*ebiten.Image)
}

// Similar to [ebiten.Image.Fill](), but with alpha blending.
// See also [FillOverRect]().
func FillOver(target *ebiten.Image, fillColor color.Color) {
	internal.FillOver(target, fillColor)
}

// Similar to [ebiten.Image.Fill](), but with alpha blending
// and explicit target bounds. See also [FillOver]().
func FillOverRect(target *ebiten.Image, bounds image.Rectangle, fillColor color.Color) {
	internal.FillOverRect(target, bounds, fillColor)
}

// Returns the logical position of the global coordinates (x, y)
// on the canvas received by the game's Draw, which is offset by
// the camera origin while the screen shakes.
func CanvasPos(x, y float64) (float64, float64) {
	origin := internal.BridgedCameraOrigin
	return x - float64(origin.X), y - float64(origin.Y)
}

// Returns the GeoM that would be used to draw the given image
// on the logical canvas at the global coordinates (x, y).
func GeoMAt(source *ebiten.Image, x, y float64) ebiten.GeoM {
	var geom ebiten.GeoM
	lx, ly := CanvasPos(x, y)
	// origin is not automatically applied when using
	// an image as source, so we need to add it manually
	srcMin := source.Bounds().Min
	geom.Translate(lx+float64(srcMin.X), ly+float64(srcMin.Y))
	return geom
}

// Returns the image options with a GeoM set up to draw the
// given image at the global coordinates (x, y).
// Makes basic image drawing simpler. Example code:
//
//	opts := utils.DrawImageOptionsAt(myImage, 8, 8)
//	canvas.DrawImage(myImage, &opts)
func DrawImageOptionsAt(source *ebiten.Image, x, y float64) ebiten.DrawImageOptions {
	var opts ebiten.DrawImageOptions
	opts.GeoM = GeoMAt(source, x, y)
	return opts
}

// Alias for [image.Rect]().
func Rect(minX, minY, maxX, maxY int) image.Rectangle {
	return image.Rect(minX, minY, maxX, maxY)
}
