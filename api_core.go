package flapcam

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- game ---

// The game interface for flapcam, which is the equivalent to
// [ebiten.Game] on Ebitengine but without the Layout() method.
type Game interface {
	// Updates the game logic.
	Update() error

	// Draws the game contents.
	//
	// The canvas always has the size set with [SetResolution]().
	// While the camera is shaking, its origin moves around; use
	// [Camera]().Area() or the utils subpackage to draw world
	// elements at their global coordinates.
	Draw(logicalCanvas *ebiten.Image)
}

// Equivalent to [ebiten.RunGame](), but expecting a flapcam [Game]
// instead of an [ebiten.Game].
//
// Will panic if invoked before [SetResolution]().
func Run(game Game) error {
	return pkgController.run(game)
}

// --- core ---

// Returns the game's base resolution. See [SetResolution]()
// for more details.
func GetResolution() (width, height int) {
	return pkgController.getResolution()
}

// Sets the game's base resolution. This defines the game's
// aspect ratio and logical canvas size.
func SetResolution(width, height int) {
	pkgController.setResolution(width, height)
}

// Schedules the given handler to be invoked after the current
// drawing function and any other queued draws finish.
//
// The canvas passed to the callback will be preemptively cleared if
// the previous draw was a high resolution draw.
//
// Must only be called from [Game].Draw() or successive draw callbacks.
func QueueDraw(handler func(logicalCanvas *ebiten.Image)) {
	pkgController.queueDraw(handler)
}

// Schedules the given handler to be invoked after the current
// drawing function and any other queued draws finish.
//
// The viewport passed to the handler is the full game screen canvas,
// including any letterbox borders, while hiResCanvas is a subimage
// corresponding to the active area of the viewport.
//
// High resolution draws are not affected by camera shakes, which
// makes them the right place for menus and the HUD.
//
// Must only be called from [Game].Draw() or successive draw callbacks.
func QueueHiResDraw(handler func(viewport, hiResCanvas *ebiten.Image)) {
	pkgController.queueHiResDraw(handler)
}

// Returns whether a layout change has happened on the current tick.
// Layout changes happen whenever the game window is resized in windowed
// mode, the game switches between windowed and fullscreen modes, or
// the device scale factor changes.
func LayoutHasChanged() bool {
	return pkgController.layoutHasChanged
}

// --- high resolution drawing ---

// See [HiRes]().
type AccessorHiRes struct{}

// Provides access to high resolution drawing methods in
// a structured manner. Use through method chaining, e.g.:
//
//	flapcam.HiRes().FillOverRect(target, 0, 0, 540, 1080, clr)
func HiRes() AccessorHiRes { return AccessorHiRes{} }

func (self AccessorHiRes) Width() int {
	return pkgController.hiResWidth
}

func (self AccessorHiRes) Height() int {
	return pkgController.hiResHeight
}

// Returns the factors that take logical sizes to the given high
// resolution target.
func (self AccessorHiRes) Scale(target *ebiten.Image) (float64, float64) {
	return pkgController.hiResScale(target)
}

// Fills the logical area designated by the given coordinates with
// fillColor, blending over the target. Coordinates are relative to
// the screen, not the camera.
func (self AccessorHiRes) FillOverRect(target *ebiten.Image, minX, minY, maxX, maxY float64, fillColor color.Color) {
	pkgController.hiResFillOverRect(target, minX, minY, maxX, maxY, fillColor)
}

// --- scaling ---

// See [Scaling]().
type AccessorScaling struct{}

// Provides access to scaling-related functionality in a structured
// manner. Use through method chaining, e.g.:
//
//	flapcam.Scaling().SetFilter(flapcam.Nearest)
func Scaling() AccessorScaling { return AccessorScaling{} }

// See [AccessorScaling.SetFilter]().
type ScalingFilter uint8

const (
	// Bilinear interpolation. Good default for camera footage
	// and vectorial text.
	Linear ScalingFilter = iota

	// No interpolation. Sharpest and fastest filter, best for
	// pixel art at integer scales.
	Nearest

	scalingFilterEndSentinel
)

// Returns a string representation of the scaling filter.
func (self ScalingFilter) String() string {
	switch self {
	case Linear:
		return "Linear"
	case Nearest:
		return "Nearest"
	default:
		panic("invalid ScalingFilter")
	}
}

func (self ScalingFilter) ebitenFilter() ebiten.Filter {
	if self == Nearest {
		return ebiten.FilterNearest
	}
	return ebiten.FilterLinear
}

// Set to true to avoid black borders and completely fill the screen
// no matter how distorted the result gets. By default, stretching is
// disabled.
//
// Must only be called during initialization or [Game].Update().
func (AccessorScaling) SetStretchingAllowed(allowed bool) {
	pkgController.scalingSetStretchingAllowed(allowed)
}

// Returns whether stretching is allowed for screen scaling.
// See [AccessorScaling.SetStretchingAllowed]() for more details.
func (AccessorScaling) GetStretchingAllowed() bool {
	return pkgController.scalingGetStretchingAllowed()
}

// Changes the scaling filter. The default is [Linear].
//
// Must only be called during initialization or [Game].Update().
func (AccessorScaling) SetFilter(filter ScalingFilter) {
	pkgController.scalingSetFilter(filter)
}

// Returns the current scaling filter. The default is [Linear].
func (AccessorScaling) GetFilter() ScalingFilter {
	return pkgController.scalingGetFilter()
}

// --- conversions ---

// See [Convert]().
type AccessorConvert struct{}

// Provides access to coordinate conversions in a structured
// manner. Use through method chaining, e.g.:
//
//	cx, cy := ebiten.CursorPosition()
//	lx, ly := flapcam.Convert().ToLogicalCoords(cx, cy)
func Convert() AccessorConvert { return AccessorConvert{} }

// Transforms coordinates obtained from [ebiten.CursorPosition]() and
// similar functions to coordinates within the game's global logical
// space, camera shake included.
func (AccessorConvert) ToLogicalCoords(x, y int) (float64, float64) {
	return pkgController.convertToLogicalCoords(x, y)
}

// Transforms coordinates obtained from [ebiten.CursorPosition]() and
// similar functions to relative screen coordinates between 0 and 1.
// Points on the letterbox borders fall outside that range.
func (AccessorConvert) ToRelativeCoords(x, y int) (float64, float64) {
	return pkgController.convertToRelativeCoords(x, y)
}

// Transforms coordinates obtained from [ebiten.CursorPosition]() and
// similar functions to screen coordinates rescaled between (0, 0) and
// (GameWidth, GameHeight).
//
// Commonly used to see what is being clicked on the game's UI.
func (AccessorConvert) ToGameResolution(x, y int) (float64, float64) {
	return pkgController.convertToGameResolution(x, y)
}

// --- debug ---

// See [Debug]().
type AccessorDebug struct{}

// Provides access to debugging functionality in a structured
// manner. Use through method chaining, e.g.:
//
//	flapcam.Debug().Drawf("current tick: %d", flapcam.Tick().Now())
func Debug() AccessorDebug { return AccessorDebug{} }

// Similar to Printf debugging, but drawing the text on the top
// left of the screen (instead of printing on the terminal).
// Multi-line text is not supported; use multiple Drawf commands
// in sequence instead.
//
// You can call this function at any point, even during [Game].Update().
// Strings will be queued and rendered at the end of the next draw.
func (AccessorDebug) Drawf(format string, args ...any) {
	pkgController.debugDrawf(format, args...)
}

// Similar to [fmt.Printf](), but expects two tick counts as the first
// arguments. The function will only print during the period elapsed
// between those two tick counts.
// Some examples:
//
//	flapcam.Debug().Printfr(0, 0, "only print on the first tick\n")
//	flapcam.Debug().Printfr(180, 300, "print from 3s to 5s lapse\n")
func (AccessorDebug) Printfr(firstTick, lastTick uint64, format string, args ...any) {
	pkgController.debugPrintfr(firstTick, lastTick, format, args...)
}

// Similar to [fmt.Printf](), but only prints every N ticks. For
// example, in most games using N = 60 will lead to print once
// per second.
func (AccessorDebug) Printfe(everyNTicks uint64, format string, args ...any) {
	pkgController.debugPrintfe(everyNTicks, format, args...)
}

// Similar to [fmt.Printf](), but only prints if the given key is pressed.
// Common keys: [ebiten.KeyShiftLeft], [ebiten.KeyControl], [ebiten.KeyDigit1].
func (AccessorDebug) Printfk(key ebiten.Key, format string, args ...any) {
	pkgController.debugPrintfk(key, format, args...)
}

// --- ticks ---

// See [Tick]().
type AccessorTick struct{}

// Provides access to game tick functions in a structured
// manner. Use through method chaining, e.g.:
//
//	currentTick := flapcam.Tick().Now()
func Tick() AccessorTick { return AccessorTick{} }

// Returns the current tick.
func (AccessorTick) Now() uint64 {
	return pkgController.tickNow()
}

// Returns the updates per second. This is [ebiten.TPS]().
func (AccessorTick) UPS() int {
	return ebiten.TPS()
}

// This is just [ebiten.SetTPS]() under the hood.
func (AccessorTick) SetUPS(updatesPerSecond int) {
	ebiten.SetTPS(updatesPerSecond)
}

// Returns the ticks per second. This is UPS()*TickRate.
func (AccessorTick) TPS() int {
	return ebiten.TPS() * int(pkgController.tickRate)
}

// Sets the tick rate (ticks per update). Shake durations are
// measured in ticks, so a higher rate makes them run faster.
func (AccessorTick) SetRate(tickRate int) {
	pkgController.tickSetRate(tickRate)
}

// Returns the current tick rate. Defaults to 1.
// See [AccessorTick.SetRate]() for more context.
func (AccessorTick) GetRate() int {
	return pkgController.tickGetRate()
}
