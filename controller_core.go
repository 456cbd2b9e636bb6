package flapcam

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/edwinsyarief/flapcam/internal"
	"github.com/edwinsyarief/flapcam/utils"
)

var pkgController controller

func init() {
	pkgController.tickSetRate(1)
	pkgController.shakerChannels = make([]shakerChannel, 1)
	pkgController.lastFlushTick = 0xFFFF_FFFF_FFFF_FFFF
	pkgController.scalingFilter = Linear
}

type controller struct {
	// core state
	game                  Game
	queuedDraws           []queuedDraw
	reusableCanvas        *ebiten.Image // sized one pixel past the resolution for subpixel shakes
	logicalWidth          int
	logicalHeight         int
	hiResWidth            int
	hiResHeight           int
	prevHiResCanvasWidth  int
	prevHiResCanvasHeight int
	layoutHasChanged      bool
	inDraw                bool
	needsClear            bool
	stretchingEnabled     bool
	scalingFilter         ScalingFilter
	projectOpts           ebiten.DrawImageOptions

	// camera
	lastFlushTick uint64
	cameraArea    image.Rectangle

	// shake
	shakerChannels []shakerChannel
	shakerOffsetX  float64
	shakerOffsetY  float64

	// ticks
	currentTick uint64
	tickRate    uint64

	// debug
	debugInfo []string
}

// --- ebiten.Game implementation ---

func (self *controller) Update() error {
	self.currentTick += self.tickRate
	err := self.game.Update()
	if err != nil {
		return err
	}
	self.cameraFlush()
	self.layoutHasChanged = false
	return nil
}

func (self *controller) Draw(hiResCanvas *ebiten.Image) {
	self.inDraw = true

	hiResBounds := hiResCanvas.Bounds()
	hiResWidth, hiResHeight := hiResBounds.Dx(), hiResBounds.Dy()
	if hiResWidth != self.prevHiResCanvasWidth || hiResHeight != self.prevHiResCanvasHeight {
		self.prevHiResCanvasWidth = hiResWidth
		self.prevHiResCanvasHeight = hiResHeight
		self.layoutHasChanged = true
		self.needsClear = true
	}

	logicalCanvas := self.getLogicalCanvas()
	activeCanvas := self.getActiveHiResCanvas(hiResCanvas)
	if self.needsClear {
		self.needsClear = false
		hiResCanvas.Clear()
		logicalCanvas.Clear()
	}
	self.game.Draw(logicalCanvas)

	var drawIndex int = 0
	var prevDrawWasHiRes bool = false
	for drawIndex < len(self.queuedDraws) {
		if self.queuedDraws[drawIndex].IsHighResolution() {
			if !prevDrawWasHiRes {
				self.projectLogical(logicalCanvas, activeCanvas)
			}
			self.queuedDraws[drawIndex].hiResFunc(hiResCanvas, activeCanvas)
			prevDrawWasHiRes = true
		} else {
			if prevDrawWasHiRes {
				logicalCanvas.Clear()
				prevDrawWasHiRes = false
			}
			self.queuedDraws[drawIndex].logicalFunc(logicalCanvas)
		}
		drawIndex += 1
	}
	self.queuedDraws = self.queuedDraws[:0]

	// final projection
	if !prevDrawWasHiRes {
		self.projectLogical(logicalCanvas, activeCanvas)
	}
	self.debugDrawAll(activeCanvas)
	self.inDraw = false
}

func (self *controller) getLogicalCanvas() *ebiten.Image {
	width := self.cameraArea.Dx()
	height := self.cameraArea.Dy()

	if self.reusableCanvas != nil {
		bounds := self.reusableCanvas.Bounds()
		if width <= bounds.Dx() && height <= bounds.Dy() {
			canvas := utils.SubImage(self.reusableCanvas, 0, 0, width, height)
			if ebiten.IsScreenClearedEveryFrame() {
				canvas.Clear()
			}
			return canvas
		}
	}

	refWidth := max(width, self.logicalWidth+1)
	refHeight := max(height, self.logicalHeight+1)
	self.reusableCanvas = ebiten.NewImage(refWidth, refHeight)
	return utils.SubImage(self.reusableCanvas, 0, 0, width, height)
}

func (self *controller) getActiveHiResCanvas(hiResCanvas *ebiten.Image) *ebiten.Image {
	area := self.activeArea(hiResCanvas.Bounds())
	if area == hiResCanvas.Bounds() {
		return hiResCanvas
	}
	return utils.SubImage(hiResCanvas, area.Min.X, area.Min.Y, area.Max.X, area.Max.Y)
}

// Returns the part of the high resolution bounds that keeps the
// logical aspect ratio, centered between letterbox margins.
func (self *controller) activeArea(hiBounds image.Rectangle) image.Rectangle {
	if self.stretchingEnabled || self.logicalWidth == 0 || self.logicalHeight == 0 {
		return hiBounds
	}

	hiWidth, hiHeight := hiBounds.Dx(), hiBounds.Dy()
	hiAspectRatio := float64(hiWidth) / float64(hiHeight)
	loAspectRatio := float64(self.logicalWidth) / float64(self.logicalHeight)

	switch {
	case hiAspectRatio == loAspectRatio: // just scaling
		return hiBounds
	case hiAspectRatio > loAspectRatio: // horz margins
		xMargin := int((float64(hiWidth) - loAspectRatio*float64(hiHeight)) / 2.0)
		return image.Rect(hiBounds.Min.X+xMargin, hiBounds.Min.Y, hiBounds.Max.X-xMargin, hiBounds.Max.Y)
	default: // vert margins
		yMargin := int((float64(hiHeight) - float64(hiWidth)/loAspectRatio) / 2.0)
		return image.Rect(hiBounds.Min.X, hiBounds.Min.Y+yMargin, hiBounds.Max.X, hiBounds.Max.Y-yMargin)
	}
}

func (self *controller) Layout(logicWinWidth, logicWinHeight int) (int, int) {
	monitor := ebiten.Monitor()
	scale := monitor.DeviceScaleFactor()
	hiResWidth := int(float64(logicWinWidth) * scale)
	hiResHeight := int(float64(logicWinHeight) * scale)
	if hiResWidth != self.hiResWidth || hiResHeight != self.hiResHeight {
		self.layoutHasChanged = true
		self.needsClear = true
		self.hiResWidth, self.hiResHeight = hiResWidth, hiResHeight
	}
	return self.hiResWidth, self.hiResHeight
}

// --- run and queued draws ---

func (self *controller) run(game Game) error {
	self.game = game
	if self.logicalWidth == 0 || self.logicalHeight == 0 {
		panic("must set the game resolution with flapcam.SetResolution(width, height) before flapcam.Run()")
	}
	self.updateCameraArea()
	return ebiten.RunGame(self)
}

type queuedDraw struct {
	logicalFunc func(*ebiten.Image)
	hiResFunc   func(*ebiten.Image, *ebiten.Image)
}

func (self *queuedDraw) IsHighResolution() bool {
	return self.hiResFunc != nil
}

func (self *controller) queueDraw(handler func(*ebiten.Image)) {
	if !self.inDraw {
		panic("can't queue draw outside draw stage")
	}
	self.queuedDraws = append(self.queuedDraws, queuedDraw{logicalFunc: handler})
}

func (self *controller) queueHiResDraw(handler func(*ebiten.Image, *ebiten.Image)) {
	if !self.inDraw {
		panic("can't queue hi res draw outside draw stage")
	}
	self.queuedDraws = append(self.queuedDraws, queuedDraw{hiResFunc: handler})
}

// --- resolution ---

func (self *controller) getResolution() (width, height int) {
	return self.logicalWidth, self.logicalHeight
}

func (self *controller) setResolution(width, height int) {
	if self.inDraw {
		panic("can't change resolution during draw stage")
	}
	if width < 1 || height < 1 {
		panic("game resolution must be at least (1, 1)")
	}
	if width != self.logicalWidth || height != self.logicalHeight {
		self.needsClear = true
		self.logicalWidth, self.logicalHeight = width, height
		internal.BridgedLogicalWidth, internal.BridgedLogicalHeight = width, height
		self.updateCameraArea()
	}
}

// --- scaling ---

func (self *controller) scalingSetFilter(filter ScalingFilter) {
	if self.inDraw {
		panic("can't change scaling filter during draw stage")
	}
	if filter >= scalingFilterEndSentinel {
		panic("invalid ScalingFilter")
	}
	self.scalingFilter = filter
}

func (self *controller) scalingGetFilter() ScalingFilter {
	return self.scalingFilter
}

func (self *controller) scalingSetStretchingAllowed(allowed bool) {
	if self.inDraw {
		panic("can't change stretching mode during draw stage")
	}
	if allowed != self.stretchingEnabled {
		self.stretchingEnabled = allowed
		self.needsClear = true
	}
}

func (self *controller) scalingGetStretchingAllowed() bool {
	return self.stretchingEnabled
}

// --- projection ---

func (self *controller) hiResScale(target *ebiten.Image) (float64, float64) {
	bounds := target.Bounds()
	return float64(bounds.Dx()) / float64(self.logicalWidth), float64(bounds.Dy()) / float64(self.logicalHeight)
}

// Draws the logical canvas over target. The canvas covers the
// camera area rounded outwards, so the fractional part of the
// camera origin is shifted back out for smooth shakes.
func (self *controller) projectLogical(logicalCanvas, target *ebiten.Image) {
	minX, minY, _, _ := self.cameraAreaF64()
	fracX := minX - float64(self.cameraArea.Min.X)
	fracY := minY - float64(self.cameraArea.Min.Y)
	self.projectAt(logicalCanvas, target, -fracX, -fracY)
}

// Draws a logically sized source stretched over the whole target.
func (self *controller) project(source, target *ebiten.Image) {
	self.projectAt(source, target, 0, 0)
}

func (self *controller) projectAt(source, target *ebiten.Image, offsetX, offsetY float64) {
	scaleX, scaleY := self.hiResScale(target)
	bounds := target.Bounds()
	self.projectOpts.GeoM.Reset()
	self.projectOpts.GeoM.Translate(offsetX, offsetY)
	self.projectOpts.GeoM.Scale(scaleX, scaleY)
	self.projectOpts.GeoM.Translate(float64(bounds.Min.X), float64(bounds.Min.Y))
	self.projectOpts.Filter = self.scalingFilter.ebitenFilter()
	target.DrawImage(source, &self.projectOpts)
}

func (self *controller) hiResFillOverRect(target *ebiten.Image, minX, minY, maxX, maxY float64, fillColor color.Color) {
	scaleX, scaleY := self.hiResScale(target)
	bounds := target.Bounds()
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	internal.FillOverRectF32(
		target,
		float32(minX*scaleX+ox), float32(minY*scaleY+oy),
		float32(maxX*scaleX+ox), float32(maxY*scaleY+oy),
		fillColor,
	)
}

// --- ticks ---

func (self *controller) tickNow() uint64 {
	return self.currentTick
}

func (self *controller) tickSetRate(tickRate int) {
	if tickRate < 1 {
		panic("tick rate must be at least 1")
	}
	self.tickRate = uint64(tickRate)
}

func (self *controller) tickGetRate() int {
	return int(self.tickRate)
}
