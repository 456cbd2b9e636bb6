package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/edwinsyarief/flapcam"
	"github.com/edwinsyarief/flapcam/utils"
	"github.com/edwinsyarief/flapcam/world"
)

// Font sizes in logical pixels.
const (
	titleSize  = 56
	labelSize  = 36
	buttonSize = 32
)

// White flash over the screen right after a crash, in updates.
const crashFlashUpdates = 12

var overlayColor = color.RGBA{0, 0, 0, 128}

func (self *Game) Draw(canvas *ebiten.Image) {
	self.drawBackground(canvas)
	if self.session.Started() {
		for _, pipe := range self.session.Pipes() {
			self.drawPipe(canvas, pipe)
		}
	}
	self.drawGround(canvas)
	self.drawBird(canvas)
	if self.cfg.Debug {
		flapcam.QueueDraw(self.drawHitboxes)
	}

	flapcam.QueueHiResDraw(func(_, hiResCanvas *ebiten.Image) {
		w, h := flapcam.GetResolution()
		if self.ui == nil {
			self.ui = flapcam.NewOffscreen(w, h)
		}
		self.ui.Clear()
		self.drawUI(self.ui)
		self.ui.Project(hiResCanvas)
		if self.cfg.Debug {
			scaleX, scaleY := flapcam.HiRes().Scale(hiResCanvas)
			flapcam.Debug().Drawf("hi-res scale: %.2fx%.2f", scaleX, scaleY)
		}

		if self.crashed {
			elapsed := (flapcam.Tick().Now() - self.crashTick) / uint64(flapcam.Tick().GetRate())
			if alpha := flashAlpha(elapsed); alpha > 0 {
				flash := color.RGBA{alpha, alpha, alpha, alpha}
				flapcam.HiRes().FillOverRect(hiResCanvas, 0, 0, float64(w), float64(h), flash)
			}
		}
	})
}

// Returns the opacity of the crash flash the given number of updates
// after the crash.
func flashAlpha(elapsed uint64) uint8 {
	if elapsed >= crashFlashUpdates {
		return 0
	}
	return uint8(160 * (crashFlashUpdates - elapsed) / crashFlashUpdates)
}

// Outlines the collision boxes over the world.
func (self *Game) drawHitboxes(canvas *ebiten.Image) {
	self.strokeRect(canvas, self.session.Bird().Rect(), world.BirdRed)
	for _, pipe := range self.session.Pipes() {
		self.strokeRect(canvas, pipe.TopRect(), world.Black)
		self.strokeRect(canvas, pipe.BottomRect(), world.Black)
	}
}

func (self *Game) strokeRect(canvas *ebiten.Image, r world.Rect, clr color.Color) {
	x, y := utils.CanvasPos(float64(r.X), float64(r.Y))
	vector.StrokeRect(canvas, float32(x), float32(y), float32(r.W), float32(r.H), 2, clr, false)
}

// The backdrop stays still while the camera shakes.
func (self *Game) drawBackground(canvas *ebiten.Image) {
	backdrop := self.assets.Background
	if frame := self.webcamFrame(); frame != nil {
		backdrop = frame
	}
	self.opts.GeoM.Reset()
	canvas.DrawImage(backdrop, &self.opts)
}

// Returns the latest webcam background, uploading it only when the
// pipeline produced a new one.
func (self *Game) webcamFrame() *ebiten.Image {
	if self.pipeline == nil {
		return nil
	}
	bg, seq := self.pipeline.Background()
	if bg == nil {
		return nil
	}
	if self.webcamImage == nil || seq != self.webcamSeq {
		b := bg.Bounds()
		if self.webcamImage == nil || self.webcamImage.Bounds().Size() != b.Size() {
			self.webcamImage = ebiten.NewImage(b.Dx(), b.Dy())
		}
		// camera frames are opaque, so straight and premultiplied
		// alpha are the same bytes
		self.webcamImage.WritePixels(bg.Pix)
		self.webcamSeq = seq
	}
	return self.webcamImage
}

func (self *Game) drawPipe(canvas *ebiten.Image, pipe *world.Pipe) {
	img := self.assets.Pipe
	x := float64(pipe.X())

	self.opts.GeoM = utils.GeoMAt(img, x, float64(pipe.BottomImageY()))
	canvas.DrawImage(img, &self.opts)

	// the top pipe is the same image upside down
	self.opts.GeoM.Reset()
	self.opts.GeoM.Scale(1, -1)
	self.opts.GeoM.Translate(0, float64(img.Bounds().Dy()))
	self.opts.GeoM.Concat(utils.GeoMAt(img, x, float64(pipe.TopImageY())))
	canvas.DrawImage(img, &self.opts)
}

func (self *Game) drawGround(canvas *ebiten.Image) {
	ground := self.session.Ground()
	x1, x2 := ground.Tiles()
	y := float64(ground.Y())
	for _, x := range [2]int{x1, x2} {
		opts := utils.DrawImageOptionsAt(self.assets.Ground, float64(x), y)
		canvas.DrawImage(self.assets.Ground, &opts)
	}
}

func (self *Game) drawBird(canvas *ebiten.Image) {
	bird := self.session.Bird()
	img := self.assets.Bird[bird.Frame()%len(self.assets.Bird)]
	halfW := float64(img.Bounds().Dx()) / 2
	halfH := float64(img.Bounds().Dy()) / 2

	// rotate around the centre, positive angles clockwise
	self.opts.GeoM.Reset()
	self.opts.GeoM.Translate(-halfW, -halfH)
	self.opts.GeoM.Rotate(bird.Angle() * math.Pi / 180)
	self.opts.GeoM.Translate(halfW, halfH)
	self.opts.GeoM.Concat(utils.GeoMAt(img, float64(bird.X()), bird.Y()))
	self.opts.Filter = ebiten.FilterLinear
	canvas.DrawImage(img, &self.opts)
	self.opts.Filter = ebiten.FilterNearest
}

// --- ui ---

func (self *Game) drawUI(ui *flapcam.Offscreen) {
	target := ui.Target()
	w, h := ui.Size()
	centerX := float64(w) / 2
	score := fmt.Sprintf("Score: %d", self.session.Score())

	switch self.session.State() {
	case world.StateTitle:
		ui.Coat(overlayColor)
		icon := self.assets.Bird[0]
		ui.DrawAt(icon, centerX-float64(icon.Bounds().Dx())/2, float64(h/3-70))
		self.drawText(target, "FLAPPY BIRD CV", self.assets.Bold, titleSize, centerX, float64(h/3), world.GroundDarkYellow, text.AlignCenter)
		self.drawText(target, "Click START to play", self.assets.Regular, labelSize, centerX, float64(h/2-60), world.GrassGreen, text.AlignCenter)
		self.drawButton(target, self.session.Start)
		self.drawButton(target, self.session.Quit)
	case world.StatePlaying:
		self.drawScore(ui, score)
	case world.StateGameOver:
		self.drawScore(ui, score)
		ui.Coat(overlayColor)
		self.drawText(target, "GAME OVER", self.assets.Bold, titleSize, centerX, float64(h/3), world.BirdRed, text.AlignCenter)
		self.drawText(target, score, self.assets.Regular, labelSize, centerX, float64(h/2), world.GroundDarkYellow, text.AlignCenter)
		self.drawButton(target, self.session.Restart)
	}
}

// Draws the HUD score on a dark panel.
func (self *Game) drawScore(ui *flapcam.Offscreen, score string) {
	face := &text.GoTextFace{Source: self.assets.Regular, Size: labelSize}
	w, h := text.Measure(score, face, 0)
	ui.CoatRect(image.Rect(20, 10, 44+int(w), 22+int(h)), overlayColor)
	self.drawText(ui.Target(), score, self.assets.Regular, labelSize, 32, 16, world.GroundDarkYellow, text.AlignStart)
}

func (self *Game) drawText(target *ebiten.Image, str string, source *text.GoTextFaceSource, size, x, y float64, clr color.Color, align text.Align) {
	face := &text.GoTextFace{Source: source, Size: size}
	var opts text.DrawOptions
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	opts.PrimaryAlign = align
	text.Draw(target, str, face, &opts)
}

func (self *Game) drawButton(target *ebiten.Image, button *world.Button) {
	r := button.Rect
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)
	vector.DrawFilledRect(target, x, y, w, h, button.Color(), false)
	vector.StrokeRect(target, x+1.5, y+1.5, w-3, h-3, 3, world.Black, false)

	face := &text.GoTextFace{Source: self.assets.Regular, Size: buttonSize}
	var opts text.DrawOptions
	opts.GeoM.Translate(float64(r.CenterX()), float64(r.CenterY()))
	opts.ColorScale.ScaleWithColor(world.Black)
	opts.PrimaryAlign = text.AlignCenter
	opts.SecondaryAlign = text.AlignCenter
	text.Draw(target, button.Label, face, &opts)
}
