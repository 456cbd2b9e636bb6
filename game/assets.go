package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/edwinsyarief/flapcam/config"
	"github.com/edwinsyarief/flapcam/webcam"
	"github.com/edwinsyarief/flapcam/world"
)

const birdFrameCount = 3

// Frames holds the decoded images before they are uploaded to the
// GPU. Masks are computed from them, so they stay available to code
// that never opens a window.
type Frames struct {
	Background *image.NRGBA
	Bird       []*image.NRGBA
	Pipe       *image.NRGBA
	Ground     *image.NRGBA
}

// LoadFrames reads the images under <root>/images, scaled to the
// sizes in cfg. Every missing or broken image is replaced by a
// placeholder and logged.
func LoadFrames(root string, cfg *config.Config, logger logrus.FieldLogger) *Frames {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger = logger.WithField("component", "assets")
	dir := filepath.Join(root, "images")
	w, h := cfg.Screen.Width, cfg.Screen.Height

	load := func(name string, width, height int, placeholder func() *image.NRGBA) *image.NRGBA {
		path := filepath.Join(dir, name)
		img, err := loadImage(path, width, height)
		if err != nil {
			logger.WithFields(logrus.Fields{"path": path, "err": err}).Warn("image unavailable, using a placeholder")
			return placeholder()
		}
		return img
	}

	frames := &Frames{
		Background: load("bg.png", w, h, func() *image.NRGBA {
			return imaging.New(w, h, world.SkyBlue)
		}),
		Pipe: load("pipe.png", cfg.Pipe.Width, cfg.Pipe.Height, func() *image.NRGBA {
			return pipePlaceholder(cfg.Pipe.Width, cfg.Pipe.Height)
		}),
		Ground: load("ground.png", w, cfg.Ground.Height, func() *image.NRGBA {
			return imaging.New(w, max(cfg.Ground.Height, 1), world.Sand)
		}),
	}

	for i := 1; i <= birdFrameCount; i++ {
		path := filepath.Join(dir, fmt.Sprintf("bird%d.png", i))
		img, err := loadImage(path, cfg.Bird.Width, cfg.Bird.Height)
		if err != nil {
			logger.WithFields(logrus.Fields{"path": path, "err": err}).Warn("bird frame unavailable")
			continue
		}
		frames.Bird = append(frames.Bird, img)
	}
	if len(frames.Bird) == 0 {
		frames.Bird = []*image.NRGBA{birdPlaceholder(cfg.Bird.Width, cfg.Bird.Height)}
	}
	return frames
}

// Masks returns one collision mask per bird frame.
func (self *Frames) Masks() []*world.Mask {
	masks := make([]*world.Mask, len(self.Bird))
	for i, frame := range self.Bird {
		masks[i] = world.NewMaskFromImage(frame)
	}
	return masks
}

func loadImage(path string, width, height int) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}

func pipePlaceholder(width, height int) *image.NRGBA {
	img := imaging.New(width, height, world.Green)
	webcam.DrawRect(img, img.Bounds(), 0, 3, world.PipeGreen)
	return img
}

// A yellow body with a black eye and a red beak pointing right.
func birdPlaceholder(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	beakLen := width / 5
	bodyW := width - beakLen
	fillEllipse(img, 0, 0, bodyW, height, world.Yellow)
	eye := max(height/4, 2)
	fillEllipse(img, bodyW*7/10, height*2/7, eye, eye, world.Black)

	// beak: a triangle with its base on the body's edge
	midY := float64(height) / 2
	for x := bodyW - 2; x < width; x++ {
		reach := (1 - float64(x-bodyW+2)/float64(beakLen+2)) * float64(height) / 7
		for y := int(midY - reach); y <= int(midY+reach); y++ {
			img.Set(x, y, world.Red)
		}
	}
	return img
}

func fillEllipse(img *image.NRGBA, x, y, w, h int, clr color.Color) {
	rx, ry := float64(w)/2, float64(h)/2
	cx, cy := float64(x)+rx, float64(y)+ry
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			dy := (float64(py) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.Set(px, py, clr)
			}
		}
	}
}

// --- gpu side ---

// Assets are the images and fonts the game draws with.
type Assets struct {
	Background *ebiten.Image
	Bird       []*ebiten.Image
	Pipe       *ebiten.Image
	Ground     *ebiten.Image
	Masks      []*world.Mask

	Regular *text.GoTextFaceSource
	Bold    *text.GoTextFaceSource
}

// LoadAssets loads every image and font under root. Only a failure
// to parse even the built-in fallback fonts is reported as an error.
func LoadAssets(root string, cfg *config.Config, logger logrus.FieldLogger) (*Assets, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	frames := LoadFrames(root, cfg, logger)
	assets := &Assets{
		Background: ebiten.NewImageFromImage(frames.Background),
		Pipe:       ebiten.NewImageFromImage(frames.Pipe),
		Ground:     ebiten.NewImageFromImage(frames.Ground),
		Masks:      frames.Masks(),
	}
	for _, frame := range frames.Bird {
		assets.Bird = append(assets.Bird, ebiten.NewImageFromImage(frame))
	}

	var err error
	fonts := filepath.Join(root, "fonts")
	assets.Regular, err = loadFont(filepath.Join(fonts, "PixelifySans-Regular.ttf"), goregular.TTF, logger)
	if err != nil {
		return nil, err
	}
	assets.Bold, err = loadFont(filepath.Join(fonts, "PixelifySans-Bold.ttf"), gobold.TTF, logger)
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func loadFont(path string, fallback []byte, logger logrus.FieldLogger) (*text.GoTextFaceSource, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		source, parseErr := text.NewGoTextFaceSource(bytes.NewReader(data))
		if parseErr == nil {
			return source, nil
		}
		err = parseErr
	}
	logger.WithFields(logrus.Fields{"component": "assets", "path": path, "err": err}).Warn("font unavailable, using Go font")
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fallback))
	if err != nil {
		return nil, fmt.Errorf("parse fallback font: %w", err)
	}
	return source, nil
}
