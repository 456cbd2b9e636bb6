package webcam

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	pigo "github.com/esimov/pigo/core"
)

// PigoParams tunes the pigo cascade run.
type PigoParams struct {
	MinSize     int
	MaxSize     int
	ShiftFactor float64
	ScaleFactor float64

	// Detections whose clusters overlap by more than this ratio are
	// merged.
	IoUThreshold float64

	// Detections scoring below this are dropped.
	MinQuality float32
}

// DefaultPigoParams matches the face size limits of the Haar detector.
func DefaultPigoParams() PigoParams {
	return PigoParams{
		MinSize:      32,
		MaxSize:      320,
		ShiftFactor:  0.1,
		ScaleFactor:  1.1,
		IoUThreshold: 0.2,
		MinQuality:   5,
	}
}

var _ Detector = (*PigoDetector)(nil)

// PigoDetector finds faces with a pigo pixel intensity cascade. It
// needs no native libraries.
type PigoDetector struct {
	params     PigoParams
	classifier *pigo.Pigo
}

// NewPigoDetector unpacks a pigo cascade.
func NewPigoDetector(cascade []byte, params PigoParams) (*PigoDetector, error) {
	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("unpack pigo cascade: %w", err)
	}
	return &PigoDetector{params: params, classifier: classifier}, nil
}

// LoadPigoDetector reads and unpacks the cascade file at path.
func LoadPigoDetector(path string, params PigoParams) (*PigoDetector, error) {
	cascade, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pigo cascade %s: %w", path, err)
	}
	return NewPigoDetector(cascade, params)
}

func (self *PigoDetector) Detect(img image.Image) ([]image.Rectangle, error) {
	// pigo reads pixels from the origin
	src := imaging.Clone(img)
	cols, rows := src.Bounds().Dx(), src.Bounds().Dy()
	if cols == 0 || rows == 0 {
		return nil, nil
	}

	params := pigo.CascadeParams{
		MinSize:     self.params.MinSize,
		MaxSize:     min(self.params.MaxSize, max(cols, rows)),
		ShiftFactor: self.params.ShiftFactor,
		ScaleFactor: self.params.ScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(src),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}
	dets := self.classifier.RunCascade(params, 0.0)
	dets = self.classifier.ClusterDetections(dets, self.params.IoUThreshold)

	rects := make([]image.Rectangle, 0, len(dets))
	for _, det := range dets {
		if det.Q < self.params.MinQuality {
			continue
		}
		rects = append(rects, detectionRect(det.Row, det.Col, det.Scale))
	}
	return rects, nil
}

// detectionRect converts a pigo centre and scale to a rectangle.
func detectionRect(row, col, scale int) image.Rectangle {
	return image.Rect(col-scale/2, row-scale/2, col+scale/2, row+scale/2)
}

func (self *PigoDetector) Close() error { return nil }
