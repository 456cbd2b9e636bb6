// Package cvcapture connects the webcam pipeline to OpenCV: it reads
// frames from a capture device and detects faces with a Haar cascade.
package cvcapture

import (
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"github.com/edwinsyarief/flapcam/webcam"
)

var (
	_ webcam.Source   = (*Camera)(nil)
	_ webcam.Detector = (*HaarDetector)(nil)
)

// Camera is a webcam.Source backed by an OpenCV capture device.
type Camera struct {
	mu     sync.Mutex
	device *gocv.VideoCapture
	frame  gocv.Mat
	width  int
	height int
	closed bool
}

// Open opens capture device id, asks it for width x height frames
// and reads a first frame to make sure the device works. It returns
// an error wrapping webcam.ErrNoCamera when any of that fails.
func Open(id, width, height int) (*Camera, error) {
	device, err := gocv.OpenVideoCapture(id)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", webcam.ErrNoCamera, id, err)
	}
	if !device.IsOpened() {
		device.Close()
		return nil, fmt.Errorf("%w: device %d did not open", webcam.ErrNoCamera, id)
	}
	device.Set(gocv.VideoCaptureFrameWidth, float64(width))
	device.Set(gocv.VideoCaptureFrameHeight, float64(height))

	frame := gocv.NewMat()
	if ok := device.Read(&frame); !ok || frame.Empty() {
		frame.Close()
		device.Close()
		return nil, fmt.Errorf("%w: device %d returned no frame", webcam.ErrNoCamera, id)
	}
	return &Camera{
		device: device,
		frame:  frame,
		width:  frame.Cols(),
		height: frame.Rows(),
	}, nil
}

func (self *Camera) Read() (image.Image, error) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if self.closed {
		return nil, webcam.ErrClosed
	}
	if ok := self.device.Read(&self.frame); !ok || self.frame.Empty() {
		return nil, webcam.ErrNoFrame
	}
	img, err := self.frame.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}
	return img, nil
}

// Size is the frame size negotiated with the device, which may
// differ from the size asked for.
func (self *Camera) Size() (int, int) {
	return self.width, self.height
}

func (self *Camera) Close() error {
	self.mu.Lock()
	defer self.mu.Unlock()
	if self.closed {
		return nil
	}
	self.closed = true
	self.frame.Close()
	return self.device.Close()
}

// HaarParams tunes the cascade run.
type HaarParams struct {
	ScaleFactor  float64
	MinNeighbors int
	MinSize      int
	MaxSize      int
}

// HaarDetector is a webcam.Detector backed by an OpenCV Haar cascade.
type HaarDetector struct {
	mu         sync.Mutex
	classifier gocv.CascadeClassifier
	params     HaarParams
}

// LoadHaarDetector loads the cascade xml file at path.
func LoadHaarDetector(path string, params HaarParams) (*HaarDetector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(path) {
		classifier.Close()
		return nil, fmt.Errorf("load haar cascade %s: failed", path)
	}
	return &HaarDetector{classifier: classifier, params: params}, nil
}

func (self *HaarDetector) Detect(img image.Image) ([]image.Rectangle, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	self.mu.Lock()
	defer self.mu.Unlock()
	faces := self.classifier.DetectMultiScaleWithParams(
		gray,
		self.params.ScaleFactor,
		self.params.MinNeighbors,
		0,
		image.Pt(self.params.MinSize, self.params.MinSize),
		image.Pt(self.params.MaxSize, self.params.MaxSize),
	)
	return faces, nil
}

func (self *HaarDetector) Close() error {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.classifier.Close()
}
