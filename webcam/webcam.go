// Package webcam turns a live camera feed into a face position and a
// background picture for the game.
//
// A [Pipeline] reads frames from a [Source] on one goroutine and runs
// a [Detector] on another, handing frames over through a small queue
// that drops frames instead of blocking capture. The largest face of
// each detection round is smoothed over the last few rounds and
// published as a [Centroid].
//
// This package never talks to OpenCV directly. The pure Go pigo
// detector lives here; camera capture and the Haar cascade detector
// live in the cvcapture subpackage.
package webcam

import (
	"errors"
	"image"
)

var (
	// ErrNoCamera is returned when no capture device could be opened.
	ErrNoCamera = errors.New("webcam: no camera available")

	// ErrNoFrame is returned by a Source when a frame could not be
	// read this time around. Capture keeps going.
	ErrNoFrame = errors.New("webcam: no frame available")

	// ErrClosed is returned by a Source that has been closed.
	ErrClosed = errors.New("webcam: source closed")
)

// Source produces camera frames.
type Source interface {
	// Read blocks until the next frame is available.
	Read() (image.Image, error)
	// Size is the frame size the source produces.
	Size() (width, height int)
	Close() error
}

// Detector finds faces in a frame.
type Detector interface {
	Detect(img image.Image) ([]image.Rectangle, error)
	Close() error
}

// Centroid is the centre of the tracked face in frame coordinates.
// Valid stays false until a face has been seen at least once.
type Centroid struct {
	X, Y  int
	Valid bool
}

// CentroidOf returns the integer centre of r.
func CentroidOf(r image.Rectangle) Centroid {
	return Centroid{
		X:     r.Min.X + r.Dx()/2,
		Y:     r.Min.Y + r.Dy()/2,
		Valid: true,
	}
}

// Largest returns the rectangle with the biggest area. Ties go to
// the first one. ok is false when rects is empty.
func Largest(rects []image.Rectangle) (largest image.Rectangle, ok bool) {
	best := -1
	for _, r := range rects {
		area := r.Dx() * r.Dy()
		if area > best {
			best = area
			largest = r
			ok = true
		}
	}
	return largest, ok
}
