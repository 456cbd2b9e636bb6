package webcam

import "image"

// Smoother averages the last few face rectangles to steady the
// tracked position.
type Smoother struct {
	window  int
	history []image.Rectangle
}

// NewSmoother keeps up to window rectangles. Windows below one are
// treated as one, which disables smoothing.
func NewSmoother(window int) *Smoother {
	window = max(window, 1)
	return &Smoother{
		window:  window,
		history: make([]image.Rectangle, 0, window),
	}
}

// Add records r and returns the mean of the recorded rectangles.
// The mean is taken over x, y, width and height separately and
// truncated to integers.
func (self *Smoother) Add(r image.Rectangle) image.Rectangle {
	if len(self.history) == self.window {
		copy(self.history, self.history[1:])
		self.history = self.history[:self.window-1]
	}
	self.history = append(self.history, r)

	var x, y, w, h int
	for _, past := range self.history {
		x += past.Min.X
		y += past.Min.Y
		w += past.Dx()
		h += past.Dy()
	}
	n := len(self.history)
	x, y, w, h = x/n, y/n, w/n, h/n
	return image.Rect(x, y, x+w, y+h)
}

// Len is the number of rectangles currently averaged.
func (self *Smoother) Len() int { return len(self.history) }

func (self *Smoother) Reset() {
	self.history = self.history[:0]
}
