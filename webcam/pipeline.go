package webcam

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
)

// How long Stop waits for the worker goroutines.
const stopTimeout = time.Second

// Options configure a Pipeline.
type Options struct {
	// Frames read per second.
	FPS int
	// Frames waiting for detection. Extra frames are dropped.
	QueueSize int
	// Detections averaged by the smoother.
	History int

	// Outline drawn around the tracked face.
	RectPadding   int
	RectThickness int
	RectColor     color.Color

	// Background size and orientation.
	Width, Height int
	Mirror        bool
}

// Pipeline captures frames and tracks the player's face in the
// background. The zero value is not usable; see NewPipeline.
type Pipeline struct {
	src    Source
	det    Detector
	opts   Options
	logger logrus.FieldLogger

	queue    chan *image.NRGBA
	smoother *Smoother

	mu         sync.Mutex
	centroid   Centroid
	processed  *image.NRGBA
	background *image.NRGBA
	seq        uint64

	startOnce sync.Once
	stopOnce  sync.Once
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewPipeline wires a source to a detector. det may be nil, in which
// case frames are captured for the background but no face is ever
// tracked.
func NewPipeline(src Source, det Detector, opts Options, logger logrus.FieldLogger) *Pipeline {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	opts.FPS = max(opts.FPS, 1)
	opts.QueueSize = max(opts.QueueSize, 1)
	if opts.RectColor == nil {
		opts.RectColor = color.RGBA{204, 0, 0, 255}
	}
	if opts.Width < 1 || opts.Height < 1 {
		opts.Width, opts.Height = src.Size()
	}
	return &Pipeline{
		src:      src,
		det:      det,
		opts:     opts,
		logger:   logger.WithField("component", "webcam"),
		queue:    make(chan *image.NRGBA, opts.QueueSize),
		smoother: NewSmoother(opts.History),
	}
}

// Start launches the capture goroutine and, when there is a
// detector, the detection goroutine. Later calls do nothing.
func (self *Pipeline) Start(ctx context.Context) {
	self.startOnce.Do(func() {
		ctx, self.cancel = context.WithCancel(ctx)
		self.wg.Add(1)
		go self.capture(ctx)
		if self.det != nil {
			self.wg.Add(1)
			go self.detect(ctx)
		}
	})
}

// Stop cancels the workers and waits for them for up to a second.
// It is safe to call more than once, and before Start.
func (self *Pipeline) Stop() {
	self.stopOnce.Do(func() {
		self.startOnce.Do(func() {})
		if self.cancel == nil {
			return
		}
		self.cancel()

		done := make(chan struct{})
		go func() {
			self.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(stopTimeout):
			self.logger.Warn("workers did not stop in time")
		}
	})
}

// Centroid returns the smoothed centre of the last detected face.
func (self *Pipeline) Centroid() Centroid {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.centroid
}

// FrameSize is the size of the frames the centroid refers to.
func (self *Pipeline) FrameSize() (int, int) {
	return self.src.Size()
}

// Background returns the latest background and its sequence number.
// The sequence number changes whenever a new background is stored,
// so callers can skip re-uploading an unchanged picture. The image
// must not be modified.
func (self *Pipeline) Background() (*image.NRGBA, uint64) {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.background, self.seq
}

func (self *Pipeline) capture(ctx context.Context) {
	defer self.wg.Done()

	ticker := time.NewTicker(time.Second / time.Duration(self.opts.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		img, err := self.src.Read()
		switch {
		case errors.Is(err, ErrClosed):
			self.logger.Info("source closed, capture stopped")
			return
		case errors.Is(err, ErrNoFrame):
			continue
		case err != nil:
			self.logger.WithError(err).Error("capture failed")
			continue
		}
		self.captured(imaging.Clone(img))
	}
}

// captured hands a fresh frame to detection and refreshes the
// background.
func (self *Pipeline) captured(frame *image.NRGBA) {
	if self.det != nil {
		select {
		case self.queue <- imaging.Clone(frame):
		default:
		}
	}

	self.mu.Lock()
	shown := frame
	if self.processed != nil {
		shown = self.processed
	}
	self.mu.Unlock()

	background := Fit(shown, self.opts.Width, self.opts.Height, self.opts.Mirror)

	self.mu.Lock()
	self.background = background
	self.seq++
	self.mu.Unlock()
}

func (self *Pipeline) detect(ctx context.Context) {
	defer self.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case frame := <-self.queue:
			self.process(frame)
		}
	}
}

// process runs detection on frame and stores it with the tracked
// face outlined.
func (self *Pipeline) process(frame *image.NRGBA) {
	faces, err := self.det.Detect(frame)
	if err != nil {
		self.logger.WithError(err).Error("face detection failed")
	}

	face, found := Largest(faces)
	var centroid Centroid
	if found {
		smoothed := self.smoother.Add(face)
		centroid = CentroidOf(smoothed)
		DrawRect(frame, smoothed, self.opts.RectPadding, self.opts.RectThickness, self.opts.RectColor)
	}

	self.mu.Lock()
	if found {
		self.centroid = centroid
	}
	self.processed = frame
	self.mu.Unlock()
}
