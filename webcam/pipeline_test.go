package webcam

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSource struct {
	mu     sync.Mutex
	frame  image.Image
	reads  int
	err    error
	closed atomic.Bool
}

func (self *fakeSource) Read() (image.Image, error) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.reads++
	if self.err != nil {
		return nil, self.err
	}
	return self.frame, nil
}

func (self *fakeSource) Reads() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.reads
}

func (self *fakeSource) Size() (int, int) {
	b := self.frame.Bounds()
	return b.Dx(), b.Dy()
}

func (self *fakeSource) Close() error {
	self.closed.Store(true)
	return nil
}

type fakeDetector struct {
	faces []image.Rectangle
	err   error
	calls atomic.Int32
}

func (self *fakeDetector) Detect(image.Image) ([]image.Rectangle, error) {
	self.calls.Add(1)
	return self.faces, self.err
}

func (self *fakeDetector) Close() error { return nil }

type blockingDetector struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (self *blockingDetector) Detect(image.Image) ([]image.Rectangle, error) {
	self.once.Do(func() { close(self.entered) })
	<-self.release
	return nil, nil
}

func (self *blockingDetector) Close() error { return nil }

func newFrame(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

func testLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("Timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPipelineTracksLargestFace(t *testing.T) {
	src := &fakeSource{frame: newFrame(64, 48)}
	det := &fakeDetector{faces: []image.Rectangle{
		image.Rect(0, 0, 4, 4),
		image.Rect(10, 10, 30, 40),
	}}
	p := NewPipeline(src, det, Options{FPS: 200, QueueSize: 2, History: 5, RectPadding: 2, RectThickness: 2, Width: 27, Height: 54}, testLogger())
	p.Start(context.Background())
	defer p.Stop()

	waitFor(t, "a centroid", func() bool { return p.Centroid().Valid })
	if c := p.Centroid(); c.X != 20 || c.Y != 25 {
		t.Errorf("Expected centroid (20, 25), got (%d, %d)", c.X, c.Y)
	}
	if w, h := p.FrameSize(); w != 64 || h != 48 {
		t.Errorf("Expected frame size 64x48, got %dx%d", w, h)
	}

	waitFor(t, "a background", func() bool {
		bg, _ := p.Background()
		return bg != nil
	})
	bg, seq := p.Background()
	if bg.Bounds().Dx() != 27 || bg.Bounds().Dy() != 54 {
		t.Errorf("Expected a 27x54 background, got %v", bg.Bounds())
	}
	waitFor(t, "a newer background", func() bool {
		_, next := p.Background()
		return next > seq
	})

	// the source frame is never drawn on
	if src.frame.(*image.NRGBA).NRGBAAt(8, 8) != (color.NRGBA{}) {
		t.Errorf("Expected the source frame to stay untouched")
	}
}

func TestPipelineWithoutDetector(t *testing.T) {
	src := &fakeSource{frame: newFrame(32, 24)}
	p := NewPipeline(src, nil, Options{FPS: 200}, testLogger())
	p.Start(context.Background())

	waitFor(t, "a background", func() bool {
		bg, _ := p.Background()
		return bg != nil
	})
	p.Stop()
	p.Stop()

	if p.Centroid().Valid {
		t.Errorf("Expected no centroid without a detector")
	}
	if bg, _ := p.Background(); bg.Bounds().Dx() != 32 || bg.Bounds().Dy() != 24 {
		t.Errorf("Expected the background to default to the frame size, got %v", bg.Bounds())
	}
}

func TestPipelineKeepsCentroidWhenFaceLost(t *testing.T) {
	det := &fakeDetector{faces: []image.Rectangle{image.Rect(0, 0, 10, 10)}}
	p := NewPipeline(&fakeSource{frame: newFrame(20, 20)}, det, Options{History: 1}, testLogger())

	p.process(newFrame(20, 20))
	det.faces = nil
	det.err = errors.New("boom")
	p.process(newFrame(20, 20))

	if c := p.Centroid(); !c.Valid || c.X != 5 || c.Y != 5 {
		t.Errorf("Expected the last centroid to be kept, got %+v", c)
	}
	if det.calls.Load() != 2 {
		t.Errorf("Expected 2 detector calls, got %d", det.calls.Load())
	}
}

func TestPipelineOutlinesFace(t *testing.T) {
	det := &fakeDetector{faces: []image.Rectangle{image.Rect(10, 10, 20, 20)}}
	red := color.NRGBA{255, 0, 0, 255}
	p := NewPipeline(&fakeSource{frame: newFrame(40, 40)}, det, Options{RectPadding: 2, RectThickness: 2, RectColor: red}, testLogger())

	frame := newFrame(40, 40)
	p.process(frame)
	if frame.NRGBAAt(8, 8) != red {
		t.Errorf("Expected the padded outline on the processed frame")
	}
}

func TestPipelineStopsOnClosedSource(t *testing.T) {
	src := &fakeSource{frame: newFrame(8, 8), err: ErrClosed}
	p := NewPipeline(src, nil, Options{FPS: 200}, testLogger())
	p.Start(context.Background())

	waitFor(t, "a read", func() bool { return src.Reads() > 0 })
	time.Sleep(50 * time.Millisecond)
	if reads := src.Reads(); reads != 1 {
		t.Errorf("Expected capture to stop after the source closed, got %d reads", reads)
	}
	p.Stop()
}

func TestPipelineStopBeforeStart(t *testing.T) {
	p := NewPipeline(&fakeSource{frame: newFrame(8, 8)}, nil, Options{}, testLogger())
	p.Stop()
	p.Start(context.Background())
	if bg, _ := p.Background(); bg != nil {
		t.Errorf("Expected Start after Stop to do nothing")
	}
}

func TestPipelineDropsFramesWhileDetectionIsBusy(t *testing.T) {
	src := &fakeSource{frame: newFrame(16, 16)}
	det := &blockingDetector{entered: make(chan struct{}), release: make(chan struct{})}
	p := NewPipeline(src, det, Options{FPS: 200, QueueSize: 2, History: 1}, testLogger())
	p.Start(context.Background())
	defer p.Stop()
	defer close(det.release)

	select {
	case <-det.entered:
	case <-time.After(2 * time.Second):
		t.Fatalf("Timed out waiting for detection to start")
	}
	_, seq := p.Background()
	waitFor(t, "capture to keep going", func() bool {
		_, next := p.Background()
		return next >= seq+10
	})

	if queued := len(p.queue); queued != 2 {
		t.Errorf("Expected a full queue of 2 frames, got %d", queued)
	}
	if reads := src.Reads(); reads < 10 {
		t.Errorf("Expected capture to keep reading, got %d reads", reads)
	}
}
