package webcam

import (
	"image"
	"testing"
)

func TestLargest(t *testing.T) {
	if _, ok := Largest(nil); ok {
		t.Errorf("Expected no rectangle from an empty list")
	}
	rects := []image.Rectangle{
		image.Rect(0, 0, 10, 10),
		image.Rect(5, 5, 40, 35),
		image.Rect(0, 0, 30, 40),
		image.Rect(100, 100, 130, 140),
	}
	got, ok := Largest(rects)
	if !ok || got != rects[2] {
		t.Errorf("Expected %v, got %v", rects[2], got)
	}
}

func TestCentroidOf(t *testing.T) {
	c := CentroidOf(image.Rect(10, 20, 61, 81))
	if !c.Valid || c.X != 35 || c.Y != 50 {
		t.Errorf("Expected valid (35, 50), got %+v", c)
	}
	if (Centroid{}).Valid {
		t.Errorf("Expected zero centroid to be invalid")
	}
}

func TestSmoother(t *testing.T) {
	s := NewSmoother(3)
	got := s.Add(image.Rect(0, 0, 10, 10))
	if got != image.Rect(0, 0, 10, 10) {
		t.Errorf("Expected the first rectangle unchanged, got %v", got)
	}
	got = s.Add(image.Rect(3, 3, 14, 14))
	// mean of x (0, 3) and w (10, 11) truncates to 1 and 10
	if got != image.Rect(1, 1, 11, 11) {
		t.Errorf("Expected (1,1)-(11,11), got %v", got)
	}
	s.Add(image.Rect(6, 6, 18, 18))
	got = s.Add(image.Rect(9, 9, 22, 22))
	// window of three drops the first rectangle
	if s.Len() != 3 || got != image.Rect(6, 6, 18, 18) {
		t.Errorf("Expected (6,6)-(18,18) over 3 entries, got %v over %d", got, s.Len())
	}

	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Expected empty history after reset")
	}
	if got := NewSmoother(0).Add(image.Rect(1, 2, 3, 4)); got != image.Rect(1, 2, 3, 4) {
		t.Errorf("Expected a window of one to pass through, got %v", got)
	}
}

func TestDetectionRect(t *testing.T) {
	if got := detectionRect(100, 200, 60); got != image.Rect(170, 70, 230, 130) {
		t.Errorf("Expected (170,70)-(230,130), got %v", got)
	}
}
