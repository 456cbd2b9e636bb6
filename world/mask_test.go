package world

import (
	"image"
	"image/color"
	"testing"
)

func TestMaskOverlap(t *testing.T) {
	a := NewFilledMask(2, 2)
	b := NewFilledMask(2, 2)
	tests := []struct {
		name       string
		offX, offY int
		expected   bool
	}{
		{"same origin", 0, 0, true},
		{"corner touch", 1, 1, true},
		{"negative corner", -1, -1, true},
		{"right of", 2, 0, false},
		{"below", 0, 2, false},
		{"far away", -50, 30, false},
	}
	for _, tc := range tests {
		if got := a.Overlap(b, tc.offX, tc.offY); got != tc.expected {
			t.Errorf("%s: Expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}

func TestMaskOverlapIgnoresEmptyBits(t *testing.T) {
	a := NewMask(3, 3)
	a.Set(0, 0, true)
	b := NewFilledMask(3, 3)
	if a.Overlap(b, 1, 0) {
		t.Errorf("Expected no overlap when only unset bits coincide")
	}
	if !a.Overlap(b, 0, 0) {
		t.Errorf("Expected overlap on the single set bit")
	}
}

func TestMaskFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(2, 1, color.NRGBA{0, 0, 0, 200})
	img.Set(3, 1, color.NRGBA{0, 0, 0, 100})

	mask := NewMaskFromImage(img)
	if w, h := mask.Size(); w != 4 || h != 2 {
		t.Fatalf("Expected 4x2 mask, got %dx%d", w, h)
	}
	if mask.Count() != 2 {
		t.Errorf("Expected 2 solid pixels, got %d", mask.Count())
	}
	if !mask.Get(1, 0) || !mask.Get(2, 1) || mask.Get(3, 1) {
		t.Errorf("Unexpected mask bits")
	}
	if mask.Get(-1, 0) || mask.Get(4, 0) {
		t.Errorf("Expected out of bounds reads to be empty")
	}
}
