package flapcam

import (
	"image"
	"testing"

	"github.com/edwinsyarief/flapcam/shaker"
)

type constShaker struct {
	calls []float64
}

func (self *constShaker) GetShakeOffsets(level float64) (float64, float64) {
	self.calls = append(self.calls, level)
	return level * 10, -level * 10
}

func TestSetAt(t *testing.T) {
	slice := setAt([]int{1, 2}, 9, 0)
	if slice[0] != 9 || len(slice) != 2 {
		t.Errorf("Expected in-range set, got %v", slice)
	}
	slice = setAt(slice, 3, 2)
	if len(slice) != 3 || slice[2] != 3 {
		t.Errorf("Expected append, got %v", slice)
	}
	slice = setAt(slice, 7, 6)
	if len(slice) != 7 || slice[6] != 7 || slice[4] != 0 {
		t.Errorf("Expected growth with zero values, got %v", slice)
	}
}

func TestShakerChannelTrigger(t *testing.T) {
	fake := &constShaker{}
	channel := shakerChannel{shaker: fake}
	if channel.IsShaking() {
		t.Fatalf("Expected a fresh channel to be idle")
	}

	channel.Trigger(2, 3, 2)
	for i := 0; i < 10; i++ {
		channel.Update(0, 1)
	}
	expected := []float64{0, 0.5, 1, 1, 1, 1, 0.5}
	for i, level := range expected {
		if fake.calls[i] != level {
			t.Errorf("Tick %d: Expected level %v, got %v", i, level, fake.calls[i])
		}
	}
	// one termination call after the shake ends
	if len(fake.calls) != len(expected)+1 || fake.calls[len(expected)] != 0 {
		t.Errorf("Expected a single termination call, got %v", fake.calls)
	}
	if channel.IsShaking() || channel.offsetX != 0 || channel.offsetY != 0 {
		t.Errorf("Expected the channel to rest after the shake")
	}
}

func TestShakerChannelStartEnd(t *testing.T) {
	channel := shakerChannel{shaker: &constShaker{}}
	channel.Start(0)
	for i := 0; i < 100; i++ {
		channel.Update(0, 1)
	}
	if !channel.IsShaking() || channel.Activity() != 1 {
		t.Fatalf("Expected an endless shake at full intensity")
	}

	channel.End(4)
	if !channel.IsFadingOut() || channel.Activity() != 1 {
		t.Errorf("Expected the fade out to start at full intensity, got %v", channel.Activity())
	}
	channel.Update(0, 1)
	channel.Update(0, 1)
	if channel.Activity() != 0.5 {
		t.Errorf("Expected half intensity halfway through the fade out, got %v", channel.Activity())
	}
	for i := 0; i < 5; i++ {
		channel.Update(0, 1)
	}
	if channel.IsShaking() {
		t.Errorf("Expected the shake to have ended")
	}

	// ending an idle channel does nothing
	channel.End(10)
	if channel.IsShaking() {
		t.Errorf("Expected End on an idle channel to keep it idle")
	}
}

func TestShakerChannelRestartKeepsIntensity(t *testing.T) {
	channel := shakerChannel{shaker: &constShaker{}}
	channel.Start(10)
	for i := 0; i < 5; i++ {
		channel.Update(0, 1)
	}
	if channel.Activity() != 0.5 {
		t.Fatalf("Expected half intensity, got %v", channel.Activity())
	}
	channel.Start(20)
	if channel.Activity() != 0.5 {
		t.Errorf("Expected restart to keep intensity, got %v", channel.Activity())
	}
}

func TestActiveArea(t *testing.T) {
	var ctrl controller
	ctrl.logicalWidth, ctrl.logicalHeight = 540, 1080

	tests := []struct {
		name     string
		bounds   image.Rectangle
		expected image.Rectangle
	}{
		{"same aspect", image.Rect(0, 0, 270, 540), image.Rect(0, 0, 270, 540)},
		{"wide window", image.Rect(0, 0, 1920, 1080), image.Rect(690, 0, 1230, 1080)},
		{"tall window", image.Rect(0, 0, 540, 1280), image.Rect(0, 100, 540, 1180)},
	}
	for _, tc := range tests {
		if got := ctrl.activeArea(tc.bounds); got != tc.expected {
			t.Errorf("%s: Expected %v, got %v", tc.name, tc.expected, got)
		}
	}

	ctrl.stretchingEnabled = true
	if got := ctrl.activeArea(image.Rect(0, 0, 1920, 1080)); got != image.Rect(0, 0, 1920, 1080) {
		t.Errorf("Expected stretching to use the whole window, got %v", got)
	}
}

func TestRelativeCoords(t *testing.T) {
	area := image.Rect(690, 0, 1230, 1080)
	x, y := relativeCoords(960, 540, area)
	if x != 0.5 || y != 0.5 {
		t.Errorf("Expected (0.5, 0.5), got (%v, %v)", x, y)
	}
	x, _ = relativeCoords(0, 0, area)
	if x >= 0 {
		t.Errorf("Expected the letterbox to map outside [0, 1], got %v", x)
	}
	if x, y := relativeCoords(10, 10, image.Rectangle{}); x != 0 || y != 0 {
		t.Errorf("Expected (0, 0) for an empty area")
	}
}

func TestCameraShakeAccessors(t *testing.T) {
	const channel = shaker.Channel(1)
	SetResolution(540, 1080)
	fake := &constShaker{}
	Camera().SetShaker(fake, channel)
	defer Camera().SetShaker(nil, channel)
	if Camera().GetShaker(channel) != fake {
		t.Fatalf("Expected the shaker set on channel 1")
	}

	Camera().StartShake(ZeroTicks, channel)
	for i := 0; i < 3; i++ {
		pkgController.updateShake()
		pkgController.updateCameraArea()
	}
	if !Camera().IsShaking(channel) {
		t.Fatalf("Expected channel 1 to be shaking")
	}
	minX, minY, maxX, maxY := Camera().AreaF64()
	if minX != 10 || minY != -10 || maxX != 550 || maxY != 1070 {
		t.Errorf("Expected the camera area to move with the shake, got (%v, %v, %v, %v)", minX, minY, maxX, maxY)
	}

	Camera().EndShake(2, channel)
	for i := 0; i < 5; i++ {
		pkgController.updateShake()
		pkgController.updateCameraArea()
	}
	if Camera().IsShaking(channel) {
		t.Errorf("Expected the shake to have ended")
	}
	if area := Camera().Area(); area != image.Rect(0, 0, 540, 1080) {
		t.Errorf("Expected the camera back at rest, got %v", area)
	}
}
