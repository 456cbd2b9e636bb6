package world

import (
	"testing"

	"github.com/edwinsyarief/flapcam/config"
)

func TestBirdEasesAndTilts(t *testing.T) {
	cfg := config.Default().Bird
	bird := NewBird(100, 540, 3, cfg)
	bird.SetPosition(100)
	bird.Update()

	if bird.Y() != 496 {
		t.Errorf("Expected y 496 after one update, got %v", bird.Y())
	}
	if bird.Angle() != -6 {
		t.Errorf("Expected angle -6 while rising, got %v", bird.Angle())
	}
	if bird.Rect().Y != 496 {
		t.Errorf("Expected rect to follow y, got %d", bird.Rect().Y)
	}

	for i := 0; i < 100; i++ {
		bird.Update()
		if bird.Angle() < -cfg.MaxAngle || bird.Angle() > cfg.MaxAngle {
			t.Fatalf("Angle %v out of range", bird.Angle())
		}
	}
	if bird.Y() != 100 {
		t.Errorf("Expected bird to settle on 100, got %v", bird.Y())
	}
	if bird.Angle() != 0 {
		t.Errorf("Expected angle to level out, got %v", bird.Angle())
	}
}

func TestBirdTiltsDownWhenFalling(t *testing.T) {
	bird := NewBird(100, 100, 1, config.Default().Bird)
	bird.SetPosition(900)
	bird.Update()
	if bird.Angle() <= 0 {
		t.Errorf("Expected positive angle while falling, got %v", bird.Angle())
	}
}

func TestBirdAnimation(t *testing.T) {
	bird := NewBird(100, 540, 3, config.Default().Bird)
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		bird.Update()
		if bird.Frame() < 0 || bird.Frame() >= 3 {
			t.Fatalf("Frame %d out of range", bird.Frame())
		}
		seen[bird.Frame()] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected all 3 frames to be shown, saw %v", seen)
	}

	still := NewBird(100, 540, 0, config.Default().Bird)
	for i := 0; i < 10; i++ {
		still.Update()
	}
	if still.Frame() != 0 {
		t.Errorf("Expected single frame bird to stay on frame 0")
	}
}

func TestPipeGeometry(t *testing.T) {
	cfg := config.Default().Pipe
	pipe := NewPipe(540, 1080, 500, cfg)
	if top := pipe.TopRect(); top.Y != 0 || top.H != 400 || top.W != 78 {
		t.Errorf("Unexpected top rect %+v", top)
	}
	if bottom := pipe.BottomRect(); bottom.Y != 600 || bottom.H != 480 {
		t.Errorf("Unexpected bottom rect %+v", bottom)
	}
	if pipe.TopImageY() != -680 {
		t.Errorf("Expected top image at -680, got %d", pipe.TopImageY())
	}

	pipe.Update()
	if pipe.X() != 537 || pipe.TopRect().X != 537 || pipe.BottomRect().X != 537 {
		t.Errorf("Expected pipe to scroll to 537, got %d", pipe.X())
	}
}

func TestPipeClearedAndOffScreen(t *testing.T) {
	cfg := config.Default().Pipe
	if NewPipe(537, 1080, 500, cfg).Cleared(100) {
		t.Errorf("Expected fresh pipe not to be cleared")
	}
	if !NewPipe(19, 1080, 500, cfg).Cleared(100) {
		t.Errorf("Expected pipe behind the bird to be cleared")
	}
	if NewPipe(20, 1080, 500, cfg).Cleared(100) {
		t.Errorf("Expected pipe level with the margin not to be cleared")
	}
	if NewPipe(-80, 1080, 500, cfg).OffScreen() {
		t.Errorf("Expected pipe at -80 to still be on screen")
	}
	if !NewPipe(-81, 1080, 500, cfg).OffScreen() {
		t.Errorf("Expected pipe at -81 to be off screen")
	}
}

func TestPipeCollide(t *testing.T) {
	cfg := config.Default()
	bird := NewBird(100, 540, 1, cfg.Bird)
	mask := NewFilledMask(cfg.Bird.Width, cfg.Bird.Height)

	tests := []struct {
		name     string
		x, gapY  int
		expected bool
	}{
		{"inside the gap", 120, 540, false},
		{"hits bottom pipe", 120, 400, true},
		{"hits top pipe", 120, 700, true},
		{"pipe still ahead", 151, 400, false},
		{"pipe behind", 21, 400, false},
	}
	for _, tc := range tests {
		pipe := NewPipe(tc.x, 1080, tc.gapY, cfg.Pipe)
		if got := pipe.Collide(bird, mask); got != tc.expected {
			t.Errorf("%s: Expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}

func TestGroundScrollAndCollide(t *testing.T) {
	ground := NewGround(540, 1080, config.Default().Ground)
	if ground.Y() != 980 {
		t.Fatalf("Expected ground at 980, got %d", ground.Y())
	}
	for i := 0; i < 180; i++ {
		ground.Update()
	}
	if x1, x2 := ground.Tiles(); x1 != -540 || x2 != 0 {
		t.Errorf("Expected tiles at (-540, 0), got (%d, %d)", x1, x2)
	}
	ground.Update()
	if x1, x2 := ground.Tiles(); x1 != 537 || x2 != -3 {
		t.Errorf("Expected tiles to leap-frog to (537, -3), got (%d, %d)", x1, x2)
	}

	cfg := config.Default().Bird
	if ground.Collide(NewBird(100, 540, 1, cfg)) {
		t.Errorf("Expected no ground contact mid screen")
	}
	if !ground.Collide(NewBird(100, 945, 1, cfg)) {
		t.Errorf("Expected ground contact when bird bottom reaches the ground")
	}
}

func TestButton(t *testing.T) {
	button := NewButton(170, 548, 200, 60, "START", GrassGreen, GrassDarkGreen)
	button.CheckHover(10, 10)
	if button.Hovered() || button.Color() != GrassGreen {
		t.Errorf("Expected base color when not hovered")
	}
	button.CheckHover(200, 560)
	if !button.Hovered() || button.Color() != GrassDarkGreen {
		t.Errorf("Expected hover color when hovered")
	}
	if button.Clicked(200, 560, false) {
		t.Errorf("Expected no click without a press")
	}
	if !button.Clicked(200, 560, true) {
		t.Errorf("Expected click inside the button")
	}
	if button.Clicked(370, 560, true) {
		t.Errorf("Expected right edge to be outside the button")
	}
}
