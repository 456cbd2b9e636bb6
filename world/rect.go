// Package world models the game itself: the bird, the scrolling
// pipes and ground, the menu buttons and the session state machine
// that ties them together. Nothing here draws; the game package
// renders whatever state it finds.
package world

// Rect is an integer rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H int
}

func (self Rect) Right() int { return self.X + self.W }
func (self Rect) Bottom() int { return self.Y + self.H }

func (self Rect) CenterX() int { return self.X + self.W/2 }
func (self Rect) CenterY() int { return self.Y + self.H/2 }

// Contains reports whether the point lies inside the rectangle.
// The right and bottom edges are exclusive.
func (self Rect) Contains(x, y int) bool {
	return x >= self.X && x < self.Right() && y >= self.Y && y < self.Bottom()
}
