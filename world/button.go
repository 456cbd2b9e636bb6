package world

import "image/color"

// Button is a labelled rectangle that highlights while hovered.
type Button struct {
	Rect       Rect
	Label      string
	BaseColor  color.RGBA
	HoverColor color.RGBA

	hovered bool
}

func NewButton(x, y, w, h int, label string, base, hover color.RGBA) *Button {
	return &Button{
		Rect:       Rect{X: x, Y: y, W: w, H: h},
		Label:      label,
		BaseColor:  base,
		HoverColor: hover,
	}
}

func (self *Button) CheckHover(x, y int) {
	self.hovered = self.Rect.Contains(x, y)
}

func (self *Button) Hovered() bool { return self.hovered }

// Clicked reports whether a left press happened inside the button.
func (self *Button) Clicked(x, y int, pressed bool) bool {
	return pressed && self.Rect.Contains(x, y)
}

// Color is the fill for the current hover state.
func (self *Button) Color() color.RGBA {
	if self.hovered {
		return self.HoverColor
	}
	return self.BaseColor
}
