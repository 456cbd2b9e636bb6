package world

import "image"

// Pixels with an alpha above this value are considered solid.
const maskAlphaThreshold = 127

// Mask is a per-pixel collision bitmap.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask returns an empty mask of the given size.
func NewMask(w, h int) *Mask {
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// NewFilledMask returns a mask with every bit set.
func NewFilledMask(w, h int) *Mask {
	m := NewMask(w, h)
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

// NewMaskFromImage sets a bit for every pixel whose alpha is above
// the solidity threshold.
func NewMaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > maskAlphaThreshold {
				m.bits[y*m.w+x] = true
			}
		}
	}
	return m
}

func (self *Mask) Size() (int, int) { return self.w, self.h }

func (self *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= self.w || y >= self.h {
		return false
	}
	return self.bits[y*self.w+x]
}

func (self *Mask) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= self.w || y >= self.h {
		return
	}
	self.bits[y*self.w+x] = v
}

// Count returns the number of set bits.
func (self *Mask) Count() int {
	n := 0
	for _, b := range self.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether any set bit of m coincides with a set bit
// of other when other's origin is placed at (offX, offY) relative to
// m's origin.
func (self *Mask) Overlap(other *Mask, offX, offY int) bool {
	minX, minY := max(0, offX), max(0, offY)
	maxX, maxY := min(self.w, offX+other.w), min(self.h, offY+other.h)
	for y := minY; y < maxY; y++ {
		row := y * self.w
		otherRow := (y - offY) * other.w
		for x := minX; x < maxX; x++ {
			if self.bits[row+x] && other.bits[otherRow+x-offX] {
				return true
			}
		}
	}
	return false
}
