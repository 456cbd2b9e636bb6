package tracker

import ebimath "github.com/edwinsyarief/ebi-math"

var _ Tracker = (*Eased)(nil)

// Returns the value that results from moving current towards
// target by the given factor of the remaining distance. Once
// the remaining distance is at or below snap, target is
// returned exactly so values settle instead of creeping.
func Approach(current, target, factor, snap float64) float64 {
	diff := target - current
	if ebimath.Abs(diff) > snap {
		return current + diff*factor
	}
	return target
}

// An exponential ease tracker. Each update covers Factor of
// the remaining distance on each axis, and snaps to the
// target when within Snap units.
//
// With Factor = 0.1 and Snap = 0.5, this is the tracker
// that drives the bird towards the face position.
type Eased struct {
	Factor float64
	Snap   float64
}

func (self *Eased) Update(currentX, currentY, targetX, targetY, prevSpeedX, prevSpeedY float64) (float64, float64) {
	newX := Approach(currentX, targetX, self.Factor, self.Snap)
	newY := Approach(currentY, targetY, self.Factor, self.Snap)
	return newX - currentX, newY - currentY
}
