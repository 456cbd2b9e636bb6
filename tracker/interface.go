// This package defines a [Tracker] interface used to move a
// position towards a target over successive updates, and
// provides a few default implementations.
//
// The game uses trackers for the bird: the face position
// reported by the webcam is only a target, and the bird
// eases towards it instead of teleporting. Trackers are
// also handy for any other element that follows a signal.
package tracker

// The interface for trackers.
//
// Given the current position, the target position and the
// previous speed (in units per second), Update() returns the
// change to apply to the current position on this update.
type Tracker interface {
	Update(currentX, currentY, targetX, targetY, prevSpeedX, prevSpeedY float64) (float64, float64)
}
