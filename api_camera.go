package flapcam

import (
	"image"

	"github.com/edwinsyarief/flapcam/shaker"
)

// See [Camera]().
type AccessorCamera struct{}

// Provides access to camera-related functionality in a structured
// manner. Use through method chaining, e.g.:
//
//	flapcam.Camera().TriggerShake(0, 20, 15)
//
// The camera looks at the whole logical screen and never moves on
// its own; shakes are the only thing that displace it.
func Camera() AccessorCamera { return AccessorCamera{} }

// Returns the logical area of the game that has to be
// rendered on [Game].Draw()'s canvas. The area is the
// screen shifted by the current shake offsets.
func (AccessorCamera) Area() image.Rectangle {
	return pkgController.cameraAreaGet()
}

// Similar to [AccessorCamera.Area](), but without rounding
// the coordinates.
func (AccessorCamera) AreaF64() (minX, minY, maxX, maxY float64) {
	return pkgController.cameraAreaF64()
}

// --- screen shaking ---

// Returns the shaker interface associated to the given shaker
// channel (or to the default channel zero if none is passed).
// Passing multiple channels will make the function panic.
//
// See [AccessorCamera.SetShaker]() for more details.
func (AccessorCamera) GetShaker(channel ...shaker.Channel) shaker.Shaker {
	return pkgController.cameraGetShaker(channel...)
}

// Sets a shaker. By default the screen shaker interface is
// nil, and shakes are handled by a fallback [shaker.Random].
//
// If you don't specify any shaker channel, the shaker will be
// set to the default channel zero. Attempting to pass multiple
// channels will make the function panic.
func (AccessorCamera) SetShaker(shaker shaker.Shaker, channel ...shaker.Channel) {
	pkgController.cameraSetShaker(shaker, channel...)
}

// Starts a screen shake that will continue indefinitely until
// stopped by [AccessorCamera.EndShake](). If no shaker channel(s)
// are specified, the shake will start on the default channel zero.
//
// Calling this method repeatedly to force a shaker to start if
// not yet active is possible and safe.
func (AccessorCamera) StartShake(fadeIn TicksDuration, channels ...shaker.Channel) {
	pkgController.cameraStartShake(fadeIn, channels...)
}

// Stops a screen shake. This can be used to stop shakes initiated with
// [AccessorCamera.StartShake](), but also to stop triggered shakes early
// or ensure that no shakes remain active after screen transitions.
//
// If no shaker channel(s) are specified, the end shake command will
// be sent to the default channel zero.
func (AccessorCamera) EndShake(fadeOut TicksDuration, channels ...shaker.Channel) {
	pkgController.cameraEndShake(fadeOut, channels...)
}

// If no shaker channel is specified, the function returns whether
// any camera shake is active. If a shaker channel is specified, the
// function will only return whether that specific channel is active.
func (AccessorCamera) IsShaking(channel ...shaker.Channel) bool {
	return pkgController.cameraIsShaking(channel...)
}

// Triggers a screenshake with specific fade in, duration and fade
// out tick durations. If no explicit shaker channels are passed,
// the trigger will be applied to the default channel zero.
func (AccessorCamera) TriggerShake(fadeIn, duration, fadeOut TicksDuration, channels ...shaker.Channel) {
	pkgController.cameraTriggerShake(fadeIn, duration, fadeOut, channels...)
}
