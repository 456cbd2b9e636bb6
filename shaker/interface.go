// This package defines a [Shaker] interface that the flapcam
// camera can use to perform screen shakes, and provides
// a default implementation.
//
// The provided implementation is resolution independent: the
// range of motion is not hardcoded, but proportional to the
// game's logical resolution. The game uses it for the short
// jolt when the bird hits a pipe or the ground.
package shaker

// The interface for flapcam screen shakers.
//
// Given a level that transitions linearly between 0 and 1
// during the fade in and fade out stages, GetShakeOffsets()
// returns the logical offsets for the camera.
//
// After stopping, there will be one call with level = 0 that
// can be used to reset the shaker state. The results of this
// call will be disregarded.
type Shaker interface {
	GetShakeOffsets(level float64) (float64, float64)
}

// Used by flapcam in case multiple shakes need to be active at the same time.
//
// Channel zero is special and will use a fallback shaker even if uninitialized.
// It's also the channel that will be automatically selected for most shaker
// functions if no channel is explicitly passed.
type Channel uint8
