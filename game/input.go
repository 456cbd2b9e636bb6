package game

import (
	"github.com/edwinsyarief/flapcam/config"
	"github.com/edwinsyarief/flapcam/webcam"
	"github.com/edwinsyarief/flapcam/world"
)

// Returns the height the bird should move towards, if any.
//
// In face mode only a tracked face steers the bird. In mouse mode
// the cursor does. Auto mode follows the face once one has been
// found and the cursor until then.
func steeringTarget(mode string, centroid webcam.Centroid, frameHeight, screenHeight, cursorY int) (float64, bool) {
	face := func() (float64, bool) {
		if !centroid.Valid || frameHeight <= 0 {
			return 0, false
		}
		return world.FaceToScreenY(centroid.Y, frameHeight, screenHeight), true
	}
	mouse := func() (float64, bool) {
		return world.FaceToScreenY(cursorY, screenHeight, screenHeight), true
	}

	switch mode {
	case config.InputFace:
		return face()
	case config.InputMouse:
		return mouse()
	default:
		if y, ok := face(); ok {
			return y, true
		}
		return mouse()
	}
}
