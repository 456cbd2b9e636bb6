package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edwinsyarief/flapcam/config"
	"github.com/edwinsyarief/flapcam/webcam"
)

func TestSteeringTarget(t *testing.T) {
	assert := assert.New(t)
	face := webcam.Centroid{X: 320, Y: 240, Valid: true}
	lost := webcam.Centroid{}
	offPixel := webcam.Centroid{X: 320, Y: 241, Valid: true}

	tests := []struct {
		name     string
		mode     string
		centroid webcam.Centroid
		frameH   int
		cursorY  int
		expected float64
		ok       bool
	}{
		{"auto follows the face", config.InputAuto, face, 480, 100, 540, true},
		{"auto falls back to the cursor", config.InputAuto, lost, 480, 100, 100, true},
		{"face mode ignores the cursor", config.InputFace, lost, 480, 100, 0, false},
		{"face mode needs a frame height", config.InputFace, face, 0, 100, 0, false},
		{"face mode", config.InputFace, face, 480, 100, 540, true},
		{"face mode truncates to a pixel", config.InputFace, offPixel, 480, 100, 542, true},
		{"mouse mode ignores the face", config.InputMouse, face, 480, 100, 100, true},
		{"mouse clamps to the screen", config.InputMouse, lost, 480, 1500, 1080, true},
		{"mouse clamps negatives", config.InputMouse, lost, 480, -20, 0, true},
	}
	for _, tc := range tests {
		y, ok := steeringTarget(tc.mode, tc.centroid, tc.frameH, 1080, tc.cursorY)
		assert.Equal(tc.ok, ok, tc.name)
		if ok {
			assert.InDelta(tc.expected, y, 1e-9, tc.name)
		}
	}
}
