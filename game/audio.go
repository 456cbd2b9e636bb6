package game

import (
	"github.com/edwinsyarief/flapcam/config"
	"github.com/edwinsyarief/flapcam/sound"
	"github.com/edwinsyarief/flapcam/world"
)

// Plays the effects for the given events, then enforces the music
// of the state the session ended the tick in.
func playSounds(sounds *sound.Manager, cfg config.SoundConfig, state world.State, events []world.Event) {
	for _, event := range events {
		switch event {
		case world.EventStart, world.EventQuit, world.EventRestart:
			sounds.PlayTimeout(sound.Button, cfg.ButtonVolume, false, cfg.StatusTimeout)
		case world.EventPoint:
			sounds.PlayTimeout(sound.Beep, cfg.PointVolume, false, cfg.StatusTimeout)
		}
	}

	switch state {
	case world.StateTitle:
		sounds.StopAllExcept(sound.Backsound, sound.Button)
		sounds.Play(sound.Backsound, 1, true)
	case world.StatePlaying:
		sounds.StopAllExcept(sound.Backsound, sound.Beep, sound.Button)
	case world.StateGameOver:
		sounds.StopAllExcept(sound.Lose, sound.Button)
		sounds.Play(sound.Lose, 1, false)
	}
}
