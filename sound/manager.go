// Package sound plays the game's sound effects and music.
//
// A Manager tracks a "playing" status per sound. Play only starts a
// sound whose status is clear, which keeps looping music from being
// restarted every frame. PlayTimeout always starts the sound and
// clears the status again after a timeout, which rate limits effects
// such as the button click.
package sound

import (
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Names of the sounds the game uses.
const (
	Beep      = "beep"
	Button    = "button"
	Lose      = "lose"
	Point     = "point"
	Backsound = "backsound"
)

// Names lists every sound the game loads.
var Names = []string{Beep, Button, Lose, Point, Backsound}

// Clip is a sound that can be started and stopped.
type Clip interface {
	Play(loop bool)
	Stop()
	SetVolume(volume float64)
}

// Manager plays named clips. It is safe for concurrent use.
type Manager struct {
	logger logrus.FieldLogger

	mu      sync.Mutex
	clips   map[string]Clip
	playing map[string]bool
	timers  map[string]*time.Timer
}

func NewManager(clips map[string]Clip, logger logrus.FieldLogger) *Manager {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	m := &Manager{
		logger:  logger.WithField("component", "sound"),
		clips:   make(map[string]Clip, len(clips)),
		playing: make(map[string]bool, len(clips)),
		timers:  make(map[string]*time.Timer),
	}
	for name, clip := range clips {
		m.clips[name] = clip
	}
	return m
}

func (self *Manager) clip(name string) (Clip, bool) {
	clip, ok := self.clips[name]
	if !ok {
		self.logger.WithField("name", name).Debug("unknown sound")
	}
	return clip, ok
}

// Play sets the volume of name and starts it unless it is already
// marked as playing.
func (self *Manager) Play(name string, volume float64, loop bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	clip, ok := self.clip(name)
	if !ok {
		return
	}
	clip.SetVolume(volume)
	if self.playing[name] {
		return
	}
	clip.Play(loop)
	self.playing[name] = true
}

// PlayTimeout starts name regardless of its status and marks it as
// playing. With a positive timeout the mark is cleared again once
// the timeout passes; a newer call restarts the countdown.
func (self *Manager) PlayTimeout(name string, volume float64, loop bool, timeout time.Duration) {
	self.mu.Lock()
	defer self.mu.Unlock()
	clip, ok := self.clip(name)
	if !ok {
		return
	}
	clip.SetVolume(volume)
	clip.Play(loop)
	self.playing[name] = true

	if timeout <= 0 {
		return
	}
	self.cancelTimer(name)
	var timer *time.Timer
	timer = time.AfterFunc(timeout, func() {
		self.mu.Lock()
		defer self.mu.Unlock()
		// a newer timer or a Stop took over
		if self.timers[name] != timer {
			return
		}
		delete(self.timers, name)
		self.playing[name] = false
	})
	self.timers[name] = timer
}

func (self *Manager) cancelTimer(name string) {
	if timer, ok := self.timers[name]; ok {
		timer.Stop()
		delete(self.timers, name)
	}
}

func (self *Manager) stop(name string) {
	self.clips[name].Stop()
	self.playing[name] = false
	self.cancelTimer(name)
}

// Stop stops name and clears its status and timeout.
func (self *Manager) Stop(name string) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if _, ok := self.clip(name); !ok {
		return
	}
	self.stop(name)
}

func (self *Manager) StopAll() {
	self.StopAllExcept()
}

// StopAllExcept stops every sound not named in keep.
func (self *Manager) StopAllExcept(keep ...string) {
	self.mu.Lock()
	defer self.mu.Unlock()
	for name := range self.clips {
		if !slices.Contains(keep, name) {
			self.stop(name)
		}
	}
}

func (self *Manager) SetVolume(name string, volume float64) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if clip, ok := self.clip(name); ok {
		clip.SetVolume(volume)
	}
}

// IsPlaying reports the playing status of name.
func (self *Manager) IsPlaying(name string) bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.playing[name]
}
