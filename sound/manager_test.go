package sound

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
)

type fakeClip struct {
	mu     sync.Mutex
	plays  int
	loops  int
	stops  int
	volume float64
}

func (self *fakeClip) Play(loop bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.plays++
	if loop {
		self.loops++
	}
}

func (self *fakeClip) Stop() {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.stops++
}

func (self *fakeClip) SetVolume(v float64) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.volume = v
}

func (self *fakeClip) counts() (plays, loops, stops int) {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.plays, self.loops, self.stops
}

func newTestManager() (*Manager, map[string]*fakeClip) {
	fakes := map[string]*fakeClip{}
	clips := map[string]Clip{}
	for _, name := range Names {
		fakes[name] = &fakeClip{}
		clips[name] = fakes[name]
	}
	logger, _ := test.NewNullLogger()
	return NewManager(clips, logger), fakes
}

func TestPlayOnlyStartsOnce(t *testing.T) {
	m, fakes := newTestManager()
	for i := 0; i < 5; i++ {
		m.Play(Backsound, 0.5, true)
	}
	plays, loops, _ := fakes[Backsound].counts()
	if plays != 1 || loops != 1 {
		t.Errorf("Expected one looping play, got %d plays (%d loops)", plays, loops)
	}
	if !m.IsPlaying(Backsound) {
		t.Errorf("Expected backsound to be marked as playing")
	}
	if fakes[Backsound].volume != 0.5 {
		t.Errorf("Expected volume 0.5, got %v", fakes[Backsound].volume)
	}

	m.Stop(Backsound)
	if m.IsPlaying(Backsound) {
		t.Errorf("Expected backsound to be stopped")
	}
	m.Play(Backsound, 0.5, true)
	if plays, _, _ := fakes[Backsound].counts(); plays != 2 {
		t.Errorf("Expected a replay after stop, got %d plays", plays)
	}
}

func TestPlayTimeoutClearsStatus(t *testing.T) {
	m, fakes := newTestManager()
	m.PlayTimeout(Button, 0.7, false, 20*time.Millisecond)
	m.PlayTimeout(Button, 0.7, false, 20*time.Millisecond)
	if plays, _, _ := fakes[Button].counts(); plays != 2 {
		t.Errorf("Expected PlayTimeout to always play, got %d plays", plays)
	}
	if !m.IsPlaying(Button) {
		t.Errorf("Expected button to be marked as playing")
	}

	// Play is blocked while the status is set
	m.Play(Button, 0.7, false)
	if plays, _, _ := fakes[Button].counts(); plays != 2 {
		t.Errorf("Expected Play to be skipped, got %d plays", plays)
	}

	deadline := time.Now().Add(2 * time.Second)
	for m.IsPlaying(Button) {
		if time.Now().After(deadline) {
			t.Fatalf("Expected the status to clear after the timeout")
		}
		time.Sleep(5 * time.Millisecond)
	}
	m.Play(Button, 0.7, false)
	if plays, _, _ := fakes[Button].counts(); plays != 3 {
		t.Errorf("Expected Play after the timeout, got %d plays", plays)
	}
}

func TestPlayTimeoutWithoutTimeoutStaysSet(t *testing.T) {
	m, _ := newTestManager()
	m.PlayTimeout(Lose, 1, false, 0)
	time.Sleep(20 * time.Millisecond)
	if !m.IsPlaying(Lose) {
		t.Errorf("Expected status to stay set without a timeout")
	}
}

func TestStopCancelsTimeout(t *testing.T) {
	m, _ := newTestManager()
	m.PlayTimeout(Beep, 0.75, false, 30*time.Millisecond)
	m.Stop(Beep)
	m.Play(Beep, 0.75, false)
	time.Sleep(60 * time.Millisecond)
	// the cancelled timer must not clear the status set by Play
	if !m.IsPlaying(Beep) {
		t.Errorf("Expected the status from Play to survive the cancelled timer")
	}
}

func TestStopAllExcept(t *testing.T) {
	m, fakes := newTestManager()
	for _, name := range Names {
		m.Play(name, 1, false)
	}
	m.StopAllExcept(Backsound, Button)
	for _, name := range Names {
		_, _, stops := fakes[name].counts()
		kept := name == Backsound || name == Button
		if kept && (stops != 0 || !m.IsPlaying(name)) {
			t.Errorf("Expected %s to keep playing", name)
		}
		if !kept && (stops != 1 || m.IsPlaying(name)) {
			t.Errorf("Expected %s to be stopped once, got %d stops", name, stops)
		}
	}

	m.StopAll()
	for _, name := range Names {
		if m.IsPlaying(name) {
			t.Errorf("Expected %s to be stopped", name)
		}
	}
}

func TestUnknownSoundIsIgnored(t *testing.T) {
	m, _ := newTestManager()
	m.Play("missing", 1, false)
	m.PlayTimeout("missing", 1, false, time.Millisecond)
	m.Stop("missing")
	m.SetVolume("missing", 0)
	if m.IsPlaying("missing") {
		t.Errorf("Expected unknown sound not to be playing")
	}
}
