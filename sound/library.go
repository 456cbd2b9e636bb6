package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/sirupsen/logrus"
)

// Volume of the synthesised placeholders.
const placeholderGain = 0.3

// Library holds the game's clips by name.
type Library map[string]Clip

// LoadLibrary decodes <name>.mp3 from dir for every name in Names.
// Sounds that are missing or fail to decode are replaced by a
// synthesised tone so the game always has something to play.
func LoadLibrary(actx *audio.Context, dir string, logger logrus.FieldLogger) (Library, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger = logger.WithField("component", "sound")

	lib := make(Library, len(Names))
	for _, name := range Names {
		path := filepath.Join(dir, name+".mp3")
		pcm, err := decodeFile(actx.SampleRate(), path)
		if err != nil {
			entry := logger.WithFields(logrus.Fields{"name": name, "path": path})
			if errors.Is(err, fs.ErrNotExist) {
				entry.Warn("sound file missing, using a placeholder tone")
			} else {
				entry.WithError(err).Warn("sound file unreadable, using a placeholder tone")
			}
			pcm, err = Synthesize(actx.SampleRate(), placeholderGain, placeholders[name]...)
			if err != nil {
				return nil, fmt.Errorf("synthesize %s: %w", name, err)
			}
		}
		lib[name] = newPCMClip(actx, pcm)
	}
	return lib, nil
}

func decodeFile(sampleRate int, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := mp3.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return pcm, nil
}

// pcmClip plays decoded PCM through an ebiten audio context.
type pcmClip struct {
	actx   *audio.Context
	pcm    []byte
	volume float64

	once *audio.Player
	loop *audio.Player
}

func newPCMClip(actx *audio.Context, pcm []byte) *pcmClip {
	return &pcmClip{actx: actx, pcm: pcm, volume: 1}
}

func (self *pcmClip) player(loop bool) *audio.Player {
	if !loop {
		if self.once == nil {
			self.once = self.actx.NewPlayerFromBytes(self.pcm)
		}
		return self.once
	}
	if self.loop == nil {
		stream := audio.NewInfiniteLoop(bytes.NewReader(self.pcm), int64(len(self.pcm)))
		player, err := self.actx.NewPlayer(stream)
		if err != nil {
			// play once instead
			return self.player(false)
		}
		self.loop = player
	}
	return self.loop
}

func (self *pcmClip) Play(loop bool) {
	p := self.player(loop)
	p.SetVolume(self.volume)
	_ = p.Rewind()
	p.Play()
}

func (self *pcmClip) Stop() {
	for _, p := range []*audio.Player{self.once, self.loop} {
		if p != nil {
			p.Pause()
			_ = p.Rewind()
		}
	}
}

func (self *pcmClip) SetVolume(volume float64) {
	self.volume = volume
	for _, p := range []*audio.Player{self.once, self.loop} {
		if p != nil {
			p.SetVolume(volume)
		}
	}
}
