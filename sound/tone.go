package sound

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
)

// Note is one step of a synthesised placeholder sound.
type Note struct {
	Freq     int
	Duration time.Duration
}

// Placeholder tones used when a sound file is missing.
var placeholders = map[string][]Note{
	Beep:   {{Freq: 880, Duration: 90 * time.Millisecond}},
	Button: {{Freq: 660, Duration: 60 * time.Millisecond}},
	Point:  {{Freq: 988, Duration: 70 * time.Millisecond}, {Freq: 1319, Duration: 110 * time.Millisecond}},
	Lose: {
		{Freq: 392, Duration: 150 * time.Millisecond},
		{Freq: 330, Duration: 150 * time.Millisecond},
		{Freq: 262, Duration: 350 * time.Millisecond},
	},
	Backsound: {
		{Freq: 262, Duration: 400 * time.Millisecond},
		{Freq: 330, Duration: 400 * time.Millisecond},
		{Freq: 392, Duration: 400 * time.Millisecond},
		{Freq: 330, Duration: 400 * time.Millisecond},
	},
}

// Synthesize renders notes one after the other as 16 bit little
// endian stereo PCM at sampleRate. Each note fades in and out over a
// few milliseconds so notes do not click.
func Synthesize(sampleRate int, gain float64, notes ...Note) ([]byte, error) {
	sr := beep.SampleRate(sampleRate)
	fade := sr.N(5 * time.Millisecond)

	var pcm []byte
	buf := make([][2]float64, 512)
	for _, note := range notes {
		tone, err := generators.SinTone(sr, note.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %d Hz: %w", note.Freq, err)
		}
		total := sr.N(note.Duration)
		streamer := beep.Take(total, tone)

		pos := 0
		for {
			n, ok := streamer.Stream(buf)
			for _, sample := range buf[:n] {
				env := min(1, float64(pos)/float64(max(fade, 1)), float64(total-pos)/float64(max(fade, 1)))
				pcm = appendSample(pcm, sample[0]*gain*env)
				pcm = appendSample(pcm, sample[1]*gain*env)
				pos++
			}
			if !ok || n == 0 {
				break
			}
		}
	}
	return pcm, nil
}

func appendSample(pcm []byte, v float64) []byte {
	v = math.Max(-1, math.Min(1, v))
	return binary.LittleEndian.AppendUint16(pcm, uint16(int16(v*math.MaxInt16)))
}
