package sound

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestSynthesize(t *testing.T) {
	pcm, err := Synthesize(44100, 0.5, Note{Freq: 440, Duration: 100 * time.Millisecond}, Note{Freq: 660, Duration: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	// 4410 + 2205 stereo frames of two bytes per channel
	if len(pcm) != (4410+2205)*4 {
		t.Fatalf("Expected %d bytes, got %d", (4410+2205)*4, len(pcm))
	}

	peak := 0
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
		peak = max(peak, v, -v)
	}
	if peak == 0 {
		t.Errorf("Expected an audible tone")
	}
	if peak > 32767/2+1 {
		t.Errorf("Expected gain to limit the peak, got %d", peak)
	}
	if first := int16(binary.LittleEndian.Uint16(pcm)); first != 0 {
		t.Errorf("Expected the fade in to start silent, got %d", first)
	}
}

func TestSynthesizeRejectsInaudibleTone(t *testing.T) {
	if _, err := Synthesize(8000, 1, Note{Freq: 5000, Duration: time.Millisecond}); err == nil {
		t.Errorf("Expected an error for a tone above the Nyquist frequency")
	}
}

func TestPlaceholdersCoverAllSounds(t *testing.T) {
	for _, name := range Names {
		if len(placeholders[name]) == 0 {
			t.Errorf("Expected a placeholder for %s", name)
		}
	}
}
