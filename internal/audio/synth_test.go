package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)

		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		if !ok || n != 100 {
			t.Errorf("wave %d: Stream = %d, %v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Errorf("wave %d: sample %d out of range: %f", wave, i, samples[i][0])
			}
		}
		if osc.Err() != nil {
			t.Errorf("unexpected error: %v", osc.Err())
		}
	}
}

func TestOscillatorEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 50*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 80)
	n, ok := osc.Stream(samples)
	if n != 50 || !ok {
		t.Errorf("first Stream = %d, %v; want 50, true", n, ok)
	}
	n, ok = osc.Stream(samples)
	if n != 0 || ok {
		t.Errorf("drained Stream = %d, %v; want 0, false", n, ok)
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("streamed %d samples", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain = %f, want 1", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("release not fading: %f >= %f", samples[99][0], samples[90][0])
	}
}

func TestMusicIsEndless(t *testing.T) {
	rate := beep.SampleRate(8000)
	music := NewMusic(rate, 0.5)
	buf := make([][2]float64, 4096)
	for i := 0; i < 50; i++ {
		n, ok := music.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("chunk %d: Stream = %d, %v", i, n, ok)
		}
	}
}

func TestCatchSoundLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewCatchSound(rate, 1)
	total := 0
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	want := rate.N(CatchSoundLength())
	if total < want-4 || total > want+4 {
		t.Errorf("catch sound has %d samples, want about %d", total, want)
	}
}
