package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is a pitch held for a number of beats. Zero frequency is a rest.
type note struct {
	freq  float64
	beats float64
}

const (
	c3 = 130.81
	g3 = 196.00
	a3 = 220.00
	c4 = 261.63
	d4 = 293.66
	e4 = 329.63
	g4 = 392.00
	a4 = 440.00
	c5 = 523.25
	e5 = 659.25
	g5 = 783.99
)

// A slow pentatonic tune for the start screen.
var (
	melody = []note{
		{e4, 1}, {g4, 1}, {a4, 1}, {g4, 2}, {e4, 1},
		{d4, 1}, {e4, 1}, {g4, 1}, {e4, 3},
		{c4, 1}, {d4, 1}, {e4, 1}, {g4, 2}, {a4, 1},
		{g4, 1}, {e4, 1}, {d4, 1}, {c4, 2}, {0, 1},
	}
	bassline = []note{
		{c3, 6}, {a3 / 2, 6}, {c3, 6}, {g3 / 2, 6},
	}
)

const beat = 280 * time.Millisecond

func renderNote(n note, wave WaveType, rate beep.SampleRate) beep.Streamer {
	d := time.Duration(n.beats * float64(beat))
	if n.freq == 0 {
		return beep.Silence(rate.N(d))
	}
	var osc beep.Streamer
	if wave == WaveSine {
		if tone, err := generators.SineTone(rate, n.freq); err == nil {
			osc = beep.Take(rate.N(d), tone)
		}
	}
	if osc == nil {
		osc = NewOscillator(n.freq, d, wave, rate)
	}
	return NewEnvelope(osc, d, 15*time.Millisecond, d/2, rate)
}

// loop plays the streamers produced by next back to back, forever.
type loop struct {
	next func() beep.Streamer
	cur  beep.Streamer
}

func (l *loop) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if l.cur == nil {
			l.cur = l.next()
		}
		sn, sok := l.cur.Stream(samples[n:])
		n += sn
		if !sok || sn == 0 {
			l.cur = nil
		}
	}
	return n, true
}

func (l *loop) Err() error { return nil }

// sequenceLoop cycles through notes endlessly.
func sequenceLoop(notes []note, wave WaveType, rate beep.SampleRate) beep.Streamer {
	i := 0
	return &loop{next: func() beep.Streamer {
		n := notes[i%len(notes)]
		i++
		return renderNote(n, wave, rate)
	}}
}

// NewMusic returns the endless background tune.
func NewMusic(rate beep.SampleRate, vol float64) beep.Streamer {
	tune := beep.Mix(
		newVolume(sequenceLoop(melody, WaveTriangle, rate), 0.6),
		newVolume(sequenceLoop(bassline, WaveSine, rate), 0.4),
	)
	return newVolume(tune, vol)
}

// Lengths of the fish-caught jingle parts.
const (
	splashDuration = 90 * time.Millisecond
	chimeDuration  = 110 * time.Millisecond
)

// NewCatchSound returns the short splash and rising chime for a landed fish.
func NewCatchSound(rate beep.SampleRate, vol float64) beep.Streamer {
	splash := NewEnvelope(NewOscillator(0, splashDuration, WaveNoise, rate), splashDuration, 5*time.Millisecond, 70*time.Millisecond, rate)

	chime := beep.Seq(
		NewEnvelope(NewOscillator(c5, chimeDuration, WaveSine, rate), chimeDuration, 5*time.Millisecond, 60*time.Millisecond, rate),
		NewEnvelope(NewOscillator(e5, chimeDuration, WaveSine, rate), chimeDuration, 5*time.Millisecond, 60*time.Millisecond, rate),
		NewEnvelope(NewOscillator(g5, 2*chimeDuration, WaveSine, rate), 2*chimeDuration, 5*time.Millisecond, 150*time.Millisecond, rate),
	)

	return newVolume(beep.Seq(newVolume(splash, 0.3), chime), vol)
}

// CatchSoundLength is the total duration of NewCatchSound.
func CatchSoundLength() time.Duration {
	return splashDuration + 4*chimeDuration
}
