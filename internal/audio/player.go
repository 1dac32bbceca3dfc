// Package audio plays the game's sound cues through the system speaker.
// Every sound is synthesized, so no asset files are needed.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-fisherman/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player turns cues into sound. Until Init succeeds every call is a no-op,
// so a machine without an audio device still runs the game.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	catch  *beep.Ctrl
	music  *beep.Ctrl
	volume float64
	ready  bool
	logger *log.Logger

	// lock and unlock guard the mixer against the speaker goroutine.
	lock, unlock func()
}

// NewPlayer creates a player at the given master volume (0..1).
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
		lock:   func() {},
		unlock: func() {},
	}
}

// Init opens the speaker. A failure leaves the player silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("Audio unavailable, continuing without sound", "error", err)
		return err
	}

	speaker.Play(p.mixer)
	p.lock, p.unlock = speaker.Lock, speaker.Unlock
	p.ready = true
	return nil
}

// Ready reports whether sound is actually produced.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Play handles one cue.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	switch c {
	case core.CueFishCaught:
		p.playCatch()
	case core.CueMusicStart:
		p.startMusic()
	case core.CueMusicStop:
		p.stopMusic()
	}
}

// playCatch restarts the catch jingle. A jingle still playing is cut off
// rather than layered.
func (p *Player) playCatch() {
	ctrl := &beep.Ctrl{Streamer: NewCatchSound(sampleRate, p.volume)}

	p.lock()
	defer p.unlock()
	if p.catch != nil {
		p.catch.Streamer = nil // mixer drops it on the next pass
	}
	p.catch = ctrl
	p.mixer.Add(ctrl)
}

func (p *Player) startMusic() {
	p.lock()
	defer p.unlock()

	if p.music != nil && p.music.Streamer != nil {
		return
	}
	p.music = &beep.Ctrl{Streamer: NewMusic(sampleRate, p.volume*0.5)}
	p.mixer.Add(p.music)
}

func (p *Player) stopMusic() {
	p.lock()
	defer p.unlock()

	if p.music != nil {
		p.music.Streamer = nil
		p.music = nil
	}
}

// Close silences everything. The speaker itself stays open; beep has no
// way to release it short of process exit.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	p.lock()
	p.mixer.Clear()
	p.catch, p.music = nil, nil
	p.unlock()
	p.ready = false
}

// Silent is a cue player that never makes a sound. Remote sessions use it.
type Silent struct{}

// Play does nothing.
func (Silent) Play(core.Cue) {}

// Close does nothing.
func (Silent) Close() {}
