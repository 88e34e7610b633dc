package audio

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"boxpush/internal/config"
	"boxpush/internal/logger"
)

// Sound names one of the pre-rendered effect clips.
type Sound int

const (
	SoundPush Sound = iota
	SoundBlocked
	SoundStep
	SoundMenu
	SoundLevelStart
	SoundVictory
	SoundFinalVictory
)

// Background music patterns, one per level, cycled when there are more levels
// than patterns. Frequencies are low pentatonic notes so the loop stays out of
// the way of the effect clips.
var musicPatterns = [][]float32{
	{220, 261.63, 329.63, 261.63},
	{196, 246.94, 293.66, 246.94},
	{220, 293.66, 349.23, 293.66},
	{174.61, 220, 261.63, 220},
	{246.94, 293.66, 369.99, 293.66},
}

const musicNoteDuration = 0.45

// Manager owns the audio device and all playback. Effect clips are rendered
// once at startup; each Play spawns a short-lived player over the shared
// context.
type Manager struct {
	ctx *oto.Context
	log *logger.Logger

	mu     sync.Mutex
	clips  map[Sound][]byte
	active []*oto.Player
	music  *oto.Player
}

// NewManager opens the audio device and pre-renders every effect clip.
func NewManager(log *logger.Logger) (*Manager, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("open audio context: %w", err)
	}
	<-ready

	m := &Manager{
		ctx:   ctx,
		log:   log,
		clips: renderClips(),
	}
	if log != nil {
		log.Infof("audio device ready at %d Hz", SampleRate)
	}
	return m, nil
}

func renderClips() map[Sound][]byte {
	return map[Sound][]byte{
		SoundPush:         Tone(200, 0.1),
		SoundBlocked:      Tone(100, 0.15),
		SoundStep:         Tone(150, 0.05),
		SoundMenu:         Tone(600, 0.05),
		SoundLevelStart:   Tone(440, 0.2),
		SoundVictory:      Sweep(400, 800, 0.4),
		SoundFinalVictory: Chord([]float32{523.25, 659.25, 783.99}, 0.8),
	}
}

// Play starts an effect clip. Playback is fire-and-forget; finished players
// are reaped on the next call.
func (m *Manager) Play(s Sound) {
	settings := config.GetSettings()
	if !settings.SFXEnabled {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clip, ok := m.clips[s]
	if !ok {
		return
	}

	alive := m.active[:0]
	for _, p := range m.active {
		if p.IsPlaying() {
			alive = append(alive, p)
		} else {
			p.Close()
		}
	}
	m.active = alive

	p := m.ctx.NewPlayer(bytes.NewReader(clip))
	p.SetVolume(float64(settings.SFXVolume))
	p.Play()
	m.active = append(m.active, p)
}

// loopReader replays a PCM buffer forever.
type loopReader struct {
	data []byte
	pos  int
}

func (r *loopReader) Read(buf []byte) (int, error) {
	if len(r.data) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return len(buf), nil
	}
	n := 0
	for n < len(buf) {
		c := copy(buf[n:], r.data[r.pos:])
		n += c
		r.pos += c
		if r.pos >= len(r.data) {
			r.pos = 0
		}
	}
	return n, nil
}

// StartMusic begins the looping background pattern for a level, replacing any
// running loop. Does nothing while music is disabled.
func (m *Manager) StartMusic(levelIndex int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopMusicLocked()

	settings := config.GetSettings()
	if !settings.MusicEnabled {
		return
	}

	pattern := musicPatterns[levelIndex%len(musicPatterns)]
	notes := make([][]byte, len(pattern))
	for i, f := range pattern {
		notes[i] = Tone(f, musicNoteDuration)
	}

	p := m.ctx.NewPlayer(&loopReader{data: Sequence(notes...)})
	p.SetVolume(float64(settings.MusicVolume))
	p.Play()
	m.music = p
}

// StopMusic halts the background loop.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopMusicLocked()
}

func (m *Manager) stopMusicLocked() {
	if m.music != nil {
		m.music.Close()
		m.music = nil
	}
}

// ApplyVolumes pushes the current settings onto live players. Called after
// the settings screen changes a slider or a toggle flips.
func (m *Manager) ApplyVolumes() {
	settings := config.GetSettings()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music != nil {
		if !settings.MusicEnabled {
			m.stopMusicLocked()
		} else {
			m.music.SetVolume(float64(settings.MusicVolume))
		}
	}
	for _, p := range m.active {
		p.SetVolume(float64(settings.SFXVolume))
	}
}

// MusicPlaying reports whether a background loop is live.
func (m *Manager) MusicPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.music != nil
}

// Close stops all playback. The oto context itself has no close; the device
// is released when the process exits.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopMusicLocked()
	for _, p := range m.active {
		p.Close()
	}
	m.active = nil
}
