package audio

import (
	"encoding/binary"

	"github.com/chewxy/math32"
)

// All sounds are synthesized at startup; the game ships no audio assets.
const (
	SampleRate   = 22050
	ChannelCount = 2

	// int16 stereo
	bytesPerFrame = 4

	attackFraction  = 0.1
	releaseFraction = 0.2
)

// envelope shapes a raw oscillator so clips start and end at zero amplitude.
// Without it every clip begins and ends with an audible click.
func envelope(i, total int) float32 {
	attack := int(float32(total) * attackFraction)
	release := int(float32(total) * releaseFraction)
	switch {
	case attack > 0 && i < attack:
		return float32(i) / float32(attack)
	case release > 0 && i >= total-release:
		return float32(total-i) / float32(release)
	default:
		return 1
	}
}

func writeFrame(buf []byte, offset int, sample float32) {
	if sample > 1 {
		sample = 1
	}
	if sample < -1 {
		sample = -1
	}
	v := uint16(int16(sample * 32767))
	binary.LittleEndian.PutUint16(buf[offset:], v)
	binary.LittleEndian.PutUint16(buf[offset+2:], v)
}

// Tone renders a sine clip of the given frequency and duration as int16
// little-endian stereo PCM.
func Tone(freq, duration float32) []byte {
	frames := int(duration * SampleRate)
	buf := make([]byte, frames*bytesPerFrame)
	for i := 0; i < frames; i++ {
		t := float32(i) / SampleRate
		s := math32.Sin(2*math32.Pi*freq*t) * envelope(i, frames)
		writeFrame(buf, i*bytesPerFrame, s)
	}
	return buf
}

// Sweep renders a sine clip whose frequency glides linearly from one value to
// another over the duration.
func Sweep(fromFreq, toFreq, duration float32) []byte {
	frames := int(duration * SampleRate)
	buf := make([]byte, frames*bytesPerFrame)
	phase := float32(0)
	for i := 0; i < frames; i++ {
		progress := float32(i) / float32(frames)
		freq := fromFreq + (toFreq-fromFreq)*progress
		phase += 2 * math32.Pi * freq / SampleRate
		s := math32.Sin(phase) * envelope(i, frames)
		writeFrame(buf, i*bytesPerFrame, s)
	}
	return buf
}

// Chord renders several simultaneous sine voices mixed at equal weight.
func Chord(freqs []float32, duration float32) []byte {
	frames := int(duration * SampleRate)
	buf := make([]byte, frames*bytesPerFrame)
	if len(freqs) == 0 {
		return buf
	}
	gain := 1 / float32(len(freqs))
	for i := 0; i < frames; i++ {
		t := float32(i) / SampleRate
		s := float32(0)
		for _, f := range freqs {
			s += math32.Sin(2 * math32.Pi * f * t)
		}
		writeFrame(buf, i*bytesPerFrame, s*gain*envelope(i, frames))
	}
	return buf
}

// Sequence concatenates clips into one buffer. Used to build music loops out
// of single notes.
func Sequence(clips ...[]byte) []byte {
	total := 0
	for _, c := range clips {
		total += len(c)
	}
	out := make([]byte, 0, total)
	for _, c := range clips {
		out = append(out, c...)
	}
	return out
}
