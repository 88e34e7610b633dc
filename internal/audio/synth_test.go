package audio

import (
	"encoding/binary"
	"testing"
)

func sampleAt(buf []byte, frame int) int16 {
	return int16(binary.LittleEndian.Uint16(buf[frame*bytesPerFrame:]))
}

func TestToneLengthMatchesDuration(t *testing.T) {
	cases := []float32{0.05, 0.1, 0.2}
	for _, d := range cases {
		buf := Tone(440, d)
		want := int(d*SampleRate) * bytesPerFrame
		if len(buf) != want {
			t.Errorf("duration %f: got %d bytes, want %d", d, len(buf), want)
		}
	}
}

func TestToneEnvelopeEndsSilent(t *testing.T) {
	buf := Tone(200, 0.1)
	frames := len(buf) / bytesPerFrame

	if s := sampleAt(buf, 0); s != 0 {
		t.Errorf("first frame not silent: %d", s)
	}
	if s := sampleAt(buf, frames-1); s > 300 || s < -300 {
		t.Errorf("last frame not faded out: %d", s)
	}

	// The sustained middle should carry real signal.
	peak := int16(0)
	for i := frames / 3; i < frames/2; i++ {
		if s := sampleAt(buf, i); s > peak {
			peak = s
		}
	}
	if peak < 10000 {
		t.Errorf("sustain too quiet, peak %d", peak)
	}
}

func TestToneStereoFramesMatch(t *testing.T) {
	buf := Tone(300, 0.05)
	for i := 0; i < len(buf); i += bytesPerFrame {
		l := int16(binary.LittleEndian.Uint16(buf[i:]))
		r := int16(binary.LittleEndian.Uint16(buf[i+2:]))
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/bytesPerFrame, l, r)
		}
	}
}

func TestSweepAndChordLengths(t *testing.T) {
	if got, want := len(Sweep(400, 800, 0.4)), int(0.4*SampleRate)*bytesPerFrame; got != want {
		t.Errorf("sweep: got %d bytes, want %d", got, want)
	}
	if got, want := len(Chord([]float32{523.25, 659.25, 783.99}, 0.8)), int(0.8*SampleRate)*bytesPerFrame; got != want {
		t.Errorf("chord: got %d bytes, want %d", got, want)
	}
}

func TestChordStaysInRange(t *testing.T) {
	buf := Chord([]float32{523.25, 659.25, 783.99}, 0.2)
	for i := 0; i < len(buf)/bytesPerFrame; i++ {
		s := sampleAt(buf, i)
		if s == -32768 {
			t.Fatalf("frame %d clipped", i)
		}
	}
}

func TestSequenceConcatenates(t *testing.T) {
	a := Tone(220, 0.05)
	b := Tone(330, 0.05)
	seq := Sequence(a, b)
	if len(seq) != len(a)+len(b) {
		t.Fatalf("got %d bytes, want %d", len(seq), len(a)+len(b))
	}
}

func TestLoopReaderWraps(t *testing.T) {
	r := &loopReader{data: []byte{1, 2, 3, 4}}
	buf := make([]byte, 10)
	n, err := r.Read(buf)
	if err != nil || n != 10 {
		t.Fatalf("read returned %d, %v", n, err)
	}
	want := []byte{1, 2, 3, 4, 1, 2, 3, 4, 1, 2}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d: got %d, want %d", i, buf[i], want[i])
		}
	}
}
