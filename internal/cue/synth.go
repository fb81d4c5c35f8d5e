// Package cue synthesises the sound played when the easter egg unlocks.
package cue

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is used for every streamer built here.
const SampleRate = beep.SampleRate(44100)

// square generates a band-limited-ish square wave with a little saw mixed in
// for grit.
type square struct {
	freq     float64
	phase    float64
	position int
	duration int
}

func newSquare(freq float64, d time.Duration) beep.Streamer {
	return &square{freq: freq, duration: SampleRate.N(d)}
}

func (s *square) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		val = 0.8*val + 0.2*(2*s.phase-1)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / float64(SampleRate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *square) Err() error { return nil }

// decay fades a streamer linearly to silence over its duration.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// powerChord is a root and fifth played together.
func powerChord(root float64, d time.Duration) beep.Streamer {
	mixed := beep.Mix(newSquare(root, d), newSquare(root*1.5, d))
	return &decay{streamer: mixed, total: SampleRate.N(d)}
}

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Riff notes: E2 E2 G2 A2, held last.
var riff = []struct {
	freq float64
	dur  time.Duration
}{
	{82.41, 150 * time.Millisecond},
	{82.41, 150 * time.Millisecond},
	{98.00, 200 * time.Millisecond},
	{110.00, 500 * time.Millisecond},
}

// Duration is the length of the easter-egg riff.
func Duration() time.Duration {
	var d time.Duration
	for _, n := range riff {
		d += n.dur
	}
	return d
}

// EasterEgg returns a fresh streamer of the riff at the given volume in [0, 1].
func EasterEgg(volume float64) beep.Streamer {
	notes := make([]beep.Streamer, len(riff))
	for i, n := range riff {
		notes[i] = powerChord(n.freq, n.dur)
	}
	// Two voices summed; halve to stay within [-1, 1].
	return newVolume(beep.Seq(notes...), volume*0.5)
}
