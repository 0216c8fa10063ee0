// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// Source generates Frames interleaved frames from Wave and satisfies
// audio.Source. Set Err to make reads fail once After frames were served.
type Source struct {
	Rate   int
	Chans  int
	Frames int
	Wave   func(frame, channel int) float32

	Err   error
	After int

	// Closed reports whether Close was called.
	Closed bool

	// MaxRead caps the frames served per call; zero means no cap.
	MaxRead int

	pos int
}

func New(rate, channels, frames int, wave func(frame, channel int) float32) *Source {
	return &Source{Rate: rate, Chans: channels, Frames: frames, Wave: wave}
}

// Silent returns a source of zeros.
func Silent(rate, channels, frames int) *Source {
	return Constant(rate, channels, frames, 0)
}

// Constant returns a source where every sample equals v.
func Constant(rate, channels, frames int, v float32) *Source {
	return New(rate, channels, frames, func(int, int) float32 { return v })
}

// Sine returns a unit sine at freq Hz on every channel.
func Sine(rate, channels, frames int, freq float64) *Source {
	return New(rate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(frame) / float64(rate)))
	})
}

// Ramp returns frame*step on channel 0 and -frame*step on the others.
func Ramp(rate, channels, frames int, step float32) *Source {
	return New(rate, channels, frames, func(frame, channel int) float32 {
		v := float32(frame) * step
		if channel > 0 {
			return -v
		}

		return v
	})
}

func (s *Source) SampleRate() int { return s.Rate }
func (s *Source) Channels() int   { return s.Chans }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.Closed = true

	return nil
}

// Rewind restarts the stream.
func (s *Source) Rewind() { s.pos = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.Err != nil && s.pos >= s.After {
		return 0, s.Err
	}

	if s.pos >= s.Frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.Chans, s.Frames-s.pos)
	if s.MaxRead > 0 {
		frames = min(frames, s.MaxRead)
	}

	if s.Err != nil {
		frames = min(frames, s.After-s.pos)
	}

	for f := range frames {
		for c := range s.Chans {
			dst[f*s.Chans+c] = s.Wave(s.pos+f, c)
		}
	}

	s.pos += frames

	if s.pos >= s.Frames {
		return frames * s.Chans, io.EOF
	}

	return frames * s.Chans, nil
}
