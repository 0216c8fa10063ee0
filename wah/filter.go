// SPDX-License-Identifier: EPL-2.0

package wah

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
)

// Epsilon is added to the output peak before normalisation.
const Epsilon = 1e-9

// Coefficients returns the a0-normalised bandpass coefficients for centre
// frequency f0 (b0 = alpha, b2 = -alpha). The response peaks at f0 with unity
// gain; q only sets the bandwidth.
func Coefficients(f0 float64, sampleRate int, q float64) biquad.Coefficients {
	omega := 2 * math.Pi * f0 / float64(sampleRate)
	alpha := math.Sin(omega) / (2 * q)

	b0 := alpha
	b1 := 0.0
	b2 := -alpha
	a0 := 1 + alpha
	a1 := -2 * math.Cos(omega)
	a2 := 1 - alpha

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

// state is the direct-form-I history of one filter pass.
type state struct {
	x1, x2 float64
	y1, y2 float64
}

func (s *state) step(c biquad.Coefficients, x0 float64) float64 {
	// Explicit conversions keep the compiler from fusing multiply-adds, so every
	// architecture rounds each product the same way.
	y0 := float64(c.B0*x0) + float64(c.B1*s.x1) + float64(c.B2*s.x2) -
		float64(c.A1*s.y1) - float64(c.A2*s.y2)

	s.x2 = s.x1
	s.x1 = x0
	s.y2 = s.y1
	s.y1 = y0

	return y0
}

// Apply runs the swept bandpass over in and returns a new, peak-normalised
// buffer of the same length. in is not modified.
//
// Apply does not validate p: callers must keep Q well above zero and MaxFreq
// below Nyquist.
func Apply(in []float64, sampleRate int, p Params, opts ...Option) []float64 {
	out := make([]float64, len(in))
	if len(in) == 0 {
		return out
	}

	cfg := applyOptions(opts)
	grid := newTimeGrid(len(in), sampleRate, cfg.timeBase)

	var st state
	for i, x0 := range in {
		f0 := CenterFrequency(LFO(grid.at(i), p.Rate), p)
		out[i] = st.step(Coefficients(f0, sampleRate, p.Q), x0)
	}

	Normalize(out)

	return out
}

// ApplyStrict validates p and the input, runs Apply, and verifies the output
// stayed finite.
func ApplyStrict(in []float64, sampleRate int, p Params, opts ...Option) ([]float64, error) {
	if err := p.Validate(sampleRate); err != nil {
		return nil, err
	}

	for i, x := range in {
		if !isFinite(x) {
			return nil, fmt.Errorf("%w: sample %d is %v", ErrNonFiniteSample, i, x)
		}
	}

	out := Apply(in, sampleRate, p, opts...)
	for i, y := range out {
		if !isFinite(y) {
			return nil, fmt.Errorf("%w: sample %d is %v", ErrUnstableFilter, i, y)
		}
	}

	return out, nil
}

// ApplyInterleaved averages the channels of an interleaved buffer to mono and
// filters the result. The returned buffer holds one sample per frame.
func ApplyInterleaved(in []float64, channels, sampleRate int, p Params, opts ...Option) ([]float64, error) {
	mono, err := DownmixInterleaved(in, channels)
	if err != nil {
		return nil, err
	}

	return Apply(mono, sampleRate, p, opts...), nil
}

// DownmixInterleaved averages each frame of an interleaved buffer.
func DownmixInterleaved(in []float64, channels int) ([]float64, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: channels must be >= 1: %d", ErrInvalidChannels, channels)
	}

	if len(in)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples is not a multiple of %d channels",
			ErrInvalidChannels, len(in), channels)
	}

	if channels == 1 {
		mono := make([]float64, len(in))
		copy(mono, in)

		return mono, nil
	}

	frames := len(in) / channels
	mono := make([]float64, frames)

	for f := range frames {
		sum := 0.0
		for _, v := range in[f*channels : (f+1)*channels] {
			sum += v
		}

		mono[f] = sum / float64(channels)
	}

	return mono, nil
}
