// SPDX-License-Identifier: EPL-2.0

package wah

import "math"

// timeGrid maps sample indices to oscillator time in seconds.
type timeGrid struct {
	n        int
	sr       float64
	step     float64
	duration float64
	base     TimeBase
}

func newTimeGrid(n, sampleRate int, tb TimeBase) timeGrid {
	g := timeGrid{
		n:    n,
		sr:   float64(sampleRate),
		base: tb,
	}
	g.duration = float64(n) / g.sr

	if n > 1 {
		g.step = g.duration / float64(n-1)
	}

	return g
}

func (g timeGrid) at(i int) float64 {
	if g.base == TimeBaseSampleClock {
		return float64(i) / g.sr
	}

	// The last point lands exactly on the duration, not on (n-1)*step.
	if g.n > 1 && i == g.n-1 {
		return g.duration
	}

	return float64(i) * g.step
}

// LFO returns the oscillator value in [0, 1] at time t seconds.
func LFO(t, rate float64) float64 {
	return (math.Sin(2*math.Pi*rate*t) + 1) / 2
}

// CenterFrequency maps an LFO value in [0, 1] to a centre frequency in Hz.
func CenterFrequency(lfo float64, p Params) float64 {
	return p.BaseFreq + lfo*p.Depth*(p.MaxFreq-p.BaseFreq)
}

// Sweep returns the centre frequency for each of n samples at sampleRate.
// For depth in [0, 1] every value lies in [p.BaseFreq, p.MaxFreq].
func Sweep(n, sampleRate int, p Params, opts ...Option) []float64 {
	if n <= 0 {
		return []float64{}
	}

	cfg := applyOptions(opts)
	grid := newTimeGrid(n, sampleRate, cfg.timeBase)

	freqs := make([]float64, n)
	for i := range freqs {
		freqs[i] = CenterFrequency(LFO(grid.at(i), p.Rate), p)
	}

	return freqs
}
