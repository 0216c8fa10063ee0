// SPDX-License-Identifier: EPL-2.0

package wah

import (
	"fmt"
	"math"
)

const (
	DefaultDepth    = 0.7
	DefaultRate     = 2.0
	DefaultBaseFreq = 300.0
	DefaultMaxFreq  = 1500.0
	DefaultQ        = 0.6
)

// Params holds the sweep and resonance settings in physical units.
type Params struct {
	// Depth scales the sweep range, 0 pins the filter at BaseFreq.
	Depth float64
	// Rate is the LFO frequency in Hz.
	Rate float64
	// BaseFreq and MaxFreq bound the centre frequency in Hz.
	BaseFreq float64
	MaxFreq  float64
	// Q is the bandpass resonance. Values in (0.3, 1] give a clean wah.
	Q float64
}

// DefaultParams returns the classic wah setting: 0.7 depth, 2 Hz, 300-1500 Hz, Q 0.6.
func DefaultParams() Params {
	return Params{
		Depth:    DefaultDepth,
		Rate:     DefaultRate,
		BaseFreq: DefaultBaseFreq,
		MaxFreq:  DefaultMaxFreq,
		Q:        DefaultQ,
	}
}

// Validate checks p against the filter preconditions for sampleRate.
// Every returned error wraps ErrInvalidParameter.
func (p Params) Validate(sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidParameter, sampleRate)
	}

	if !isFinite(p.Depth) || p.Depth < 0 || p.Depth > 1 {
		return fmt.Errorf("%w: depth must be in [0, 1]: %f", ErrInvalidParameter, p.Depth)
	}

	if !isFinite(p.Rate) || p.Rate <= 0 {
		return fmt.Errorf("%w: rate must be > 0 and finite: %f", ErrInvalidParameter, p.Rate)
	}

	if !isFinite(p.BaseFreq) || p.BaseFreq <= 0 {
		return fmt.Errorf("%w: base frequency must be > 0 and finite: %f", ErrInvalidParameter, p.BaseFreq)
	}

	if !isFinite(p.MaxFreq) || p.MaxFreq <= p.BaseFreq {
		return fmt.Errorf("%w: max frequency must be > base frequency: base=%f max=%f",
			ErrInvalidParameter, p.BaseFreq, p.MaxFreq)
	}

	nyquist := float64(sampleRate) / 2
	if p.MaxFreq >= nyquist {
		return fmt.Errorf("%w: max frequency must be below Nyquist (%f): %f",
			ErrInvalidParameter, nyquist, p.MaxFreq)
	}

	if !isFinite(p.Q) || p.Q <= 0 {
		return fmt.Errorf("%w: q must be > 0 and finite: %f", ErrInvalidParameter, p.Q)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// TimeBase selects how sample indices are mapped to LFO time.
type TimeBase int

const (
	// TimeBaseLinspace spreads N points evenly over [0, N/sr], end point included.
	TimeBaseLinspace TimeBase = iota
	// TimeBaseSampleClock uses t = i/sr.
	TimeBaseSampleClock
)

func (tb TimeBase) String() string {
	switch tb {
	case TimeBaseLinspace:
		return "linspace"
	case TimeBaseSampleClock:
		return "sample-clock"
	default:
		return fmt.Sprintf("TimeBase(%d)", int(tb))
	}
}

// ParseTimeBase converts a TimeBase name back to its value.
func ParseTimeBase(name string) (TimeBase, error) {
	switch name {
	case "", "linspace":
		return TimeBaseLinspace, nil
	case "sample-clock":
		return TimeBaseSampleClock, nil
	default:
		return 0, fmt.Errorf("%w: unknown time base %q", ErrInvalidParameter, name)
	}
}

// Option tunes a filter pass.
type Option func(config) config

type config struct {
	timeBase TimeBase
}

func applyOptions(opts []Option) config {
	cfg := config{timeBase: TimeBaseLinspace}

	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}

// WithTimeBase selects the sweep time grid.
func WithTimeBase(tb TimeBase) Option {
	return func(cfg config) config {
		cfg.timeBase = tb

		return cfg
	}
}
