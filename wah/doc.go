// SPDX-License-Identifier: EPL-2.0

// Package wah implements an LFO-swept wah-wah filter.
//
// The effect is a second-order constant-skirt-gain bandpass (RBJ cookbook form)
// whose centre frequency follows a sinusoidal low-frequency oscillator. The
// biquad coefficients are recomputed for every sample and the filter runs a
// direct-form-I recurrence over its own two previous inputs and outputs. After
// the whole buffer has been filtered, the result is divided by its absolute peak
// plus a small epsilon so the output never reaches full scale.
//
// # Sweep
//
// For a buffer of N samples at sample rate sr the oscillator is evaluated on a
// time grid and mapped to a centre frequency:
//
//	lfo(t) = (sin(2*pi*rate*t) + 1) / 2
//	f(t)   = base + lfo(t) * depth * (max - base)
//
// The default grid is N evenly spaced points from 0 to N/sr inclusive, which
// reproduces reference renders of this effect to within floating-point
// rounding of sin and cos. WithTimeBase(TimeBaseSampleClock) switches to the
// plain t = i/sr clock.
//
// # Filtering
//
//	out := wah.Apply(samples, 44100, wah.DefaultParams())
//
// Apply performs no parameter validation: a Q close to zero or a centre
// frequency at or above Nyquist yields whatever the unstable recurrence
// produces. Use ApplyStrict, or call Params.Validate, to reject such settings
// with an error wrapping ErrInvalidParameter.
//
// # Knobs
//
// User interfaces work with 0-100 knob positions. Knobs.Params maps them to the
// physical ranges with Bound:
//
//	p := wah.Knobs{Depth: 50, Rate: 20, Drive: 0, Q: 70}.Params()
//
// Each call owns its filter state; Apply is safe to call concurrently on
// different buffers.
package wah
