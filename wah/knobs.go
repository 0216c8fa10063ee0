// SPDX-License-Identifier: EPL-2.0

package wah

import "math"

// Physical ranges reached by the 0-100 knobs.
const (
	DepthLow, DepthHigh = 0.5, 1.0
	RateLow, RateHigh   = 1.0, 6.0
	DriveLow, DriveHigh = 300.0, 500.0
	QLow, QHigh         = 0.5, 0.8

	// MinSpeed keeps the speed knob from stalling playback at 0.
	MinSpeed = 0.01
)

// Bound maps a knob position in [0, 100] linearly onto [low, high].
func Bound(value, low, high float64) float64 {
	return low + (high-low)*(value/100)
}

// Knobs are the wah controls as 0-100 knob positions.
type Knobs struct {
	Depth float64
	Rate  float64
	Drive float64
	Q     float64
}

// Enabled reports whether the wah should run at all; a resonance knob at
// zero bypasses the effect.
func (k Knobs) Enabled() bool {
	return k.Q > 0
}

// Params converts the knob positions into physical filter parameters.
// Drive sets the base frequency; MaxFreq stays at DefaultMaxFreq.
func (k Knobs) Params() Params {
	return Params{
		Depth:    Bound(k.Depth, DepthLow, DepthHigh),
		Rate:     Bound(k.Rate, RateLow, RateHigh),
		BaseFreq: Bound(k.Drive, DriveLow, DriveHigh),
		MaxFreq:  DefaultMaxFreq,
		Q:        Bound(k.Q, QLow, QHigh),
	}
}

// PanFromKnob maps a pan knob (0 left, 50 centre, 100 right) to [-1, 1].
func PanFromKnob(value float64) float64 {
	return Bound(value, -1, 1)
}

// SpeedFromKnob maps a speed knob to a playback factor; 20 is normal speed.
func SpeedFromKnob(value float64) float64 {
	return math.Max(MinSpeed, value*5*0.01)
}
