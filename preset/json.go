// SPDX-License-Identifier: EPL-2.0

// Package preset loads render settings from JSON knob presets.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/ik5/audwah"
	"github.com/ik5/audwah/wah"
)

var (
	// ErrOutOfRange reports a knob outside 0-100 or a non-positive frequency.
	ErrOutOfRange = errors.New("preset value out of range")

	// ErrNilSettings is returned by Apply when dst is nil.
	ErrNilSettings = errors.New("nil destination settings")
)

// File is the JSON schema for presets. Knob fields are 0-100 positions;
// max_freq is in Hz.
type File struct {
	WahDepth *float64 `json:"wah_depth"`
	WahRate  *float64 `json:"wah_rate"`
	WahDrive *float64 `json:"wah_drive"`
	WahQ     *float64 `json:"wah_q"`
	Pan      *float64 `json:"pan"`
	Speed    *float64 `json:"speed"`
	MaxFreq  *float64 `json:"max_freq"`
	TimeBase string   `json:"time_base"`
}

// LoadJSON loads a preset JSON file and applies it on top of
// audwah.DefaultSettings.
func LoadJSON(path string) (*audwah.Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}

	s := audwah.DefaultSettings()
	if err := Apply(&s, f); err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}

	return &s, nil
}

// Parse decodes a preset document.
func Parse(b []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

// Apply applies a parsed preset onto existing settings.
//
// When any wah knob is present the four knobs are read together, missing ones
// counting as 0, and the wah runs only if wah_q is above zero.
func Apply(dst *audwah.Settings, f *File) error {
	if dst == nil {
		return ErrNilSettings
	}

	if f == nil {
		return nil
	}

	if f.hasWah() {
		k := wah.Knobs{
			Depth: value(f.WahDepth),
			Rate:  value(f.WahRate),
			Drive: value(f.WahDrive),
			Q:     value(f.WahQ),
		}

		for _, c := range []struct {
			name string
			v    float64
		}{
			{"wah_depth", k.Depth},
			{"wah_rate", k.Rate},
			{"wah_drive", k.Drive},
			{"wah_q", k.Q},
		} {
			if err := checkKnob(c.name, c.v); err != nil {
				return err
			}
		}

		maxFreq := dst.Wah.MaxFreq
		dst.Wah = k.Params()
		dst.Wah.MaxFreq = maxFreq
		dst.WahEnabled = k.Enabled()
	}

	if f.MaxFreq != nil {
		if !(*f.MaxFreq > 0) || math.IsInf(*f.MaxFreq, 0) {
			return fmt.Errorf("%w: max_freq must be > 0: %v", ErrOutOfRange, *f.MaxFreq)
		}

		dst.Wah.MaxFreq = *f.MaxFreq
	}

	if f.Pan != nil {
		if err := checkKnob("pan", *f.Pan); err != nil {
			return err
		}

		pan := wah.PanFromKnob(*f.Pan)
		dst.Pan = &pan
	}

	if f.Speed != nil {
		if err := checkKnob("speed", *f.Speed); err != nil {
			return err
		}

		dst.Speed = wah.SpeedFromKnob(*f.Speed)
	}

	if f.TimeBase != "" {
		tb, err := wah.ParseTimeBase(f.TimeBase)
		if err != nil {
			return err
		}

		dst.TimeBase = tb
	}

	return nil
}

func (f *File) hasWah() bool {
	return f.WahDepth != nil || f.WahRate != nil || f.WahDrive != nil || f.WahQ != nil
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}

	return *p
}

func checkKnob(name string, v float64) error {
	if !(v >= 0 && v <= 100) {
		return fmt.Errorf("%w: %s must be in [0,100]: %v", ErrOutOfRange, name, v)
	}

	return nil
}
