// SPDX-License-Identifier: EPL-2.0

// Package audwah renders audio through an LFO-swept wah filter.
//
// Render pulls a decoded stream through the whole pipeline: the channels are
// averaged to mono, the wah filter from package wah sweeps a bandpass over
// the signal and normalises its peak, and the result is optionally panned
// into stereo and played back at a different speed:
//
//	src, _ := formats.Open(formats.NewRegistry(), "in.wav")
//	defer src.Close()
//
//	s := audwah.DefaultSettings()
//	s.Wah = wah.Knobs{Depth: 60, Rate: 20, Drive: 50, Q: 40}.Params()
//
//	res, err := audwah.Render(src, s, 4096)
//	if err != nil {
//		return err
//	}
//
//	return wav.WriteWAV16(out, res.SampleRate, res.Channels, res.PCM16())
//
// The stages live in their own packages: audio for streaming primitives,
// wah for the filter, formats for codecs and preset for JSON knob files.
package audwah
