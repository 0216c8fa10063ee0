// SPDX-License-Identifier: EPL-2.0

package audwah

import (
	"fmt"
	"time"

	"github.com/ik5/audwah/audio"
	"github.com/ik5/audwah/utils"
	"github.com/ik5/audwah/wah"
)

// Settings selects what Render does to a stream.
type Settings struct {
	// Wah holds the physical filter parameters.
	Wah wah.Params
	// WahEnabled runs the filter; when false the mono mix is only
	// peak-normalised.
	WahEnabled bool
	// Speed is the playback factor; 1 leaves timing alone.
	Speed float64
	// Pan places the result in stereo when set, from -1 (left) to 1 (right).
	// Nil keeps the output mono.
	Pan *float64
	// Strict validates Wah and rejects non-finite samples.
	Strict bool
	// TimeBase picks the time grid the LFO is evaluated on.
	TimeBase wah.TimeBase
}

// DefaultSettings enables the wah with wah.DefaultParams at normal speed and
// keeps the output mono.
func DefaultSettings() Settings {
	return Settings{
		Wah:        wah.DefaultParams(),
		WahEnabled: true,
		Speed:      1,
	}
}

// Result is a rendered clip.
type Result struct {
	// Samples are interleaved, Channels per frame.
	Samples    []float64
	Channels   int
	SampleRate int
}

// Frames returns the number of sample frames.
func (r *Result) Frames() int {
	if r.Channels == 0 {
		return 0
	}

	return len(r.Samples) / r.Channels
}

// Duration returns the playing time of the clip.
func (r *Result) Duration() time.Duration {
	if r.SampleRate <= 0 {
		return 0
	}

	return time.Duration(r.Frames()) * time.Second / time.Duration(r.SampleRate)
}

// PCM16 converts the samples to 16-bit integers for writing.
func (r *Result) PCM16() []int16 {
	out := make([]int16, len(r.Samples))
	for i, v := range r.Samples {
		out[i] = utils.Float64ToInt16(v)
	}

	return out
}

// Render drains src and runs it through the pipeline selected by s:
// mono downmix, wah filter (or plain peak normalisation), pan, then speed.
// bufferSize is the read size in samples; zero uses src.BufSize().
// Render does not close src.
func Render(src audio.Source, s Settings, bufferSize int) (*Result, error) {
	samples, rate, err := audio.ReadAllMono(audio.NewMonoMixer(src), bufferSize)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	switch {
	case !s.WahEnabled:
		wah.Normalize(samples)
	case s.Strict:
		samples, err = wah.ApplyStrict(samples, rate, s.Wah, wah.WithTimeBase(s.TimeBase))
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	default:
		samples = wah.Apply(samples, rate, s.Wah, wah.WithTimeBase(s.TimeBase))
	}

	if s.Pan == nil && s.Speed == 1 {
		return &Result{Samples: samples, Channels: 1, SampleRate: rate}, nil
	}

	var stream audio.Source = audio.NewBufferFloat64(samples, rate, 1)

	if s.Pan != nil {
		if stream, err = audio.NewPanner(stream, *s.Pan); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	}

	if s.Speed != 1 {
		if stream, err = audio.NewSpeedChanger(stream, s.Speed); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	}

	out, err := audio.ReadAll(stream, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	res := &Result{
		Samples:    make([]float64, len(out)),
		Channels:   stream.Channels(),
		SampleRate: stream.SampleRate(),
	}

	for i, v := range out {
		res.Samples[i] = float64(v)
	}

	return res, nil
}
