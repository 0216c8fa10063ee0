// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer averages every interleaved frame of src into a single sample.
// Mono sources pass through untouched.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("mono mixer: %w", err)
	}

	return nil
}

// ReadSamples writes at most len(dst) mono samples.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	want := len(dst) * channels
	if cap(m.tmp) < want {
		m.tmp = make([]float32, want)
	}

	tmp := m.tmp[:want]

	n, err := m.src.ReadSamples(tmp)
	frames := n / channels

	if channels == 2 {
		for f := range frames {
			dst[f] = (tmp[2*f] + tmp[2*f+1]) / 2
		}

		return frames, err
	}

	scale := float32(channels)
	for f := range frames {
		var sum float32
		for _, v := range tmp[f*channels : (f+1)*channels] {
			sum += v
		}

		dst[f] = sum / scale
	}

	return frames, err
}
