// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

const defaultBufSize = 4096

// Buffer is a Source over samples already held in memory.
type Buffer struct {
	samples    []float32
	sampleRate int
	channels   int
	off        int
}

// NewBuffer wraps interleaved samples. The slice is not copied.
func NewBuffer(samples []float32, sampleRate, channels int) *Buffer {
	return &Buffer{samples: samples, sampleRate: sampleRate, channels: channels}
}

// NewBufferFloat64 converts samples to float32 and wraps them.
func NewBufferFloat64(samples []float64, sampleRate, channels int) *Buffer {
	buf := make([]float32, len(samples))
	for i, v := range samples {
		buf[i] = float32(v)
	}

	return NewBuffer(buf, sampleRate, channels)
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return b.channels }
func (b *Buffer) BufSize() int    { return defaultBufSize }
func (b *Buffer) Close() error    { return nil }

// Len returns the number of samples not read yet.
func (b *Buffer) Len() int { return len(b.samples) - b.off }

// Rewind starts the stream over.
func (b *Buffer) Rewind() { b.off = 0 }

func (b *Buffer) ReadSamples(dst []float32) (int, error) {
	if b.channels > 1 {
		dst = dst[:len(dst)-len(dst)%b.channels]
	}

	n := copy(dst, b.samples[b.off:])
	b.off += n

	if b.off >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}
