// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the integer PCM readers of the go-audio decoders to
// float32 sample streams.
package pcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audwah/utils"
)

const defaultBufSize = 4096

var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

// Reader is the PCM half of the go-audio wav and aiff decoders.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts integer frames from a Reader to float32 in [-1, 1).
type Source struct {
	r      Reader
	closer io.Closer
	format *goaudio.Format
	offset int
	bits   int
	buf    *goaudio.IntBuffer
	done   bool
}

// Option configures a Source.
type Option func(*Source)

// WithUnsigned marks samples as unsigned with the midpoint at
// 2^(bitDepth-1), as WAV stores 8-bit audio.
func WithUnsigned() Option {
	return func(s *Source) {
		s.offset = 1 << (s.bits - 1)
	}
}

// WithCloser makes Close release c.
func WithCloser(c io.Closer) Option {
	return func(s *Source) { s.closer = c }
}

// SupportedBitDepth reports whether bits is one of 8, 16, 24 or 32.
func SupportedBitDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	default:
		return false
	}
}

func NewSource(r Reader, format *goaudio.Format, bitDepth int, opts ...Option) (*Source, error) {
	if !SupportedBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	s := &Source{
		r:      r,
		format: format,
		bits:   bitDepth,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}

	return defaultBufSize
}

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}

	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("close pcm source: %w", err)
	}

	return nil
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.format.NumChannels
	if want == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < want {
		s.buf = &goaudio.IntBuffer{Format: s.format, Data: make([]int, want)}
	}

	s.buf.Data = s.buf.Data[:want]

	n, err := s.r.PCMBuffer(s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(utils.PCMToFloat(v-s.offset, s.bits))
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("read pcm: %w", err)
	}

	if n == 0 || err != nil {
		s.done = true

		return n, io.EOF
	}

	return n, nil
}
