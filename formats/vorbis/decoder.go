// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audwah/audio"
)

// oggReader is the part of oggvorbis.Reader the source needs.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read(p []float32) (int, error)
}

type source struct {
	dec    oggReader
	closer io.Closer
	done   bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) BufSize() int    { return 4096 }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}

	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("close ogg: %w", err)
	}

	return nil
}

// ReadSamples decodes straight into dst; oggvorbis already produces
// interleaved float32 in [-1, 1].
func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	dst = dst[:len(dst)-len(dst)%s.dec.Channels()]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)

	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.EOF):
		s.done = true

		return n, io.EOF
	default:
		return n, fmt.Errorf("decode vorbis: %w", err)
	}
}

// Decoder reads Ogg Vorbis streams through github.com/jfreymuth/oggvorbis.
// When r is an io.Closer, closing the Source closes r.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}

	if dec.Channels() < 1 {
		return nil, fmt.Errorf("vorbis: %w: %d", audio.ErrInvalidChannels, dec.Channels())
	}

	closer, _ := r.(io.Closer)

	return &source{dec: dec, closer: closer}, nil
}
