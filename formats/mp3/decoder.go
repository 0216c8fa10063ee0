// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audwah/audio"
)

// go-mp3 always emits interleaved stereo 16-bit little-endian PCM.
const (
	channels    = 2
	frameBytes  = channels * 2
	readFrames  = 2048
	sampleScale = 1.0 / 32768
)

// pcmReader is the part of gomp3.Decoder the source needs.
type pcmReader interface {
	io.Reader
	SampleRate() int
}

type source struct {
	dec    pcmReader
	closer io.Closer
	buf    []byte
	done   bool
}

func newSource(dec pcmReader, closer io.Closer) *source {
	return &source{dec: dec, closer: closer, buf: make([]byte, readFrames*frameBytes)}
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) BufSize() int    { return readFrames * channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}

	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("close mp3: %w", err)
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	frames := len(dst) / channels
	if frames == 0 {
		return 0, nil
	}

	if cap(s.buf) < frames*frameBytes {
		s.buf = make([]byte, frames*frameBytes)
	}

	// ReadFull keeps frames whole even if the decoder returns odd byte counts.
	n, err := io.ReadFull(s.dec, s.buf[:frames*frameBytes])
	n -= n % frameBytes

	for i := range n / 2 {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) * sampleScale
	}

	switch {
	case err == nil:
		return n / 2, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true

		return n / 2, io.EOF
	default:
		return n / 2, fmt.Errorf("decode mp3: %w", err)
	}
}

// Decoder reads MPEG-1/2 Layer III streams through
// github.com/hajimehoshi/go-mp3. Mono files are upmixed to stereo by the
// decoder. When r is an io.Closer, closing the Source closes r.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	closer, _ := r.(io.Closer)

	return newSource(dec, closer), nil
}
