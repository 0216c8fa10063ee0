// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audwah/audio"
	"github.com/ik5/audwah/internal/pcm"
)

// WAVE format tags.
const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Decoder reads integer PCM WAV files of 8, 16, 24 or 32 bits with any
// chunk layout. Non-seekable readers are buffered in memory first. When r
// is an io.Closer, closing the returned Source closes r.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	switch dec.WavAudioFormat {
	case formatPCM, formatExtensible:
	default:
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrNotWavFile, dec.NumChans, dec.SampleRate)
	}

	bits := int(dec.BitDepth)
	if !pcm.SupportedBitDepth(bits) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	var opts []pcm.Option
	if bits == 8 {
		opts = append(opts, pcm.WithUnsigned())
	}

	if c, ok := r.(io.Closer); ok {
		opts = append(opts, pcm.WithCloser(c))
	}

	src, err := pcm.NewSource(dec, dec.Format(), bits, opts...)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	return src, nil
}
