// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/audwah/audio"
	"github.com/ik5/audwah/internal/pcm"
)

// Decoder reads uncompressed AIFF files of 8, 16, 24 or 32 bits. When r is
// an io.Closer, closing the returned Source closes r.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("aiff: %w", err)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	bits := int(dec.BitDepth)
	if !pcm.SupportedBitDepth(bits) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate <= 0 {
		return nil, ErrInvalidLayout
	}

	var opts []pcm.Option
	if c, ok := r.(io.Closer); ok {
		opts = append(opts, pcm.WithCloser(c))
	}

	src, err := pcm.NewSource(dec, format, bits, opts...)
	if err != nil {
		return nil, fmt.Errorf("aiff: %w", err)
	}

	return src, nil
}
