// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audwah/utils"
)

// encodeFrames is how many frames go to the encoder per write.
const encodeFrames = 4096

// Encode writes interleaved float samples in [-1, 1] as integer PCM of
// bitDepth 16, 24 or 32 bits. Samples outside the range are clipped.
// The header is patched on completion, so ws must seek.
func Encode(ws io.WriteSeeker, sampleRate, channels, bitDepth int, samples []float64) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if channels < 1 || len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples in %d channels", ErrInvalidLayout, len(samples), channels)
	}

	if _, err := checkDataSize(len(samples), bitDepth/8); err != nil {
		return err
	}

	enc := gowav.NewEncoder(ws, sampleRate, bitDepth, channels, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, 0, encodeFrames*channels),
		SourceBitDepth: bitDepth,
	}

	// The encoder emits its header on the first write, so an empty input
	// still goes through one (empty) write.
	for start := 0; ; {
		end := min(start+encodeFrames*channels, len(samples))

		buf.Data = buf.Data[:end-start]
		for i, v := range samples[start:end] {
			buf.Data[i] = utils.FloatToPCM(v, bitDepth)
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("encode wav: %w", err)
		}

		if start = end; start >= len(samples) {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finish wav: %w", err)
	}

	return nil
}
