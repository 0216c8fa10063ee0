// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadAll drains src until io.EOF and returns every interleaved sample.
// bufSize is rounded down to whole frames; zero or less uses src.BufSize().
// ReadAll does not close src.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	if bufSize <= 0 {
		bufSize = src.BufSize()
	}

	if bufSize <= 0 {
		bufSize = defaultBufSize
	}

	bufSize -= bufSize % channels
	if bufSize == 0 {
		bufSize = channels
	}

	buf := make([]float32, bufSize)

	var (
		out   []float32
		empty int
	)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}

		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}

		if n > 0 {
			empty = 0

			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return nil, io.ErrNoProgress
		}
	}
}

// ReadAllMono drains a mono src into float64 samples and returns them with
// the stream's sample rate. Wrap multi-channel sources in a MonoMixer first.
func ReadAllMono(src Source, bufSize int) ([]float64, int, error) {
	if src.Channels() != 1 {
		return nil, 0, fmt.Errorf("%w: %d channels", ErrNotMono, src.Channels())
	}

	samples, err := ReadAll(src, bufSize)
	if err != nil {
		return nil, 0, err
	}

	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = float64(v)
	}

	return out, src.SampleRate(), nil
}
