// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/audwah/audio"
	"github.com/ik5/audwah/internal/audiotest"
)

// stalled never produces data and never ends.
type stalled struct{ audiotest.Source }

func (*stalled) ReadSamples([]float32) (int, error) { return 0, nil }

func TestReadAll_BufferSizes(t *testing.T) {
	t.Parallel()

	for _, size := range []int{-1, 0, 1, 3, 64, 100000} {
		got, err := audio.ReadAll(audiotest.Ramp(8000, 2, 123, 0.001), size)
		if err != nil {
			t.Fatalf("size %d: error = %v", size, err)
		}

		if len(got) != 246 {
			t.Errorf("size %d: len = %d, want 246", size, len(got))
		}
	}
}

func TestReadAll_NoProgress(t *testing.T) {
	t.Parallel()

	src := &stalled{Source: *audiotest.Silent(8000, 1, 10)}

	if _, err := audio.ReadAll(src, 16); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("ReadAll() error = %v, want io.ErrNoProgress", err)
	}
}

func TestReadAll_InvalidChannels(t *testing.T) {
	t.Parallel()

	if _, err := audio.ReadAll(audiotest.Silent(8000, 0, 10), 16); !errors.Is(err, audio.ErrInvalidChannels) {
		t.Errorf("ReadAll() error = %v, want ErrInvalidChannels", err)
	}
}

func TestReadAllMono(t *testing.T) {
	t.Parallel()

	got, rate, err := audio.ReadAllMono(audiotest.Constant(22050, 1, 40, 0.25), 8)
	if err != nil {
		t.Fatalf("ReadAllMono() error = %v", err)
	}

	if rate != 22050 || len(got) != 40 {
		t.Fatalf("ReadAllMono() = %d samples at %d Hz", len(got), rate)
	}

	for i, v := range got {
		if v != 0.25 {
			t.Fatalf("got[%d] = %v, want 0.25", i, v)
		}
	}

	if _, _, err := audio.ReadAllMono(audiotest.Silent(8000, 2, 4), 8); !errors.Is(err, audio.ErrNotMono) {
		t.Errorf("stereo: error = %v, want ErrNotMono", err)
	}
}
