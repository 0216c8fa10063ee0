// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/audwah/audio"
)

// fakeReader plays back interleaved samples at most max values per call.
type fakeReader struct {
	data     []float32
	rate     int
	channels int
	max      int
	err      error
}

func (f *fakeReader) SampleRate() int { return f.rate }
func (f *fakeReader) Channels() int   { return f.channels }

func (f *fakeReader) Read(p []float32) (int, error) {
	if len(f.data) == 0 {
		if f.err != nil {
			return 0, f.err
		}

		return 0, io.EOF
	}

	if f.max > 0 && len(p) > f.max {
		p = p[:f.max]
	}

	n := copy(p, f.data)
	f.data = f.data[n:]

	return n, nil
}

func TestSource_PassesSamplesThrough(t *testing.T) {
	t.Parallel()

	want := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3, 0.4, -0.4}
	src := &source{dec: &fakeReader{data: slices.Clone(want), rate: 48000, channels: 2, max: 4}}

	if src.SampleRate() != 48000 || src.Channels() != 2 {
		t.Fatalf("metadata = %d Hz, %d ch", src.SampleRate(), src.Channels())
	}

	got, err := audio.ReadAll(src, 3)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSource_EndOfStreamSticks(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeReader{rate: 8000, channels: 1}}
	buf := make([]float32, 8)

	for range 2 {
		if n, err := src.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
			t.Fatalf("ReadSamples() = %d, %v; want 0, io.EOF", n, err)
		}
	}
}

func TestSource_WrapsErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad packet")
	src := &source{dec: &fakeReader{rate: 8000, channels: 1, err: boom}}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("OggS but not really"))); err == nil {
		t.Error("Decode() accepted garbage")
	}
}
