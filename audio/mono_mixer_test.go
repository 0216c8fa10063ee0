// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audwah/audio"
	"github.com/ik5/audwah/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.Ramp(8000, 1, 50, 0.01)
	got, err := audio.ReadAll(audio.NewMonoMixer(src), 16)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if len(got) != 50 {
		t.Fatalf("len = %d, want 50", len(got))
	}

	for i, v := range got {
		if want := float32(i) * 0.01; v != want {
			t.Fatalf("got[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestMonoMixer_AveragesChannels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     float32
	}{
		{name: "stereo", channels: 2, want: 0.3},
		{name: "three channels", channels: 3, want: 0.4},
		{name: "six channels", channels: 6, want: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Channel c carries 0.2*(c+1).
			src := audiotest.New(8000, tt.channels, 100, func(_, c int) float32 {
				return 0.2 * float32(c+1)
			})
			mono := audio.NewMonoMixer(src)

			got, err := audio.ReadAll(mono, 32)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}

			if len(got) != 100 {
				t.Fatalf("len = %d, want 100 frames", len(got))
			}

			for i, v := range got {
				if math.Abs(float64(v-tt.want)) > 1e-6 {
					t.Fatalf("got[%d] = %v, want %v", i, v, tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_OppositeChannelsCancel(t *testing.T) {
	t.Parallel()

	got, err := audio.ReadAll(audio.NewMonoMixer(audiotest.Ramp(8000, 2, 64, 0.01)), 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	for i, v := range got {
		if v != 0 {
			t.Fatalf("got[%d] = %v, want 0", i, v)
		}
	}
}

func TestMonoMixer_EOFWithData(t *testing.T) {
	t.Parallel()

	mono := audio.NewMonoMixer(audiotest.Constant(8000, 2, 10, 0.5))
	buf := make([]float32, 64)

	n, err := mono.ReadSamples(buf)
	if n != 10 || !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() = %d, %v; want 10, io.EOF", n, err)
	}

	n, err = mono.ReadSamples(buf)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	mono := audio.NewMonoMixer(audiotest.Constant(8000, 2, 10, 0.5))
	if n, err := mono.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.Silent(22050, 4, 10)
	mono := audio.NewMonoMixer(src)

	if mono.Channels() != 1 || mono.SampleRate() != 22050 || mono.BufSize() != src.BufSize() {
		t.Errorf("metadata = %d ch, %d Hz, buf %d", mono.Channels(), mono.SampleRate(), mono.BufSize())
	}

	if err := mono.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if !src.Closed {
		t.Error("Close() did not close the source")
	}
}

func TestMonoMixer_PropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := audiotest.Constant(8000, 2, 100, 0.5)
	src.Err, src.After = boom, 20

	_, err := audio.ReadAll(audio.NewMonoMixer(src), 8)
	if !errors.Is(err, boom) {
		t.Errorf("ReadAll() error = %v, want %v", err, boom)
	}
}

func TestMonoMixer_SteadyStateAllocs(t *testing.T) {
	src := audiotest.Sine(44100, 2, 1<<30, 440)
	mono := audio.NewMonoMixer(src)
	buf := make([]float32, 512)

	_, _ = mono.ReadSamples(buf)

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = mono.ReadSamples(buf)
	})

	if allocs > 0 {
		t.Errorf("ReadSamples allocated %v times per call, want 0", allocs)
	}
}

func BenchmarkMonoMixer_Stereo(b *testing.B) {
	src := audiotest.Sine(44100, 2, 1<<30, 440)
	mono := audio.NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = mono.ReadSamples(buf)
	}
}
