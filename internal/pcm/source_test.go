// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audwah/utils"
)

// fakeReader serves data in chunks of at most max values.
type fakeReader struct {
	data []int
	max  int
	err  error
}

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}

	n := copy(buf.Data, f.data)
	if f.max > 0 && n > f.max {
		n = f.max
	}

	f.data = f.data[n:]

	return n, nil
}

type closeRecorder struct{ closed bool }

func (c *closeRecorder) Close() error {
	c.closed = true

	return nil
}

func drain(t *testing.T, s *Source, size int) []float32 {
	t.Helper()

	var out []float32

	buf := make([]float32, size)

	for {
		n, err := s.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out
		}

		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestSource_Scaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		unsigned bool
		data     []int
		want     []float32
	}{
		{name: "16 bit", bitDepth: 16, data: []int{0, 16384, -32768}, want: []float32{0, 0.5, -1}},
		{name: "24 bit", bitDepth: 24, data: []int{1 << 22, -(1 << 23)}, want: []float32{0.5, -1}},
		{name: "32 bit", bitDepth: 32, data: []int{1 << 30}, want: []float32{0.5}},
		{name: "signed 8 bit", bitDepth: 8, data: []int{64, -128}, want: []float32{0.5, -1}},
		{name: "unsigned 8 bit", bitDepth: 8, unsigned: true, data: []int{128, 192, 0}, want: []float32{0, 0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var opts []Option
			if tt.unsigned {
				opts = append(opts, WithUnsigned())
			}

			format := &goaudio.Format{NumChannels: 1, SampleRate: 8000}

			s, err := NewSource(&fakeReader{data: tt.data}, format, tt.bitDepth, opts...)
			if err != nil {
				t.Fatalf("NewSource() error = %v", err)
			}

			got := drain(t, s, 16)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSource_ReadsWhatFloatToPCMWrote(t *testing.T) {
	t.Parallel()

	in := []float64{-1, -0.3, 0, 0.25, 1}

	for _, depth := range []int{8, 16, 24, 32} {
		data := make([]int, len(in))
		for i, x := range in {
			data[i] = utils.FloatToPCM(x, depth)
		}

		format := &goaudio.Format{NumChannels: 1, SampleRate: 8000}

		s, err := NewSource(&fakeReader{data: data}, format, depth)
		if err != nil {
			t.Fatalf("NewSource() error = %v", err)
		}

		for i, v := range drain(t, s, 16) {
			if want := float32(utils.PCMToFloat(data[i], depth)); v != want {
				t.Errorf("depth %d: sample %d = %v, want %v", depth, i, v, want)
			}
		}
	}
}

func TestSource_ShortReadsAndWholeFrames(t *testing.T) {
	t.Parallel()

	data := make([]int, 100)
	for i := range data {
		data[i] = i * 100
	}

	format := &goaudio.Format{NumChannels: 2, SampleRate: 44100}

	s, err := NewSource(&fakeReader{data: data, max: 6}, format, 16)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	if n, err := s.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(1 sample of stereo) = %d, %v; want 0, nil", n, err)
	}

	got := drain(t, s, 7)
	if len(got) != len(data) {
		t.Fatalf("len = %d, want %d", len(got), len(data))
	}

	for i, v := range got {
		if want := float32(data[i]) / 32768; v != want {
			t.Fatalf("got[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{NumChannels: 1, SampleRate: 8000}

	if _, err := NewSource(&fakeReader{}, format, 12); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("12 bit: error = %v, want ErrUnsupportedBitDepth", err)
	}

	boom := errors.New("boom")

	s, err := NewSource(&fakeReader{data: []int{1, 2}, err: boom}, format, 16)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	buf := make([]float32, 8)
	if n, err := s.ReadSamples(buf); n != 2 || err != nil {
		t.Fatalf("first read = %d, %v; want 2, nil", n, err)
	}

	if _, err := s.ReadSamples(buf); !errors.Is(err, boom) {
		t.Errorf("second read error = %v, want %v", err, boom)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{NumChannels: 1, SampleRate: 8000}
	rec := &closeRecorder{}

	s, err := NewSource(&fakeReader{}, format, 16, WithCloser(rec))
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	if err := s.Close(); err != nil || !rec.closed {
		t.Errorf("Close() = %v, closed = %v", err, rec.closed)
	}

	bare, _ := NewSource(&fakeReader{}, format, 16)
	if err := bare.Close(); err != nil {
		t.Errorf("Close() without closer = %v", err)
	}
}
