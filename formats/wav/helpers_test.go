// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audwah/audio"
)

// buildWAV assembles a RIFF/WAVE file by hand. With junk set, an unknown
// chunk sits between fmt and data.
func buildWAV(tag uint16, bits, channels, rate int, data []byte, junk bool) []byte {
	var body bytes.Buffer

	body.WriteString("WAVE")

	body.WriteString("fmt ")
	_ = binary.Write(&body, binary.LittleEndian, uint32(16))
	_ = binary.Write(&body, binary.LittleEndian, tag)
	_ = binary.Write(&body, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&body, binary.LittleEndian, uint32(rate))
	_ = binary.Write(&body, binary.LittleEndian, uint32(rate*channels*bits/8))
	_ = binary.Write(&body, binary.LittleEndian, uint16(channels*bits/8))
	_ = binary.Write(&body, binary.LittleEndian, uint16(bits))

	if junk {
		body.WriteString("JUNK")
		_ = binary.Write(&body, binary.LittleEndian, uint32(4))
		body.Write([]byte{1, 2, 3, 4})
	}

	body.WriteString("data")
	_ = binary.Write(&body, binary.LittleEndian, uint32(len(data)))
	body.Write(data)

	var out bytes.Buffer

	out.WriteString("RIFF")
	_ = binary.Write(&out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func decodeAll(t *testing.T, r io.Reader) (audio.Source, []float32) {
	t.Helper()

	src, err := Decoder{}.Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	samples, err := audio.ReadAll(src, 256)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	return src, samples
}

// onlyReader hides Seek and Close from the wrapped reader.
type onlyReader struct{ r io.Reader }

func (o onlyReader) Read(p []byte) (int, error) { return o.r.Read(p) }

var errWrite = errors.New("disk full")

// failWriter fails once more than limit bytes were written.
type failWriter struct {
	limit, written int
}

func (f *failWriter) Write(p []byte) (int, error) {
	if f.written+len(p) > f.limit {
		return 0, errWrite
	}

	f.written += len(p)

	return len(p), nil
}
