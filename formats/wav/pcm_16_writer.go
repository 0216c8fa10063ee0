// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	headerSize = 44
	chunkSize  = 8192 // samples per write
)

// WriteWAV16 streams interleaved 16-bit PCM as a canonical 44-byte-header
// WAV file. Unlike Encode it needs no seeking, so w may be a pipe or socket.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels < 1 || len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples in %d channels", ErrInvalidLayout, len(samples), channels)
	}

	const bytesPerSample = 2

	blockAlign := channels * bytesPerSample

	dataSize, err := checkDataSize(len(samples), bytesPerSample)
	if err != nil {
		return err
	}

	header := make([]byte, headerSize)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(headerSize-8)+dataSize)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], 16)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write wav header: %w", err)
	}

	buf := make([]byte, min(len(samples), chunkSize)*bytesPerSample)

	for start := 0; start < len(samples); start += chunkSize {
		chunk := samples[start:min(start+chunkSize, len(samples))]
		out := buf[:len(chunk)*bytesPerSample]

		for i, s := range chunk {
			binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("write wav data: %w", err)
		}
	}

	return nil
}

// checkDataSize returns the byte size of samples values of width bytes each,
// or ErrTooLarge when the RIFF chunk size would not fit in 32 bits.
func checkDataSize(samples, width int) (uint32, error) {
	size := uint64(samples) * uint64(width)
	if size > math.MaxUint32-(headerSize-8) {
		return 0, fmt.Errorf("%w: %d bytes of samples", ErrTooLarge, size)
	}

	return uint32(size), nil
}
