// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files.
//
// Decoding goes through github.com/go-audio/wav and accepts integer PCM of
// 8, 16, 24 or 32 bits in any chunk order:
//
//	f, _ := os.Open("in.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	defer src.Close() // closes f
//
// Two writers are provided. Encode drives the go-audio encoder and needs an
// io.WriteSeeker to patch the header; WriteWAV16 emits a canonical 16-bit
// file in one pass and works on any io.Writer.
package wav
