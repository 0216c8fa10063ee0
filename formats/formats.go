// SPDX-License-Identifier: EPL-2.0

// Package formats wires every codec into an audio.Registry keyed by file
// extension.
package formats

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audwah/audio"
	"github.com/ik5/audwah/formats/aiff"
	"github.com/ik5/audwah/formats/mp3"
	"github.com/ik5/audwah/formats/vorbis"
	"github.com/ik5/audwah/formats/wav"
)

var ErrUnknownFormat = errors.New("unknown audio format")

// Register adds the built-in decoders under their usual extensions.
func Register(reg *audio.Registry) {
	for _, ext := range []string{"wav", "wave"} {
		reg.Register(ext, wav.Decoder{})
	}

	reg.Register("mp3", mp3.Decoder{})

	for _, ext := range []string{"ogg", "oga"} {
		reg.Register(ext, vorbis.Decoder{})
	}

	for _, ext := range []string{"aif", "aiff"} {
		reg.Register(ext, aiff.Decoder{})
	}
}

// NewRegistry returns a registry with the built-in decoders.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	Register(reg)

	return reg
}

// ForPath picks the decoder for path by its extension.
func ForPath(reg *audio.Registry, path string) (audio.Decoder, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}

	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, ext)
	}

	return dec, nil
}

// Open decodes the file at path. Closing the returned Source closes the
// file.
func Open(reg *audio.Registry, path string) (audio.Source, error) {
	dec, err := ForPath(reg, path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return src, nil
}
