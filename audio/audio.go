// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Source is a stream of interleaved float32 PCM samples in [-1, 1].
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels per frame (1 mono, 2 stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns how many
	// float32 values were written (not frames). io.EOF marks the end of the
	// stream and may arrive together with n > 0.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the read size the source prefers, in samples.
	BufSize() int
	// Close releases the underlying reader.
	Close() error
}

// Decoder constructs a Source from an encoded stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys, usually file extensions, to decoders.
// It is safe for concurrent use.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.RWMutex{},
	}
}

// Register adds d under format, replacing any earlier decoder. Keys are
// case-insensitive and a leading dot is ignored, so ".WAV" and "wav" match.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[formatKey(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[formatKey(format)]

	return d, ok
}

// Formats lists the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return slices.Sorted(maps.Keys(r.codecs))
}

func formatKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
