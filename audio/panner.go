// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// PanGains returns the constant-power channel gains for pan in [-1, 1]
// (-1 hard left, 0 centre, 1 hard right). Out of range values are clipped
// and NaN pans to the centre. left*left + right*right is always 1.
func PanGains(pan float64) (left, right float64) {
	if math.IsNaN(pan) {
		pan = 0
	}

	pan = math.Max(-1, math.Min(1, pan))
	theta := (pan + 1) * math.Pi / 4

	return math.Cos(theta), math.Sin(theta)
}

// Panner places a mono source in a stereo field.
type Panner struct {
	src         Source
	pan         float64
	left, right float32
	tmp         []float32
}

func NewPanner(src Source, pan float64) (*Panner, error) {
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrNotMono, src.Channels())
	}

	l, r := PanGains(pan)

	return &Panner{src: src, pan: pan, left: float32(l), right: float32(r)}, nil
}

func (p *Panner) SampleRate() int { return p.src.SampleRate() }
func (p *Panner) Channels() int   { return 2 }
func (p *Panner) BufSize() int    { return 2 * p.src.BufSize() }

func (p *Panner) Close() error {
	if err := p.src.Close(); err != nil {
		return fmt.Errorf("panner: %w", err)
	}

	return nil
}

// ReadSamples writes interleaved left/right pairs; len(dst) must be even.
func (p *Panner) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / 2
	if cap(p.tmp) < frames {
		p.tmp = make([]float32, frames)
	}

	mono := p.tmp[:frames]
	n, err := p.src.ReadSamples(mono)

	for i, v := range mono[:n] {
		dst[2*i] = v * p.left
		dst[2*i+1] = v * p.right
	}

	return 2 * n, err
}
