// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"

	"github.com/ik5/audwah/utils"
)

const (
	// resamplerBlock is how many source frames are pulled per read.
	resamplerBlock = 1024

	// Anti-aliasing lowpass used when output frames are sparser than input
	// frames: cutoff as a fraction of the output rate, and filter order.
	antiAliasCutoff = 0.45
	antiAliasOrder  = 4

	maxEmptyReads = 100
)

// Resampler converts src to another rate by Catmull-Rom interpolation between
// neighbouring frames and preserves the channel count.
//
// Output frame k sits at source position k*num/den, computed in integers so
// long streams do not drift. When that step is larger than one frame a
// Butterworth lowpass filters the source first.
type Resampler struct {
	src      Source
	rate     int
	channels int
	num, den int64
	out      int64

	// win[1] is the source frame at index; win[0] precedes it and win[2],
	// win[3] follow. Past the end the last frame is repeated.
	win    [4][]float32
	index  int64
	loaded int64
	primed bool

	in     []float32
	inOff  int
	srcEOF bool

	lowpass []*biquad.Chain

	// whole drops the trailing output frame that would reach past the last
	// source frame, giving floor(n*den/num) frames instead of the ceiling.
	whole bool
}

// NewResampler returns a Source that plays src at dstRate Hz.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	srcRate := src.SampleRate()
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("%w: %d Hz to %d Hz", ErrInvalidRate, srcRate, dstRate)
	}

	g := gcd(int64(srcRate), int64(dstRate))

	return newResampler(src, int64(srcRate)/g, int64(dstRate)/g, dstRate)
}

func newResampler(src Source, num, den int64, rate int) (*Resampler, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	r := &Resampler{
		src:      src,
		rate:     rate,
		channels: channels,
		num:      num,
		den:      den,
		in:       make([]float32, 0, resamplerBlock*channels),
	}

	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	if num > den {
		srcRate := float64(src.SampleRate())
		cutoff := antiAliasCutoff * srcRate * float64(den) / float64(num)
		coeffs := design.ButterworthLP(cutoff, antiAliasOrder, srcRate)

		r.lowpass = make([]*biquad.Chain, channels)
		for c := range r.lowpass {
			r.lowpass[c] = biquad.NewChain(coeffs)
		}
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}

	return nil
}

// pull copies the next source frame into frame. It reports false once the
// source is exhausted.
func (r *Resampler) pull(frame []float32) (bool, error) {
	empty := 0

	for r.inOff+r.channels > len(r.in) {
		if r.srcEOF {
			return false, nil
		}

		buf := r.in[:cap(r.in)]

		n, err := r.src.ReadSamples(buf)
		r.in = buf[:n-n%r.channels]
		r.inOff = 0

		switch {
		case errors.Is(err, io.EOF):
			r.srcEOF = true
		case err != nil:
			return false, fmt.Errorf("resampler: %w", err)
		case n == 0:
			empty++
			if empty >= maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(frame, r.in[r.inOff:r.inOff+r.channels])
	r.inOff += r.channels
	r.loaded++

	for c, lp := range r.lowpass {
		frame[c] = float32(lp.ProcessSample(float64(frame[c])))
	}

	return true, nil
}

// has reports whether the source holds at least frames frames, reading
// ahead into r.in without consuming anything.
func (r *Resampler) has(frames int64) (bool, error) {
	empty := 0

	for {
		avail := r.loaded + int64((len(r.in)-r.inOff)/r.channels)
		if avail >= frames {
			return true, nil
		}

		if r.srcEOF {
			return false, nil
		}

		kept := copy(r.in[:cap(r.in)], r.in[r.inOff:])
		r.in = r.in[:kept]
		r.inOff = 0

		if cap(r.in)-kept < r.channels {
			grown := make([]float32, kept, 2*cap(r.in)+r.channels)
			copy(grown, r.in)
			r.in = grown
		}

		tail := r.in[kept:cap(r.in)]
		tail = tail[:len(tail)-len(tail)%r.channels]

		n, err := r.src.ReadSamples(tail)
		r.in = r.in[:kept+n-n%r.channels]

		switch {
		case errors.Is(err, io.EOF):
			r.srcEOF = true
		case err != nil:
			return false, fmt.Errorf("resampler: %w", err)
		case n == 0:
			empty++
			if empty >= maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}
}

// fill pulls into win[i], repeating win[i-1] when the source has ended.
func (r *Resampler) fill(i int) error {
	ok, err := r.pull(r.win[i])
	if err != nil {
		return err
	}

	if !ok {
		copy(r.win[i], r.win[i-1])
	}

	return nil
}

func (r *Resampler) prime() error {
	if _, err := r.pull(r.win[1]); err != nil {
		return err
	}

	copy(r.win[0], r.win[1])

	if err := r.fill(2); err != nil {
		return err
	}

	return r.fill(3)
}

func (r *Resampler) advance() error {
	head := r.win[0]
	r.win[0], r.win[1], r.win[2] = r.win[1], r.win[2], r.win[3]
	r.win[3] = head
	r.index++

	return r.fill(3)
}

// ReadSamples writes interpolated frames; len(dst) must be a multiple of
// Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}

		r.primed = true
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		target := r.out * r.num / r.den
		for r.index < target {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if r.index >= r.loaded {
			return written * r.channels, io.EOF
		}

		if r.whole {
			ok, err := r.has(ceilDiv((r.out+1)*r.num, r.den))
			if err != nil {
				return written * r.channels, err
			}

			if !ok {
				return written * r.channels, io.EOF
			}
		}

		x := float32(r.out*r.num%r.den) / float32(r.den)
		frame := dst[written*r.channels : (written+1)*r.channels]

		for c := range frame {
			frame[c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.out++
	}

	return written * r.channels, nil
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
