// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// speedScale is the denominator speed factors are rounded to.
const speedScale = 1 << 20

// SpeedChanger plays src speed times faster (speed > 1) or slower (speed < 1)
// and keeps reporting the source sample rate, so pitch moves with tempo.
// A stream of n frames becomes floor(n/speed) frames long, with speed taken
// to 20 fractional bits.
type SpeedChanger struct {
	*Resampler

	speed float64
}

func NewSpeedChanger(src Source, speed float64) (*SpeedChanger, error) {
	if !(speed > 0) || math.IsInf(speed, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpeed, speed)
	}

	num := int64(math.Round(speed * speedScale))
	if num < 1 {
		return nil, fmt.Errorf("%w: %v is too small", ErrInvalidSpeed, speed)
	}

	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, src.SampleRate())
	}

	g := gcd(num, speedScale)

	r, err := newResampler(src, num/g, speedScale/g, src.SampleRate())
	if err != nil {
		return nil, err
	}

	r.whole = true

	return &SpeedChanger{Resampler: r, speed: speed}, nil
}

// Speed returns the playback factor the changer was built with.
func (s *SpeedChanger) Speed() float64 { return s.speed }
