// SPDX-License-Identifier: EPL-2.0

package wah

import "math"

// Peak returns the largest absolute sample value in buf.
func Peak(buf []float64) float64 {
	peak := 0.0
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	return peak
}

// Normalize divides buf in place by Peak(buf) + Epsilon.
// The whole buffer must be known before scaling, so this is a separate pass.
func Normalize(buf []float64) {
	div := Peak(buf) + Epsilon
	for i := range buf {
		buf[i] /= div
	}
}
