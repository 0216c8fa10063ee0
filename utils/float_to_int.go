// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToPCM scales x from [-1, 1] to a signed integer of bitDepth bits,
// rounding to nearest. Values outside the range are clipped; NaN becomes 0.
// The positive full scale is 2^(bitDepth-1)-1 so 1 and -1 map symmetrically.
func FloatToPCM[T Float](x T, bitDepth int) int {
	v := float64(x)
	if math.IsNaN(v) {
		return 0
	}

	v = math.Max(-1, math.Min(1, v))
	full := float64(int(1)<<(bitDepth-1) - 1)

	return int(math.Round(v * full))
}

func Float32ToInt16(x float32) int16 {
	return int16(FloatToPCM(x, 16))
}

func Float64ToInt16(x float64) int16 {
	return int16(FloatToPCM(x, 16))
}

// PCMToFloat scales a signed sample of bitDepth bits by 1/2^(bitDepth-1), so
// the negative extreme reads as exactly -1 and the positive one just below 1.
// This is the read convention of every decoder; FloatToPCM writes with the
// smaller full scale 2^(bitDepth-1)-1, so a written 1 reads back as
// 1 - 2^-(bitDepth-1).
func PCMToFloat(v, bitDepth int) float64 {
	return float64(v) / float64(int64(1)<<(bitDepth-1))
}
