// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize  = errors.New("dst size must be multiple of channels")
	ErrInvalidChannels = errors.New("channel count must be positive")
	ErrInvalidRate     = errors.New("sample rate must be positive")
	ErrInvalidSpeed    = errors.New("speed must be positive and finite")
	ErrNotMono         = errors.New("source is not mono")
)
