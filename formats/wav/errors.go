// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedFormat   = errors.New("unsupported WAV sample format")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrInvalidLayout       = errors.New("invalid channel layout")
	ErrTooLarge            = errors.New("audio data too large for a WAV file")
)
