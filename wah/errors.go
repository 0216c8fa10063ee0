// SPDX-License-Identifier: EPL-2.0

package wah

import "errors"

var (
	// ErrInvalidParameter is wrapped by every parameter validation failure.
	ErrInvalidParameter = errors.New("invalid filter parameter")

	// ErrNonFiniteSample reports a NaN or infinite input sample.
	ErrNonFiniteSample = errors.New("input sample is not finite")

	// ErrUnstableFilter reports a filter pass that produced NaN or infinite output.
	ErrUnstableFilter = errors.New("filter output is not finite")

	// ErrInvalidChannels reports an interleaved buffer that does not match its channel count.
	ErrInvalidChannels = errors.New("invalid channel layout")
)
