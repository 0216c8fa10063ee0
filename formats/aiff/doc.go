// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes Audio Interchange File Format files through
// github.com/go-audio/aiff. Samples are big-endian signed integers of 8 to
// 32 bits; the returned Source scales them to float32 in [-1, 1).
package aiff
