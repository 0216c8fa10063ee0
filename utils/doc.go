// SPDX-License-Identifier: EPL-2.0

// Package utils holds small numeric helpers shared by the audio pipeline:
// Catmull-Rom interpolation and float to PCM integer conversion.
package utils
