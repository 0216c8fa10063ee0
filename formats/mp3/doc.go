// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams to float32 stereo through
// github.com/hajimehoshi/go-mp3.
package mp3
