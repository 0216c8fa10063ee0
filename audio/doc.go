// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming building blocks of the render
// pipeline.
//
// Every stage implements Source, a pull-based stream of interleaved float32
// samples in [-1, 1], so stages chain by wrapping:
//
//	fast, _ := audio.NewSpeedChanger(decoded, 1.5)
//	mono := audio.NewMonoMixer(fast)
//	samples, rate, err := audio.ReadAllMono(mono, 4096)
//
// # Stages
//
//   - MonoMixer averages the channels of every frame.
//   - Resampler converts to another sample rate with Catmull-Rom
//     interpolation; it lowpasses the input first when downsampling.
//   - SpeedChanger changes playback speed (and pitch) while keeping the
//     sample rate, like a tape running faster.
//   - Panner places a mono stream in a stereo field with constant power.
//   - Buffer replays samples held in memory.
//
// # Decoders
//
// A Registry maps file extensions to Decoder implementations. Keys are
// case-insensitive and may carry a leading dot:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get(".WAV")
//
// # End of stream
//
// ReadSamples returns io.EOF once a stream is exhausted, possibly together
// with the last samples. ReadAll and ReadAllMono drain a stream and treat
// io.EOF as success.
package audio
