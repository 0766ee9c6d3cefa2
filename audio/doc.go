// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the batch resampler is
// built from.
//
// Everything is expressed in terms of Source, a pull-based stream of
// interleaved float32 samples in the range [-1, 1]. Sources are chained:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	win, _ := audio.NewWindow(src, 2*time.Second, 0) // skip the first 2s
//	res, _ := audio.NewResampler(win, 2000)
//	buf, _ := audio.ReadAll(res, 0)
//
// # Resampling
//
// Resampler performs band-limited sample rate conversion backed by
// github.com/tphakala/go-audio-resampling. Channel layout is preserved and
// the output length is normalised to the duration of the input. Converting
// to the rate the source already has is a pass-through.
//
// # Channel handling
//
// MonoMixer averages all channels into one; ChannelPicker keeps a single
// channel.
//
// # Decoders and options
//
// Decoder turns an io.Reader into a Source. Registry maps file extensions
// to decoders. Decoders implementing Tunable accept free-form Options
// (for example "buffer_size"); Configure forwards options and rejects them
// with ErrUnknownOption when a decoder cannot use them.
//
// # Buffers
//
// Buffer holds a fully decoded clip. ReadAll drains a Source into a Buffer
// and Buffer.Source replays it.
package audio
