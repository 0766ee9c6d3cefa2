// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder, so
// no cgo or system libraries are involved.
//
// # Supported Formats
//
// The decoder supports:
//   - Vorbis I audio in an Ogg container (.ogg, .oga)
//   - Any channel count the stream declares
//   - Any sample rate
//
// Opus and FLAC streams in an Ogg container are not Vorbis and fail to
// decode.
//
// # Decoding Ogg Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// Vorbis decoder output:
//   - Sample format: float32, nominally in [-1.0, 1.0]
//   - Channels: as declared in the identification header
//   - Sample rate: as declared in the identification header
//
// Vorbis is decoded straight to floating point, so there is no integer bit
// depth involved. Lossy decoding can overshoot full scale slightly; the WAV
// encoder clamps such samples on the way out.
//
// ReadSamples returns whole frames only. oggvorbis counts interleaved
// values, not frames, and may stop inside a frame; the remainder is kept
// for the next call. The buffer size is rounded down to a whole number of
// frames, so a 3-channel source with buffer_size 100 reads 99 values.
//
// # Options
//
// Decoder implements audio.Tunable with a single "buffer_size" option:
//
//	dec, err := audio.Configure(vorbis.Decoder{}, audio.Options{"buffer_size": 8192})
//
// # Error Handling
//
// Errors from oggvorbis are wrapped and returned as is. A stream that
// reports no channels fails with audio.ErrInvalidChannel.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    log.Printf("skipping %s: %v", name, err)
//	}
//
// # Registering
//
// Both common extensions map to the same decoder:
//
//	reg := audio.NewRegistry()
//	reg.Register("ogg", vorbis.Decoder{})
//	reg.Register("oga", vorbis.Decoder{})
//
// # Limitations
//
// Note:
//   - Decoding only, there is no Vorbis encoder
//   - Chained streams with changing channel counts are not supported
//   - Comments (artist, title) are not exposed
package vorbis
