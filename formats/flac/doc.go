// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac, a pure Go implementation of
// the Free Lossless Audio Codec, and exposes a stream as an audio.Source.
//
// # Supported Formats
//
// The decoder supports:
//   - Native FLAC streams (.flac)
//   - Sample sizes from 4 to 32 bits
//   - Any channel count the stream declares, including the stereo
//     decorrelation modes (left/side, right/side, mid/side)
//   - Any sample rate
//
// FLAC in an Ogg container is not supported.
//
// # Decoding FLAC Files
//
// Use the Decoder to read FLAC files:
//
//	file, _ := os.Open("recording.flac")
//	source, err := flac.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer source.Close()
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The stream is decoded one FLAC frame at a time, so memory use depends on
// the block size, not on the file length.
//
// # Output Format
//
// FLAC decoder output:
//   - Sample format: float32 in range [-1.0, 1.0)
//   - Channels: as declared in STREAMINFO
//   - Sample rate: as declared in STREAMINFO
//
// FLAC samples are always signed, including 8-bit ones, and are scaled by
// 2^(bits-1). When a frame header carries its own sample size it takes
// precedence over STREAMINFO.
//
// # Options
//
// Decoder implements audio.Tunable with a single "buffer_size" option:
//
//	dec, err := audio.Configure(flac.Decoder{}, audio.Options{"buffer_size": 8192})
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotFlacFile: no "fLaC" signature or no STREAMINFO block
//   - ErrUnsupportedBitDepth: sample size outside 4 to 32 bits
//   - ErrUnsupportedFlacLayout: a stream without channels, or a frame whose
//     channel count differs from the stream's
//
// Errors inside a frame (bad CRC, truncated data) are returned from
// ReadSamples wrapped, and the batch driver treats the file as corrupt.
//
// # Limitations
//
// Note:
//   - Decoding only, there is no FLAC encoder here
//   - Metadata blocks other than STREAMINFO are skipped
package flac
