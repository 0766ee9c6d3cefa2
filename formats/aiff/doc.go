// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff to parse the IFF chunk
// structure and read big-endian PCM samples.
//
// # Supported Formats
//
// Currently supported:
//   - AIFF with integer PCM samples
//   - 16, 24 and 32 bit sample sizes
//   - Any channel count
//   - Any sample rate stored in the COMM chunk
//
// 8-bit AIFF and compressed AIFF-C variants (sowt, fl32, ima4) are
// rejected.
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files:
//
//	file, _ := os.Open("audio.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Input that cannot seek is buffered in memory first, since the chunk
// parser needs to jump around the file. Files opened with os.Open are
// read in place.
//
// # Output Format
//
// AIFF decoder output:
//   - Sample format: float32 in range [-1.0, 1.0)
//   - Channels: as stored in the COMM chunk
//   - Sample rate: as stored in the COMM chunk
//
// Samples are interleaved by frame, exactly as the file stores them.
//
// # Options
//
// Decoder implements audio.Tunable. The "buffer_size" option sets the read
// size in samples:
//
//	dec, err := audio.Configure(aiff.Decoder{}, audio.Options{"buffer_size": 4096})
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotAiffFile: missing FORM/AIFF header
//   - ErrUnsupportedBitDepth: sample size other than 16, 24 or 32
//   - ErrUnsupportedAiffLayout: no usable COMM chunk or no channels
//
// Example:
//
//	source, err := aiff.Decoder{}.Decode(file)
//	switch {
//	case errors.Is(err, aiff.ErrNotAiffFile):
//	    fmt.Println("Not an AIFF file")
//	case errors.Is(err, aiff.ErrUnsupportedBitDepth):
//	    fmt.Println("Unsupported sample size")
//	}
//
// # File Format
//
// AIFF files consist of:
//   - FORM header with the AIFF form type
//   - COMM chunk: channels, frame count, sample size, sample rate
//   - SSND chunk: big-endian interleaved samples
//   - optional chunks (MARK, INST, NAME, ...)
//
// # Use Cases
//
// Common applications:
//   - Converting studio recordings made on macOS tools to WAV
//   - Normalising mixed AIFF/WAV archives to one sample rate
package aiff
