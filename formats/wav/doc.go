// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions use the github.com/go-audio/wav library, so files with
// extra chunks (LIST, fact, cue) decode fine.
//
// # Supported Formats
//
// Currently supported:
//   - Integer PCM, 8 (unsigned), 16, 24 and 32 bit
//   - WAVE_FORMAT_EXTENSIBLE wrapping integer PCM
//   - Any channel count
//   - Any sample rate
//
// IEEE float, A-law and µ-law files are rejected with
// ErrUnsupportedEncoding.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0]. Decoder implements audio.Tunable and
// accepts the "buffer_size" option:
//
//	dec, err := audio.Configure(wav.Decoder{}, audio.Options{"buffer_size": 8192})
//
// Input that cannot seek is read into memory first, since the chunk
// parser needs to jump over chunks it does not know.
//
// # Writing WAV Files
//
// Encode writes an audio.Buffer to any io.WriteSeeker; WriteFile is the
// file-path shorthand used by the batch driver:
//
//	err := wav.WriteFile("out/rec1.wav", buf, 16)
//
// The header sample rate and channel count come from the buffer. A zero
// bit depth means DefaultBitDepth. Samples outside [-1, 1] are clamped
// rather than wrapped.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: the input has no RIFF/WAVE header or no data chunk
//   - ErrUnsupportedEncoding: the format tag is not integer PCM
//   - ErrUnsupportedBitDepth: a bit depth other than 8, 16, 24 or 32
//   - ErrInvalidBuffer: Encode was given an empty or malformed buffer
//
// Example:
//
//	source, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
//
// # Output Format
//
// Decoded samples are interleaved float32, one value per channel per frame.
// 8-bit input is unsigned and centred on 128; every other depth is signed
// two's complement.
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk: audio format, sample rate, channels, bit depth
//   - optional chunks (LIST, fact, cue, ...)
//   - data chunk: interleaved little-endian samples
package wav
