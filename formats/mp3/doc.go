// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files and
// exposes them as an audio.Source.
//
// # Supported Formats
//
// The decoder supports:
//   - MPEG-1 and MPEG-2 Audio Layer III
//   - Constant and variable bitrates
//   - Mono and stereo files
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0)
//   - Channels: always 2, mono files are duplicated by go-mp3
//   - Sample rate: whatever the file carries (typically 44.1 kHz or 48 kHz)
//
// ReadSamples only hands out whole stereo frames. When go-mp3 stops in the
// middle of a frame, the partial bytes are held back and completed on the
// next call; a partial frame at the very end of the stream is dropped.
//
// To convert to mono or resample, wrap the source with the audio package:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
//	resampled, err := audio.NewResampler(mono, 16000)
//
// # Options
//
// Decoder implements audio.Tunable. The only option is "buffer_size", the
// read size in samples:
//
//	dec, err := audio.Configure(mp3.Decoder{}, audio.Options{"buffer_size": 2048})
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - Output is always stereo (use MonoMixer or ChannelPicker to reduce it)
//   - ID3 tags are skipped, not parsed
//
// # Use Cases
//
// Common applications:
//   - Converting MP3 to WAV at a fixed sample rate
//   - Feeding speech recognition pipelines
//   - Audio analysis
//
// Example converting MP3 to WAV:
//
//	file, _ := os.Open("input.mp3")
//	src, _ := mp3.Decoder{}.Decode(file)
//
//	buf, err := audbatch.Resample(src, 8000, 0)
//	if err != nil {
//	    return err
//	}
//	err = wav.WriteFile("output.wav", buf, 16)
package mp3
