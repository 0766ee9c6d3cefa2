// SPDX-License-Identifier: EPL-2.0

// Package audbatch resamples directories of audio files.
//
// The module is split into small packages:
//   - audio: the streaming Source interface, decoder registry, buffers and
//     the band-limited Resampler
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff, formats/flac:
//     decoders, plus the WAV encoder used for all output
//   - batch: discovery, destination layout, the batch driver and progress
//     reporting
//   - cmd/audbatch: the command line front end
//
// This package holds the one-shot helpers that tie decoding and
// resampling together for callers that do not need the batch driver:
//
//	f, _ := os.Open("rec.wav")
//	src, _ := wav.Decoder{}.Decode(f)
//	out, err := audbatch.Resample(src, 2000, 0)
//
// Resampling uses github.com/tphakala/go-audio-resampling at its high
// quality preset. Resampling a buffer that is already at the target rate
// returns the same samples.
package audbatch
