// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audbatch/audio"
	"github.com/ik5/audbatch/utils"
)

// DefaultBitDepth is used when Encode is given a zero bit depth.
const DefaultBitDepth = 16

const chunkFrames = 8192

// Encode writes buf as an integer PCM WAV stream. The header carries
// buf.SampleRate and buf.Channels. w must be seekable because the RIFF
// sizes are patched once all samples are written.
func Encode(w io.WriteSeeker, buf *audio.Buffer, bitDepth int) error {
	if bitDepth == 0 {
		bitDepth = DefaultBitDepth
	}
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if buf == nil || buf.Channels <= 0 || buf.SampleRate <= 0 {
		return ErrInvalidBuffer
	}

	enc := gowav.NewEncoder(w, buf.SampleRate, bitDepth, buf.Channels, formatPCM)

	chunk := chunkFrames * buf.Channels
	out := &goaudio.IntBuffer{
		Data:           make([]int, 0, min(chunk, len(buf.Samples))),
		Format:         &goaudio.Format{SampleRate: buf.SampleRate, NumChannels: buf.Channels},
		SourceBitDepth: bitDepth,
	}

	// the encoder emits its headers on the first Write
	if len(buf.Samples) == 0 {
		if err := enc.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	for i := 0; i < len(buf.Samples); i += chunk {
		end := min(i+chunk, len(buf.Samples))

		out.Data = out.Data[:0]
		for _, s := range buf.Samples[i:end] {
			out.Data = append(out.Data, utils.Float32ToPCM(s, bitDepth))
		}

		if err := enc.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFile encodes buf into a new file at path, replacing any existing
// file.
func WriteFile(path string, buf *audio.Buffer, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Encode(f, buf, bitDepth); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
