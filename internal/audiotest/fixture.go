// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WriteWAV writes a 16-bit PCM WAV file at path holding a sine tone of
// frames frames. Parent directories are created as needed.
func WriteWAV(tb testing.TB, path string, sampleRate, channels, frames int) {
	tb.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	data := make([]int, frames*channels)
	for i := range frames {
		v := int(0.5 * 32767 * math.Sin(2*math.Pi*440*float64(i)/float64(sampleRate)))
		for c := range channels {
			data[i*channels+c] = v
		}
	}

	enc := gowav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: channels},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	if err := enc.Close(); err != nil {
		tb.Fatalf("close %s: %v", path, err)
	}
}

// WriteGarbage writes bytes that no decoder accepts to path.
func WriteGarbage(tb testing.TB, path string) {
	tb.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte("this is definitely not audio data"), 0o644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
}
