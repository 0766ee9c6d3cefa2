// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audbatch/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	err        error
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}

func newTestSource(bitDepth, channels int, samples []int) *source {
	return &source{
		dec:        &mockAiffReader{sampleRate: 44100, channels: channels, samples: samples},
		sampleRate: 44100,
		channels:   channels,
		bitDepth:   bitDepth,
		bufSize:    defaultBufferSize,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not AIFF data")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte{}))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecoder_NonSeekableInput(t *testing.T) {
	t.Parallel()

	// io.MultiReader hides Seek, forcing the in-memory path
	_, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader([]byte("FORM junk"))))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(16, 2, nil)

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != defaultBufferSize {
		t.Errorf("BufSize() = %d, want %d", src.BufSize(), defaultBufferSize)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []int{0, 16384, -16384, 32767, -32768, 100}
	src := newTestSource(16, 2, samples)

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil || n != 4 {
		t.Fatalf("first ReadSamples() = %d, %v; want 4, nil", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 2 || !errors.Is(err, io.EOF) {
		t.Fatalf("second ReadSamples() = %d, %v; want 2, EOF", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Fatalf("third ReadSamples() = %d, %v; want 0, EOF", n, err)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newTestSource(16, 1, []int{1, 2, 3})

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newTestSource(16, 1, nil)
	src.dec.(*mockAiffReader).err = errors.New("disk on fire")

	if _, err := src.ReadSamples(make([]float32, 4)); err == nil || errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() error = %v, want decode error", err)
	}
}

func TestSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		input    int
		expected float32
	}{
		{"16-bit max", 16, 32767, 32767.0 / 32768.0},
		{"16-bit min", 16, -32768, -1.0},
		{"24-bit max", 24, 8388607, 8388607.0 / 8388608.0},
		{"24-bit half", 24, -4194304, -0.5},
		{"32-bit max", 32, 2147483647, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newTestSource(tt.bitDepth, 1, []int{tt.input})

			dst := make([]float32, 1)
			n, _ := src.ReadSamples(dst)
			if n != 1 {
				t.Fatalf("ReadSamples() n = %d, want 1", n)
			}

			tolerance := float32(0.001)
			if dst[0] < tt.expected-tolerance || dst[0] > tt.expected+tolerance {
				t.Errorf("ReadSamples() dst[0] = %f, want ~%f", dst[0], tt.expected)
			}
		})
	}
}

func TestDecoder_Tune(t *testing.T) {
	t.Parallel()

	dec, err := audio.Configure(Decoder{}, audio.Options{"buffer_size": "256"})
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if got := dec.(Decoder).BufferSize; got != 256 {
		t.Errorf("BufferSize = %d, want 256", got)
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	errs := []error{ErrNotAiffFile, ErrUnsupportedBitDepth, ErrUnsupportedAiffLayout}
	for i, a := range errs {
		for j, b := range errs {
			if (i == j) != errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = %v", a, b, errors.Is(a, b))
			}
		}
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int, 44100*2)
	for i := range samples {
		samples[i] = (i % 65536) - 32768
	}
	buf := make([]float32, 4096)

	b.ResetTimer()
	for range b.N {
		src := newTestSource(16, 2, samples)
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
