// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audbatch/audio"
)

// Helper function to create a minimal canonical WAV file
func createWAVFile(sampleRate, channels, bitsPerSample int, formatTag uint16, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, formatTag)
	_ = binary.Write(buf, binary.LittleEndian, numChannels)
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, byteRate)
	_ = binary.Write(buf, binary.LittleEndian, blockAlign)
	_ = binary.Write(buf, binary.LittleEndian, bits)

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, dataSize)

	for _, s := range samples {
		_ = binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768, 0}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 1, 16, formatPCM, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	buf, err := audio.ReadAll(src, 4)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1, 0}
	if len(buf.Samples) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Samples), len(want))
	}
	for i := range want {
		if math.Abs(float64(buf.Samples[i]-want[i])) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, buf.Samples[i], want[i])
		}
	}
}

func TestDecoder_StereoWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400, 500, 600}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(44100, 2, 16, formatPCM, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	buf, err := audio.ReadAll(src, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.Frames() != 3 {
		t.Errorf("frames = %d, want 3", buf.Frames())
	}
}

// plainReader hides the Seek method of the underlying reader.
type plainReader struct{ r io.Reader }

func (p plainReader) Read(b []byte) (int, error) { return p.r.Read(b) }

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := createWAVFile(16000, 1, 16, formatPCM, []int16{1, 2, 3, 4})
	src, err := Decoder{}.Decode(plainReader{bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("This is not WAV data at all, not even close")},
		{"riff without wave", append([]byte("RIFF\x24\x00\x00\x00AVI "), make([]byte, 32)...)},
		{"float samples", createWAVFile(8000, 1, 32, 3, []int16{0, 0})},
		{"odd bit depth", createWAVFile(8000, 1, 12, formatPCM, []int16{0, 0})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestDecoder_NotWavSentinel(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not a riff header......................")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_Tune(t *testing.T) {
	t.Parallel()

	d, err := Decoder{}.Tune(audio.Options{"buffer_size": "1024"})
	if err != nil {
		t.Fatalf("Tune() error = %v", err)
	}
	if got := d.(Decoder).BufferSize; got != 1024 {
		t.Errorf("BufferSize = %d, want 1024", got)
	}

	src, err := d.Decode(bytes.NewReader(createWAVFile(8000, 1, 16, formatPCM, []int16{1, 2})))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.BufSize() != 1024 {
		t.Errorf("BufSize() = %d, want 1024", src.BufSize())
	}

	if _, err := (Decoder{}).Tune(audio.Options{"gain": 3}); !errors.Is(err, audio.ErrUnknownOption) {
		t.Errorf("Tune(gain) error = %v, want ErrUnknownOption", err)
	}
	if _, err := (Decoder{}).Tune(audio.Options{"buffer_size": 0}); !errors.Is(err, audio.ErrInvalidOption) {
		t.Errorf("Tune(buffer_size=0) error = %v, want ErrInvalidOption", err)
	}
}

// stubPCM replays fixed int samples, mimicking gowav.Decoder.PCMBuffer.
type stubPCM struct {
	data []int
	pos  int
	err  error
}

func (s *stubPCM) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n := copy(buf.Data, s.data[s.pos:])
	s.pos += n
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &stubPCM{data: []int{0, 4194304, -8388608}},
		sampleRate: 48000,
		channels:   1,
		bitDepth:   24,
		intBuf:     &goaudio.IntBuffer{},
		bufSize:    2,
	}

	dst := make([]float32, 2)
	n, err := src.ReadSamples(dst)
	if n != 2 || err != nil {
		t.Fatalf("first ReadSamples() = %d, %v; want 2, nil", n, err)
	}
	if dst[1] != 0.5 {
		t.Errorf("dst[1] = %v, want 0.5", dst[1])
	}

	n, err = src.ReadSamples(dst)
	if n != 1 || err != io.EOF {
		t.Fatalf("second ReadSamples() = %d, %v; want 1, EOF", n, err)
	}
	if dst[0] != -1 {
		t.Errorf("dst[0] = %v, want -1", dst[0])
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("third ReadSamples() = %d, %v; want 0, EOF", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	src := &source{dec: &stubPCM{err: boom}, channels: 1, bitDepth: 16, intBuf: &goaudio.IntBuffer{}}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}
