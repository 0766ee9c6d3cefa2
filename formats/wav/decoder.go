// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audbatch/audio"
	"github.com/ik5/audbatch/utils"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE

	defaultBufferSize = 4096
)

// pcmReader is the part of gowav.Decoder the source needs, so tests can
// stub it.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
	bufSize    int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.intBuf.Data) < len(dst) {
		s.intBuf.Data = make([]int, len(dst))
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.PCMToFloat32(v, s.bitDepth)
	}

	if err != nil || n < len(dst) {
		return n, io.EOF
	}
	return n, nil
}

// Decoder reads integer PCM WAV files (8, 16, 24 or 32 bit, any channel
// count) through github.com/go-audio/wav.
type Decoder struct {
	// BufferSize is the preferred read size in samples.
	BufferSize int
}

// Tune accepts the "buffer_size" option.
func (d Decoder) Tune(opts audio.Options) (audio.Decoder, error) {
	n, err := opts.BufferSize(d.BufferSize)
	if err != nil {
		return nil, err
	}
	d.BufferSize = n

	return d, nil
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio needs to seek over chunks
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	bufSize := d.BufferSize
	if bufSize <= 0 {
		bufSize = defaultBufferSize
	}

	channels := int(dec.NumChans)
	sampleRate := int(dec.SampleRate)

	return &source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		bufSize:    bufSize,
		intBuf: &goaudio.IntBuffer{
			Data:           make([]int, bufSize),
			Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: channels},
			SourceBitDepth: bitDepth,
		},
	}, nil
}
