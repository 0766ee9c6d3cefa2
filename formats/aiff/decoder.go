// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audbatch/audio"
	"github.com/ik5/audbatch/utils"
)

const defaultBufferSize = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	bitDepth   int
	bufSize    int
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil {
		s.intBuf = &goaudio.IntBuffer{Format: s.dec.Format(), SourceBitDepth: s.bitDepth}
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

// Decoder reads big-endian PCM AIFF files of 16, 24 or 32 bits through
// github.com/go-audio/aiff.
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
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	bufSize := d.BufferSize
	if bufSize <= 0 {
		bufSize = defaultBufferSize
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   bitDepth,
		bufSize:    bufSize,
	}, nil
}
