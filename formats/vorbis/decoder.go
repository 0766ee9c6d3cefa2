// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audbatch/audio"
	"github.com/jfreymuth/oggvorbis"
)

const defaultBufferSize = 4096

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	buf        []float32
	pending    []float32 // partial frame carried over between reads
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) / s.channels * s.channels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if cap(s.buf) < want {
		s.buf = make([]float32, want)
	}
	s.buf = s.buf[:want]

	carried := copy(s.buf, s.pending)
	s.pending = s.pending[:0]

	// Read returns the number of interleaved values, not frames
	n, err := s.dec.Read(s.buf[carried:])
	n += carried

	if rem := n % s.channels; rem != 0 {
		if err == nil {
			s.pending = append(s.pending, s.buf[n-rem:n]...)
		}
		n -= rem
	}
	copy(dst, s.buf[:n])

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}

	return n, err
}

// Decoder decodes Ogg Vorbis streams via github.com/jfreymuth/oggvorbis.
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
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec, d.BufferSize)
}

func newSource(dec oggReader, bufSize int) (*source, error) {
	channels := dec.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidChannel, channels)
	}
	if bufSize <= 0 {
		bufSize = defaultBufferSize
	}
	bufSize = max(bufSize/channels*channels, channels)

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   channels,
		buf:        make([]float32, bufSize),
	}, nil
}
