// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audbatch/audio"
	"github.com/ik5/audbatch/utils"
)

// go-mp3 always decodes to interleaved 16-bit little-endian stereo
const (
	channels      = 2
	bytesPerValue = 2
	frameBytes    = channels * bytesPerValue

	defaultBufferSize = 4096
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	pending    []byte // partial frame carried over between reads
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerValue }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) / channels * frameBytes
	if need == 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	carried := copy(s.buf, s.pending)
	s.pending = s.pending[:0]

	n, err := s.dec.Read(s.buf[carried:])
	n += carried

	// only whole frames go out; a split frame waits for the next call
	if rem := n % frameBytes; rem != 0 {
		if err == nil {
			s.pending = append(s.pending, s.buf[n-rem:n]...)
		}
		n -= rem
	}

	samples := n / bytesPerValue
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = utils.PCMToFloat32(int(v), 16)
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("%w", err)
	}
	if samples == 0 && err == io.EOF {
		return 0, io.EOF
	}

	return samples, err
}

// Decoder decodes MPEG-1/2 Layer III streams via github.com/hajimehoshi/go-mp3.
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
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec, d.BufferSize), nil
}

func newSource(dec mp3Reader, bufSize int) *source {
	if bufSize <= 0 {
		bufSize = defaultBufferSize
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, bufSize*bytesPerValue),
	}
}
