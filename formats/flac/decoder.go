// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/audbatch/audio"
	"github.com/ik5/audbatch/utils"
	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

const defaultBufferSize = 4096

// frameReader is the part of goflac.Stream the source needs, so tests can
// feed it hand-built frames.
type frameReader interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	dec        frameReader
	closer     io.Closer
	sampleRate int
	channels   int
	bitDepth   int
	bufSize    int
	pending    []float32 // decoded samples not yet handed out
	eof        bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return s.bufSize }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) / s.channels * s.channels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	for len(s.pending) < want && !s.eof {
		f, err := s.dec.ParseNext()
		if err == io.EOF {
			s.eof = true
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		if err := s.push(f); err != nil {
			return 0, err
		}
	}

	n := copy(dst[:want], s.pending)
	s.pending = s.pending[n:]

	if s.eof && len(s.pending) == 0 {
		if n == 0 {
			return 0, io.EOF
		}
		return n, io.EOF
	}

	return n, nil
}

// push interleaves one decoded frame onto pending.
func (s *source) push(f *frame.Frame) error {
	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d channels, stream has %d",
			ErrUnsupportedFlacLayout, len(f.Subframes), s.channels)
	}

	bits := s.bitDepth
	if f.BitsPerSample != 0 {
		bits = int(f.BitsPerSample)
	}

	frames := len(f.Subframes[0].Samples)
	for _, sub := range f.Subframes[1:] {
		frames = min(frames, len(sub.Samples))
	}

	for i := range frames {
		for _, sub := range f.Subframes {
			s.pending = append(s.pending, utils.SignedToFloat32(sub.Samples[i], bits))
		}
	}

	return nil
}

// Decoder decodes FLAC streams via github.com/mewkiz/flac.
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
	stream, err := goflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}
	if stream.Info == nil {
		return nil, ErrNotFlacFile
	}

	src, err := newSource(stream, int(stream.Info.SampleRate), int(stream.Info.NChannels),
		int(stream.Info.BitsPerSample), d.BufferSize)
	if err != nil {
		return nil, err
	}
	src.closer = stream

	return src, nil
}

func newSource(dec frameReader, sampleRate, channels, bitDepth, bufSize int) (*source, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFlacLayout, channels)
	}
	if bitDepth < 4 || bitDepth > 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if bufSize <= 0 {
		bufSize = defaultBufferSize
	}

	return &source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		bufSize:    max(bufSize/channels*channels, channels),
	}, nil
}
