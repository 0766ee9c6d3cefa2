// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Buffer is a fully decoded clip: interleaved float32 samples in [-1,1]
// together with their channel count and sample rate.
type Buffer struct {
	Samples    []float32
	Channels   int
	SampleRate int
}

// Frames returns the number of sample frames (samples per channel).
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Duration returns the playback length of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}

// Source replays the buffer as a Source. The buffer is not copied.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf *Buffer
	pos int
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.Channels }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.buf.Samples) {
		return 0, io.EOF
	}

	// whole frames only
	want := len(dst) - len(dst)%s.buf.Channels
	n := copy(dst[:want], s.buf.Samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.Samples) {
		return n, io.EOF
	}
	return n, nil
}

const maxEmptyReads = 100

// ReadAll drains src into a Buffer, reading bufSize samples at a time
// (src.BufSize() when bufSize <= 0). It does not close src.
func ReadAll(src Source, bufSize int) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidDstSize, channels)
	}

	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	if bufSize < channels {
		bufSize = 4096
	}
	bufSize -= bufSize % channels

	out := &Buffer{
		Channels:   channels,
		SampleRate: src.SampleRate(),
	}
	buf := make([]float32, bufSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out.Samples = append(out.Samples, buf[:n]...)
			empty = 0
		} else if err == nil {
			empty++
			if empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	// drop a trailing partial frame from truncated inputs
	out.Samples = out.Samples[:len(out.Samples)-len(out.Samples)%channels]

	return out, nil
}
