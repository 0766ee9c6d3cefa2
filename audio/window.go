// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Window limits a source to the span [offset, offset+duration).
// A zero duration means "until the end of the source".
type Window struct {
	src Source

	skip   int64 // frames still to discard
	remain int64 // frames still to emit, -1 for unbounded

	scratch []float32
}

// NewWindow fails with ErrInvalidOption for a negative offset or duration.
func NewWindow(src Source, offset, duration time.Duration) (*Window, error) {
	if offset < 0 || duration < 0 {
		return nil, fmt.Errorf("%w: offset=%s duration=%s", ErrInvalidOption, offset, duration)
	}

	rate := src.SampleRate()
	w := &Window{
		src:    src,
		skip:   durationToFrames(offset, rate),
		remain: -1,
	}
	if duration > 0 {
		w.remain = durationToFrames(duration, rate)
	}

	return w, nil
}

func durationToFrames(d time.Duration, rate int) int64 {
	return int64(d) * int64(rate) / int64(time.Second)
}

func (w *Window) SampleRate() int { return w.src.SampleRate() }
func (w *Window) Channels() int   { return w.src.Channels() }
func (w *Window) BufSize() int    { return w.src.BufSize() }
func (w *Window) Close() error {
	if err := w.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (w *Window) ReadSamples(dst []float32) (int, error) {
	channels := w.src.Channels()
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if err := w.discard(); err != nil {
		return 0, err
	}

	if w.remain == 0 {
		return 0, io.EOF
	}

	if w.remain > 0 && int64(len(dst)/channels) > w.remain {
		dst = dst[:w.remain*int64(channels)]
	}

	n, err := w.src.ReadSamples(dst)
	n -= n % channels

	if w.remain > 0 {
		w.remain -= int64(n / channels)
		if w.remain == 0 && err == nil {
			err = io.EOF
		}
	}

	return n, err
}

// discard drops the leading offset frames.
func (w *Window) discard() error {
	channels := w.src.Channels()
	empty := 0

	for w.skip > 0 {
		if w.scratch == nil {
			w.scratch = make([]float32, 4096-4096%channels)
		}
		buf := w.scratch
		if int64(len(buf)/channels) > w.skip {
			buf = buf[:w.skip*int64(channels)]
		}

		n, err := w.src.ReadSamples(buf)
		w.skip -= int64(n / channels)

		if err == io.EOF {
			w.skip = 0
			w.remain = 0
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return io.ErrNoProgress
			}
		}
	}

	return nil
}
