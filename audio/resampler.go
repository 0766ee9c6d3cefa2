// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
	"sync"

	resampling "github.com/tphakala/go-audio-resampling"
)

// leadFrames of silence go through the filter ahead of the first real
// frame, so the head of the clip survives the filter's start-up and the
// delay can be cut away as a whole number of output frames.
const leadFrames = 8192

// offsets caches outputOffset per {srcRate, dstRate} pair.
var offsets sync.Map

// Resampler streams from src to a target sample rate using a band-limited
// (polyphase sinc) filter. Works on interleaved samples; preserves channel
// count. Each channel runs through its own filter. When both rates match it
// passes samples through untouched.
//
// The output is aligned with the input (the filter delay is removed) and
// holds exactly round(inFrames * dst / src) frames, so a clip keeps its
// duration.
type Resampler struct {
	src      Source
	srcRate  int
	dstRate  int
	channels int

	engines []resampling.Resampler // one per channel; nil for pass-through

	inBuf   []float32
	planes  [][]float64 // de-interleaved input block
	queued  [][]float64 // filter output not yet interleaved
	pending []float32

	skip       int   // leading output frames still to discard
	inFrames   int64 // real frames read from src
	outFrames  int64 // frames appended to pending so far
	tailFrames int64 // silent frames fed in after EOF
	maxTail    int64

	primed bool
	eof    bool
	done   bool
	empty  int
}

// NewResampler wraps src so that it yields audio at dstRate. It fails with
// ErrInvalidRate if either rate is not positive.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d Hz", ErrInvalidRate, src.SampleRate(), dstRate)
	}

	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidDstSize, channels)
	}

	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	bufSize -= bufSize % channels
	if bufSize == 0 {
		bufSize = channels
	}

	r := &Resampler{
		src:      src,
		srcRate:  src.SampleRate(),
		dstRate:  dstRate,
		channels: channels,
		inBuf:    make([]float32, bufSize),
	}

	if r.srcRate == r.dstRate {
		return r, nil
	}

	offset, err := outputOffset(r.srcRate, r.dstRate)
	if err != nil {
		return nil, err
	}
	r.skip = offset
	r.maxTail = int64(leadFrames + r.srcRate)

	block := bufSize / channels
	r.engines = make([]resampling.Resampler, channels)
	r.planes = make([][]float64, channels)
	r.queued = make([][]float64, channels)
	for ch := range channels {
		engine, err := newEngine(r.srcRate, r.dstRate)
		if err != nil {
			return nil, err
		}
		r.engines[ch] = engine
		r.planes[ch] = make([]float64, block)
	}

	return r, nil
}

func newEngine(srcRate, dstRate int) (resampling.Resampler, error) {
	engine, err := resampling.New(&resampling.Config{
		InputRate:  float64(srcRate),
		OutputRate: float64(dstRate),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	return engine, nil
}

// outputOffset is the output index at which input frame leadFrames comes
// out of the filter. It is measured with an impulse, since the filter
// cascade chosen by the library depends on the rate pair.
func outputOffset(srcRate, dstRate int) (int, error) {
	key := [2]int{srcRate, dstRate}
	if v, ok := offsets.Load(key); ok {
		return v.(int), nil
	}

	engine, err := newEngine(srcRate, dstRate)
	if err != nil {
		return 0, err
	}

	impulse := make([]float64, 3*leadFrames+1)
	impulse[leadFrames] = 1

	out, err := engine.Process(impulse)
	if err != nil {
		return 0, fmt.Errorf("resample error: %w", err)
	}

	offset := int(ExpectedFrames(leadFrames, srcRate, dstRate))
	peak := 0.0
	for i, v := range out {
		if a := math.Abs(v); a > peak {
			peak, offset = a, i
		}
	}

	offsets.Store(key, offset)
	return offset, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

// PassThrough reports whether no rate conversion takes place.
func (r *Resampler) PassThrough() bool { return r.engines == nil }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of r.Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if r.engines == nil {
		return r.src.ReadSamples(dst)
	}

	for len(r.pending) < len(dst) && !r.done {
		if err := r.fill(); err != nil {
			return 0, err
		}
	}

	n := copy(dst, r.pending)
	r.pending = r.pending[n:]

	if r.done && len(r.pending) == 0 {
		if n == 0 {
			return 0, io.EOF
		}
		return n, io.EOF
	}

	return n, nil
}

// fill pushes one block of source samples through the filters. Once the
// source is exhausted it feeds silence until the filter delay has drained.
func (r *Resampler) fill() error {
	if r.eof {
		return r.drain()
	}

	n, err := r.src.ReadSamples(r.inBuf)
	n -= n % r.channels

	if n > 0 {
		r.empty = 0
		if !r.primed {
			r.primed = true
			if perr := r.feedSilence(leadFrames); perr != nil {
				return perr
			}
		}

		frames := n / r.channels
		for ch, plane := range r.planes {
			for f := range frames {
				plane[f] = float64(r.inBuf[f*r.channels+ch])
			}
		}
		r.inFrames += int64(frames)

		if perr := r.process(frames); perr != nil {
			return perr
		}
	} else if err == nil {
		r.empty++
		if r.empty >= maxEmptyReads {
			return io.ErrNoProgress
		}
	}

	if err == io.EOF {
		r.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (r *Resampler) drain() error {
	want := ExpectedFrames(r.inFrames, r.srcRate, r.dstRate)
	if r.outFrames >= want || r.tailFrames >= r.maxTail {
		r.finish()
		return nil
	}

	block := len(r.planes[0])
	r.tailFrames += int64(block)

	return r.feedSilence(block)
}

func (r *Resampler) feedSilence(frames int) error {
	block := len(r.planes[0])
	for frames > 0 {
		k := min(frames, block)
		for _, plane := range r.planes {
			clear(plane[:k])
		}
		if err := r.process(k); err != nil {
			return err
		}
		frames -= k
	}

	return nil
}

// process runs the first frames of every plane through its channel filter
// and moves whatever is ready into pending.
func (r *Resampler) process(frames int) error {
	for ch, engine := range r.engines {
		out, err := engine.Process(r.planes[ch][:frames])
		if err != nil {
			return fmt.Errorf("resample error: channel %d: %w", ch, err)
		}
		r.queued[ch] = append(r.queued[ch], out...)
	}

	r.emit()
	return nil
}

// emit interleaves queued output into pending. The filter delay is dropped
// first, and pending never runs ahead of the frame count the input read so
// far allows.
func (r *Resampler) emit() {
	n := len(r.queued[0])
	for _, q := range r.queued[1:] {
		n = min(n, len(q))
	}

	if r.skip > 0 {
		d := min(n, r.skip)
		r.consume(d)
		r.skip -= d
		n -= d
	}

	limit := ExpectedFrames(r.inFrames, r.srcRate, r.dstRate) - r.outFrames
	if int64(n) > limit {
		n = int(max(limit, 0))
	}

	for f := range n {
		for ch := range r.channels {
			r.pending = append(r.pending, float32(r.queued[ch][f]))
		}
	}
	r.consume(n)
	r.outFrames += int64(n)
}

func (r *Resampler) consume(n int) {
	if n == 0 {
		return
	}
	for ch, q := range r.queued {
		r.queued[ch] = append(q[:0], q[n:]...)
	}
}

// finish zero-pads the tail if the filter could not supply the expected
// number of frames.
func (r *Resampler) finish() {
	r.done = true

	want := ExpectedFrames(r.inFrames, r.srcRate, r.dstRate)
	if r.outFrames < want {
		missing := int((want - r.outFrames) * int64(r.channels))
		r.pending = append(r.pending, make([]float32, missing)...)
		r.outFrames = want
	}

	r.queued = nil
}

// ExpectedFrames is the frame count a clip of frames samples at srcRate
// has after conversion to dstRate.
func ExpectedFrames(frames int64, srcRate, dstRate int) int64 {
	if srcRate == dstRate {
		return frames
	}
	return int64(math.Round(float64(frames) * float64(dstRate) / float64(srcRate)))
}
