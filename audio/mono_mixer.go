// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer downmixes any channel layout to one channel by averaging.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }
func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	frames, err := readFrames(m.src, &m.tmp, len(dst))
	if frames == 0 {
		return 0, err
	}

	inv := float32(1) / float32(channels)
	if channels == 2 {
		for f := range frames {
			dst[f] = (m.tmp[f<<1] + m.tmp[f<<1+1]) * 0.5
		}
		return frames, err
	}

	for f := range frames {
		var sum float32
		base := f * channels
		for c := range channels {
			sum += m.tmp[base+c]
		}
		dst[f] = sum * inv
	}

	return frames, err
}

// ChannelPicker extracts a single channel from an interleaved source.
type ChannelPicker struct {
	src     Source
	channel int
	tmp     []float32
}

// NewChannelPicker selects channel (zero-based) from src.
func NewChannelPicker(src Source, channel int) (*ChannelPicker, error) {
	if channel < 0 || channel >= src.Channels() {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, channel, src.Channels())
	}

	return &ChannelPicker{
		src:     src,
		channel: channel,
		tmp:     make([]float32, 4096),
	}, nil
}

func (p *ChannelPicker) SampleRate() int { return p.src.SampleRate() }
func (p *ChannelPicker) Channels() int   { return 1 }
func (p *ChannelPicker) BufSize() int    { return p.src.BufSize() }
func (p *ChannelPicker) Close() error {
	if err := p.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (p *ChannelPicker) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := p.src.Channels()
	if channels == 1 {
		return p.src.ReadSamples(dst)
	}

	frames, err := readFrames(p.src, &p.tmp, len(dst))
	for f := range frames {
		dst[f] = p.tmp[f*channels+p.channel]
	}

	return frames, err
}

// readFrames reads up to frames whole frames from src into *tmp, growing
// it when needed, and returns the number of complete frames read.
func readFrames(src Source, tmp *[]float32, frames int) (int, error) {
	channels := src.Channels()
	need := frames * channels

	if cap(*tmp) < need {
		*tmp = make([]float32, max(need, 8192))
	}
	*tmp = (*tmp)[:need]

	n, err := src.ReadSamples(*tmp)

	return n / channels, err
}
