// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ik5/audbatch/audio"
	"github.com/ik5/audbatch/formats/aiff"
	"github.com/ik5/audbatch/formats/flac"
	"github.com/ik5/audbatch/formats/mp3"
	"github.com/ik5/audbatch/formats/vorbis"
	"github.com/ik5/audbatch/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder under the
// extensions it is usually found with.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}

// DecodeOptions are the decode settings the loader understands itself.
// Extra is forwarded to the decoder, which rejects keys it does not know.
type DecodeOptions struct {
	// Offset skips the start of every file.
	Offset time.Duration `yaml:"offset"`
	// Duration caps how much is read after Offset; 0 reads to the end.
	Duration time.Duration `yaml:"duration"`
	// Mono averages all channels into one. Ignored when Channel is set.
	Mono bool `yaml:"mono"`
	// Channel keeps a single zero-based channel; -1 keeps all of them.
	Channel int `yaml:"channel"`

	Extra audio.Options `yaml:"extra"`
}

// DefaultDecodeOptions reads whole files with every channel.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{Channel: -1}
}

func (o DecodeOptions) apply(src audio.Source) (audio.Source, error) {
	if o.Offset != 0 || o.Duration != 0 {
		w, err := audio.NewWindow(src, o.Offset, o.Duration)
		if err != nil {
			return nil, err
		}
		src = w
	}

	switch {
	case o.Channel >= 0:
		p, err := audio.NewChannelPicker(src, o.Channel)
		if err != nil {
			return nil, err
		}
		src = p
	case o.Mono:
		src = audio.NewMonoMixer(src)
	}

	return src, nil
}

// LoadResult is either a decoded Buffer or the reason decoding failed.
type LoadResult struct {
	Path   string
	Buffer *audio.Buffer
	Err    error
}

// OK reports whether the file decoded.
func (r LoadResult) OK() bool {
	return r.Err == nil && r.Buffer != nil
}

// Loader decodes whole files into memory.
type Loader struct {
	Registry *audio.Registry
	Options  DecodeOptions
}

// Load never returns an error directly; failures are carried in the
// result so the caller can skip the file.
func (l *Loader) Load(path string) LoadResult {
	buf, err := l.load(path)
	if err != nil {
		return LoadResult{Path: path, Err: fmt.Errorf("loading %s: %w", path, err)}
	}

	return LoadResult{Path: path, Buffer: buf}
}

func (l *Loader) load(path string) (*audio.Buffer, error) {
	reg := l.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	dec, err := audio.Configure(dec, l.Options.Extra)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, err
	}

	wrapped, err := l.Options.apply(src)
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	defer wrapped.Close()

	return audio.ReadAll(wrapped, 0)
}
