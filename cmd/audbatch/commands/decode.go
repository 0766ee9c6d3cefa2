// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/ik5/audbatch/batch"
)

// decodeFlags mirrors batch.DecodeOptions on the command line.
type decodeFlags struct {
	offset   time.Duration
	duration time.Duration
	mono     bool
	channel  int
	extra    []string
}

func (d *decodeFlags) register(f *pflag.FlagSet) {
	f.DurationVar(&d.offset, "offset", 0, "skip this much audio at the start of each file")
	f.DurationVar(&d.duration, "duration", 0, "read at most this much audio after --offset (0 reads to the end)")
	f.BoolVar(&d.mono, "mono", false, "average all channels into one")
	f.IntVar(&d.channel, "channel", -1, "keep only this zero-based channel (-1 keeps all)")
	f.StringArrayVar(&d.extra, "opt", nil, "decoder option as key=value, repeatable (e.g. buffer_size=8192)")
}

// apply copies the flags the user set onto opts.
func (d *decodeFlags) apply(f *pflag.FlagSet, opts *batch.DecodeOptions) error {
	if f.Changed("offset") {
		opts.Offset = d.offset
	}
	if f.Changed("duration") {
		opts.Duration = d.duration
	}
	if f.Changed("mono") {
		opts.Mono = d.mono
	}
	if f.Changed("channel") {
		opts.Channel = d.channel
	}
	if f.Changed("opt") {
		extra, err := parseExtra(d.extra)
		if err != nil {
			return err
		}
		if opts.Extra == nil {
			opts.Extra = extra
		} else {
			for k, v := range extra {
				opts.Extra[k] = v
			}
		}
	}
	return nil
}
