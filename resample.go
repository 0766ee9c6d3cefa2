// SPDX-License-Identifier: EPL-2.0

package audbatch

import (
	"fmt"

	"github.com/ik5/audbatch/audio"
)

// Resample drains src through a band-limited resampler and returns the
// whole signal at targetRate. Channel layout is kept as is.
//
// When src already runs at targetRate the samples pass through untouched.
// The output holds round(frames * targetRate / srcRate) frames.
//
// bufferSize is the read size in samples; zero uses the source's own
// preference. Resample does not close src.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(f)
//	buf, err := audbatch.Resample(src, 2000, 0)
//	if err != nil {
//	    return err
//	}
//	err = wav.WriteFile("out.wav", buf, wav.DefaultBitDepth)
func Resample(src audio.Source, targetRate int, bufferSize int) (*audio.Buffer, error) {
	rs, err := audio.NewResampler(src, targetRate)
	if err != nil {
		return nil, fmt.Errorf("resampling %d Hz to %d Hz: %w", src.SampleRate(), targetRate, err)
	}

	buf, err := audio.ReadAll(rs, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("resampling %d Hz to %d Hz: %w", src.SampleRate(), targetRate, err)
	}

	return buf, nil
}

// ResampleBuffer is Resample for a fully decoded buffer. buf is not
// modified.
func ResampleBuffer(buf *audio.Buffer, targetRate int) (*audio.Buffer, error) {
	return Resample(buf.Source(), targetRate, 0)
}
