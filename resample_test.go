// SPDX-License-Identifier: EPL-2.0

package audbatch

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audbatch/audio"
	"github.com/ik5/audbatch/internal/audiotest"
)

func TestResample_Rates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		srcRate    int
		dstRate    int
		channels   int
		frames     int
		wantFrames int
	}{
		{name: "downsample 44.1k to 8k", srcRate: 44100, dstRate: 8000, channels: 2, frames: 44100, wantFrames: 8000},
		{name: "downsample 48k to 2k", srcRate: 48000, dstRate: 2000, channels: 1, frames: 48000, wantFrames: 2000},
		{name: "upsample 8k to 16k", srcRate: 8000, dstRate: 16000, channels: 1, frames: 4000, wantFrames: 8000},
		{name: "same rate", srcRate: 16000, dstRate: 16000, channels: 2, frames: 1234, wantFrames: 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(tt.srcRate, tt.channels, tt.frames, 220)

			buf, err := Resample(src, tt.dstRate, 4096)
			if err != nil {
				t.Fatalf("Resample() error = %v", err)
			}

			if buf.SampleRate != tt.dstRate {
				t.Errorf("SampleRate = %d, want %d", buf.SampleRate, tt.dstRate)
			}
			if buf.Channels != tt.channels {
				t.Errorf("Channels = %d, want %d", buf.Channels, tt.channels)
			}
			if buf.Frames() != tt.wantFrames {
				t.Errorf("Frames() = %d, want %d", buf.Frames(), tt.wantFrames)
			}
		})
	}
}

func TestResample_SameRateKeepsSamples(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 2, 200)
	want, err := audio.ReadAll(audiotest.NewRampSource(8000, 2, 200), 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	got, err := Resample(src, 8000, 0)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	if len(got.Samples) != len(want.Samples) {
		t.Fatalf("len(Samples) = %d, want %d", len(got.Samples), len(want.Samples))
	}
	for i := range want.Samples {
		if got.Samples[i] != want.Samples[i] {
			t.Fatalf("sample %d = %f, want %f", i, got.Samples[i], want.Samples[i])
		}
	}
}

func TestResampleBuffer_Idempotent(t *testing.T) {
	t.Parallel()

	once, err := Resample(audiotest.NewSineSource(44100, 1, 22050, 300), 8000, 0)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	twice, err := ResampleBuffer(once, 8000)
	if err != nil {
		t.Fatalf("ResampleBuffer() error = %v", err)
	}

	if twice.SampleRate != once.SampleRate || twice.Frames() != once.Frames() {
		t.Fatalf("ResampleBuffer() = %d Hz/%d frames, want %d Hz/%d frames",
			twice.SampleRate, twice.Frames(), once.SampleRate, once.Frames())
	}
	for i := range once.Samples {
		if math.Abs(float64(twice.Samples[i]-once.Samples[i])) > 1e-6 {
			t.Fatalf("sample %d = %f, want %f", i, twice.Samples[i], once.Samples[i])
		}
	}
}

func TestResampleBuffer_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	in := &audio.Buffer{Samples: []float32{0.1, 0.2, 0.3, 0.4}, Channels: 1, SampleRate: 4000}

	if _, err := ResampleBuffer(in, 2000); err != nil {
		t.Fatalf("ResampleBuffer() error = %v", err)
	}

	want := []float32{0.1, 0.2, 0.3, 0.4}
	for i := range want {
		if in.Samples[i] != want[i] {
			t.Fatalf("input sample %d changed to %f", i, in.Samples[i])
		}
	}
}

func TestResample_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Resample(audiotest.NewSilentSource(8000, 1, 10), 0, 0); !errors.Is(err, audio.ErrInvalidRate) {
		t.Errorf("Resample(rate 0) error = %v, want ErrInvalidRate", err)
	}

	if _, err := Resample(audiotest.NewFailingSource(8000, 1, 100), 4000, 0); !errors.Is(err, audiotest.ErrBroken) {
		t.Errorf("Resample(broken) error = %v, want ErrBroken", err)
	}
}

func TestResample_EmptySource(t *testing.T) {
	t.Parallel()

	buf, err := Resample(audiotest.NewSilentSource(44100, 2, 0), 8000, 0)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if buf.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", buf.Frames())
	}
}

func BenchmarkResample(b *testing.B) {
	for range b.N {
		src := audiotest.NewSineSource(44100, 2, 44100, 440)
		if _, err := Resample(src, 8000, 4096); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResample_Upsample(b *testing.B) {
	for range b.N {
		src := audiotest.NewSineSource(8000, 1, 8000, 440)
		if _, err := Resample(src, 48000, 4096); err != nil {
			b.Fatal(err)
		}
	}
}
