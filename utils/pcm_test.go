// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToPCM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    float32
		bitDepth int
		want     int
	}{
		{name: "zero 16", input: 0, bitDepth: 16, want: 0},
		{name: "max positive 16", input: 1, bitDepth: 16, want: math.MaxInt16},
		{name: "max negative 16", input: -1, bitDepth: 16, want: math.MinInt16},
		{name: "half positive 16", input: 0.5, bitDepth: 16, want: 16384},
		{name: "clamp over max 16", input: 1.5, bitDepth: 16, want: math.MaxInt16},
		{name: "clamp under min 16", input: -100, bitDepth: 16, want: math.MinInt16},
		{name: "max positive 24", input: 1, bitDepth: 24, want: 8388607},
		{name: "max negative 24", input: -1, bitDepth: 24, want: -8388608},
		{name: "max positive 32", input: 1, bitDepth: 32, want: math.MaxInt32},
		{name: "silence 8", input: 0, bitDepth: 8, want: 128},
		{name: "max positive 8", input: 1, bitDepth: 8, want: 255},
		{name: "max negative 8", input: -1, bitDepth: 8, want: 0},
		{name: "unknown depth falls back to 16", input: 1, bitDepth: 12, want: math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToPCM(tt.input, tt.bitDepth)
			if got != tt.want {
				t.Errorf("Float32ToPCM(%v, %d) = %d, want %d", tt.input, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestPCMToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    int
		bitDepth int
		want     float32
	}{
		{name: "zero 16", input: 0, bitDepth: 16, want: 0},
		{name: "min 16", input: math.MinInt16, bitDepth: 16, want: -1},
		{name: "half 16", input: 16384, bitDepth: 16, want: 0.5},
		{name: "min 24", input: -8388608, bitDepth: 24, want: -1},
		{name: "centre 8", input: 128, bitDepth: 8, want: 0},
		{name: "min 8", input: 0, bitDepth: 8, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := PCMToFloat32(tt.input, tt.bitDepth)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("PCMToFloat32(%d, %d) = %v, want %v", tt.input, tt.bitDepth, got, tt.want)
			}
		})
	}
}

// TestPCMRoundTrip checks that converting back and forth loses at most one
// quantisation step.
func TestPCMRoundTrip(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{8, 16, 24, 32} {
		step := 1 / float64(FullScale(depth))
		for f := -1.0; f <= 1.0; f += 0.01 {
			back := PCMToFloat32(Float32ToPCM(float32(f), depth), depth)
			if diff := math.Abs(float64(back) - f); diff > 2*step+1e-6 {
				t.Errorf("depth %d: %v -> %v (diff %v)", depth, f, back, diff)
			}
		}
	}
}

func TestFloat32ToPCM_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToPCM(-1, 16)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToPCM(float32(f), 16)
		if curr < prev {
			t.Errorf("Float32ToPCM not monotonic: f=%v gives %v, previous %v", f, curr, prev)
		}
		prev = curr
	}
}

func BenchmarkFloat32ToPCM(b *testing.B) {
	samples := make([]float32, 8000)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.1))
	}
	out := make([]int, len(samples))

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		for j, s := range samples {
			out[j] = Float32ToPCM(s, 16)
		}
	}
}

func TestSignedToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    int32
		bitDepth int
		want     float32
	}{
		{name: "min 8 is signed", input: -128, bitDepth: 8, want: -1},
		{name: "zero 8", input: 0, bitDepth: 8, want: 0},
		{name: "half 12", input: 1024, bitDepth: 12, want: 0.5},
		{name: "min 16", input: math.MinInt16, bitDepth: 16, want: -1},
		{name: "quarter 20", input: 1 << 17, bitDepth: 20, want: 0.25},
		{name: "min 24", input: -8388608, bitDepth: 24, want: -1},
		{name: "min 32", input: math.MinInt32, bitDepth: 32, want: -1},
		{name: "bad depth falls back to 16", input: 16384, bitDepth: 0, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SignedToFloat32(tt.input, tt.bitDepth); got != tt.want {
				t.Errorf("SignedToFloat32(%d, %d) = %v, want %v", tt.input, tt.bitDepth, got, tt.want)
			}
		})
	}
}
