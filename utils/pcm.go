// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FullScale returns the magnitude of the most negative sample for a signed
// PCM bit depth (8-bit is unsigned but uses the same scale around 128).
// Unknown depths fall back to 16-bit.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// PCMToFloat32 normalises an integer PCM sample to [-1, 1).
// 8-bit samples are unsigned and centred on 128.
func PCMToFloat32(v int, bitDepth int) float32 {
	if bitDepth == 8 {
		v -= 128
	}
	return float32(float64(v) / float64(FullScale(bitDepth)))
}

// Float32ToPCM clamps x to [-1, 1] and scales it to an integer PCM sample.
// Positive full scale maps to the largest positive value so it never wraps.
func Float32ToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	scale := float64(FullScale(bitDepth))
	v := math.Round(float64(x) * scale)
	if v > scale-1 {
		v = scale - 1
	}

	if bitDepth == 8 {
		return int(v) + 128
	}
	return int(v)
}

// SignedToFloat32 normalises a signed integer sample of any bit depth from
// 1 to 32 to [-1, 1). Unlike PCMToFloat32, 8-bit input is signed.
func SignedToFloat32(v int32, bitDepth int) float32 {
	if bitDepth < 1 || bitDepth > 32 {
		bitDepth = 16
	}
	return float32(float64(v) / float64(int64(1)<<(bitDepth-1)))
}
