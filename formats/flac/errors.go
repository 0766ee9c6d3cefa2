// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the input does not start with a FLAC stream
	// header
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedBitDepth is returned for sample sizes outside 4 to 32
	// bits
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")

	// ErrUnsupportedFlacLayout indicates a stream without channels or a
	// frame whose channel count differs from the stream's
	ErrUnsupportedFlacLayout = errors.New("unsupported FLAC layout")
)
