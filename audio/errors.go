// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrInvalidRate    = errors.New("sample rate must be positive")
	ErrInvalidChannel = errors.New("channel index out of range")
	ErrUnknownOption  = errors.New("unknown decoder option")
	ErrInvalidOption  = errors.New("invalid decoder option")
)
