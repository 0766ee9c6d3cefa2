// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

var (
	// ErrNoTimestamp is returned in date layout when the file name holds no
	// digits at all.
	ErrNoTimestamp = errors.New("no timestamp in file name")

	// ErrBadTimestamp is returned in date layout when no digit run in the
	// file name parses as YYMMDDHHMMSS.
	ErrBadTimestamp = errors.New("file name timestamp is not YYMMDDHHMMSS")

	// ErrUnsupportedFormat is returned by the loader for extensions with no
	// registered decoder.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("invalid config")
)
