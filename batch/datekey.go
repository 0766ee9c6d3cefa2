// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// TimestampLayout is the fixed YYMMDDHHMMSS layout recordings are named
// with.
const TimestampLayout = "060102150405"

var digitRun = regexp.MustCompile(`[0-9]+`)

// DateKey is the calendar day a recording belongs to.
type DateKey struct {
	Year  int
	Month int
	Day   int

	// Time is the full parsed timestamp, in UTC.
	Time time.Time
}

// ParseDateKey returns the date of the first digit run in stem that
// parses under TimestampLayout. Runs that do not parse are skipped.
func ParseDateKey(stem string) (DateKey, error) {
	runs := digitRun.FindAllString(stem, -1)
	if len(runs) == 0 {
		return DateKey{}, fmt.Errorf("%w: %q", ErrNoTimestamp, stem)
	}

	for _, run := range runs {
		t, err := time.Parse(TimestampLayout, run)
		if err != nil {
			continue
		}
		return DateKey{
			Year:  t.Year(),
			Month: int(t.Month()),
			Day:   t.Day(),
			Time:  t,
		}, nil
	}

	return DateKey{}, fmt.Errorf("%w: %q", ErrBadTimestamp, stem)
}

// Dir is the year/month/day subpath, without zero padding ("2024/1/15").
func (k DateKey) Dir() string {
	return filepath.Join(strconv.Itoa(k.Year), strconv.Itoa(k.Month), strconv.Itoa(k.Day))
}

func (k DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, k.Month, k.Day)
}
