// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Options is an open set of named decoder settings. Values usually come
// from a YAML job file or "key=value" CLI pairs, so lookups accept both
// native and string encodings.
type Options map[string]any

// Keys returns the option names in sorted order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Int reads key as an integer. ok is false when the key is absent.
func (o Options) Int(key string) (v int, ok bool, err error) {
	raw, ok := o[key]
	if !ok {
		return 0, false, nil
	}

	switch x := raw.(type) {
	case int:
		return x, true, nil
	case int64:
		return int(x), true, nil
	case uint64:
		return int(x), true, nil
	case float64:
		if x != float64(int(x)) {
			return 0, true, fmt.Errorf("%w: %s=%v is not an integer", ErrInvalidOption, key, x)
		}
		return int(x), true, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, true, fmt.Errorf("%w: %s=%q: %w", ErrInvalidOption, key, x, err)
		}
		return n, true, nil
	default:
		return 0, true, fmt.Errorf("%w: %s has type %T", ErrInvalidOption, key, raw)
	}
}

// BufferSize is the Tune helper for decoders whose only option is
// "buffer_size". It returns def when the option is unset.
func (o Options) BufferSize(def int) (int, error) {
	if err := o.Only("buffer_size"); err != nil {
		return 0, err
	}

	n, ok, err := o.Int("buffer_size")
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: buffer_size=%d", ErrInvalidOption, n)
	}

	return n, nil
}

// Only fails with ErrUnknownOption if o holds keys outside allowed.
func (o Options) Only(allowed ...string) error {
	var unknown []string
	for _, k := range o.Keys() {
		found := false
		for _, a := range allowed {
			if k == a {
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, k)
		}
	}

	if len(unknown) == 0 {
		return nil
	}

	return o.unknown(unknown...)
}

func (o Options) unknown(keys ...string) error {
	return fmt.Errorf("%w: %s", ErrUnknownOption, strings.Join(keys, ", "))
}

// ParseOptions turns "key=value" pairs into Options. Values stay strings;
// decoders convert them on lookup.
func ParseOptions(pairs []string) (Options, error) {
	opts := make(Options, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q is not key=value", ErrInvalidOption, p)
		}
		opts[k] = strings.TrimSpace(v)
	}

	return opts, nil
}
