// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// Discover returns the regular files under root whose path relative to
// root matches pattern.
//
// Pattern segments are separated by '/' and use path.Match syntax; a
// segment of "**" matches zero or more directories. A pattern without a
// separator only matches files directly in root. Results come in walk
// order, which is lexical within each directory. No match is not an error.
func Discover(root, pattern string) ([]string, error) {
	segs, err := splitPattern(pattern)
	if err != nil {
		return nil, err
	}

	recursive := false
	for _, s := range segs {
		if s == "**" {
			recursive = true
			break
		}
	}
	maxDepth := len(segs) - 1

	var files []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")

		if d.IsDir() {
			if !recursive && len(parts) > maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if matchSegments(segs, parts) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering %q in %s: %w", pattern, root, err)
	}

	return files, nil
}

func splitPattern(pattern string) ([]string, error) {
	pattern = strings.Trim(filepath.ToSlash(pattern), "/")
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", filepath.ErrBadPattern)
	}

	segs := strings.Split(pattern, "/")
	for _, s := range segs {
		if s == "**" {
			continue
		}
		// Match reports malformed patterns even on a mismatch
		if _, err := path.Match(s, ""); err != nil {
			return nil, fmt.Errorf("%w: %q", filepath.ErrBadPattern, pattern)
		}
	}

	return segs, nil
}

func matchSegments(pat, name []string) bool {
	for len(pat) > 0 {
		if pat[0] == "**" {
			for i := 0; i <= len(name); i++ {
				if matchSegments(pat[1:], name[i:]) {
					return true
				}
			}
			return false
		}
		if len(name) == 0 {
			return false
		}
		if ok, _ := path.Match(pat[0], name[0]); !ok {
			return false
		}
		pat, name = pat[1:], name[1:]
	}

	return len(name) == 0
}
