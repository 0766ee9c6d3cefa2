// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Layout selects where outputs land relative to their source file.
type Layout int

const (
	// LayoutFlat writes <dir>/<target>/<stem>.wav.
	LayoutFlat Layout = iota
	// LayoutParent writes <parent of dir>/<target>/<base of dir>/<stem>.wav.
	LayoutParent
	// LayoutDate writes <dir>/<target>/<yyyy>/<m>/<d>/<stem>.wav, using the
	// timestamp in the file name.
	LayoutDate
)

func (l Layout) String() string {
	switch l {
	case LayoutFlat:
		return "flat"
	case LayoutParent:
		return "parent"
	case LayoutDate:
		return "date"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ModeFor maps the two config switches to a layout. reorder wins when both
// are set.
func ModeFor(reorder, preserveParent bool) Layout {
	switch {
	case reorder:
		return LayoutDate
	case preserveParent:
		return LayoutParent
	default:
		return LayoutFlat
	}
}

// Task pairs a source file with where its output goes.
type Task struct {
	Source   string
	DestDir  string
	DestName string
}

// Dest is the full output path.
func (t Task) Dest() string {
	return filepath.Join(t.DestDir, t.DestName)
}

// Resolver computes output paths. Ext defaults to ".wav".
type Resolver struct {
	TargetFolder string
	Mode         Layout
	Ext          string
}

// Resolve maps src to its output directory and file name under r.Mode.
// The date layout fails with ErrNoTimestamp or ErrBadTimestamp when the
// stem carries no usable timestamp.
func (r Resolver) Resolve(src string) (Task, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return Task{}, fmt.Errorf("resolving %s: %w", src, err)
	}

	dir := filepath.Dir(abs)
	base := filepath.Base(abs)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	ext := r.Ext
	if ext == "" {
		ext = ".wav"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	task := Task{Source: src, DestName: stem + ext}

	switch r.Mode {
	case LayoutFlat:
		task.DestDir = filepath.Join(dir, r.TargetFolder)
	case LayoutParent:
		task.DestDir = filepath.Join(filepath.Dir(dir), r.TargetFolder, filepath.Base(dir))
	case LayoutDate:
		key, err := ParseDateKey(stem)
		if err != nil {
			return Task{}, fmt.Errorf("resolving %s: %w", src, err)
		}
		task.DestDir = filepath.Join(dir, r.TargetFolder, key.Dir())
	default:
		return Task{}, fmt.Errorf("resolving %s: unknown layout %s", src, r.Mode)
	}

	return task, nil
}

// Prepare creates the task's output directory. Existing directories are
// fine.
func (r Resolver) Prepare(t Task) error {
	if err := os.MkdirAll(t.DestDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", t.DestDir, err)
	}
	return nil
}
