// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/audbatch"
	"github.com/ik5/audbatch/audio"
	"github.com/ik5/audbatch/formats/wav"
)

// State is the driver's position in a run.
type State int

const (
	StateEnumerating State = iota
	StateProcessing
	StateDone
)

func (s State) String() string {
	switch s {
	case StateEnumerating:
		return "enumerating"
	case StateProcessing:
		return "processing"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Skip records a file that produced no output.
type Skip struct {
	Path   string
	Reason error
}

// Summary describes a finished or halted run.
type Summary struct {
	State   State
	Total   int
	Written int
	Skipped []Skip

	// Outputs lists written files in processing order.
	Outputs []string
}

// Observer is called on every state change. index is the 1-based file
// being processed, or 0 outside StateProcessing.
type Observer func(state State, index, total int)

type runner struct {
	cfg      Config
	log      *slog.Logger
	registry *audio.Registry
	progress *Progress
	observe  Observer
}

// Option configures Run.
type Option func(*runner)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) { r.log = l }
}

// WithProgress reports progress to w. Without it nothing is printed.
func WithProgress(w io.Writer) Option {
	return func(r *runner) {
		if w != nil {
			r.progress = NewProgress(w, r.cfg.TargetRate)
		}
	}
}

// WithRegistry replaces DefaultRegistry.
func WithRegistry(reg *audio.Registry) Option {
	return func(r *runner) { r.registry = reg }
}

// WithObserver registers fn for state changes.
func WithObserver(fn Observer) Option {
	return func(r *runner) { r.observe = fn }
}

// Run processes every file matching cfg one at a time: load, resolve the
// destination, resample, write.
//
// Files that fail to decode, or whose name has no usable timestamp in date
// layout, are logged and listed in Summary.Skipped. Filesystem errors while
// creating directories or writing output stop the run and are returned.
// ctx is checked between files; a file already started is always finished.
func Run(ctx context.Context, cfg Config, opts ...Option) (Summary, error) {
	r := &runner{cfg: cfg, log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = DefaultRegistry()
	}

	sum := Summary{State: StateEnumerating}
	if err := cfg.Validate(); err != nil {
		return sum, err
	}

	r.setState(StateEnumerating, 0, 0)
	files, err := Discover(cfg.Path, cfg.Pattern())
	if err != nil {
		return sum, err
	}
	sum.Total = len(files)
	r.log.Debug("files discovered", "path", cfg.Path, "pattern", cfg.Pattern(), "count", len(files))

	loader := &Loader{Registry: r.registry, Options: cfg.Decode}
	resolver := Resolver{TargetFolder: cfg.TargetFolder, Mode: cfg.Layout()}

	defer r.progress.Done()

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			r.log.Info("run cancelled", "processed", i, "total", len(files))
			return sum, err
		}

		sum.State = StateProcessing
		r.setState(StateProcessing, i+1, len(files))

		out, srcRate, err := r.process(loader, resolver, path)
		var skip *skipError
		switch {
		case errors.As(err, &skip):
			sum.Skipped = append(sum.Skipped, Skip{Path: path, Reason: skip.err})
		case err != nil:
			return sum, err
		default:
			sum.Written++
			sum.Outputs = append(sum.Outputs, out)
		}

		r.progress.Report(i+1, len(files), srcRate)
	}

	sum.State = StateDone
	r.setState(StateDone, 0, len(files))
	r.log.Debug("run done", "total", sum.Total, "written", sum.Written, "skipped", len(sum.Skipped))

	return sum, nil
}

// skipError marks a per-file failure that must not stop the run.
type skipError struct{ err error }

func (e *skipError) Error() string { return e.err.Error() }
func (e *skipError) Unwrap() error { return e.err }

func (r *runner) process(loader *Loader, resolver Resolver, path string) (string, int, error) {
	res := loader.Load(path)
	if !res.OK() {
		r.log.Warn(fmt.Sprintf("%s is corrupted, moving on to next file", path), "error", res.Err)
		return "", 0, &skipError{res.Err}
	}
	srcRate := res.Buffer.SampleRate

	task, err := resolver.Resolve(path)
	if errors.Is(err, ErrNoTimestamp) || errors.Is(err, ErrBadTimestamp) {
		r.log.Warn(fmt.Sprintf("%s has no usable timestamp, moving on to next file", path), "error", err)
		return "", srcRate, &skipError{err}
	}
	if err != nil {
		return "", srcRate, err
	}

	out, err := audbatch.ResampleBuffer(res.Buffer, r.cfg.TargetRate)
	if err != nil {
		r.log.Warn(fmt.Sprintf("%s could not be resampled, moving on to next file", path), "error", err)
		return "", srcRate, &skipError{err}
	}

	if err := resolver.Prepare(task); err != nil {
		return "", srcRate, err
	}
	if err := wav.WriteFile(task.Dest(), out, r.cfg.BitDepth); err != nil {
		return "", srcRate, fmt.Errorf("writing %s: %w", task.Dest(), err)
	}

	r.log.Debug("file resampled",
		"src", path,
		"dst", task.Dest(),
		"from_hz", srcRate,
		"to_hz", r.cfg.TargetRate,
		"frames", out.Frames(),
	)

	return task.Dest(), srcRate, nil
}

func (r *runner) setState(s State, index, total int) {
	if r.observe != nil {
		r.observe(s, index, total)
	}
}
