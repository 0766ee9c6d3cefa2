// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config describes one batch run. The yaml tags are the job file keys.
type Config struct {
	// Path is the directory to scan.
	Path string `yaml:"path"`
	// TargetRate is the output sample rate in Hz.
	TargetRate int `yaml:"target_sr"`
	// TargetFolder is the output subfolder name, placed per Layout.
	TargetFolder string `yaml:"target_folder"`

	// SearchPattern is the discovery glob relative to Path. When empty it
	// is built from FileEnding as "*<ending>".
	SearchPattern string `yaml:"search_pattern"`
	FileEnding    string `yaml:"file_ending"`

	// Reorder enables the date layout and wins over PreserveParent.
	Reorder        bool `yaml:"reorder_files"`
	PreserveParent bool `yaml:"preserve_parent_dir"`

	// BitDepth of the written WAV files.
	BitDepth int `yaml:"bit_depth"`

	Decode DecodeOptions `yaml:"decode"`
}

// DefaultConfig has every field except Path, TargetRate and TargetFolder
// filled in.
func DefaultConfig() Config {
	return Config{
		FileEnding: ".wav",
		BitDepth:   16,
		Decode:     DefaultDecodeOptions(),
	}
}

// LoadConfig reads a YAML job file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Pattern is the effective discovery glob.
func (c Config) Pattern() string {
	if c.SearchPattern != "" {
		return c.SearchPattern
	}

	ending := c.FileEnding
	if ending == "" {
		ending = ".wav"
	}
	if !strings.HasPrefix(ending, ".") {
		ending = "." + ending
	}
	return "*" + ending
}

// Layout is the output layout chosen by the Reorder and PreserveParent
// switches.
func (c Config) Layout() Layout {
	return ModeFor(c.Reorder, c.PreserveParent)
}

// Validate reports every problem at once, each wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Path == "" {
		bad("path is required")
	}
	if c.TargetRate <= 0 {
		bad("target_sr must be positive, got %d", c.TargetRate)
	}

	switch {
	case c.TargetFolder == "":
		bad("target_folder is required")
	case filepath.IsAbs(c.TargetFolder):
		bad("target_folder %q must be relative", c.TargetFolder)
	case strings.Contains(filepath.ToSlash(c.TargetFolder), ".."):
		bad("target_folder %q must not contain ..", c.TargetFolder)
	}

	if _, err := splitPattern(c.Pattern()); err != nil {
		bad("search_pattern: %v", err)
	}

	switch c.BitDepth {
	case 8, 16, 24, 32:
	default:
		bad("bit_depth must be 8, 16, 24 or 32, got %d", c.BitDepth)
	}

	if c.Decode.Offset < 0 {
		bad("decode.offset must not be negative, got %s", c.Decode.Offset)
	}
	if c.Decode.Duration < 0 {
		bad("decode.duration must not be negative, got %s", c.Decode.Duration)
	}
	if c.Decode.Channel < -1 {
		bad("decode.channel must be -1 or a channel index, got %d", c.Decode.Channel)
	}

	return errors.Join(errs...)
}
