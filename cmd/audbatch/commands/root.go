// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ik5/audbatch/audio"
	"github.com/ik5/audbatch/batch"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Batch flags, applied over the job file when set
	targetRate     int
	targetFolder   string
	searchPattern  string
	fileEnding     string
	reorder        bool
	preserveParent bool
	bitDepth       int
	decode         decodeFlags
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "audbatch [path]",
	Short: "Batch audio resampler",
	Long: `audbatch resamples every audio file matching a pattern under a directory
and writes the results as WAV files into a target folder.

Supported inputs: WAV, MP3, Ogg Vorbis, AIFF and FLAC.

Output layouts:
  default            <dir>/<target>/<name>.wav
  --preserve-parent  <dir>/../<target>/<dir name>/<name>.wav
  --reorder          <dir>/<target>/<yyyy>/<m>/<d>/<name>.wav, using the
                     YYMMDDHHMMSS timestamp in the file name

Examples:
  # Downsample all WAV files to 2 kHz
  audbatch /recordings --rate 2000 --target-folder resampled_2kHz

  # Recurse into subfolders and sort outputs by recording date
  audbatch /recordings -r 2000 -t by_date --pattern '**/*.wav' --reorder

  # Drop the first second of every file and keep only the left channel
  audbatch /recordings -r 8000 -t trimmed --offset 1s --channel 0

  # Run a job file, overriding its target rate
  audbatch --config job.yaml --rate 4000
`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBatch,
}

// Command returns the root cobra command.
func Command() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML job file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	f := rootCmd.Flags()
	f.IntVarP(&targetRate, "rate", "r", 0, "target sample rate in Hz")
	f.StringVarP(&targetFolder, "target-folder", "t", "", "output folder name")
	f.StringVarP(&searchPattern, "pattern", "p", "", "discovery glob relative to path, '**' matches any depth")
	f.StringVar(&fileEnding, "file-ending", ".wav", "extension to match when --pattern is not set")
	f.BoolVar(&reorder, "reorder", false, "sort outputs into year/month/day folders")
	f.BoolVar(&preserveParent, "preserve-parent", false, "mirror the source folder name under the target folder")
	f.IntVar(&bitDepth, "bit-depth", 16, "output bit depth (8, 16, 24 or 32)")
	decode.register(f)

	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(formatsCmd)
}

func initLogging() {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	sum, err := batch.Run(cmd.Context(), cfg, batch.WithProgress(cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	slog.Info("batch finished",
		"files", sum.Total,
		"written", sum.Written,
		"skipped", len(sum.Skipped),
	)
	for _, s := range sum.Skipped {
		slog.Debug("skipped", "path", s.Path, "reason", s.Reason)
	}

	return nil
}

// buildConfig starts from the job file (or defaults) and applies every
// flag the user set explicitly.
func buildConfig(cmd *cobra.Command, args []string) (batch.Config, error) {
	cfg := batch.DefaultConfig()
	if cfgFile != "" {
		var err error
		if cfg, err = batch.LoadConfig(cfgFile); err != nil {
			return cfg, err
		}
	}

	if len(args) == 1 {
		cfg.Path = args[0]
	}

	f := cmd.Flags()
	if f.Changed("rate") {
		cfg.TargetRate = targetRate
	}
	if f.Changed("target-folder") {
		cfg.TargetFolder = targetFolder
	}
	if f.Changed("pattern") {
		cfg.SearchPattern = searchPattern
	}
	if f.Changed("file-ending") {
		cfg.FileEnding = fileEnding
		if !f.Changed("pattern") {
			cfg.SearchPattern = ""
		}
	}
	if f.Changed("reorder") {
		cfg.Reorder = reorder
	}
	if f.Changed("preserve-parent") {
		cfg.PreserveParent = preserveParent
	}
	if f.Changed("bit-depth") {
		cfg.BitDepth = bitDepth
	}
	if err := decode.apply(f, &cfg.Decode); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w\nrun 'audbatch --help' for usage", err)
	}

	return cfg, nil
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the input extensions audbatch can decode",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, ext := range batch.DefaultRegistry().Formats() {
			fmt.Fprintln(cmd.OutOrStdout(), ext)
		}
	},
}

// parseExtra is shared by the batch and file commands.
func parseExtra(pairs []string) (audio.Options, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	return audio.ParseOptions(pairs)
}
