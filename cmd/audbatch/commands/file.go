// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/audbatch"
	"github.com/ik5/audbatch/batch"
	"github.com/ik5/audbatch/formats/wav"
)

var (
	fileRate     int
	fileBitDepth int
	fileDecode   decodeFlags
)

var fileCmd = &cobra.Command{
	Use:   "file <input> <output.wav>",
	Short: "Resample a single file",
	Long: `Resample one audio file and write it as WAV.

Decode flags work as for the batch command. Unlike the batch command, a file
that fails to decode is an error.

Examples:
  audbatch file call.mp3 call_8k.wav --rate 8000 --mono
  audbatch file take.aiff take.wav -r 48000 --bit-depth 24
`,
	Args: cobra.ExactArgs(2),
	RunE: runFile,
}

func init() {
	f := fileCmd.Flags()
	f.IntVarP(&fileRate, "rate", "r", 0, "target sample rate in Hz (required)")
	f.IntVar(&fileBitDepth, "bit-depth", wav.DefaultBitDepth, "output bit depth (8, 16, 24 or 32)")
	fileDecode.register(f)
	_ = fileCmd.MarkFlagRequired("rate")
}

func runFile(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	opts := batch.DefaultDecodeOptions()
	if err := fileDecode.apply(cmd.Flags(), &opts); err != nil {
		return err
	}

	loader := &batch.Loader{Registry: batch.DefaultRegistry(), Options: opts}
	res := loader.Load(in)
	if !res.OK() {
		return res.Err
	}

	buf, err := audbatch.ResampleBuffer(res.Buffer, fileRate)
	if err != nil {
		return err
	}

	if err := wav.WriteFile(out, buf, fileBitDepth); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	slog.Info("file resampled",
		"src", in,
		"dst", out,
		"from_hz", res.Buffer.SampleRate,
		"to_hz", buf.SampleRate,
		"duration", buf.Duration(),
	)

	return nil
}
