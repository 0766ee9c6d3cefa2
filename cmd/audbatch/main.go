// SPDX-License-Identifier: EPL-2.0

// Command audbatch resamples every matching audio file in a directory.
//
// Usage:
//
//	audbatch <path> --rate 2000 --target-folder resampled_2kHz [flags]
//	audbatch --config job.yaml
//	audbatch file <input> <output.wav> --rate 8000
//	audbatch formats
//
// Outputs are always WAV. Files that fail to decode are reported and
// skipped; filesystem errors stop the run with exit status 1.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/audbatch/cmd/audbatch/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
