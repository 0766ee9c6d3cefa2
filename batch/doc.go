// SPDX-License-Identifier: EPL-2.0

// Package batch resamples every matching audio file under a directory and
// writes the results as WAV files.
//
// A run goes through three states: it enumerates files with Discover, then
// processes them one by one, then reports Done. Each file is decoded by
// the Loader, placed by the Resolver and written with formats/wav:
//
//	cfg := batch.DefaultConfig()
//	cfg.Path = "/recordings"
//	cfg.TargetRate = 2000
//	cfg.TargetFolder = "resampled_2kHz"
//	sum, err := batch.Run(ctx, cfg, batch.WithProgress(os.Stdout))
//
// Output placement depends on the layout:
//
//	flat    /rec/a.mp3           -> /rec/out/a.wav
//	parent  /rec/day1/a.mp3      -> /rec/out/day1/a.wav
//	date    /rec/a_240115103000.mp3 -> /rec/out/2024/1/15/a_240115103000.wav
//
// A file that cannot be decoded, or whose name carries no YYMMDDHHMMSS
// timestamp in date layout, is skipped with a warning. Errors creating
// directories or writing output end the run.
package batch
