// SPDX-License-Identifier: EPL-2.0

package batch_test

import (
	"fmt"
	"path/filepath"

	"github.com/ik5/audbatch/batch"
)

func ExampleParseDateKey() {
	key, err := batch.ParseDateKey("hydrophone3_240115103000")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(key, filepath.ToSlash(key.Dir()))
	// Output: 2024-01-15 2024/1/15
}

func ExampleResolver_Resolve() {
	for _, mode := range []batch.Layout{batch.LayoutFlat, batch.LayoutParent, batch.LayoutDate} {
		r := batch.Resolver{TargetFolder: "out", Mode: mode}

		task, err := r.Resolve("/data/batchA/rec1_240115103000.flac")
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%-6s %s\n", mode, filepath.ToSlash(task.Dest()))
	}
	// Output:
	// flat   /data/batchA/out/rec1_240115103000.wav
	// parent /data/out/batchA/rec1_240115103000.wav
	// date   /data/batchA/out/2024/1/15/rec1_240115103000.wav
}
