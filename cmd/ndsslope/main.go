// Command ndsslope is a developer tool: given a directory, it attempts to
// load each of the four corner capture files (TL.bin, TR.bin, BL.bin,
// BR.bin) and, for each that loads, runs the slope interpolator over every
// recorded sweep position and reports any mismatch against the captured
// hardware span.
//
// There are no flags beyond the directory argument, no environment
// variables, and no persistent state. Mismatches are diagnostic, not
// fatal: given one directory argument, the command exits 0. A missing or
// extra argument prints the usage and exits 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retrogfx/ndsslope/capture"
	"github.com/retrogfx/ndsslope/harness"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ndsslope <capture-dir>\n\nLoads TL.bin, TR.bin, BL.bin and BR.bin from the given directory and\nchecks the slope interpolator's output against each capture.\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	dir := flag.Arg(0)
	for _, corner := range capture.AllCorners {
		path := filepath.Join(dir, corner.FileName())

		c, err := capture.Load(path)
		if err != nil {
			var missing *capture.ErrMissingFile
			if errors.As(err, &missing) {
				fmt.Fprintf(os.Stderr, "%s does not exist or is not a file.\n", path)
				continue
			}
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "Loading %s... OK\n", path)
		harness.Run(c).Fprint(os.Stderr)
	}
}
