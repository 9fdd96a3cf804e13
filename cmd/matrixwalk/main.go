// Command matrixwalk prints the cells a direction view visits in a matrix
// loaded from a YAML or JSONC file.
//
// Usage:
//
//	matrixwalk --file grid.yaml --direction antidiagonal --row 0 --col 3
//
// Input shape (YAML shown; JSON with comments is accepted too):
//
//	rows:
//	  - [1, 2, 3]
//	  - [4, 5, 6]
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without process globals, so tests can drive it.
func run(args []string, out, errOut io.Writer) int {
	opts, code := parseFlags(errOut, args)
	if code != 0 || opts.help {
		if opts.help {
			printHelp(out)
		}
		return code
	}

	if opts.verbose {
		if err := enableDevelopmentLogger(); err != nil {
			fprintln(errOut, "error:", err)
			return 1
		}
	}
	defer func() { _ = Logger().Sync() }()

	m, err := loadMatrix(opts.file)
	if err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}
	logLoaded(opts.file, m.Rows(), m.Cols())

	entries, err := m.Walk(opts.direction, opts.start(), opts.reverse)
	if err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}
	logWalk(opts.direction, opts.start(), len(entries))

	for _, e := range entries {
		fmt.Fprintf(out, "%s\t%g\n", e.At, e.Value)
	}

	return 0
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
