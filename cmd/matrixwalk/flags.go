package main

import (
	"errors"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/katalvlaran/matrixviews/grid"
	"github.com/katalvlaran/matrixviews/matrix"
)

// options holds parsed command-line options.
type options struct {
	file      string
	direction string
	row       int
	col       int
	reverse   bool
	verbose   bool
	help      bool
}

func (o options) start() grid.Index {
	return grid.At(o.row, o.col)
}

var errMissingFile = errors.New("--file is required")

func parseFlags(errOut io.Writer, args []string) (options, int) {
	flagSet := flag.NewFlagSet("matrixwalk", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	file := flagSet.StringP("file", "f", "", "Matrix file (.yaml, .yml, .json, .jsonc)")
	direction := flagSet.StringP("direction", "d", "row", "Walk direction")
	row := flagSet.Int("row", 0, "Start row")
	col := flagSet.Int("col", 0, "Start column")
	reverse := flagSet.BoolP("reverse", "r", false, "Walk from the far end back to the start")
	verbose := flagSet.BoolP("verbose", "v", false, "Log to stderr")
	help := flagSet.BoolP("help", "h", false, "Show help")

	parseErr := flagSet.Parse(args)
	if parseErr != nil {
		fprintln(errOut, "error:", parseErr)

		return options{}, 2
	}

	if *help {
		return options{help: true}, 0
	}

	if *file == "" {
		fprintln(errOut, "error:", errMissingFile)

		return options{}, 2
	}

	dir, err := matrix.ParseDirection(*direction)
	if err != nil {
		fprintln(errOut, "error:", err)

		return options{}, 2
	}

	if flagSet.NArg() > 0 {
		fprintln(errOut, "error: unexpected arguments:", strings.Join(flagSet.Args(), " "))

		return options{}, 2
	}

	return options{
		file:      *file,
		direction: dir,
		row:       *row,
		col:       *col,
		reverse:   *reverse,
		verbose:   *verbose,
	}, 0
}

func printHelp(out io.Writer) {
	fprintln(out, "Usage: matrixwalk --file=<path> [options]")
	fprintln(out, "")
	fprintln(out, "Print the cells visited walking a matrix in one direction.")
	fprintln(out, "")
	fprintln(out, "Options:")
	fprintln(out, "  -f, --file=<path>        Matrix file (.yaml, .yml, .json, .jsonc)")
	fprintln(out, "  -d, --direction=<name>   "+strings.Join(matrix.Directions, "|")+" [default: row]")
	fprintln(out, "      --row=N              Start row [default: 0]")
	fprintln(out, "      --col=N              Start column [default: 0]")
	fprintln(out, "  -r, --reverse            Walk back to front")
	fprintln(out, "  -v, --verbose            Log to stderr")
}
