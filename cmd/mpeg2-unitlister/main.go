package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Eyevinn/mpeg2-tools/internal"
)

var usg = `Usage of %s:

%s lists the start-code units of an MPEG-2 video stream (raw ES or TS)
with type, byte range, timestamps and optionally the decoded syntax tree.

Defaults can be set with MPEG2_* environment variables, e.g. MPEG2_INDENT=true.
`

func parseOptions() internal.Options {
	opts, err := internal.LoadOptions()
	if err != nil {
		log.Fatal(err)
	}
	opts.ShowUnits = true
	verbose := false
	flag.IntVar(&opts.MaxUnits, "max", opts.MaxUnits, "max nr units to print (0 = all)")
	flag.StringVar(&opts.Types, "types", opts.Types, "comma-separated unit types or summaries to print, e.g. SEQUENCE_HEADER,SeqExt")
	flag.BoolVar(&opts.ShowTree, "tree", opts.ShowTree, "include diagnostic syntax tree")
	flag.BoolVar(&opts.ShowDetails, "details", opts.ShowDetails, "include decoded payload")
	flag.BoolVar(&opts.Trace, "trace", opts.Trace, "log every decoded field at debug level")
	flag.BoolVar(&opts.ShowStatistics, "stats", opts.ShowStatistics, "print statistics")
	flag.BoolVar(&opts.Indent, "indent", opts.Indent, "indent JSON output")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.BoolVar(&opts.Version, "version", false, "print version")

	flag.Usage = func() {
		parts := strings.Split(os.Args[0], "/")
		name := parts[len(parts)-1]
		fmt.Fprintf(os.Stderr, usg, name, name)
		fmt.Fprintf(os.Stderr, "\nRun as: %s [options] file (- for stdin) with options:\n\n", name)
		flag.PrintDefaults()
	}

	flag.Parse()
	if verbose {
		opts.LogLevel = "debug"
	}
	return opts
}

func printUnits(ctx context.Context, w io.Writer, f io.Reader, o internal.Options) error {
	return internal.ParseUnits(ctx, w, f, o)
}

func main() {
	o, inFile := internal.ParseParams(parseOptions)
	err := internal.Execute(os.Stdout, o, inFile, printUnits)
	if err != nil {
		log.Fatal(err)
	}
}
