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

%s lists sequence headers and sequence extensions of an MPEG-2 video stream
(raw ES or TS) and the stream parameters they signal
`

func parseOptions() internal.Options {
	opts, err := internal.LoadOptions()
	if err != nil {
		log.Fatal(err)
	}
	opts.ShowSequences = true
	flag.IntVar(&opts.MaxSequences, "max", opts.MaxSequences, "max nr sequence headers to parse (0 = all)")
	flag.BoolVar(&opts.ShowDetails, "details", opts.ShowDetails, "show decoded fields")
	flag.BoolVar(&opts.Indent, "indent", opts.Indent, "indent JSON output")
	flag.BoolVar(&opts.Version, "version", false, "print version")

	flag.Usage = func() {
		parts := strings.Split(os.Args[0], "/")
		name := parts[len(parts)-1]
		fmt.Fprintf(os.Stderr, usg, name, name)
		fmt.Fprintf(os.Stderr, "\nRun as: %s [options] file (- for stdin) with options:\n\n", name)
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func printSequenceInfo(ctx context.Context, w io.Writer, f io.Reader, o internal.Options) error {
	return internal.ParseSequences(ctx, w, f, o)
}

func main() {
	o, inFile := internal.ParseParams(parseOptions)
	err := internal.Execute(os.Stdout, o, inFile, printSequenceInfo)
	if err != nil {
		log.Fatal(err)
	}
}
