package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/q191201771/naza/pkg/nazalog"
	"github.com/yanjieee/sei-parser/internal"
)

var usg = `Usage of %s:

%s extracts SEI messages from FLV, MP4, MPEG-TS, and raw Annex-B
H.264/H.265 files and prints them as JSON lines.
`

func parseOptions() internal.Options {
	opts := internal.Options{ShowHex: true}
	flag.BoolVar(&opts.Indent, "indent", false, "indent JSON output")
	flag.BoolVar(&opts.ShowHex, "hex", true, "include payload hex dump")
	flag.BoolVar(&opts.ShowSummary, "summary", false, "print summary after records")
	flag.BoolVar(&opts.StrictText, "strict", false, "reject payloads with invalid UTF-8 instead of dropping bad bytes")
	flag.BoolVar(&opts.StopBitCheck, "stopbit", false, "stop at an RBSP stop bit (0x80) between SEI messages")
	flag.StringVar(&opts.Codec, "codec", "auto", "codec for files without a known extension (h264, h265, auto)")
	flag.BoolVar(&opts.Version, "version", false, "print version")

	flag.Usage = func() {
		parts := strings.Split(os.Args[0], "/")
		name := parts[len(parts)-1]
		fmt.Fprintf(os.Stderr, usg, name, name)
		fmt.Fprintf(os.Stderr, "\nRun as: %s [options] file.flv (- for stdin) with options:\n\n", name)
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func main() {
	o, inFile := internal.ParseParams(parseOptions)
	err := internal.Execute(os.Stdout, o, inFile, internal.ExtractAll)
	if err != nil {
		nazalog.Fatalf("extract failed. err=%+v", err)
	}
}
