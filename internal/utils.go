package internal

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/q191201771/naza/pkg/nazalog"
)

type Options struct {
	Version      bool
	Indent       bool
	ShowHex      bool
	ShowSummary  bool
	StrictText   bool
	StopBitCheck bool
	Codec        string
}

func CreateFullOptions() Options {
	return Options{ShowHex: true, ShowSummary: true}
}

func (o Options) decoderOptions() DecoderOptions {
	return DecoderOptions{StopBitCheck: o.StopBitCheck, StrictText: o.StrictText}
}

type OptionParseFunc func() Options
type RunableFunc func(ctx context.Context, w io.Writer, name string, f io.Reader, o Options) error

// ExtractAll reads the whole input, parses it according to the file name's
// extension, and prints every decoded SEI record as a JSON line, followed
// by the summary when enabled.
func ExtractAll(ctx context.Context, w io.Writer, name string, f io.Reader, o Options) error {
	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("reading input %w", err)
	}
	report, err := ParseBytes(ctx, name, data, o)
	if err != nil {
		return err
	}
	jp := &JsonPrinter{W: w, Indent: o.Indent}
	for _, rec := range report.Records {
		jp.PrintRecord(rec, o.ShowHex)
	}
	jp.PrintSummary(report, o.ShowSummary)
	return jp.Error()
}

func ParseParams(function OptionParseFunc) (o Options, inFile string) {
	o = function()
	if o.Version {
		fmt.Printf("sei-extract version %s\n", GetVersion())
		os.Exit(0)
	}
	if len(flag.Args()) < 1 {
		flag.Usage()
		os.Exit(1)
	}
	inFile = flag.Args()[0]
	return o, inFile
}

func Execute(w io.Writer, o Options, inFile string, function RunableFunc) error {
	// Create a cancellable context in case you want to stop parsing any time you want
	ctx, cancel := context.WithCancel(context.Background())
	// Handle SIGTERM signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT)
	go func() {
		<-ch
		cancel()
	}()

	var f io.Reader
	if inFile == "-" {
		f = os.Stdin
	} else {
		fh, err := os.Open(inFile)
		if err != nil {
			nazalog.Fatalf("opening input: %v", err)
		}
		f = fh
		defer fh.Close()
	}

	return function(ctx, w, inFile, f, o)
}
