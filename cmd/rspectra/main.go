// Command rspectra computes response spectra for the acceleration histories
// listed in a run file.
//
// Usage:
//
//	rspectra -config run.yaml [flags]
//
// Spectra are written as CSV (one column per output vector) or Parquet (one
// row per history and frequency). With -summary a table of peak spectral
// values and ground-motion measures is printed to stderr.
//
// Examples:
//
//	rspectra -config run.yaml
//	rspectra -config run.yaml -out spectra.csv -summary
//	rspectra -config run.yaml -format parquet -out spectra.parquet
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-rspectra/export"
	"github.com/cwbudde/algo-rspectra/internal/config"
	"github.com/cwbudde/algo-rspectra/measure/calculator"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	config  string
	out     string
	format  string
	summary bool
	verbose bool
	workers int
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("rspectra", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.config, "config", "", "run file (YAML)")
	fs.StringVar(&o.out, "out", "-", "output file, - for stdout")
	fs.StringVar(&o.format, "format", "", "output format: csv or parquet (default from -out extension, else csv)")
	fs.BoolVar(&o.summary, "summary", false, "print peak values and ground-motion measures to stderr")
	fs.BoolVar(&o.verbose, "v", false, "verbose (development) logging")
	fs.IntVar(&o.workers, "workers", 0, "override the run file's worker count")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rspectra -config run.yaml [flags]\n\n")
		fmt.Fprintf(stderr, "Computes response spectra for the histories of a run file.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  rspectra -config run.yaml -out spectra.csv -summary\n")
		fmt.Fprintf(stderr, "  rspectra -config run.yaml -format parquet -out spectra.parquet\n")
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.config == "" {
		fs.Usage()
		return o, errors.New("missing -config")
	}

	if o.format == "" {
		o.format = "csv"
		if strings.HasSuffix(strings.ToLower(o.out), ".parquet") {
			o.format = "parquet"
		}
	}
	o.format = strings.ToLower(o.format)
	if o.format != "csv" && o.format != "parquet" {
		return o, fmt.Errorf("unknown format %q", o.format)
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	log, err := newLogger(o.verbose)
	if err != nil {
		fmt.Fprintf(stderr, "error: logger: %v\n", err)
		return exitFailure
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := compute(ctx, o, log)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if calculator.IsConfigError(err) {
			return exitUsage
		}
		return exitFailure
	}

	if err := write(o, res, stdout); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}

	if o.summary {
		if err := printSummary(stderr, res); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitFailure
		}
	}
	return exitOK
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func compute(ctx context.Context, o options, log *zap.Logger) (*calculator.Result, error) {
	runFile, err := config.Load(o.config)
	if err != nil {
		return nil, err
	}

	opts := []calculator.Option{calculator.WithLogger(log)}
	if o.workers > 0 {
		opts = append(opts, calculator.WithWorkers(o.workers))
	}
	cfg, err := runFile.CalculatorConfig(opts...)
	if err != nil {
		return nil, err
	}

	c := calculator.NewWithConfig(cfg)
	if err := c.Setup(config.NewProvider(runFile)); err != nil {
		return nil, err
	}
	return c.Run(ctx)
}

func write(o options, res *calculator.Result, stdout io.Writer) (err error) {
	w := stdout
	if o.out != "-" {
		f, cerr := os.Create(o.out)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	if o.format == "parquet" {
		return export.WriteParquet(w, res)
	}
	return export.WriteCSV(w, res)
}

func printSummary(w io.Writer, res *calculator.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "History\tPeak Sa\tat T [s]\tPGA\tArias\tD5-95 [s]\tCAV\tTm [s]\n")
	fmt.Fprintf(tw, "-------\t-------\t--------\t---\t-----\t---------\t---\t------\n")

	for _, name := range res.Names {
		i, sa := res.Spectra[name].PeakSa()
		m := res.Motion[name]
		fmt.Fprintf(tw, "%s\t%.4g\t%.3f\t%.4g\t%.4g\t%.2f\t%.4g\t%.3f\n",
			name,
			sa,
			res.Grid.Period[i],
			m.PGA,
			m.AriasIntensity,
			m.SignificantDuration,
			m.CAV,
			m.MeanPeriod,
		)
	}
	fmt.Fprintf(tw, "\nrun %s: %d histories, %d frequencies\n", res.RunID, len(res.Names), res.Grid.Len())
	return tw.Flush()
}
