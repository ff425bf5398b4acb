package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/kisom/goutils/die"

	"diskarm/src/config"
	"diskarm/src/report"
	"diskarm/src/sim"
	"diskarm/src/simerr"
	"diskarm/src/utils"
)

func main() {
	code, err := run(os.Args[1:], os.Stdout, os.Stderr)
	die.If(err)
	os.Exit(code)
}

// run executes the CLI and returns the exit code. The error is reserved for
// failures writing the output; simulation errors are reported on stdout.
func run(args []string, stdout, stderr io.Writer) (int, error) {
	var opts options
	fs := flag.NewFlagSet("diskarm", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprint(stdout, usage)
		fs.PrintDefaults()
	}
	fs.BoolVar(&opts.compare, "compare", false, "run every algorithm and print a comparison table")
	fs.StringVar(&opts.format, "format", "line", "output format for a single run: line or detail")
	fs.BoolVar(&opts.lenient, "lenient", false, "coerce malformed numbers to their leading digits (or 0) instead of failing")
	fs.BoolVar(&opts.strictBounds, "strict-bounds", false, "reject heads and requests outside the disk")
	fs.BoolVar(&opts.random, "random", false, "generate a random request set instead of reading requests")
	fs.Uint64Var(&opts.seed, "seed", 0, "seed for -random (0 picks one from the clock)")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0, nil
		}
		return 1, nil
	}

	level, err := utils.ParseLevel(opts.logLevel)
	if err != nil {
		_, werr := fmt.Fprintf(stdout, "invalid log level %q\n", opts.logLevel)
		return 1, werr
	}
	utils.InitLogger(stderr, level)

	if opts.format != "line" && opts.format != "detail" {
		_, werr := fmt.Fprintf(stdout, "unknown format %q\n", opts.format)
		return 1, werr
	}

	alg, q, err := parseArgs(fs.Args(), opts)
	if err != nil {
		return fail(stdout, err)
	}

	s := sim.New(config.LoadGeometry(logr.FromSlogHandler(slog.Default().Handler())))

	if opts.random {
		if q.DiskSize == 0 {
			q.DiskSize = s.Geometry.Cylinders
		}
		seed := opts.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		q.Requests = sim.RandomRequests(rand.New(rand.NewPCG(seed, seed)), q.DiskSize)
		slog.Info("Generated random requests", "seed", seed, "requests", q.Requests)
	}

	if opts.strictBounds {
		if err := s.ValidateBounds(q); err != nil {
			return fail(stdout, err)
		}
	}

	if opts.compare {
		results, best, err := s.Compare(context.Background(), q)
		if err != nil {
			return fail(stdout, err)
		}
		report.Table(stdout, results, best)
		return 0, nil
	}

	res, err := s.Run(alg, q)
	if err != nil {
		return fail(stdout, err)
	}
	if opts.format == "detail" {
		return 0, report.Detail(stdout, res)
	}
	_, err = fmt.Fprintln(stdout, report.Line(res))
	return 0, err
}

// fail prints err, plus the usage text for usage errors, and returns exit code 1.
func fail(w io.Writer, err error) (int, error) {
	slog.Debug("Simulation rejected", "code", simerr.CanonicalCode(err), "error", err)
	msg := err.Error() + "\n"
	if simerr.CanonicalCode(err) == simerr.Usage {
		msg += usage
	}
	_, werr := io.WriteString(w, msg)
	return simerr.ExitCode(err), werr
}
