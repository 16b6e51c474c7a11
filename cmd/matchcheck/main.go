// Package main provides the matchcheck CLI.
//
// matchcheck runs YAML case files: every case tests a value against a pattern
// through one of the matches entry points and compares the outcome, the
// bindings and the failure message with what the case expects.
//
//	matchcheck [-v] [-q] [-j N] file.yaml...
//
// Exit status is 0 when every case passes, 1 when a case fails or a file is
// invalid, and 2 on usage errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/lmittmann/tint"
	"github.com/sourcegraph/conc/pool"

	"matches/internal/casefile"
	"matches/internal/common"
	"matches/internal/diagnostic"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	defaultJobs = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, nil))
}

type options struct {
	verbose bool
	quiet   bool
	jobs    int
	files   []string
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("matchcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.verbose, "v", false, "print failure messages of passing cases and debug logs")
	fs.BoolVar(&opts.quiet, "q", false, "print only failing cases and the summary")
	fs.IntVar(&opts.jobs, "j", defaultJobs, "number of files checked in parallel")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: matchcheck [-v] [-q] [-j N] file.yaml...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.files = fs.Args()

	switch {
	case len(opts.files) == 0:
		fs.Usage()
		return opts, fmt.Errorf("no case files given")
	case opts.jobs < 1:
		return opts, fmt.Errorf("-j must be at least 1, got %d", opts.jobs)
	case opts.verbose && opts.quiet:
		return opts, fmt.Errorf("-v and -q are mutually exclusive")
	}

	return opts, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		NoColor: runtime.GOOS == "windows",
		Level:   level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}

			return a
		},
	}))
}

// fileReport is the outcome of checking one case file.
type fileReport struct {
	path     string
	err      error
	issues   *diagnostic.Diagnostics
	verdicts []casefile.Verdict
}

// run is main without the process exit. A nil logger logs to stderr.
func run(args []string, stdout, stderr io.Writer, logger *slog.Logger) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "matchcheck:", err)
		return exitUsage
	}

	if logger == nil {
		logger = newLogger(stderr, opts.verbose)
	}

	reports := make([]fileReport, len(opts.files))

	p := pool.New().WithMaxGoroutines(opts.jobs)

	for i, path := range opts.files {
		p.Go(func() {
			reports[i] = checkFile(path, logger)
		})
	}

	p.Wait()

	var total, failed int

	code := exitOK

	for _, r := range reports {
		if r.err != nil || r.issues.HasErrors() {
			code = exitFailed
			continue
		}

		for _, v := range r.verdicts {
			total++

			if !v.Passed {
				failed++
				code = exitFailed
			}

			printVerdict(stdout, r.path, v, opts)
		}
	}

	fmt.Fprintf(stdout, "%d %s, %d failed\n", total, common.Plural(total, "case"), failed)

	return code
}

func checkFile(path string, logger *slog.Logger) fileReport {
	r := fileReport{path: path}

	f, err := casefile.LoadFile(path)
	if err != nil {
		logger.Error("cannot load case file", "file", path, "err", err)
		r.err = err

		return r
	}

	logger.Debug("loaded case file", "file", path, "cases", len(f.Cases))

	r.issues = casefile.Validate(f)

	for _, i := range r.issues.Warnings {
		logger.Warn(i.String(), "file", path)
	}

	if r.issues.HasErrors() {
		for _, i := range r.issues.Errors {
			logger.Error(i.String(), "file", path)
		}

		return r
	}

	r.verdicts = casefile.RunFile(f)

	return r
}

func printVerdict(w io.Writer, path string, v casefile.Verdict, opts options) {
	if v.Passed {
		if opts.quiet {
			return
		}

		fmt.Fprintf(w, "PASS  %s  %s\n", path, v.Case)

		if opts.verbose && v.Diagnostic != "" {
			fmt.Fprintf(w, "      %s\n", v.Diagnostic)
		}

		return
	}

	fmt.Fprintf(w, "FAIL  %s  %s: %s\n", path, v.Case, v.Reason)

	if v.Diagnostic != "" {
		fmt.Fprintf(w, "      %s\n", v.Diagnostic)
	}
}
