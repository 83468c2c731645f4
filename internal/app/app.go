// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"crypticsj-core/errs"
	"crypticsj-core/filter"
	"crypticsj/internal/cli"
	"crypticsj/internal/output"
	"crypticsj/internal/pipeline"
	"crypticsj/internal/version"
	"crypticsj/internal/writers"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RunContext runs the full filter pipeline for one CLI invocation.
// Exit codes: 0 ok, 2 usage/configuration, 3 runtime/write, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("crypticsj")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "crypticsj version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	log := newLogger(stderr, opts.Quiet, opts.LogJSON)
	runID := uuid.NewString()
	log.WithFields(logrus.Fields{
		"run_id":       runID,
		"junctions":    opts.JunctionFiles,
		"reference":    opts.Reference,
		"min_reads":    opts.MinReads,
		"min_fold":     opts.MinFold,
		"max_retained": opts.MaxRetained,
		"pseudocount":  opts.Pseudocount,
	}).Info("starting filter run")

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	verdicts, rejects, stats, err := pipeline.Run(ctx, pipeline.Config{
		JunctionFiles: opts.JunctionFiles,
		Reference:     opts.Reference,
		RefFormat:     opts.RefFormat,
		Filter:        opts.FilterConfig(),
		Threads:       threads,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		log.WithField("run_id", runID).Error(err)
		var ce *errs.ConfigurationError
		if errors.As(err, &ce) {
			return 2
		}
		return 3
	}

	if opts.RejectLog != "" {
		if err := output.WriteRejectFile(opts.RejectLog, rejects); err != nil {
			log.WithField("run_id", runID).Error(err)
			return 3
		}
	}

	final := filter.Final(verdicts)

	inCh, writeErr := writers.StartResultWriter(outw, opts.Output, opts.Header, threads*4)
send:
	for _, v := range final {
		select {
		case inCh <- output.ToAPIResult(v):
		case <-ctx.Done():
			break send
		}
	}
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	if ctx.Err() != nil {
		return 130
	}

	// The reject count is part of every successful run report so invalid
	// rows can never disappear silently.
	log.WithFields(logrus.Fields{
		"run_id":        runID,
		"rows_loaded":   stats.RowsLoaded,
		"rows_rejected": stats.RowsRejected,
		"junctions":     stats.Junctions,
		"reference":     stats.Reference,
		"cryptic":       stats.Cryptic,
		"knockdown_up":  stats.KnockdownUp,
		"rescued":       stats.Rescued,
	}).Info("filter run complete")
	if stats.RowsRejected > 0 {
		sample := rejects[0]
		log.WithFields(logrus.Fields{
			"run_id": runID,
			"count":  stats.RowsRejected,
			"sample": fmt.Sprintf("%s:%d [%s] %s", sample.File, sample.Line, sample.Code, sample.Reason),
		}).Warn("rows excluded by the loader")
	}
	return 0
}

// Run is the context-free wrapper used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newLogger(stderr io.Writer, quiet, jsonFmt bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(stderr)
	if jsonFmt {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	if quiet {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
