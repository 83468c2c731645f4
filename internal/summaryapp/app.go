// internal/summaryapp/app.go
package summaryapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"crypticsj-core/errs"
	"crypticsj/internal/output"
	"crypticsj/internal/pipeline"
	"crypticsj/internal/summarize"
	"crypticsj/internal/summarycli"
	"crypticsj/internal/version"
	"crypticsj/internal/writers"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RunContext runs the pipeline and emits the per-gene summary table.
// Exit codes match the main tool: 0 ok, 2 usage/configuration, 3 runtime.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := summarycli.NewFlagSet("sjsummary")
	fs.SetOutput(io.Discard)

	opts, err := summarycli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "sjsummary version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if opts.Quiet {
		log.SetLevel(logrus.WarnLevel)
	}
	if opts.LogJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	runID := uuid.NewString()

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	verdicts, rejects, stats, err := pipeline.Run(parent, pipeline.Config{
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

	rows := summarize.PerGene(verdicts)
	switch opts.Output {
	case output.FormatJSON:
		err = output.WriteSummaryJSON(outw, rows)
	default:
		err = output.WriteSummaryTSV(outw, rows, opts.Header)
	}
	if writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	log.WithFields(logrus.Fields{
		"run_id":        runID,
		"rows_loaded":   stats.RowsLoaded,
		"rows_rejected": stats.RowsRejected,
		"genes":         len(rows),
		"cryptic":       stats.Cryptic,
		"rescued":       stats.Rescued,
	}).Info("summary run complete")
	return 0
}

// Run is the context-free wrapper used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
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
