// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"triorng-core/cascade"
	"triorng-core/rngerr"

	"triorng/internal/cli"
	"triorng/internal/config"
	"triorng/internal/logging"
	"triorng/internal/output"
	"triorng/internal/writers"
)

// Exit codes: 0 success, 1 generation failure, 2 usage/config error,
// 3 output write failure. Broken pipes exit 0 so `triorng | head` stays quiet.
const (
	exitOK    = 0
	exitRun   = 1
	exitUsage = 2
	exitWrite = 3
)

// writeError marks a failure while rendering the report.
type writeError struct{ err error }

func (e *writeError) Error() string { return e.err.Error() }
func (e *writeError) Unwrap() error { return e.err }

// Run executes the CLI with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv, runs the cascade, and renders the report to stdout.
// Diagnostics and errors go to stderr.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	cmd := cli.New(func(cmd *cobra.Command, opts *cli.Options) error {
		return generate(cmd, opts, outw, stderr)
	})
	cmd.SetArgs(argv)
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		var uerr *cli.UsageError
		var werr *writeError
		switch {
		case writers.IsBrokenPipe(err):
			return exitOK
		case errors.As(err, &werr):
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitWrite
		case errors.As(err, &uerr), rngerr.IsKind(err, rngerr.KindInvalidParameter):
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitUsage
		case rngerr.IsKind(err, rngerr.KindSimulation):
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitRun
		default:
			// cobra flag-parse failures land here
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitUsage
		}
	}

	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return exitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitWrite
	}
	return exitOK
}

// generate is the RunE body: resolve defaults, execute the cascade, render.
func generate(cmd *cobra.Command, opts *cli.Options, outw io.Writer, stderr io.Writer) error {
	if opts.InitConfig != "" {
		if err := config.WriteDefault(opts.InitConfig); err != nil {
			return &cli.UsageError{Err: err}
		}
		_, err := fmt.Fprintf(outw, "wrote default config to %s\n", opts.InitConfig)
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return &cli.UsageError{Err: err}
	}
	applyDefaults(cmd, opts, cfg)

	if opts.Output != "text" && opts.Output != "json" {
		return &cli.UsageError{Err: fmt.Errorf("invalid --output %q (valid: text, json)", opts.Output)}
	}
	stages, err := opts.Stages()
	if err != nil {
		return err
	}

	logger := logging.New(stderr, opts.Verbose)
	defer func() { _ = logger.Sync() }()

	runID := uuid.New().String()
	logger.Debug("generation starting",
		zap.String("run_id", runID),
		zap.Int("bits", opts.Bits),
		zap.String("cascade", opts.Cascade),
		zap.Bool("seeded", opts.SeedSet),
	)

	final, results, err := cascade.NewDefault().Execute(opts.Bits, stages, opts.SeedPtr())
	if err != nil {
		return err
	}
	for _, r := range results {
		logger.Debug("stage complete",
			zap.String("run_id", runID),
			zap.String("stage", r.Stage.String()),
			zap.Int("bits", r.Bits.Len()),
			zap.String("hex", r.Hex),
		)
	}

	report := output.ToReport(opts.Bits, stages, opts.SeedPtr(), final, results, opts.Verbose)
	if err := writers.WriteReport(opts.Output, outw, report); err != nil {
		return &writeError{err: err}
	}
	return nil
}

// applyDefaults fills flags the user did not set from the resolved config.
func applyDefaults(cmd *cobra.Command, opts *cli.Options, cfg config.Config) {
	if !cli.Changed(cmd, "bits") {
		opts.Bits = cfg.Bits
	}
	if !cli.Changed(cmd, "cascade") {
		opts.Cascade = cfg.Cascade
	}
	if !cli.Changed(cmd, "output") {
		opts.Output = cfg.Output
	}
	if !cli.Changed(cmd, "verbose") {
		opts.Verbose = cfg.Verbose
	}
}
