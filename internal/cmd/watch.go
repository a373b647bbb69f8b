package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/stigoleg/sitwatch/internal/posture"
	"github.com/stigoleg/sitwatch/internal/runner"
	"github.com/stigoleg/sitwatch/internal/ui"
	"github.com/stigoleg/sitwatch/internal/util"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var report string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Track posture without the TUI, reading commands from stdin",
		Long: `watch runs the posture timer headless. Commands are read one per line:

  t, toggle   switch posture
  r, reset    zero both timers and sit
  q, quit     exit

A status line is printed every --report interval, on every posture change,
and when the sitting warning first fires.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			every, err := util.ParseDuration(report)
			if err != nil {
				return fmt.Errorf("--report: %w", err)
			}
			return runWatch(cmd, opts, every)
		},
	}
	cmd.Flags().StringVar(&report, "report", "1s", "Status line interval; 0 prints only on changes")
	return cmd
}

func runWatch(cmd *cobra.Command, opts *rootOptions, every time.Duration) error {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return err
	}

	logFile, err := setupLogging(cfg.DebugLog)
	if err != nil {
		return err
	}
	defer logFile.Close()

	guard, err := opts.acquireLock()
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	out := cmd.OutOrStdout()
	thresholds := cfg.Thresholds()
	timer := posture.New(posture.SystemClock{}, thresholds)
	r := runner.New(timer, runner.Options{
		TickInterval:   cfg.TickInterval,
		ReportInterval: every,
		OnReport: func(rep runner.Report) {
			fmt.Fprintln(out, FormatReport(rep, thresholds))
		},
	})

	ctx := cmd.Context()
	if err := r.Start(ctx); err != nil {
		return err
	}

	lines := readLines(cmd.InOrStdin(), r.Done())
	for {
		select {
		case <-r.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return r.Stop()
			}
			event, quit, known := parseCommand(line)
			switch {
			case quit:
				return r.Stop()
			case !known:
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown command %q (use t, r or q)\n", line)
			case event != nil:
				if err := r.Send(ctx, event); err != nil {
					_ = r.Stop()
					return sendError(err)
				}
			}
		}
	}
}

// sendError drops the errors that only mean the loop is shutting down.
func sendError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, runner.ErrNotRunning) {
		return nil
	}
	return fmt.Errorf("send event: %w", err)
}

// parseCommand maps an input line to an event. Blank lines are known and
// carry no event.
func parseCommand(line string) (event posture.Event, quit, known bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return nil, false, true
	case "t", "toggle":
		return posture.Toggle{}, false, true
	case "r", "reset":
		return posture.Reset{}, false, true
	case "q", "quit", "exit":
		return nil, true, true
	default:
		return nil, false, false
	}
}

func readLines(in io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}

// FormatReport renders a runner report as a single status line.
func FormatReport(rep runner.Report, th posture.Thresholds) string {
	line := fmt.Sprintf("%s %-8s %-8s sitting=%s standing=%s",
		rep.At.Format("15:04:05"),
		rep.Reason,
		rep.Posture,
		util.FormatClock(rep.Sitting),
		util.FormatClock(rep.Standing),
	)
	if rep.Warning {
		line += " ! " + ui.WarningMessage(th.MaxSitting)
	}
	return line
}
