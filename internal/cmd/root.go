// Package cmd wires the sitwatch command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stigoleg/sitwatch/internal/config"
	"github.com/stigoleg/sitwatch/internal/lock"
	"github.com/stigoleg/sitwatch/internal/posture"
	"github.com/stigoleg/sitwatch/internal/ui"
	"github.com/stigoleg/sitwatch/internal/util"
)

const appName = "sitwatch"

// ErrNoTerminal is returned when the TUI is started without a terminal.
var ErrNoTerminal = errors.New("sitwatch needs a terminal; use 'sitwatch watch' for headless mode")

type rootOptions struct {
	configPath  string
	maxSitting  string
	maxStanding string
	tick        string
	debugLog    string
	lockPath    string
}

// Execute runs the root command and returns the process exit code.
func Execute(version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals()...)
	defer stop()

	root := NewRootCmd(version)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, config.FormatError(err))
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree.
func NewRootCmd(version string) *cobra.Command {
	root, _ := newRootCmd(version)
	return root
}

func newRootCmd(version string) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Track how long you sit versus stand",
		Long: `sitwatch tracks how long you have been sitting and standing and warns
you once you have been sitting longer than the configured limit.

Switching posture restarts the timer of the posture you leave.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
	root.SetVersionTemplate("Sitwatch Version: {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default: user config dir)")
	flags.StringVarP(&opts.maxSitting, "max-sitting", "s", "", "Sitting limit before the warning (e.g., \"30m\")")
	flags.StringVar(&opts.maxStanding, "max-standing", "", "Standing limit shown on the progress bar (e.g., \"30m\")")
	flags.StringVar(&opts.tick, "tick", "", "Tick interval (e.g., \"10ms\")")
	flags.StringVar(&opts.debugLog, "debug-log", "", "Write debug log to this file")
	flags.StringVar(&opts.lockPath, "lock-file", "", "Single-instance lock file (default: user cache dir)")

	root.AddCommand(newWatchCmd(opts), newVersionCmd())
	return root, opts
}

// resolve loads the config file and applies flag overrides.
func (o *rootOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath, false)
	} else {
		var path string
		path, err = config.DefaultPath(appName)
		if err != nil {
			return cfg, err
		}
		cfg, err = config.Load(path, true)
	}
	if err != nil {
		return cfg, err
	}

	overrides := []struct {
		flag   string
		value  string
		target *time.Duration
	}{
		{"max-sitting", o.maxSitting, &cfg.MaxSitting},
		{"max-standing", o.maxStanding, &cfg.MaxStanding},
		{"tick", o.tick, &cfg.TickInterval},
	}
	for _, ov := range overrides {
		if !cmd.Flags().Changed(ov.flag) {
			continue
		}
		d, err := util.ParseDuration(ov.value)
		if err != nil {
			return cfg, fmt.Errorf("--%s: %w", ov.flag, err)
		}
		*ov.target = d
	}
	if cmd.Flags().Changed("debug-log") {
		cfg.DebugLog = o.debugLog
	}
	return cfg, cfg.Validate()
}

func (o *rootOptions) acquireLock() (*lock.InstanceGuard, error) {
	path := o.lockPath
	if path == "" {
		var err error
		path, err = lock.DefaultPath(appName)
		if err != nil {
			return nil, err
		}
	}
	guard, err := lock.Acquire(path, 0)
	if err != nil {
		return nil, err
	}
	log.Printf("lock: holding %s", guard.Path())
	return guard, nil
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty. The returned closer is never nil.
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(strings.NewReader("")), nil
	}
	f, err := tea.LogToFile(path, appName)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return f, nil
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
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

	timer := posture.New(posture.SystemClock{}, cfg.Thresholds())
	model := ui.InitialModel(timer, ui.Options{
		TickInterval: cfg.TickInterval,
		Version:      cmd.Root().Version,
		Usage:        cmd.Root().Flags().FlagUsages(),
	})

	log.Printf("ui: starting (max sitting=%s, tick=%s)", cfg.MaxSitting, cfg.TickInterval)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
