package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/internal/config"
	"github.com/katalvlaran/crucible/internal/ctxlog"
	"github.com/katalvlaran/crucible/movement"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// options holds the raw flag values.
type options struct {
	configPath      string
	modes           []string
	runMin          int
	runMax          int
	printPath       bool
	noTerminalGuard bool
	logLevel        string
	logFormat       string
}

// NewCommand builds the root command. Input is read from stdin when no file
// argument (or "-") is given.
func NewCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "crucible [flags] [GRID_FILE|-]",
		Short: "Minimum-cost route across a digit grid under run-length limits",
		Long: `crucible reads a rectangular block of digits (one cost per cell) and prints the
minimum total cost of travelling from the top-left to the bottom-right cell.

The traveller never reverses, and must respect the selected mode's bounds on
consecutive moves in one direction:
  short   may turn after 1 step, must turn after 3
  long    may not turn before 4 steps, must turn after 10

Further modes can be defined in an HCL config file (--config) or ad hoc with
--run-min/--run-max.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Path to an HCL config file.")
	f.StringSliceVarP(&opts.modes, "mode", "m", []string{movement.ShortRun.Name, movement.LongRun.Name}, "Modes to solve (repeatable or comma-separated).")
	f.IntVar(&opts.runMin, "run-min", 0, "Ad hoc mode: consecutive moves required before a turn.")
	f.IntVar(&opts.runMax, "run-max", 0, "Ad hoc mode: consecutive moves allowed before a turn is forced.")
	f.BoolVarP(&opts.printPath, "path", "p", false, "Print the optimal route under each result.")
	f.BoolVar(&opts.noTerminalGuard, "no-terminal-guard", false, "Accept routes that end before completing the minimum run.")
	f.StringVar(&opts.logLevel, "log-level", "warn", "Logging level: debug, info, warn or error.")
	f.StringVar(&opts.logFormat, "log-format", "text", "Log output format: text or json.")

	return cmd
}

// Execute runs the command with args and maps every failure to an *ExitError.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := NewCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return usageError("%v", err)
}

// run resolves settings, loads the grid and solves every selected mode.
func run(cmd *cobra.Command, opts *options, args []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	var cfg *config.Config
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(ctx, opts.configPath); err != nil {
			return usageError("%v", err)
		}
	}

	// Flags win over the config file, which wins over flag defaults.
	level, format, guard := opts.logLevel, opts.logFormat, !opts.noTerminalGuard
	modes := opts.modes
	if cfg != nil {
		if cfg.LogLevel != nil && !flags.Changed("log-level") {
			level = *cfg.LogLevel
		}
		if cfg.LogFormat != nil && !flags.Changed("log-format") {
			format = *cfg.LogFormat
		}
		if cfg.TerminalGuard != nil && !flags.Changed("no-terminal-guard") {
			guard = *cfg.TerminalGuard
		}
		if len(cfg.Select) > 0 && !flags.Changed("mode") {
			modes = cfg.Select
		}
	}

	logger, err := newLogger(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return usageError("%v", err)
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	policies, err := resolvePolicies(cfg, modes, opts, flags.Changed("run-min") || flags.Changed("run-max"))
	if err != nil {
		return usageError("%v", err)
	}

	lines, source, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return usageError("%v", err)
	}
	g, err := gridgraph.Parse(lines)
	if err != nil {
		return usageError("%s: %v", source, err)
	}
	logger.Info("Grid loaded.", "source", source, "rows", g.Height, "cols", g.Width)

	searchOpts := []dijkstra.Option{
		dijkstra.WithContext(ctx),
		dijkstra.WithLogger(logger),
		dijkstra.WithTerminalGuard(guard),
	}
	if opts.printPath {
		searchOpts = append(searchOpts, dijkstra.WithReturnPath())
	}

	out := cmd.OutOrStdout()
	var unreachable []string
	for _, p := range policies {
		res, err := dijkstra.Search(g, p, searchOpts...)
		switch {
		case errors.Is(err, dijkstra.ErrUnreachable):
			fmt.Fprintf(out, "%s: unreachable\n", p.Name)
			unreachable = append(unreachable, p.Name)
			continue
		case err != nil:
			return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%s: %v", p.Name, err)}
		}
		fmt.Fprintf(out, "%s: %d\n", p.Name, res.Cost)
		if opts.printPath {
			fmt.Fprintf(out, "  route: %s\n", formatPath(res.Path))
		}
	}

	if len(unreachable) > 0 {
		return &ExitError{
			Code:    ExitFailure,
			Message: fmt.Sprintf("no route satisfies mode(s): %s", strings.Join(unreachable, ", ")),
		}
	}
	return nil
}

// resolvePolicies maps mode names to policies and appends the ad hoc mode.
func resolvePolicies(cfg *config.Config, names []string, opts *options, adHoc bool) ([]movement.Policy, error) {
	var out []movement.Policy
	if adHoc {
		p, err := movement.New("custom", opts.runMin, opts.runMax)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		p, err := cfg.Policy(name)
		if errors.Is(err, movement.ErrUnknownMode) {
			known := append([]string{movement.ShortRun.Name, movement.LongRun.Name}, cfg.ModeNames()...)
			return nil, fmt.Errorf("%w (known modes: %s)", err, strings.Join(known, ", "))
		}
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, errors.New("no modes selected")
	}
	return out, nil
}

// readInput loads the grid lines from the named file or stdin.
func readInput(stdin io.Reader, args []string) ([]string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		lines, err := gridgraph.ReadLines(stdin)
		return lines, "stdin", err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, args[0], err
	}
	defer f.Close()
	lines, err := gridgraph.ReadLines(f)
	return lines, args[0], err
}

// newLogger builds the process logger from validated settings.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	if err := config.ValidateLogLevel(level); err != nil {
		return nil, err
	}
	if err := config.ValidateLogFormat(format); err != nil {
		return nil, err
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}
	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

func formatPath(path []gridgraph.Position) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
