package dijkstra

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrUnreachable indicates that no route satisfying the movement policy
	// reaches the target. It is never reported as a zero cost.
	ErrUnreachable = errors.New("dijkstra: target unreachable under movement constraints")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// State is a node of the augmented search graph.
//
// Run counts consecutive moves in direction Dir. Run 0 marks an origin that
// has not moved yet; under a FreeStart policy its Dir carries no meaning.
type State struct {
	Pos gridgraph.Position
	Dir gridgraph.Direction
	Run int
}

// Stats reports how much work a search did.
type Stats struct {
	Settled      int // states finalized
	Pushed       int // frontier pushes, seeds included
	Stale        int // pops discarded because the state was already settled
	PeakFrontier int // largest frontier size observed
}

// Result is the outcome of a successful search.
type Result struct {
	Cost  int                  // minimal total cost of entered cells
	Final State                // state in which the route reached the target
	Path  []gridgraph.Position // start..target inclusive; nil unless WithReturnPath
	Stats Stats
}

// Options configures Search.
//
// ReturnPath    – if true, Result.Path holds the optimal route.
// TerminalGuard – if true, a route may only end with a run ≥ RunMin.
// MaxCost       – entries costlier than this are never expanded. Default math.MaxInt.
// Context       – polled between pops; cancellation aborts the search.
// Logger        – receives one Debug record per search; nil disables logging.
type Options struct {
	ReturnPath    bool
	TerminalGuard bool
	MaxCost       int
	Context       context.Context
	Logger        *slog.Logger
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithReturnPath enables route reconstruction in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithTerminalGuard toggles the minimum-run requirement at the target.
// Disabling it accepts the first settled target state whatever its run.
func WithTerminalGuard(on bool) Option {
	return func(o *Options) {
		o.TerminalGuard = on
	}
}

// WithMaxCost sets a cost ceiling. States whose cost exceeds it are not
// expanded; if the target is not reached within it, Search reports ErrUnreachable.
// Panics on a negative ceiling.
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithContext installs a context checked between frontier pops.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Context = ctx
	}
}

// WithLogger installs a logger for the per-search Debug summary.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the Options used when no Option is given.
//
// Defaults:
//   - ReturnPath:    false.
//   - TerminalGuard: true.
//   - MaxCost:       math.MaxInt (no ceiling).
//   - Context:       context.Background().
//   - Logger:        nil (silent).
func DefaultOptions() Options {
	return Options{
		ReturnPath:    false,
		TerminalGuard: true,
		MaxCost:       math.MaxInt,
		Context:       context.Background(),
	}
}
