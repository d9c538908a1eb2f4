package movement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/crucible/gridgraph"
)

var (
	// ErrBadRunBounds indicates RunMin < 1 or RunMin > RunMax.
	ErrBadRunBounds = errors.New("movement: run bounds must satisfy 1 <= min <= max")
	// ErrUnknownMode indicates a policy name that Lookup does not know.
	ErrUnknownMode = errors.New("movement: unknown mode")
)

// Policy is a named pair of run-length bounds.
type Policy struct {
	Name   string
	RunMin int // consecutive moves required before a turn
	RunMax int // consecutive moves allowed before a turn is forced
}

var (
	// ShortRun may turn after 1 step and must turn after 3.
	ShortRun = Policy{Name: "short", RunMin: 1, RunMax: 3}
	// LongRun may not turn before 4 steps and must turn after 10.
	LongRun = Policy{Name: "long", RunMin: 4, RunMax: 10}
)

// New returns a validated Policy.
func New(name string, runMin, runMax int) (Policy, error) {
	p := Policy{Name: name, RunMin: runMin, RunMax: runMax}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// Lookup resolves a predefined policy by name, case-insensitively.
func Lookup(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case ShortRun.Name:
		return ShortRun, nil
	case LongRun.Name:
		return LongRun, nil
	}
	return Policy{}, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Validate reports ErrBadRunBounds for unusable bounds.
func (p Policy) Validate() error {
	if p.RunMin < 1 || p.RunMin > p.RunMax {
		return fmt.Errorf("%w: got min=%d max=%d", ErrBadRunBounds, p.RunMin, p.RunMax)
	}
	return nil
}

// FreeStart reports whether the first move is unconstrained.
func (p Policy) FreeStart() bool { return p.RunMin <= 1 }

// InitialHeadings lists the headings the origin is seeded with when the policy
// is not FreeStart: towards the interior of the grid from its top-left corner.
func (p Policy) InitialHeadings() []gridgraph.Direction {
	if p.FreeStart() {
		return nil
	}
	return []gridgraph.Direction{gridgraph.Right, gridgraph.Down}
}

// Allowed appends to dst the directions a traveller may take next and
// returns the extended slice. last and run describe the current straight
// run; headed is false only for a FreeStart origin.
func (p Policy) Allowed(dst []gridgraph.Direction, last gridgraph.Direction, run int, headed bool) []gridgraph.Direction {
	if !headed {
		return append(dst, gridgraph.Directions[:]...)
	}
	if run < p.RunMax {
		dst = append(dst, last)
	}
	if run >= p.RunMin {
		turns := last.Perpendicular()
		dst = append(dst, turns[0], turns[1])
	}
	return dst
}

// CanStop reports whether a traveller may end its route with the given run.
// A traveller that has not moved yet (unheaded, or run 0) may always stop.
func (p Policy) CanStop(run int, headed bool) bool {
	return !headed || run == 0 || run >= p.RunMin
}

// String renders the policy as "name(min..max)".
func (p Policy) String() string {
	return fmt.Sprintf("%s(%d..%d)", p.Name, p.RunMin, p.RunMax)
}
