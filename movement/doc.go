// Package movement decides which moves a run-length constrained traveller may
// take next.
//
// A Policy is a pair of run bounds (RunMin, RunMax):
//
//   - the traveller never reverses its previous direction;
//   - it may continue straight only while its current run is below RunMax;
//   - it may turn only once its current run has reached RunMin.
//
// Two policies are predefined: ShortRun (1, 3) and LongRun (4, 10).
//
// A traveller that has not moved yet is either unheaded (FreeStart policies,
// RunMin <= 1: any first move is legal) or headed with a zero-length run
// (RunMin > 1: the minimum run binds from the very first move, so the search
// seeds one origin per initial heading).
package movement
