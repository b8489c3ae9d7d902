// Package stepper defines the cooperative single-step execution contract
// shared by the astar, tracer and autorouter packages.
//
// Nothing in this module blocks, sleeps, spawns a goroutine, or suspends
// at any point other than the explicit return from Step. A caller drives
// progress entirely by calling Step in a loop; between calls the stepper
// holds no lock and no goroutine is running on its behalf. Run checks ctx
// before each Step call; no Step implementation checks it mid-unit-of-work.
package stepper

import "context"

// Status reports whether a Stepper has more work to do.
type Status int

const (
	// Running means Step should be called again.
	Running Status = iota
	// Finished means the stepper reached a terminal state; calling Step
	// again is a programmer error and implementations may panic or
	// return Finished again, at their discretion.
	Finished
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Finished:
		return "Finished"
	default:
		return "Status(?)"
	}
}

// Stepper advances a long-running operation by one unit of work per call.
//
// Implementations must make Step's unit of work small and bounded (one
// A* relaxation, one ratline, one cane) so that a caller can interleave
// Step calls with UI redraws, cancellation checks, or other stepper
// drivers without unbounded latency.
type Stepper interface {
	// Step performs one unit of work and reports whether more remain.
	// A non-nil error is terminal: the caller must not call Step again.
	Step(ctx context.Context) (Status, error)
}

// Run drives s to completion, calling Step until it reports Finished or
// returns an error, and returns ctx.Err() once ctx is done. Most callers
// should prefer calling Step themselves so they can interleave other
// work; Run is a convenience for tests and the CLI.
func Run(ctx context.Context, s Stepper) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		status, err := s.Step(ctx)
		if err != nil {
			return err
		}
		if status == Finished {
			return nil
		}
	}
}
