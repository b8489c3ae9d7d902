package autorouter

import (
	"context"

	"github.com/katalvlaran/boardrouter/astar"
	"github.com/katalvlaran/boardrouter/navmesh"
	"github.com/katalvlaran/boardrouter/pcbgraph"
	"github.com/katalvlaran/boardrouter/stepper"
	"github.com/katalvlaran/boardrouter/tracer"
)

// AutorouteExecutionStepper routes one ratline to completion per Step
// call, building a fresh navmesh.Navmesh and running astar.Astar over
// it, registering the resulting band in the board on success.
type AutorouteExecutionStepper struct {
	a        *Autorouter
	ratlines []Ratline
	options  AutorouteOptions
	next     int

	// FailedNet, if non-zero after Step returns an error, names the net
	// whose ratline could not be routed.
	FailedNet int
}

const defaultWidth = 0.25

// Step routes a.ratlines[next], if any remain.
func (s *AutorouteExecutionStepper) Step(ctx context.Context) (stepper.Status, error) {
	if s.next >= len(s.ratlines) {
		return stepper.Finished, nil
	}
	rl := s.ratlines[s.next]
	s.next++

	if err := routeRatline(ctx, s.a, rl, defaultWidth); err != nil {
		s.FailedNet = rl.Net
		return stepper.Finished, RouterError{Net: rl.Net, Err: err}
	}

	status := stepper.Running
	if s.next >= len(s.ratlines) {
		status = stepper.Finished
	}
	return status, nil
}

// RatlinesRemaining reports how many ratlines are still queued.
func (s *AutorouteExecutionStepper) RatlinesRemaining() int {
	return len(s.ratlines) - s.next
}

// routeRatline builds a navmesh for rl, runs A* over it, and registers
// the resulting band with a.board on success.
func routeRatline(ctx context.Context, a *Autorouter, rl Ratline, width float64) error {
	d := a.board.Drawing()
	nav, err := navmesh.Build(d, rl.From, rl.To)
	if err != nil {
		return err
	}

	tr := tracer.New(d)
	trace := tr.Start(rl.From, width, 0, rl.Net)
	strategy := &navStrategy{d: d, nav: nav, tr: tr, trace: trace, width: width, target: rl.To}

	_, _, result, err := astar.Run[pcbgraph.Index, routeResult](ctx, navGraph{nav: nav}, rl.From, strategy)
	if err != nil {
		return err
	}

	fromName := a.board.EnsurePinName(rl.From)
	toName := a.board.EnsurePinName(rl.To)
	a.board.RegisterBand(fromName, toName, result.FirstSeg)
	a.routed = append(a.routed, routedBand{from: fromName, to: toName, firstSeg: result.FirstSeg})
	return nil
}
