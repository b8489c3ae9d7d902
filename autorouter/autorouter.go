package autorouter

import (
	"fmt"

	"github.com/katalvlaran/boardrouter/board"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

// routedBand records one ratline's successful route, in routing order,
// so Undo can tear bands up in reverse.
type routedBand struct {
	from, to board.PinName
	firstSeg pcbgraph.Index
}

// Autorouter drives ratline routing over a board.Board, tracking
// routed bands so they can be undone in reverse order.
type Autorouter struct {
	board  *board.Board
	routed []routedBand
}

// New returns an Autorouter over b.
func New(b *board.Board) *Autorouter { return &Autorouter{board: b} }

// Board returns the Autorouter's board.
func (a *Autorouter) Board() *board.Board { return a.board }

// Autoroute returns a stepper that routes every ratline in the given
// nets (all nets, if empty) one at a time. Drive it with stepper.Run or
// by calling Step in a loop.
func (a *Autorouter) Autoroute(nets []int, opts ...Option) *AutorouteExecutionStepper {
	var options AutorouteOptions
	for _, opt := range opts {
		opt(&options)
	}

	ratlines := Ratsnest(a.board)
	if len(nets) > 0 {
		wanted := make(map[int]bool, len(nets))
		for _, n := range nets {
			wanted[n] = true
		}
		filtered := ratlines[:0:0]
		for _, r := range ratlines {
			if wanted[r.Net] {
				filtered = append(filtered, r)
			}
		}
		ratlines = filtered
	}

	if options.PresortByPairwiseDetours {
		ratlines = presortByPairwiseDetours(a, ratlines, defaultWidth)
	}

	return &AutorouteExecutionStepper{
		a:        a,
		ratlines: ratlines,
		options:  options,
	}
}

// PlaceVia inserts a fixed via: a FixedDot stacked on every layer from
// minLayer to maxLayer inclusive, all sharing net and position. The
// dots are independent nodes; no edge joins one layer's dot to the next.
func (a *Autorouter) PlaceVia(pos pcbgraph.Point, radius float64, minLayer, maxLayer, net int) ([]pcbgraph.Index, error) {
	if minLayer > maxLayer {
		minLayer, maxLayer = maxLayer, minLayer
	}
	var dots []pcbgraph.Index
	for layer := minLayer; layer <= maxLayer; layer++ {
		dot, err := a.board.Drawing().AddFixedDot(pos, radius, layer, net)
		if err != nil {
			for _, d := range dots {
				a.board.Drawing().RemoveFixedDot(d)
			}
			return nil, err
		}
		dots = append(dots, dot)
	}
	return dots, nil
}

// RemoveBands tears up every band in bands (each identified by any one
// of its live members).
func (a *Autorouter) RemoveBands(bands []pcbgraph.Index) error {
	for _, member := range bands {
		if err := a.board.Drawing().RemoveBand(member); err != nil {
			return err
		}
	}
	return nil
}

// MeasureLength returns the combined drawn length of every band in
// bands, identified by their (from, to) pin names.
func (a *Autorouter) MeasureLength(pairs [][2]board.PinName) (float64, error) {
	var total float64
	for _, pair := range pairs {
		from, ok := a.board.Pin(pair[0])
		if !ok {
			return 0, fmt.Errorf("autorouter: unknown pin %q", pair[0])
		}
		to, ok := a.board.Pin(pair[1])
		if !ok {
			return 0, fmt.Errorf("autorouter: unknown pin %q", pair[1])
		}
		length, err := a.board.BandLength(from, to)
		if err != nil {
			return 0, err
		}
		total += length
	}
	return total, nil
}

// Undo removes every band routed since the Autorouter was created or
// last undone, across all Autoroute invocations, in reverse order.
// Returns ErrNothingToUndo if nothing is routed.
func (a *Autorouter) Undo() error {
	if len(a.routed) == 0 {
		return ErrNothingToUndo
	}
	for i := len(a.routed) - 1; i >= 0; i-- {
		rb := a.routed[i]
		if err := a.board.Drawing().RemoveBand(rb.firstSeg); err != nil {
			return err
		}
		a.board.UnregisterBand(rb.from, rb.to)
	}
	a.routed = nil
	return nil
}
