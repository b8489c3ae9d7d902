package design

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/boardrouter/board"
	"github.com/katalvlaran/boardrouter/drawing"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

// netIDs assigns every distinct net name a stable positive integer,
// sorted lexically so re-loading the same design always yields the
// same ids (pcbgraph.Weight.NetID is an int, 0 meaning "no net").
func netIDs(net Network) map[string]int {
	seen := make(map[string]bool)
	for name := range net.NetPins {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	ids := make(map[string]int, len(names))
	for i, name := range names {
		ids[name] = i + 1
	}
	return ids
}

// flipLayer mirrors a layer index for a back-side placement.
func flipLayer(layer, numLayers int) int {
	return numLayers - 1 - layer
}

// Load materializes b onto a fresh drawing.Drawing governed by rules
// derived from b.Network, registering every placed pin on board.Board
// under its "refdes-pinname" reference and laying down pre-existing
// wiring as fixed copper. It is the sole bridge between the design
// input format and the core's in-memory primitives; no text is parsed
// here, only the already-structured Board value.
func Load(b Board) (*board.Board, error) {
	rules := buildRules(b.Network)
	d := drawing.NewDrawing(rules)
	brd := board.New(d, rules)

	ids := netIDs(b.Network)
	numLayers := len(b.Layers)

	for _, pl := range b.Placements {
		img, ok := b.Library.Images[pl.Image]
		if !ok {
			return nil, fmt.Errorf("design: placement %q references unknown image %q", pl.RefDes, pl.Image)
		}
		theta := pl.RotationDeg * math.Pi / 180

		for _, pin := range img.Pins {
			ref := pl.RefDes + "-" + pin.Name
			_, netID := netOf(ref, b.Network, ids)

			var dot pcbgraph.Index
			for _, pad := range pin.Shapes {
				layer := pad.Layer
				if pl.Side == SideBack {
					layer = flipLayer(layer, numLayers)
				}
				pos := rotatePad(pad.Pos, theta, pl.X, pl.Y)
				idx, err := d.AddFixedDot(pos, pad.Radius, layer, netID)
				if err != nil {
					return nil, fmt.Errorf("design: placing pad %s of %q: %w", pin.Name, ref, err)
				}
				if dot == 0 {
					dot = idx
				}
			}
			if dot != 0 {
				brd.RegisterPin(board.PinName(ref), dot)
			}
		}
	}

	for _, w := range b.Wiring.Wires {
		netID := ids[w.Net]
		for i := 0; i+1 < len(w.Points); i++ {
			from, err := d.AddFixedDot(w.Points[i], w.Width/2, w.Layer, netID)
			if err != nil {
				return nil, fmt.Errorf("design: wire %q segment %d: %w", w.Net, i, err)
			}
			to, err := d.AddFixedDot(w.Points[i+1], w.Width/2, w.Layer, netID)
			if err != nil {
				return nil, fmt.Errorf("design: wire %q segment %d: %w", w.Net, i, err)
			}
			if _, err := d.AddFixedSeg(from, to, w.Width, w.Layer, netID); err != nil {
				return nil, fmt.Errorf("design: wire %q segment %d: %w", w.Net, i, err)
			}
		}
	}

	for _, v := range b.Wiring.Vias {
		netID := ids[v.Net]
		for layer := v.FromLayer; layer <= v.ToLayer; layer++ {
			if _, err := d.AddFixedDot(v.Pos, v.Radius, layer, netID); err != nil {
				return nil, fmt.Errorf("design: via on net %q layer %d: %w", v.Net, layer, err)
			}
		}
	}

	return brd, nil
}

// rotatePad maps a pad's image-local position through the placement's
// rotation and translation.
func rotatePad(local pcbgraph.Point, theta, dx, dy float64) pcbgraph.Point {
	s, c := math.Sin(theta), math.Cos(theta)
	return pcbgraph.Point{
		X: dx + local.X*c - local.Y*s,
		Y: dy + local.X*s + local.Y*c,
	}
}

// netOf returns the net name and assigned integer id a pin reference
// belongs to, or ("", 0) if unassigned.
func netOf(ref string, net Network, ids map[string]int) (string, int) {
	for name, pins := range net.NetPins {
		for _, p := range pins {
			if p == ref {
				return name, ids[name]
			}
		}
	}
	return "", 0
}

// buildRules derives a board.Rules from a Network's class assignments
// and class-pair clearance overrides.
func buildRules(net Network) *board.Rules {
	rules := board.NewRules(net.DefaultClearance)
	ids := netIDs(net)
	for name, class := range net.NetClass {
		if id, ok := ids[name]; ok {
			rules.SetNetClass(id, class)
		}
	}
	for _, cr := range net.ClassRules {
		rules.SetClassClearance(cr.ClassA, cr.ClassB, cr.Clearance)
	}
	return rules
}
