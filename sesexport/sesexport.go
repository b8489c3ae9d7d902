// Package sesexport renders a routed board.Board into the Go-native
// record set an SES-family design output needs: one chain of path
// segments per band (straight runs for loose segs, a polyline
// approximation for each loose arc) plus via records, in the same
// coordinate convention the design input used. Like design, this
// package never emits or parses the textual S-expression form itself —
// that is an external collaborator's job.
package sesexport

import (
	"fmt"
	"math"

	"github.com/katalvlaran/boardrouter/board"
	"github.com/katalvlaran/boardrouter/geometry"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

// ArcSegments is the number of straight segments a loose arc is
// flattened into: a fixed per-arc step count rather than an
// angle-adaptive one, for reproducible output.
const ArcSegments = 16

// PathPoint is one vertex of an emitted path, in design coordinates.
type PathPoint struct {
	X, Y float64
}

// Path is one routed band rendered as a polyline on a single layer.
type Path struct {
	Net    string
	Layer  int
	Width  float64
	Points []PathPoint
}

// Via is one fixed via stack carried through to the output unchanged
// (vias are placed by an external primitive, not synthesized here).
type Via struct {
	Net                string
	X, Y               float64
	Radius             float64
	FromLayer, ToLayer int
}

// Session is the full exported design output: every routed band's
// path plus every via record, mirroring an SES file's (wiring
// (wire ...) (via ...)) records.
type Session struct {
	Paths []Path
	Vias  []Via
}

// netNamer resolves a pin name to the net name it belongs to; board.Board
// does not itself track net *names* (only integer ids via pcbgraph
// weights), so the caller supplies the lookup it has from the original
// design.Network used to build the board.
type netNamer func(pinA, pinB board.PinName) string

// Export walks every band registered on b between the given pin pairs
// and renders it as a Path, resolving each band's net name via names.
// Pairs not yet routed (BandBetweenPins reports false) are skipped
// silently — an export is expected to run against a partially routed
// board mid-session.
func Export(b *board.Board, pairs [][2]board.PinName, names netNamer) (Session, error) {
	var sess Session
	for _, pair := range pairs {
		if _, ok := b.BandBetweenPins(pair[0], pair[1]); !ok {
			continue
		}
		fromDot, ok := b.Pin(pair[0])
		if !ok {
			return Session{}, fmt.Errorf("sesexport: pin %q not registered", pair[0])
		}
		toDot, ok := b.Pin(pair[1])
		if !ok {
			return Session{}, fmt.Errorf("sesexport: pin %q not registered", pair[1])
		}

		path, err := renderBand(b, fromDot, toDot)
		if err != nil {
			return Session{}, fmt.Errorf("sesexport: band %s-%s: %w", pair[0], pair[1], err)
		}
		path.Net = names(pair[0], pair[1])
		sess.Paths = append(sess.Paths, path)
	}
	return sess, nil
}

// renderBand flattens the band connecting from and to into a single
// Path: every loose/fixed seg contributes its two endpoints, every
// loose bend contributes an ArcSegments-point polyline approximation.
func renderBand(b *board.Board, from, to pcbgraph.Index) (Path, error) {
	members, err := b.BandPath(from, to)
	if err != nil {
		return Path{}, err
	}

	var out Path
	emit := func(p geometry.Point) {
		pt := PathPoint{X: p.X, Y: p.Y}
		if n := len(out.Points); n > 0 && out.Points[n-1] == pt {
			return
		}
		out.Points = append(out.Points, pt)
	}

	fromShape, err := b.PrimitiveShape(from)
	if err != nil {
		return Path{}, err
	}
	emit(fromShape.Center())

	for _, idx := range members {
		shape, err := b.PrimitiveShape(idx)
		if err != nil {
			return Path{}, err
		}
		switch s := shape.(type) {
		case geometry.SegShape:
			out.Layer = s.Layer()
			out.Width = s.Width()
			emit(s.From)
			emit(s.To)
		case geometry.BendShape:
			out.Layer = s.Layer()
			out.Width = s.Width()
			flattenArc(s, emit)
		}
	}
	return out, nil
}

// AppendVia renders one via stack (the indices returned by
// autorouter.Autorouter.PlaceVia, one FixedDot per layer from minLayer
// to maxLayer) into sess, reading its position and radius off the
// board's current geometry. Vias are placed by an external primitive,
// so this only records what the caller already built rather than
// deciding where vias go.
func AppendVia(sess *Session, b *board.Board, net string, layerDots []pcbgraph.Index, minLayer, maxLayer int) error {
	if len(layerDots) == 0 {
		return fmt.Errorf("sesexport: via has no layer dots")
	}
	shape, err := b.PrimitiveShape(layerDots[0])
	if err != nil {
		return err
	}
	c := shape.Center()
	sess.Vias = append(sess.Vias, Via{
		Net:       net,
		X:         c.X,
		Y:         c.Y,
		Radius:    shape.Width() / 2,
		FromLayer: minLayer,
		ToLayer:   maxLayer,
	})
	return nil
}

// flattenArc emits ArcSegments+1 points tracing s.From to s.To along
// its minor arc, the polyline approximation each loose arc needs in
// the exported path.
func flattenArc(s geometry.BendShape, emit func(geometry.Point)) {
	center := s.InnerCircle.Pos
	r := s.Radius()
	a0 := s.From.Sub(center).Angle()
	a1 := s.To.Sub(center).Angle()

	delta := a1 - a0
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}

	for i := 0; i <= ArcSegments; i++ {
		t := float64(i) / float64(ArcSegments)
		angle := a0 + delta*t
		emit(geometry.Point{
			X: center.X + r*math.Cos(angle),
			Y: center.Y + r*math.Sin(angle),
		})
	}
}
