// Package board is read top-to-bottom starting at rules.go; see that
// file's doc comment for the package's purpose.
package board

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/boardrouter/drawing"
	"github.com/katalvlaran/boardrouter/geometry"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

// PinName identifies a pin by its DSN-style reference, e.g. "U1-3".
type PinName string

// ZoneID identifies a registered copper pour boundary.
type ZoneID int

// Zone is a closed copper-pour boundary on one layer and net, checked
// for clearance the same way a FixedSeg chain would be but never
// routed through by the tracer.
type Zone struct {
	Net     int
	Layer   int
	Outline []geometry.Point

	// apexDot caches the FixedDot ZoneApex creates on demand at the
	// zone's centroid so a ratline can terminate on the zone without
	// every caller re-deriving the same synthetic pin.
	apexDot pcbgraph.Index
}

// Board is the query façade over a drawing.Drawing: it adds the
// pin-name and zone bookkeeping a bare primitive graph has no notion
// of, per the data model's Board/Rules split.
type Board struct {
	d     *drawing.Drawing
	rules *Rules

	pins     map[PinName]pcbgraph.Index
	pinNames map[pcbgraph.Index]PinName

	// bandFirstSeg maps an unordered pin pair to the first seg of the
	// band connecting them, recorded by RegisterBand once a route
	// completes; a band is identified by this first seg elsewhere in
	// the data model.
	bandFirstSeg map[pinPair]pcbgraph.Index

	zones    map[ZoneID]Zone
	nextZone ZoneID
}

type pinPair struct{ a, b PinName }

func orderedPinPair(a, b PinName) pinPair {
	if a <= b {
		return pinPair{a, b}
	}
	return pinPair{b, a}
}

// New returns an empty Board backed by d and governed by rules.
func New(d *drawing.Drawing, rules *Rules) *Board {
	return &Board{
		d:            d,
		rules:        rules,
		pins:         make(map[PinName]pcbgraph.Index),
		pinNames:     make(map[pcbgraph.Index]PinName),
		bandFirstSeg: make(map[pinPair]pcbgraph.Index),
		zones:        make(map[ZoneID]Zone),
	}
}

// Drawing exposes the underlying Drawing for packages that need direct
// graph/tracer access (autorouter, sesexport).
func (b *Board) Drawing() *drawing.Drawing { return b.d }

// Rules returns the board's clearance rule set.
func (b *Board) Rules() *Rules { return b.rules }

// RegisterPin records name as referring to the FixedDot dot.
func (b *Board) RegisterPin(name PinName, dot pcbgraph.Index) {
	b.pins[name] = dot
	b.pinNames[dot] = name
}

// Pin returns the FixedDot registered under name.
func (b *Board) Pin(name PinName) (pcbgraph.Index, bool) {
	dot, ok := b.pins[name]
	return dot, ok
}

// PinNameOf returns the pin name registered for dot, if any.
func (b *Board) PinNameOf(dot pcbgraph.Index) (PinName, bool) {
	name, ok := b.pinNames[dot]
	return name, ok
}

// EnsurePinName returns dot's registered pin name, synthesizing and
// registering one (e.g. for a zone apex, which has no DSN pin
// reference of its own) if it has none yet.
func (b *Board) EnsurePinName(dot pcbgraph.Index) PinName {
	if name, ok := b.pinNames[dot]; ok {
		return name
	}
	name := PinName(fmt.Sprintf("#%d", dot))
	b.RegisterPin(name, dot)
	return name
}

// RegisterBand records firstSeg as the band routed between from and to,
// called once an autoroute (or a manual trace) lands on its target pin.
func (b *Board) RegisterBand(from, to PinName, firstSeg pcbgraph.Index) {
	b.bandFirstSeg[orderedPinPair(from, to)] = firstSeg
}

// UnregisterBand forgets the recorded band between from and to, called
// when it is torn up.
func (b *Board) UnregisterBand(from, to PinName) {
	delete(b.bandFirstSeg, orderedPinPair(from, to))
}

// BandBetweenPins returns the first seg of the band connecting from and
// to, if one has been routed and registered.
func (b *Board) BandBetweenPins(from, to PinName) (pcbgraph.Index, bool) {
	seg, ok := b.bandFirstSeg[orderedPinPair(from, to)]
	return seg, ok
}

// PrimitiveShape returns idx's current geometry.
func (b *Board) PrimitiveShape(idx pcbgraph.Index) (geometry.Shape, error) {
	return b.d.PrimitiveShape(idx)
}

// LayerPrimitiveNodes returns every live primitive occupying layer,
// sorted by index.
func (b *Board) LayerPrimitiveNodes(layer int) []pcbgraph.Index {
	var out []pcbgraph.Index
	for _, idx := range b.d.Graph().Nodes() {
		shape, err := b.d.PrimitiveShape(idx)
		if err != nil {
			continue
		}
		if shape.Layer() == layer {
			out = append(out, idx)
		}
	}
	return out
}

// AddZone registers a copper pour boundary and returns its ID.
func (b *Board) AddZone(net, layer int, outline []geometry.Point) ZoneID {
	b.nextZone++
	id := b.nextZone
	b.zones[id] = Zone{Net: net, Layer: layer, Outline: outline}
	return id
}

// ZoneShape returns the registered zone's outline.
func (b *Board) ZoneShape(id ZoneID) (Zone, bool) {
	z, ok := b.zones[id]
	return z, ok
}

// ZoneApex returns the FixedDot a ratline may terminate on in place of
// a real pin: a small pad at the zone outline's centroid, created the
// first time ZoneApex is called for id and cached on the Zone record
// from then on.
func (b *Board) ZoneApex(id ZoneID) (pcbgraph.Index, error) {
	z, ok := b.zones[id]
	if !ok {
		return 0, fmt.Errorf("board: zone %d not found", id)
	}
	if z.apexDot != 0 && b.d.Graph().HasNode(z.apexDot) {
		return z.apexDot, nil
	}
	var cx, cy float64
	for _, p := range z.Outline {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(z.Outline))
	if n == 0 {
		return 0, fmt.Errorf("board: zone %d has an empty outline", id)
	}
	centroid := pcbgraph.Point{X: cx / n, Y: cy / n}
	dot, err := b.d.AddFixedDot(centroid, apexRadius, z.Layer, z.Net)
	if err != nil {
		return 0, err
	}
	z.apexDot = dot
	b.zones[id] = z
	return dot, nil
}

// apexRadius is the nominal pad size synthesized for a zone apex; small
// enough not to infringe a real pin placed close to the zone edge.
const apexRadius = 0.05

// arcLength returns a BendShape's swept arc length, taking the minor
// arc (PCB fillets never bow past a half circle).
func arcLength(bend geometry.BendShape) float64 {
	center := bend.InnerCircle.Pos
	a0 := bend.From.Sub(center).Angle()
	a1 := bend.To.Sub(center).Angle()
	delta := math.Abs(a1 - a0)
	for delta > 2*math.Pi {
		delta -= 2 * math.Pi
	}
	if delta > math.Pi {
		delta = 2*math.Pi - delta
	}
	return bend.Radius() * delta
}

// BandLength walks the Joined chain connecting the two FixedDots from
// and to, returning the sum of every seg and bend's drawn length along
// the shortest such path.
func (b *Board) BandLength(from, to pcbgraph.Index) (float64, error) {
	path, err := b.joinedPath(from, to)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, idx := range path {
		w, err := b.d.Graph().Weight(idx)
		if err != nil {
			return 0, err
		}
		shape, err := b.d.PrimitiveShape(idx)
		if err != nil {
			return 0, err
		}
		switch w.(type) {
		case pcbgraph.SegWeight:
			total += shape.(geometry.SegShape).Length()
		case pcbgraph.BendWeight:
			total += arcLength(shape.(geometry.BendShape))
		}
	}
	return total, nil
}

// BandPath returns the sequence of primitives (dots, segs and bends, in
// traversal order, excluding from and including to) on the band
// connecting from to to, for a
// caller (sesexport) that needs to walk every piece of copper rather
// than just its total length.
func (b *Board) BandPath(from, to pcbgraph.Index) ([]pcbgraph.Index, error) {
	return b.joinedPath(from, to)
}

// joinedPath returns the sequence of nodes (dots, segs, bends
// alternating) on the shortest Joined-edge path from from to to.
func (b *Board) joinedPath(from, to pcbgraph.Index) ([]pcbgraph.Index, error) {
	if from == to {
		return nil, nil
	}
	prev := map[pcbgraph.Index]pcbgraph.Index{from: from}
	queue := []pcbgraph.Index{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			var path []pcbgraph.Index
			for n := to; n != from; n = prev[n] {
				path = append(path, n)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, nil
		}
		for _, n := range b.d.Graph().Neighbors(pcbgraph.Joined, cur) {
			if _, seen := prev[n]; seen {
				continue
			}
			prev[n] = cur
			queue = append(queue, n)
		}
	}
	return nil, fmt.Errorf("board: no band connects %d to %d", from, to)
}

// RatsnestEdges returns, for every net with two or more FixedDots, the
// straight-line edges of that net's minimum spanning tree over its
// pins' centers — the "rubber band" overlay a UI draws before routing.
// This is a lightweight, UI-facing approximation: it is not the
// ordered, Delaunay-filtered ratsnest the autorouter package builds to
// drive actual routing, so the two are not expected to agree
// edge-for-edge.
func (b *Board) RatsnestEdges() []RatsnestEdge {
	byNet := make(map[int][]pcbgraph.Index)
	for _, idx := range b.d.Graph().Nodes() {
		w, err := b.d.Graph().Weight(idx)
		if err != nil {
			continue
		}
		dw, ok := w.(pcbgraph.DotWeight)
		if !ok || dw.IsLoose || dw.Net == 0 {
			continue
		}
		byNet[dw.Net] = append(byNet[dw.Net], idx)
	}

	var out []RatsnestEdge
	nets := make([]int, 0, len(byNet))
	for net := range byNet {
		nets = append(nets, net)
	}
	sort.Ints(nets)
	for _, net := range nets {
		dots := byNet[net]
		if len(dots) < 2 {
			continue
		}
		out = append(out, b.netMST(net, dots)...)
	}
	return out
}

// RatsnestEdge is one unrouted connection in a net's spanning tree.
type RatsnestEdge struct {
	Net      int
	From, To geometry.Point
}

// netMST returns dots' minimum spanning tree (by straight-line
// distance) via a straightforward Prim's-algorithm sweep, picking the
// cheapest frontier edge each round; a union-find Kruskal pass is
// unnecessary overkill at per-net pin counts.
func (b *Board) netMST(net int, dots []pcbgraph.Index) []RatsnestEdge {
	pos := make(map[pcbgraph.Index]geometry.Point, len(dots))
	for _, idx := range dots {
		p, err := b.d.PrimitiveShape(idx)
		if err != nil {
			continue
		}
		pos[idx] = p.Center()
	}

	inTree := map[pcbgraph.Index]bool{dots[0]: true}
	remaining := append([]pcbgraph.Index(nil), dots[1:]...)
	var edges []RatsnestEdge

	for len(remaining) > 0 {
		bestDist := math.Inf(1)
		bestFrom, bestTo := pcbgraph.Index(0), pcbgraph.Index(0)
		bestIdx := -1
		for i, cand := range remaining {
			for treeDot := range inTree {
				d := geometry.Dist(pos[treeDot], pos[cand])
				if d < bestDist {
					bestDist = d
					bestFrom, bestTo = treeDot, cand
					bestIdx = i
				}
			}
		}
		if bestIdx < 0 {
			break
		}
		edges = append(edges, RatsnestEdge{Net: net, From: pos[bestFrom], To: pos[bestTo]})
		inTree[bestTo] = true
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return edges
}
