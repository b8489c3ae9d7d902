// Package design holds the Go-native structs an upstream DSN-family
// parser hands to this module: board name, resolution, layers,
// placement, library padstacks, network/class clearance rules, and
// pre-routed wiring. The core never reads the textual S-expression
// format itself — it only consumes a design.Board already assembled by
// an external loader; DSN/SES file parsing is out of scope here.
package design

import "github.com/katalvlaran/boardrouter/pcbgraph"

// Unit is the physical unit a design's Resolution is expressed in.
type Unit string

const (
	UnitInch Unit = "inch"
	UnitMil  Unit = "mil"
	UnitMM   Unit = "mm"
)

// Resolution names the coordinate unit and the number of design units
// per that unit, mirroring a DSN (resolution <unit> <value>) record.
type Resolution struct {
	Unit  Unit
	Value int
}

// LayerType distinguishes a signal layer from a plane/power layer.
// Neither Load nor the router reads it; pads on any layer are loaded and
// routed alike.
type LayerType string

const (
	LayerSignal LayerType = "signal"
	LayerPower  LayerType = "power"
)

// Layer names one routable (or plane) layer by its index and DSN name.
type Layer struct {
	Name  string
	Index int
	Type  LayerType
}

// Side is which face of the board a component is placed on; a Back
// placement flips every padstack's layer index, respecting placement
// rotation and side.
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// Placement positions one component instance on the board.
type Placement struct {
	RefDes      string // e.g. "U1"
	Image       string // name of the Library image this instance uses
	X, Y        float64
	RotationDeg float64
	Side        Side
}

// PadShape is one padstack shape on one layer, in image-local
// coordinates (before placement transform).
type PadShape struct {
	Layer  int
	Pos    pcbgraph.Point
	Radius float64
}

// Pin is one named connection point of a Library image (e.g. pin "1"
// of a SOIC-8 footprint), carrying the padstack shapes it occupies.
type Pin struct {
	Name   string
	Shapes []PadShape
}

// Image is a component footprint: a named set of pins, each with its
// own per-layer padstack shapes, in image-local coordinates.
type Image struct {
	Name string
	Pins []Pin
}

// Library is the set of footprints referenced by Placements.
type Library struct {
	Images map[string]Image
}

// ClassRule names the clearance a net class requires against another
// class (or itself).
type ClassRule struct {
	ClassA, ClassB string
	Clearance      float64
}

// Network assigns nets to pins and classes to nets, and carries the
// class-pair clearance table a board.Rules is built from.
type Network struct {
	// NetPins maps a net name to the "refdes-pinname" references DSN
	// uses, e.g. "GND" -> ["U1-8", "U2-4"].
	NetPins map[string][]string
	// NetClass maps a net name to its class name.
	NetClass map[string]string
	// DefaultClearance is used for any class pair without an explicit
	// ClassRule.
	DefaultClearance float64
	ClassRules       []ClassRule
}

// WireRecord is one pre-routed wire already present in the design
// (wiring/wire), laid down as a FixedSeg chain.
type WireRecord struct {
	Net    string
	Layer  int
	Width  float64
	Points []pcbgraph.Point
}

// ViaRecord is one pre-placed via (wiring/via): a FixedDot stack across
// a contiguous layer range.
type ViaRecord struct {
	Net                string
	Pos                pcbgraph.Point
	Radius             float64
	FromLayer, ToLayer int
}

// Wiring is the design's pre-existing copper: wires and vias already
// placed before autorouting begins.
type Wiring struct {
	Wires []WireRecord
	Vias  []ViaRecord
}

// Board is the fully parsed design input, exactly as an upstream DSN
// loader would assemble it. Nothing in this module parses the textual
// form; Load (see load.go) only walks this struct.
type Board struct {
	Name       string
	Resolution Resolution
	Layers     []Layer
	Placements []Placement
	Library    Library
	Network    Network
	Wiring     Wiring
}
