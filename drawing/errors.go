package drawing

import (
	"fmt"

	"github.com/katalvlaran/boardrouter/geometry"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

// Exception is the closed error taxonomy a Drawing mutation can fail
// with, mirroring the original's #[enum_dispatch] DrawingException enum.
// The unexported marker method closes the set the way
// katalvlaran/boardrouter/pcbgraph.Weight closes its sum type.
type Exception interface {
	error
	isDrawingException()
}

// NoTangents is reported when the Guide cannot find a tangent between two
// circles because one is nested inside (or concentric with) the other.
type NoTangents struct{}

func (NoTangents) Error() string       { return "drawing: no tangent between head and target circles" }
func (NoTangents) isDrawingException() {}

// Infringement is reported when a newly proposed shape would violate
// clearance against Offender's shape.
type Infringement struct {
	Shape    geometry.Shape
	Offender pcbgraph.Index
}

func (e Infringement) Error() string {
	return fmt.Sprintf("drawing: proposed shape infringes on primitive %d", e.Offender)
}
func (Infringement) isDrawingException() {}

// Collision is reported when a same-net (connectable) shape still
// geometrically overlaps Offender — only raised for loose segs after the
// rail-update cascade, never for the general infringement pass.
type Collision struct {
	Shape    geometry.Shape
	Offender pcbgraph.Index
}

func (e Collision) Error() string {
	return fmt.Sprintf("drawing: proposed shape collides with connectable primitive %d", e.Offender)
}
func (Collision) isDrawingException() {}

// AlreadyConnected is reported when InsertCane is asked to wrap around a
// primitive that shares the head's net — routing never needs to touch
// copper it is already tied to.
type AlreadyConnected struct {
	Net      int
	Offender pcbgraph.Index
}

func (e AlreadyConnected) Error() string {
	return fmt.Sprintf("drawing: primitive %d is already connected to net %d", e.Offender, e.Net)
}
func (AlreadyConnected) isDrawingException() {}

var (
	_ Exception = NoTangents{}
	_ Exception = Infringement{}
	_ Exception = Collision{}
	_ Exception = AlreadyConnected{}
)
