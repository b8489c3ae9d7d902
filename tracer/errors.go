package tracer

import (
	"errors"
	"fmt"
)

// TracerException wraps a drawing.Exception raised while wrapping a
// head around a navvertex, or drawing.NoTangents when neither winding
// produced a usable tangent.
type TracerException struct {
	Err error
}

func (e TracerException) Error() string { return fmt.Sprintf("tracer: %v", e.Err) }
func (e TracerException) Unwrap() error { return e.Err }

// ErrNoCaneToUndo is returned by StepBack when the trace's head is
// bare (nothing left to undo).
var ErrNoCaneToUndo = errors.New("tracer: head has no cane to step back from")
