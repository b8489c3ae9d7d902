package autorouter

import (
	"errors"
	"fmt"
)

// RouterError wraps a failure encountered routing one ratline — an
// astar.ErrNotFound (no path exists) or a drawing/tracer error
// surfaced mid-route — naming which net could not be routed.
type RouterError struct {
	Net int
	Err error
}

func (e RouterError) Error() string {
	return fmt.Sprintf("autorouter: net %d: %v", e.Net, e.Err)
}
func (e RouterError) Unwrap() error { return e.Err }

// ErrNothingToUndo is returned by Undo when no band has been routed
// since the Autorouter was created or last undone.
var ErrNothingToUndo = errors.New("autorouter: nothing to undo")
