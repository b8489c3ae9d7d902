package boardfixture_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boardrouter/autorouter"
	"github.com/katalvlaran/boardrouter/board"
	"github.com/katalvlaran/boardrouter/internal/boardfixture"
	"github.com/katalvlaran/boardrouter/stepper"
)

// TestOneSegBand exercises S1: no obstacles, Autoroute must produce
// one band of length approximately 1000.
func TestOneSegBand(t *testing.T) {
	require := require.New(t)

	b := boardfixture.OneSegBand()
	a := autorouter.New(b)
	route := a.Autoroute(nil)
	require.NoError(stepper.Run(context.Background(), route))

	length, err := a.MeasureLength([][2]board.PinName{{"A", "B"}})
	require.NoError(err)
	require.InDelta(1000.0, length, 1.0)
}

// TestWrapOneDot exercises S2: Autoroute must wrap around the obstacle
// and produce a band longer than the direct distance.
func TestWrapOneDot(t *testing.T) {
	require := require.New(t)

	b := boardfixture.WrapOneDot()
	a := autorouter.New(b)
	route := a.Autoroute(nil)
	require.NoError(stepper.Run(context.Background(), route))

	from, ok := b.Pin("A")
	require.True(ok)
	to, ok := b.Pin("B")
	require.True(ok)
	length, err := b.BandLength(from, to)
	require.NoError(err)
	require.Greater(length, 1000.0, "wrapped band must be longer than the straight-line distance")
}

// TestUnroutableReportsFailure exercises S5: Autoroute must fail and
// leave the drawing's node count unchanged.
func TestUnroutableReportsFailure(t *testing.T) {
	require := require.New(t)

	b := boardfixture.Unroutable()
	before := b.Drawing().Graph().NodeCount()

	a := autorouter.New(b)
	route := a.Autoroute(nil)
	err := stepper.Run(context.Background(), route)
	require.Error(err)

	after := b.Drawing().Graph().NodeCount()
	require.Equal(before, after, "a failed route must leave the drawing unchanged")
}

// TestRandomSparseDeterministic checks that the same seed always
// produces the same fixture (same node count).
func TestRandomSparseDeterministic(t *testing.T) {
	require := require.New(t)

	b1 := boardfixture.RandomSparse(5, 0.3, 1000, 42)
	b2 := boardfixture.RandomSparse(5, 0.3, 1000, 42)
	require.Equal(b1.Drawing().Graph().NodeCount(), b2.Drawing().Graph().NodeCount())
}
