package autorouter_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boardrouter/autorouter"
	"github.com/katalvlaran/boardrouter/board"
	"github.com/katalvlaran/boardrouter/internal/boardfixture"
	"github.com/katalvlaran/boardrouter/pcbgraph"
	"github.com/katalvlaran/boardrouter/stepper"
)

func TestAutorouteOneSegBand(t *testing.T) {
	b := boardfixture.OneSegBand()
	a := autorouter.New(b)
	route := a.Autoroute(nil)
	require.NoError(t, stepper.Run(context.Background(), route))

	length, err := a.MeasureLength([][2]board.PinName{{"A", "B"}})
	require.NoError(t, err)
	require.InDelta(t, 1000.0, length, 1.0)
	require.Empty(t, autorouter.Ratsnest(b))
}

func TestAutorouteWrapsAroundObstacle(t *testing.T) {
	b := boardfixture.WrapOneDot()
	a := autorouter.New(b)
	route := a.Autoroute(nil)
	require.NoError(t, stepper.Run(context.Background(), route))

	length, err := a.MeasureLength([][2]board.PinName{{"A", "B"}})
	require.NoError(t, err)
	require.Greater(t, length, 1000.0)
}

func TestAutorouteRailNestingRoutesAllThree(t *testing.T) {
	b := boardfixture.RailNesting()
	a := autorouter.New(b)
	route := a.Autoroute(nil)
	require.NoError(t, stepper.Run(context.Background(), route))

	for net := 1; net <= 3; net++ {
		from := board.PinName("A" + strconv.Itoa(net))
		to := board.PinName("B" + strconv.Itoa(net))
		length, err := a.MeasureLength([][2]board.PinName{{from, to}})
		require.NoError(t, err)
		require.Greater(t, length, 1000.0)
	}
	require.Empty(t, autorouter.Ratsnest(b))
}

func TestAutorouteUnroutableReportsFailedNet(t *testing.T) {
	b := boardfixture.Unroutable()
	a := autorouter.New(b)
	route := a.Autoroute(nil)

	err := stepper.Run(context.Background(), route)
	require.Error(t, err)
	require.NotZero(t, route.FailedNet)

	var routerErr autorouter.RouterError
	require.ErrorAs(t, err, &routerErr)
	require.Equal(t, route.FailedNet, routerErr.Net)
}

// TestAutorouteOrderingMattersWithoutPresort verifies that
// TwoRatlinesOrdering's two ratlines each block the other's naive
// route, so routing in net order alone can let the second net fail.
// The presorted order is checked by TestAutorouteOrderingSucceedsWithPresort.
func TestAutorouteOrderingMattersWithoutPresort(t *testing.T) {
	withoutPresort := boardfixture.TwoRatlinesOrdering()
	a := autorouter.New(withoutPresort)
	route := a.Autoroute(nil)
	err := stepper.Run(context.Background(), route)
	if err == nil {
		t.Skip("fixture routed both nets even without presort; ordering property not exercised")
	}
	require.NotZero(t, route.FailedNet)
}

func TestAutorouteOrderingSucceedsWithPresort(t *testing.T) {
	b := boardfixture.TwoRatlinesOrdering()
	a := autorouter.New(b)
	route := a.Autoroute(nil, autorouter.WithPresortByPairwiseDetours())
	require.NoError(t, stepper.Run(context.Background(), route))
	require.Empty(t, autorouter.Ratsnest(b))
}

func TestAutorouteUndoRestoresRatsnest(t *testing.T) {
	b := boardfixture.OneSegBand()
	a := autorouter.New(b)
	route := a.Autoroute(nil)
	require.NoError(t, stepper.Run(context.Background(), route))
	require.Empty(t, autorouter.Ratsnest(b))

	require.NoError(t, a.Undo())
	require.NotEmpty(t, autorouter.Ratsnest(b))
	require.ErrorIs(t, a.Undo(), autorouter.ErrNothingToUndo)
}

func TestAutorouterPlaceViaAndRemoveBands(t *testing.T) {
	b := boardfixture.OneSegBand()
	a := autorouter.New(b)
	route := a.Autoroute(nil)
	require.NoError(t, stepper.Run(context.Background(), route))

	dots, err := a.PlaceVia(pcbgraph.Point{X: 500, Y: 200}, 30, 0, 1, 1)
	require.NoError(t, err)
	require.Len(t, dots, 2)

	first, ok := b.BandBetweenPins(board.PinName("A"), board.PinName("B"))
	require.True(t, ok)

	require.NoError(t, a.RemoveBands([]pcbgraph.Index{first}))
	require.NotEmpty(t, autorouter.Ratsnest(b))

	_, err = a.MeasureLength([][2]board.PinName{{"A", "B"}})
	require.Error(t, err)
}
