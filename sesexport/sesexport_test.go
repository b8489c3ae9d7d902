package sesexport_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boardrouter/autorouter"
	"github.com/katalvlaran/boardrouter/board"
	"github.com/katalvlaran/boardrouter/internal/boardfixture"
	"github.com/katalvlaran/boardrouter/sesexport"
	"github.com/katalvlaran/boardrouter/stepper"
)

func TestExportOneSegBand(t *testing.T) {
	require := require.New(t)

	b := boardfixture.OneSegBand()
	a := autorouter.New(b)
	route := a.Autoroute(nil)
	require.NoError(stepper.Run(context.Background(), route))

	names := func(x, y board.PinName) string { return "NET1" }
	sess, err := sesexport.Export(b, [][2]board.PinName{{"A", "B"}}, names)
	require.NoError(err)
	require.Len(sess.Paths, 1)

	path := sess.Paths[0]
	require.Equal("NET1", path.Net)
	require.GreaterOrEqual(len(path.Points), 2)
	require.InDelta(0.0, path.Points[0].X, 1e-6)
	require.InDelta(1000.0, path.Points[len(path.Points)-1].X, 1e-6)
}

func TestExportSkipsUnroutedPairs(t *testing.T) {
	require := require.New(t)

	b := boardfixture.OneSegBand()
	names := func(x, y board.PinName) string { return "NET1" }
	sess, err := sesexport.Export(b, [][2]board.PinName{{"A", "B"}}, names)
	require.NoError(err)
	require.Empty(sess.Paths, "nothing routed yet, export should skip the pair silently")
}
