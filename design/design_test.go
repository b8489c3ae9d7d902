package design_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boardrouter/design"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

func twoPinDesign() design.Board {
	return design.Board{
		Name:       "demo",
		Resolution: design.Resolution{Unit: design.UnitMil, Value: 10},
		Layers: []design.Layer{
			{Name: "F.Cu", Index: 0, Type: design.LayerSignal},
			{Name: "B.Cu", Index: 1, Type: design.LayerSignal},
		},
		Placements: []design.Placement{
			{RefDes: "U1", Image: "SOT23", X: 0, Y: 0, Side: design.SideFront},
			{RefDes: "U2", Image: "SOT23", X: 1000, Y: 0, Side: design.SideFront},
		},
		Library: design.Library{
			Images: map[string]design.Image{
				"SOT23": {
					Name: "SOT23",
					Pins: []design.Pin{
						{Name: "1", Shapes: []design.PadShape{{Layer: 0, Pos: pcbgraph.Point{}, Radius: 50}}},
					},
				},
			},
		},
		Network: design.Network{
			NetPins:          map[string][]string{"NET1": {"U1-1", "U2-1"}},
			DefaultClearance: 0.2,
		},
	}
}

func TestLoadRegistersPinsAndFixedDots(t *testing.T) {
	require := require.New(t)

	b, err := design.Load(twoPinDesign())
	require.NoError(err)

	u1, ok := b.Pin("U1-1")
	require.True(ok, "U1-1 should be registered")
	u2, ok := b.Pin("U2-1")
	require.True(ok, "U2-1 should be registered")
	require.NotEqual(u1, u2)

	shape, err := b.PrimitiveShape(u1)
	require.NoError(err)
	require.Equal(0.0, shape.Center().X)
	require.Equal(0.0, shape.Center().Y)

	shape2, err := b.PrimitiveShape(u2)
	require.NoError(err)
	require.Equal(1000.0, shape2.Center().X)
}

func TestLoadFlipsBackSideLayer(t *testing.T) {
	require := require.New(t)

	d := twoPinDesign()
	d.Placements[1].Side = design.SideBack

	b, err := design.Load(d)
	require.NoError(err)

	u2, ok := b.Pin("U2-1")
	require.True(ok)

	shape, err := b.PrimitiveShape(u2)
	require.NoError(err)
	require.Equal(1, shape.Layer(), "back-side placement should flip layer 0 -> 1 over two layers")
}

func TestLoadUnknownImageErrors(t *testing.T) {
	require := require.New(t)

	d := twoPinDesign()
	d.Placements[0].Image = "missing"

	_, err := design.Load(d)
	require.Error(err)
}
