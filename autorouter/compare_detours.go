package autorouter

import (
	"context"
	"sort"

	"github.com/katalvlaran/boardrouter/geometry"
)

// CompareDetours reports, for the given pair of ratlines, the total
// routed length of routing a before b versus b before a, by actually
// routing each order on a disposable snapshot-free trial (routing then
// immediately undoing), so the real Drawing is left unchanged.
func (a *Autorouter) CompareDetours(x, y Ratline, width float64) (lengthXFirst, lengthYFirst float64, err error) {
	lengthXFirst, err = a.trialOrder(x, y, width)
	if err != nil {
		return 0, 0, err
	}
	lengthYFirst, err = a.trialOrder(y, x, width)
	if err != nil {
		return 0, 0, err
	}
	return lengthXFirst, lengthYFirst, nil
}

// trialOrder routes first then second, measures the combined band
// length, and tears up the bands it routed itself (bands routed before
// the call stay in place) before returning.
func (a *Autorouter) trialOrder(first, second Ratline, width float64) (float64, error) {
	ctx := context.Background()
	base := len(a.routed)
	undoTrial := func() {
		for i := len(a.routed) - 1; i >= base; i-- {
			a.board.Drawing().RemoveBand(a.routed[i].firstSeg)
			a.board.UnregisterBand(a.routed[i].from, a.routed[i].to)
		}
		a.routed = a.routed[:base]
	}
	var total float64
	for _, rl := range []Ratline{first, second} {
		if err := routeRatline(ctx, a, rl, width); err != nil {
			undoTrial()
			return 0, err
		}
		length, _ := a.board.BandLength(rl.From, rl.To)
		total += length
	}
	undoTrial()
	return total, nil
}

// presortByPairwiseDetours orders ratlines so that, for every adjacent
// pair compared during the sort, the one CompareDetours finds cheaper
// to route first is ordered first — tie-broken (within 1e-9) by
// routing the shorter individual ratline first, resolving Open
// Question 1's ambiguous tie-break (see DESIGN.md).
func presortByPairwiseDetours(a *Autorouter, ratlines []Ratline, width float64) []Ratline {
	out := append([]Ratline(nil), ratlines...)
	sort.SliceStable(out, func(i, j int) bool {
		xFirst, yFirst, err := a.CompareDetours(out[i], out[j], width)
		if err != nil {
			return false
		}
		if diff := xFirst - yFirst; diff < -1e-9 {
			return true
		} else if diff > 1e-9 {
			return false
		}
		return ratlineLength(a, out[i]) <= ratlineLength(a, out[j])
	})
	return out
}

func ratlineLength(a *Autorouter, rl Ratline) float64 {
	from, err := a.board.PrimitiveShape(rl.From)
	if err != nil {
		return 0
	}
	to, err := a.board.PrimitiveShape(rl.To)
	if err != nil {
		return 0
	}
	return geometry.Dist(from.Center(), to.Center())
}
