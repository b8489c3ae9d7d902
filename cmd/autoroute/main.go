// Command autoroute is a thin CLI that drives one Autoroute command
// end-to-end over a built-in board fixture, exercised outside any UI,
// for smoke-testing the whole pipeline: ratsnest -> per-ratline A* ->
// registered bands.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/boardrouter/autorouter"
	"github.com/katalvlaran/boardrouter/board"
	"github.com/katalvlaran/boardrouter/internal/boardfixture"
	"github.com/katalvlaran/boardrouter/stepper"
)

func main() {
	var (
		scenario = flag.String("scenario", "wrap", "fixture to route: oneseg, wrap, rails, unroutable, ordering, random")
		presort  = flag.Bool("presort", false, "presort ratlines by pairwise detour length")
		seed     = flag.Int64("seed", 1, "seed for the random scenario")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger, *scenario, *presort, *seed); err != nil {
		logger.Error("autoroute failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, scenario string, presort bool, seed int64) error {
	b, err := buildScenario(scenario, seed)
	if err != nil {
		return err
	}

	a := autorouter.New(b)
	var opts []autorouter.Option
	if presort {
		opts = append(opts, autorouter.WithPresortByPairwiseDetours())
	}
	route := a.Autoroute(nil, opts...)

	ctx := context.Background()
	if err := stepper.Run(ctx, route); err != nil {
		logger.Error("ratline could not be routed", "net", route.FailedNet, "err", err)
		return err
	}

	logger.Info("autoroute complete", "scenario", scenario)
	for _, r := range autorouter.Ratsnest(b) {
		fmt.Printf("remaining ratline: net %d %v -> %v\n", r.Net, r.From, r.To)
	}
	return nil
}

func buildScenario(name string, seed int64) (*board.Board, error) {
	switch name {
	case "oneseg":
		return boardfixture.OneSegBand(), nil
	case "wrap":
		return boardfixture.WrapOneDot(), nil
	case "rails":
		return boardfixture.RailNesting(), nil
	case "unroutable":
		return boardfixture.Unroutable(), nil
	case "ordering":
		return boardfixture.TwoRatlinesOrdering(), nil
	case "random":
		return boardfixture.RandomSparse(6, 0.3, 2000, seed), nil
	default:
		return nil, fmt.Errorf("autoroute: unknown scenario %q", name)
	}
}
