// Package boardfixture builds deterministic, seeded board.Board
// fixtures for tests and the cmd/autoroute demo: five end-to-end
// scenarios (S1, S2, S3, S5, S6) plus a random sparse-board generator. The random
// generator uses an Erdős–Rényi-style "include each admissible element
// independently with probability p, seeded math/rand.Rand" idiom,
// applied here to obstacle placement.
package boardfixture

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/boardrouter/board"
	"github.com/katalvlaran/boardrouter/drawing"
	"github.com/katalvlaran/boardrouter/pcbgraph"
)

// DefaultClearance is the clearance fixtures use when not overridden.
const DefaultClearance = 0.2

// fresh returns an empty board.Board governed by a flat clearance rule.
func fresh(clearance float64) *board.Board {
	rules := board.NewRules(clearance)
	d := drawing.NewDrawing(rules)
	return board.New(d, rules)
}

// mustAddPin adds a FixedDot pad and registers it under name, panicking
// on infringement — fixtures build from a known-clear layout, so a
// failure here is a fixture bug, not a routing outcome to assert on.
func mustAddPin(b *board.Board, name board.PinName, pos pcbgraph.Point, radius float64, layer, net int) pcbgraph.Index {
	dot, err := b.Drawing().AddFixedDot(pos, radius, layer, net)
	if err != nil {
		panic(fmt.Sprintf("boardfixture: %s: %v", name, err))
	}
	b.RegisterPin(name, dot)
	return dot
}

// OneSegBand builds S1: two FixedDots 1000 apart, radius 50, net 1, no
// obstacles — Autoroute should produce a single LoneLooseSeg band of
// length approximately 1000.
func OneSegBand() *board.Board {
	b := fresh(DefaultClearance)
	mustAddPin(b, "A", pcbgraph.Point{X: 0, Y: 0}, 50, 0, 1)
	mustAddPin(b, "B", pcbgraph.Point{X: 1000, Y: 0}, 50, 0, 1)
	return b
}

// WrapOneDot builds S2: A=(0,0), B=(1000,0) on net 1, obstacle
// C=(500,0) radius 100 on net 2 directly between them — Autoroute
// should wrap A->C->B, producing exactly one cane.
func WrapOneDot() *board.Board {
	b := fresh(DefaultClearance)
	mustAddPin(b, "A", pcbgraph.Point{X: 0, Y: 0}, 50, 0, 1)
	mustAddPin(b, "B", pcbgraph.Point{X: 1000, Y: 0}, 50, 0, 1)
	mustAddPin(b, "C", pcbgraph.Point{X: 500, Y: 0}, 100, 0, 2)
	return b
}

// RailNesting builds S3: three parallel nets whose pads force three
// routes to stack around the same central obstacle, producing a
// strictly-nested Outer chain of length 3.
func RailNesting() *board.Board {
	b := fresh(DefaultClearance)
	mustAddPin(b, "C", pcbgraph.Point{X: 500, Y: 0}, 60, 0, 100)

	offsets := []float64{-180, 0, 180}
	for i, off := range offsets {
		net := i + 1
		mustAddPin(b, board.PinName(fmt.Sprintf("A%d", net)), pcbgraph.Point{X: 0, Y: off}, 20, 0, net)
		mustAddPin(b, board.PinName(fmt.Sprintf("B%d", net)), pcbgraph.Point{X: 1000, Y: off}, 20, 0, net)
	}
	return b
}

// Unroutable builds S5: two pads separated by an obstacle whose
// clearance envelope blocks every tangent (the obstacle's radius plus
// clearance spans well past both pads' lateral offset).
func Unroutable() *board.Board {
	b := fresh(5) // large clearance, tight obstacle: no tangent clears
	mustAddPin(b, "A", pcbgraph.Point{X: 0, Y: 0}, 10, 0, 1)
	mustAddPin(b, "B", pcbgraph.Point{X: 40, Y: 0}, 10, 0, 1)
	mustAddPin(b, "C", pcbgraph.Point{X: 20, Y: 0}, 1000, 0, 2)
	return b
}

// TwoRatlinesOrdering builds S6: two ratlines that each block the
// other's naive route, so routing order matters (verified with
// presort_by_pairwise_detours true/false in the autorouter tests).
func TwoRatlinesOrdering() *board.Board {
	b := fresh(DefaultClearance)
	mustAddPin(b, "A1", pcbgraph.Point{X: 0, Y: -50}, 20, 0, 1)
	mustAddPin(b, "B1", pcbgraph.Point{X: 1000, Y: 50}, 20, 0, 1)
	mustAddPin(b, "A2", pcbgraph.Point{X: 0, Y: 50}, 20, 0, 2)
	mustAddPin(b, "B2", pcbgraph.Point{X: 1000, Y: -50}, 20, 0, 2)
	mustAddPin(b, "Block", pcbgraph.Point{X: 500, Y: 0}, 150, 0, 100)
	return b
}

// RandomSparse builds a board with n pin-pairs (each its own net)
// scattered in [0,span)x[0,span), plus obstacle dots included
// independently with probability p, using a seeded math/rand.Rand so
// the same (n, p, seed) always yields the same board.
func RandomSparse(n int, p float64, span float64, seed int64) *board.Board {
	b := fresh(DefaultClearance)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < n; i++ {
		net := i + 1
		a := pcbgraph.Point{X: rng.Float64() * span, Y: rng.Float64() * span}
		c := pcbgraph.Point{X: rng.Float64() * span, Y: rng.Float64() * span}
		mustAddPin(b, board.PinName(fmt.Sprintf("A%d", net)), a, 10, 0, net)
		mustAddPin(b, board.PinName(fmt.Sprintf("B%d", net)), c, 10, 0, net)
	}

	obstacleNet := n + 1000
	for i := 0; i < n*2; i++ {
		if rng.Float64() >= p {
			continue
		}
		pos := pcbgraph.Point{X: rng.Float64() * span, Y: rng.Float64() * span}
		radius := 5 + rng.Float64()*10
		if _, err := b.Drawing().AddFixedDot(pos, radius, 0, obstacleNet); err != nil {
			continue // overlaps an existing pin/obstacle; skip rather than retry indefinitely
		}
		obstacleNet++
	}
	return b
}
