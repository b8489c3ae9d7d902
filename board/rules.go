// Package board is the clearance-rule and pin/net/band query façade a
// UI or autorouter invoker talks to: it owns a drawing.Drawing plus the
// pin-name/net bookkeeping and zone records that the bare primitive
// graph has no notion of.
package board

import "github.com/katalvlaran/boardrouter/drawing"

// ClassPair names an (a, b) net-class pair a clearance override applies
// to; classes are looked up in both orders.
type ClassPair struct {
	A, B string
}

// Rules is the board's clearance rule set: every net belongs to a
// class (the empty string is the default class), and clearance is the
// matching class-pair override when one is set, else the default
// clearance, as in a DSN class-to-net clearance table.
type Rules struct {
	defaultClearance float64
	netClass         map[int]string
	classClearance   map[ClassPair]float64
}

// NewRules returns a Rules using defaultClearance for any net/class
// pair without an explicit override.
func NewRules(defaultClearance float64) *Rules {
	return &Rules{
		defaultClearance: defaultClearance,
		netClass:         make(map[int]string),
		classClearance:   make(map[ClassPair]float64),
	}
}

// SetNetClass assigns net to class, overriding any prior assignment.
func (r *Rules) SetNetClass(net int, class string) {
	r.netClass[net] = class
}

// SetClassClearance overrides the clearance required between a and b
// (checked in both orders; a pair is its own reverse when a == b).
func (r *Rules) SetClassClearance(a, b string, clearance float64) {
	r.classClearance[ClassPair{A: a, B: b}] = clearance
	r.classClearance[ClassPair{A: b, B: a}] = clearance
}

func (r *Rules) classOf(net int) string { return r.netClass[net] }

// Clearance returns the clearance required between two primitives'
// conditions: the class-pair override if one is set, else the default.
func (r *Rules) Clearance(a, b drawing.Conditions) float64 {
	ca, cb := r.classOf(a.Net), r.classOf(b.Net)
	if c, ok := r.classClearance[ClassPair{A: ca, B: cb}]; ok {
		return c
	}
	return r.defaultClearance
}

// LargestClearance returns the largest clearance net could possibly
// require against any other class, used to size the R-tree prefilter
// query's inflation margin.
func (r *Rules) LargestClearance(net int) float64 {
	largest := r.defaultClearance
	class := r.classOf(net)
	for pair, c := range r.classClearance {
		if (pair.A == class || pair.B == class) && c > largest {
			largest = c
		}
	}
	return largest
}

var _ drawing.Rules = (*Rules)(nil)
