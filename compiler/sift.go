//
// sift.go
//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package compiler

import (
	"github.com/markkurossi/robdd/bdd"
)

// Sift minimizes the diagram size with one pass of Rudell's sifting
// heuristic. Each variable in turn is tried at every position of the
// order: an upward sweep probes the positions above the variable, a
// downward sweep the positions below, and the variable moves to the
// position with the smallest diagram. Every probe rebuilds the whole
// diagram from the netlist. The best position is measured against the
// order in effect at the start of the variable's sweep, so a later
// sift can undo an earlier improvement.
//
// Sift returns the final order together with the context and root
// built under it.
func (c *Compiler) Sift(initial bdd.Order) (bdd.Order, *bdd.Context, bdd.Node) {
	order := initial.Clone()
	ctx, root := c.Build(order)

	for _, v := range order.Vars() {
		start := order.Clone()
		pos := start.Rank(v)

		bestPos := pos
		bestSize := ctx.Size()

		// Upward sweep: move v one position at a time towards the
		// root, probing every position from pos-1 down to 0.
		trial := start.Clone()
		for j := pos - 1; j >= 0; j-- {
			trial.Swap(j)
			probe, _ := c.Build(trial)
			if size := probe.Size(); size < bestSize {
				bestSize = size
				bestPos = j
			}
		}

		// Downward sweep from the starting order.
		trial = start.Clone()
		for j := pos + 1; j < trial.Len(); j++ {
			trial.Swap(j - 1)
			probe, _ := c.Build(trial)
			if size := probe.Size(); size < bestSize {
				bestSize = size
				bestPos = j
			}
		}

		order = start
		if bestPos != pos {
			order.Move(pos, bestPos)
		}
		ctx, root = c.Build(order)
	}
	return order, ctx, root
}
