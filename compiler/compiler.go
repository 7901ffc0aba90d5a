//
// compiler.go
//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package compiler synthesizes reduced ordered binary decision
// diagrams from gate-level netlists and minimizes their size by
// variable sifting.
package compiler

import (
	"io"
	"os"
	"strings"

	"github.com/markkurossi/robdd/bdd"
	"github.com/markkurossi/robdd/netlist"
)

var operations = map[netlist.Kind]bdd.Operation{
	netlist.AND:  bdd.AND,
	netlist.OR:   bdd.OR,
	netlist.XOR:  bdd.XOR,
	netlist.NAND: bdd.NAND,
	netlist.NOR:  bdd.NOR,
}

// Compile parses the netlist data and builds the diagram of its
// first declared primary output under the input declaration order.
func Compile(data string) (*bdd.Context, bdd.Node, error) {
	return compile(strings.NewReader(data))
}

// CompileFile parses the netlist file and builds the diagram of its
// first declared primary output under the input declaration order.
func CompileFile(file string) (*bdd.Context, bdd.Node, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, bdd.Zero, err
	}
	defer f.Close()
	return compile(f)
}

func compile(in io.Reader) (*bdd.Context, bdd.Node, error) {
	nl, err := netlist.Parse(in)
	if err != nil {
		return nil, bdd.Zero, err
	}
	c := NewCompiler(nl)
	ctx, root := c.Build(c.InitialOrder())
	return ctx, root, nil
}

// Compiler synthesizes diagrams from one netlist. The compiler itself
// is stateless across builds: every Build creates a fresh context and
// the sifter relies on that.
type Compiler struct {
	netlist *netlist.Netlist
}

// NewCompiler creates a compiler for the netlist.
func NewCompiler(nl *netlist.Netlist) *Compiler {
	return &Compiler{
		netlist: nl,
	}
}

// InitialOrder returns the variable order defined by the primary
// input declaration order.
func (c *Compiler) InitialOrder() bdd.Order {
	return bdd.NewOrder(c.netlist.Inputs)
}

// Build constructs the diagram of the first declared primary output
// under the given variable order. Gates are evaluated in topological
// passes over the signal dependencies; when a pass makes no progress,
// the remaining gates are evaluated in declaration order with
// whatever bindings exist, so the build terminates on cyclic
// netlists. A missing input binding reads as the constant false and a
// gate of unknown kind produces the constant false.
func (c *Compiler) Build(order bdd.Order) (*bdd.Context, bdd.Node) {
	ctx := bdd.New(order)

	env := make(map[string]bdd.Node)
	for _, in := range c.netlist.Inputs {
		env[in] = ctx.Var(in)
	}

	done := make([]bool, len(c.netlist.Gates))
	remaining := len(c.netlist.Gates)

	for remaining > 0 {
		progress := false
		for idx, gate := range c.netlist.Gates {
			if done[idx] || !ready(env, gate) {
				continue
			}
			env[gate.Output] = c.evalGate(ctx, env, gate)
			done[idx] = true
			remaining--
			progress = true
		}
		if !progress {
			break
		}
	}

	// Fallback pass for cyclic or malformed netlists.
	for idx, gate := range c.netlist.Gates {
		if !done[idx] {
			env[gate.Output] = c.evalGate(ctx, env, gate)
		}
	}

	if len(c.netlist.Outputs) == 0 {
		return ctx, bdd.Zero
	}
	// An unbound output reads as the constant false.
	return ctx, env[c.netlist.Outputs[0]]
}

// ready reports whether all gate inputs are bound.
func ready(env map[string]bdd.Node, gate netlist.Gate) bool {
	for _, in := range gate.Inputs {
		if _, ok := env[in]; !ok {
			return false
		}
	}
	return true
}

// evalGate computes the diagram of the gate output. Multi-input gates
// fold their operation from the left, so a three-input NAND computes
// NAND(NAND(a, b), c).
func (c *Compiler) evalGate(ctx *bdd.Context, env map[string]bdd.Node,
	gate netlist.Gate) bdd.Node {

	if len(gate.Inputs) == 0 {
		return bdd.Zero
	}
	if gate.Kind == netlist.NOT {
		return ctx.Not(env[gate.Inputs[0]])
	}
	op, ok := operations[gate.Kind]
	if !ok {
		return bdd.Zero
	}
	acc := env[gate.Inputs[0]]
	for _, in := range gate.Inputs[1:] {
		acc = ctx.Apply(acc, env[in], op)
	}
	return acc
}
