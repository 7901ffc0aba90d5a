//
// bdd.go
//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package bdd implements reduced ordered binary decision diagrams
// (ROBDD). A diagram lives inside a Context, which owns the node
// store, the hash-consing unique table, and the variable order. Nodes
// are canonical: two nodes of the same context represent the same
// Boolean function if and only if they have the same id.
package bdd

// Node is a reference to a node of a Context. The constant nodes
// Zero and One have fixed ids in every context.
type Node int32

// Constant nodes.
const (
	Zero Node = 0
	One  Node = 1
)

type node struct {
	Var  string
	Low  Node
	High Node
}

type triple struct {
	Var  string
	Low  Node
	High Node
}

// Context owns all nodes of a diagram. It is created empty for a
// variable order, populated by one build, and discarded as a whole
// before the next rebuild. Nodes are never mutated after creation.
type Context struct {
	order  Order
	nodes  []node
	unique map[triple]Node
	apply  map[applyKey]Node
	nots   map[Node]Node

	cacheHits   int
	cacheMisses int
}

// New creates an empty context for the given variable order. The
// constant nodes are allocated first so that their ids are stable.
func New(order Order) *Context {
	return &Context{
		order: order.Clone(),
		nodes: []node{
			{Low: Zero, High: Zero},
			{Low: One, High: One},
		},
		unique: make(map[triple]Node),
		apply:  make(map[applyKey]Node),
		nots:   make(map[Node]Node),
	}
}

// MakeNode returns the canonical node for the function selecting low
// when v is false and high when v is true. It is the sole
// construction path for decision nodes: equal children collapse to
// the common child and structurally equal nodes are shared through
// the unique table. Decision children must have strictly greater rank
// than v; Apply maintains this by construction.
func (ctx *Context) MakeNode(v string, low, high Node) Node {
	if low == high {
		return low
	}
	key := triple{
		Var:  v,
		Low:  low,
		High: high,
	}
	if n, ok := ctx.unique[key]; ok {
		return n
	}
	n := Node(len(ctx.nodes))
	ctx.nodes = append(ctx.nodes, node{
		Var:  v,
		Low:  low,
		High: high,
	})
	ctx.unique[key] = n
	return n
}

// Var returns the diagram of the single variable name.
func (ctx *Context) Var(name string) Node {
	return ctx.MakeNode(name, Zero, One)
}

// IsTerminal reports whether n is one of the constant nodes.
func (ctx *Context) IsTerminal(n Node) bool {
	return n == Zero || n == One
}

// Value returns the Boolean value of a constant node.
func (ctx *Context) Value(n Node) bool {
	return n == One
}

// Label returns the variable of the decision node n, or the empty
// string for constant nodes.
func (ctx *Context) Label(n Node) string {
	return ctx.nodes[n].Var
}

// Low returns the false branch of n.
func (ctx *Context) Low(n Node) Node {
	return ctx.nodes[n].Low
}

// High returns the true branch of n.
func (ctx *Context) High(n Node) Node {
	return ctx.nodes[n].High
}

// Order returns the variable order of the context.
func (ctx *Context) Order() Order {
	return ctx.order.Clone()
}

// Rank returns the rank of variable v in the context order.
func (ctx *Context) Rank(v string) int {
	return ctx.order.Rank(v)
}

// Size returns the number of live nodes in the context, constants
// included.
func (ctx *Context) Size() int {
	return len(ctx.nodes)
}

// NumNodes returns the number of decision nodes in the context.
func (ctx *Context) NumNodes() int {
	return len(ctx.nodes) - 2
}

// Count returns the number of decision nodes reachable from n.
func (ctx *Context) Count(n Node) int {
	seen := make(map[Node]bool)
	ctx.markReachable(n, seen)
	return len(seen)
}

// rank returns the rank of the top variable of n. Constant nodes sort
// after all real variables.
func (ctx *Context) rank(n Node) int {
	if n == Zero || n == One {
		return rankMax
	}
	return ctx.order.Rank(ctx.nodes[n].Var)
}
