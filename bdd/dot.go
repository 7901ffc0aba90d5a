//
// dot.go
//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package bdd

import (
	"fmt"
	"io"
	"sort"

	"github.com/markkurossi/text/superscript"
)

// WriteDot writes graphviz dot output of the diagram rooted at n.
// Decision nodes are labeled with their variable and its rank as a
// superscript. Low branches are drawn dotted and edges to the
// constant false are omitted.
func (ctx *Context) WriteDot(w io.Writer, n Node) {
	fmt.Fprintf(w, "digraph bdd\n{\n")
	fmt.Fprintf(w, "  node\t[fontname=\"Helvetica\"];\n")
	fmt.Fprintf(w, "  1\t[shape=box, style=filled, height=0.3, width=0.3];\n")

	reachable := make(map[Node]bool)
	ctx.markReachable(n, reachable)

	var nodes []Node
	for id := range reachable {
		nodes = append(nodes, id)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i] < nodes[j]
	})

	for _, id := range nodes {
		node := ctx.nodes[id]
		fmt.Fprintf(w, "  %d\t[label=\"%s%s\"];\n", id, node.Var,
			superscript.Itoa(ctx.order.Rank(node.Var)))
		if node.Low != Zero {
			fmt.Fprintf(w, "  %d -> %d [style=dotted];\n", id, node.Low)
		}
		if node.High != Zero {
			fmt.Fprintf(w, "  %d -> %d [style=filled];\n", id, node.High)
		}
	}
	fmt.Fprintf(w, "}\n")
}

func (ctx *Context) markReachable(n Node, seen map[Node]bool) {
	if ctx.IsTerminal(n) || seen[n] {
		return
	}
	seen[n] = true
	ctx.markReachable(ctx.nodes[n].Low, seen)
	ctx.markReachable(ctx.nodes[n].High, seen)
}
