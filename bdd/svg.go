//
// svg.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bdd

import (
	"fmt"
	"io"
	"sort"
)

const (
	nodeRadius = 16
	nodePadX   = 24
	nodePadY   = 48
)

type svgTile struct {
	node Node
	x    float64
	y    float64
}

// WriteSvg writes an SVG rendering of the diagram rooted at n. Nodes
// are laid out in rows by variable rank with the constant nodes on
// the bottom row; low branches are drawn dashed.
func (ctx *Context) WriteSvg(w io.Writer, n Node) {
	reachable := make(map[Node]bool)
	ctx.markReachable(n, reachable)

	// Group nodes into rows by rank.
	rows := make(map[int][]Node)
	var ranks []int
	for id := range reachable {
		rank := ctx.order.Rank(ctx.nodes[id].Var)
		if len(rows[rank]) == 0 {
			ranks = append(ranks, rank)
		}
		rows[rank] = append(rows[rank], id)
	}
	sort.Ints(ranks)

	tiles := make(map[Node]*svgTile)

	var maxWidth float64
	for y, rank := range ranks {
		row := rows[rank]
		sort.Slice(row, func(i, j int) bool {
			return row[i] < row[j]
		})
		for x, id := range row {
			tiles[id] = &svgTile{
				node: id,
				x:    float64(nodePadX + x*(2*nodeRadius+nodePadX) + nodeRadius),
				y:    float64(nodePadY + y*(2*nodeRadius+nodePadY) + nodeRadius),
			}
		}
		if width := float64(nodePadX + len(row)*(2*nodeRadius+nodePadX)); width > maxWidth {
			maxWidth = width
		}
	}

	// Constant nodes on the bottom row.
	terminalY := float64(nodePadY + len(ranks)*(2*nodeRadius+nodePadY) + nodeRadius)
	for x, id := range []Node{Zero, One} {
		tiles[id] = &svgTile{
			node: id,
			x:    float64(nodePadX + x*(2*nodeRadius+nodePadX) + nodeRadius),
			y:    terminalY,
		}
	}
	if width := float64(nodePadX + 2*(2*nodeRadius+nodePadX)); width > maxWidth {
		maxWidth = width
	}

	height := terminalY + nodeRadius + nodePadY

	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">
`, int(maxWidth), int(height))

	for _, id := range sortedTiles(tiles) {
		tile := tiles[id]
		if ctx.IsTerminal(id) {
			continue
		}
		node := ctx.nodes[id]
		low := tiles[node.Low]
		high := tiles[node.High]
		fmt.Fprintf(w,
			`  <line x1="%.0f" y1="%.0f" x2="%.0f" y2="%.0f" stroke="black" stroke-dasharray="4"/>
`,
			tile.x, tile.y, low.x, low.y)
		fmt.Fprintf(w,
			`  <line x1="%.0f" y1="%.0f" x2="%.0f" y2="%.0f" stroke="black"/>
`,
			tile.x, tile.y, high.x, high.y)
	}

	for _, id := range sortedTiles(tiles) {
		tile := tiles[id]
		label := ctx.nodeLabel(id)
		if ctx.IsTerminal(id) {
			fmt.Fprintf(w,
				`  <rect x="%.0f" y="%.0f" width="%d" height="%d" fill="white" stroke="black"/>
`,
				tile.x-nodeRadius, tile.y-nodeRadius, 2*nodeRadius,
				2*nodeRadius)
		} else {
			fmt.Fprintf(w,
				`  <circle cx="%.0f" cy="%.0f" r="%d" fill="white" stroke="black"/>
`,
				tile.x, tile.y, nodeRadius)
		}
		fmt.Fprintf(w,
			`  <text x="%.0f" y="%.0f" text-anchor="middle" dominant-baseline="middle">%s</text>
`,
			tile.x, tile.y, label)
	}
	fmt.Fprintf(w, "</svg>\n")
}

func sortedTiles(tiles map[Node]*svgTile) []Node {
	var ids []Node
	for id := range tiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}
