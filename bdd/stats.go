//
// stats.go
//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package bdd

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Stats holds statistics about a context.
type Stats struct {
	Variables   int
	Live        int
	Decision    int
	Unique      int
	CacheHits   int
	CacheMisses int
}

func (s Stats) String() string {
	return fmt.Sprintf("#vars=%d #nodes=%d #decision=%d", s.Variables,
		s.Live, s.Decision)
}

// Stats returns statistics about the context.
func (ctx *Context) Stats() Stats {
	return Stats{
		Variables:   ctx.order.Len(),
		Live:        len(ctx.nodes),
		Decision:    len(ctx.nodes) - 2,
		Unique:      len(ctx.unique),
		CacheHits:   ctx.cacheHits,
		CacheMisses: ctx.cacheMisses,
	}
}

// WriteStatsTable renders the context statistics as a table.
func (ctx *Context) WriteStatsTable(w io.Writer) {
	stats := ctx.Stats()

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Stat").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)

	rows := []struct {
		label string
		value int
	}{
		{"Variables", stats.Variables},
		{"Live nodes", stats.Live},
		{"Decision nodes", stats.Decision},
		{"Unique table", stats.Unique},
		{"Apply cache hits", stats.CacheHits},
		{"Apply cache misses", stats.CacheMisses},
	}
	for _, r := range rows {
		row := tab.Row()
		row.Column(r.label)
		row.Column(fmt.Sprintf("%d", r.value))
	}
	tab.Print(w)
}
