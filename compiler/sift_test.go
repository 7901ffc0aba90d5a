//
// sift_test.go
//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package compiler

import (
	"strings"
	"testing"

	"github.com/markkurossi/robdd/bdd"
	"github.com/markkurossi/robdd/netlist"
)

// Disjunction of three conjunctions: linear under the interleaved
// order, exponential under the grouped order.
var disjunction = `input a1, b1, a2, b2, a3, b3;
output y;
and g1(t1, a1, b1);
and g2(t2, a2, b2);
and g3(t3, a3, b3);
or g4(t4, t1, t2);
or g5(y, t4, t3);
endmodule
`

func compileDisjunction(t *testing.T) *Compiler {
	nl, err := netlist.Parse(strings.NewReader(disjunction))
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	return NewCompiler(nl)
}

func TestOrderingSensitivity(t *testing.T) {
	comp := compileDisjunction(t)

	good := bdd.NewOrder([]string{"a1", "b1", "a2", "b2", "a3", "b3"})
	bad := bdd.NewOrder([]string{"a1", "a2", "a3", "b1", "b2", "b3"})

	goodCtx, goodRoot := comp.Build(good)
	badCtx, badRoot := comp.Build(bad)

	goodSize := goodCtx.Count(goodRoot)
	badSize := badCtx.Count(badRoot)

	if goodSize != 6 {
		t.Errorf("interleaved order: %d reachable nodes, expected 6",
			goodSize)
	}
	if badSize != 14 {
		t.Errorf("grouped order: %d reachable nodes, expected 14", badSize)
	}
}

func TestSift(t *testing.T) {
	comp := compileDisjunction(t)

	bad := bdd.NewOrder([]string{"a1", "a2", "a3", "b1", "b2", "b3"})
	badCtx, _ := comp.Build(bad)
	badSize := badCtx.Size()

	order, ctx, root := comp.Sift(bad)

	if ctx.Size() > badSize {
		t.Fatalf("sift grew the diagram: %d > %d", ctx.Size(), badSize)
	}
	if order.Len() != 6 {
		t.Fatalf("sift lost variables: %v", order.Vars())
	}

	// Sifting must not change the function.
	for bits := 0; bits < 1<<6; bits++ {
		assign := make(map[string]bool)
		for i, in := range []string{"a1", "b1", "a2", "b2", "a3", "b3"} {
			assign[in] = bits&(1<<i) != 0
		}
		sim := comp.netlist.Eval(assign)
		if got := ctx.Eval(root, assign); got != sim["y"] {
			t.Fatalf("sift changed the function at %v", assign)
		}
	}
}

func TestSiftSingleVariable(t *testing.T) {
	nl, err := netlist.Parse(strings.NewReader(`input a;
output y;
not g1(y, a);
endmodule
`))
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	comp := NewCompiler(nl)

	order, ctx, root := comp.Sift(comp.InitialOrder())
	if order.Len() != 1 {
		t.Fatalf("order: %v", order.Vars())
	}
	if ctx.Eval(root, map[string]bool{"a": true}) {
		t.Errorf("not(a) is true for a=1")
	}
}
