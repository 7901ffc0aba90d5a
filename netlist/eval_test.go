//
// eval_test.go
//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import (
	"strings"
	"testing"
)

func parse(t *testing.T, data string) *Netlist {
	nl, err := Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	return nl
}

func TestEvalXor(t *testing.T) {
	nl := parse(t, `input a, b;
output y;
xor g1(y, a, b);
endmodule
`)
	for _, test := range []struct {
		a, b     bool
		expected bool
	}{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	} {
		env := nl.Eval(map[string]bool{
			"a": test.a,
			"b": test.b,
		})
		if env["y"] != test.expected {
			t.Errorf("xor(%v, %v) = %v", test.a, test.b, env["y"])
		}
	}
}

// A three-input NAND folds from the left: NAND(NAND(a, b), c), not
// the negated conjunction of all inputs.
func TestEvalNandFold(t *testing.T) {
	nl := parse(t, `input a, b, c;
output y;
nand g1(y, a, b, c);
endmodule
`)
	env := nl.Eval(map[string]bool{
		"a": true,
		"b": true,
		"c": true,
	})
	// NAND(NAND(1, 1), 1) = NAND(0, 1) = 1.
	if env["y"] != true {
		t.Errorf("left fold broken: y = %v", env["y"])
	}
}

func TestEvalMissingInput(t *testing.T) {
	nl := parse(t, `input a;
output y;
and g1(y, a, ghost);
endmodule
`)
	env := nl.Eval(map[string]bool{
		"a": true,
	})
	if env["y"] != false {
		t.Errorf("missing input did not read as false")
	}
}

func TestEvalCycle(t *testing.T) {
	nl := parse(t, `input a;
output y;
and g1(t1, a, t2);
and g2(t2, a, t1);
or g3(y, t1, t2);
endmodule
`)
	// Termination is the property; the values are unspecified.
	nl.Eval(map[string]bool{
		"a": true,
	})
}
