//
// main.go
//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Command bddtree reads a gate-level netlist in a Verilog-like subset
// and prints the reduced ordered binary decision diagram of its first
// primary output as an indented tree.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/markkurossi/robdd/bdd"
	"github.com/markkurossi/robdd/compiler"
	"github.com/markkurossi/robdd/netlist"
	"github.com/markkurossi/tabulate"
)

var (
	fSift    = flag.Bool("sift", false, "minimize diagram size by variable sifting")
	fDot     = flag.Bool("dot", false, "output graphviz dot instead of the tree")
	fSvg     = flag.Bool("svg", false, "output SVG instead of the tree")
	fTable   = flag.Bool("table", false, "print the netlist truth table")
	fJSON    = flag.String("json", "", "write JSON report to file")
	fOptions = flag.String("options", "", "YAML options file")
	fVerbose = flag.Bool("v", false, "verbose output")
)

func main() {
	flag.Parse()

	var options *compiler.Options
	if len(*fOptions) > 0 {
		var err error
		options, err = compiler.LoadOptions(*fOptions)
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(flag.Args()) == 0 {
		if err := process(os.Stdin, options); err != nil {
			log.Fatal(err)
		}
		return
	}
	for _, arg := range flag.Args() {
		f, err := os.Open(arg)
		if err != nil {
			fmt.Printf("Failed to open netlist '%s': %s\n", arg, err)
			os.Exit(1)
		}
		err = process(f, options)
		f.Close()
		if err != nil {
			fmt.Printf("Failed to process netlist '%s': %s\n", arg, err)
			os.Exit(1)
		}
	}
}

func process(in io.Reader, options *compiler.Options) error {
	timing := compiler.NewTiming()

	nl, err := netlist.Parse(in)
	if err != nil {
		return err
	}
	timing.Sample("Parse", []string{nl.String()})

	comp := compiler.NewCompiler(nl)

	order := comp.InitialOrder()
	sift := *fSift
	if options != nil {
		if len(options.Order) > 0 {
			// Primary inputs missing from the explicit order keep
			// their declaration order after it.
			vars := make([]string, len(options.Order))
			copy(vars, options.Order)
			seen := make(map[string]bool)
			for _, v := range vars {
				seen[v] = true
			}
			for _, in := range nl.Inputs {
				if !seen[in] {
					vars = append(vars, in)
				}
			}
			order = bdd.NewOrder(vars)
		}
		sift = sift || options.Sift
	}

	ctx, root := comp.Build(order)
	timing.Sample("Build", []string{fmt.Sprintf("%d", ctx.Size())})

	report := &compiler.Report{
		Inputs:       nl.Inputs,
		Outputs:      nl.Outputs,
		Gates:        len(nl.Gates),
		InitialOrder: order.Vars(),
		InitialSize:  ctx.Size(),
	}

	if sift {
		order, ctx, root = comp.Sift(order)
		timing.Sample("Sift", []string{fmt.Sprintf("%d", ctx.Size())})

		report.Sifted = true
		report.FinalOrder = order.Vars()
		report.FinalSize = ctx.Size()
	}

	switch {
	case *fDot:
		ctx.WriteDot(os.Stdout, root)

	case *fSvg:
		ctx.WriteSvg(os.Stdout, root)

	case *fTable:
		if err := printTable(os.Stdout, nl, ctx, root); err != nil {
			return err
		}

	default:
		ctx.WriteTree(os.Stdout, root)
	}

	if *fVerbose {
		ctx.WriteStatsTable(os.Stdout)
		timing.Print(os.Stdout)
	}

	if len(*fJSON) > 0 {
		f, err := os.Create(*fJSON)
		if err != nil {
			return err
		}
		defer f.Close()
		return report.Write(f)
	}
	return nil
}

// printTable prints the truth table of the netlist, one column per
// primary input and output, plus the diagram value of the first
// output.
func printTable(w io.Writer, nl *netlist.Netlist, ctx *bdd.Context,
	root bdd.Node) error {

	if len(nl.Inputs) > 16 {
		return fmt.Errorf("too many inputs for truth table: %d",
			len(nl.Inputs))
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	for _, in := range nl.Inputs {
		tab.Header(in).SetAlign(tabulate.MR)
	}
	for _, out := range nl.Outputs {
		tab.Header(out).SetAlign(tabulate.MR)
	}
	tab.Header("bdd").SetAlign(tabulate.MR)

	for bits := 0; bits < 1<<len(nl.Inputs); bits++ {
		assign := make(map[string]bool)
		for idx, in := range nl.Inputs {
			assign[in] = bits&(1<<(len(nl.Inputs)-1-idx)) != 0
		}
		env := nl.Eval(assign)

		row := tab.Row()
		for _, in := range nl.Inputs {
			row.Column(bit(assign[in]))
		}
		for _, out := range nl.Outputs {
			row.Column(bit(env[out]))
		}
		row.Column(bit(ctx.Eval(root, assign)))
	}
	tab.Print(w)
	return nil
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
