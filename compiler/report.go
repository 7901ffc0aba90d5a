//
// report.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package compiler

import (
	"io"

	"github.com/goccy/go-json"
)

// Report summarizes one synthesis run: the netlist shape, the
// variable orders, and the diagram sizes before and after sifting.
type Report struct {
	Inputs       []string `json:"inputs"`
	Outputs      []string `json:"outputs"`
	Gates        int      `json:"gates"`
	InitialOrder []string `json:"initial_order"`
	InitialSize  int      `json:"initial_size"`
	Sifted       bool     `json:"sifted"`
	FinalOrder   []string `json:"final_order,omitempty"`
	FinalSize    int      `json:"final_size,omitempty"`
}

// Write writes the report as indented JSON.
func (r *Report) Write(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
