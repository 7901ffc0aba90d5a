//
// options_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package compiler

import (
	"bytes"
	"os"
	"path"
	"testing"
)

func TestLoadOptions(t *testing.T) {
	file := path.Join(t.TempDir(), "options.yaml")
	err := os.WriteFile(file, []byte(`order:
  - b
  - a
sift: true
`), 0644)
	if err != nil {
		t.Fatalf("WriteFile failed: %s", err)
	}

	options, err := LoadOptions(file)
	if err != nil {
		t.Fatalf("LoadOptions failed: %s", err)
	}
	if len(options.Order) != 2 || options.Order[0] != "b" {
		t.Errorf("order: %v", options.Order)
	}
	if !options.Sift {
		t.Errorf("sift not set")
	}
}

func TestReportWrite(t *testing.T) {
	report := &Report{
		Inputs:       []string{"a", "b"},
		Outputs:      []string{"y"},
		Gates:        1,
		InitialOrder: []string{"a", "b"},
		InitialSize:  5,
	}
	var buf bytes.Buffer
	if err := report.Write(&buf); err != nil {
		t.Fatalf("Write failed: %s", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"initial_size": 5`)) {
		t.Errorf("report: %s", buf.String())
	}
}
