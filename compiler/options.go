//
// options.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package compiler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options control synthesis. An options file can force an explicit
// initial variable order and enable sifting:
//
//	order:
//	  - a
//	  - b
//	  - c
//	sift: true
type Options struct {
	Order []string `yaml:"order"`
	Sift  bool     `yaml:"sift"`
}

// LoadOptions loads synthesis options from a YAML file.
func LoadOptions(file string) (*Options, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	options := new(Options)
	if err := yaml.Unmarshal(data, options); err != nil {
		return nil, fmt.Errorf("%s: %s", file, err)
	}
	return options, nil
}
