package scenario

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File layout accepted by Load:
//
//	scenarios:
//	  - id: high
//	    probability: 0.10
//	    params:
//	      demand: 650
//	  - id: base
//	    probability: 0.60
//	    params:
//	      demand: 400
//
// Validation is NewSet's: strict weights, unique IDs, finite values.

type fileSpec struct {
	Scenarios []entrySpec `yaml:"scenarios"`
}

type entrySpec struct {
	ID          string             `yaml:"id"`
	Probability float64            `yaml:"probability"`
	Params      map[string]float64 `yaml:"params"`
}

// Load reads a YAML scenario table from r and builds a validated Set.
func Load(r io.Reader) (*Set, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("scenario: read: %w", err)
	}

	var spec fileSpec
	if err = yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("scenario: parse: %w", err)
	}

	scs := make([]Scenario, len(spec.Scenarios))
	for i, e := range spec.Scenarios {
		scs[i] = New(e.ID, e.Probability, e.Params)
	}

	return NewSet(scs...)
}

// LoadFile is Load over a file path.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open: %w", err)
	}
	defer f.Close()

	return Load(f)
}
