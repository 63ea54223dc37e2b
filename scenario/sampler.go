package scenario

import (
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dist is a sampling specification for one uncertain parameter: a
// distribution family plus its parameters. Dist values are plain data so a
// sampler configuration can be persisted (the distributions-and-seed pair is what
// makes a sampled scenario sequence reproducible).
type Dist struct {
	Family Family  `yaml:"family"`
	A      float64 `yaml:"a"` // mean (Normal/LogNormal), min (Uniform), p (Bernoulli)
	B      float64 `yaml:"b"` // stddev (Normal/LogNormal), max (Uniform); unused otherwise
}

// Family enumerates the supported distribution families.
type Family string

const (
	// FamilyNormal samples from a Normal(A, B) distribution (B = stddev).
	FamilyNormal Family = "normal"
	// FamilyUniform samples from a continuous Uniform[A, B).
	FamilyUniform Family = "uniform"
	// FamilyLogNormal samples from LogNormal with location A and scale B.
	FamilyLogNormal Family = "lognormal"
	// FamilyBernoulli samples 0/1 with success probability A.
	FamilyBernoulli Family = "bernoulli"
)

// Normal is a convenience constructor for a Normal(mu, sigma) Dist.
func Normal(mu, sigma float64) Dist { return Dist{Family: FamilyNormal, A: mu, B: sigma} }

// Uniform is a convenience constructor for a Uniform[min, max) Dist.
func Uniform(min, max float64) Dist { return Dist{Family: FamilyUniform, A: min, B: max} }

// LogNormal is a convenience constructor for a LogNormal(mu, sigma) Dist.
func LogNormal(mu, sigma float64) Dist { return Dist{Family: FamilyLogNormal, A: mu, B: sigma} }

// Bernoulli is a convenience constructor for a Bernoulli(p) Dist.
func Bernoulli(p float64) Dist { return Dist{Family: FamilyBernoulli, A: p} }

// Sampler draws independent scenario realizations for a set of named
// uncertain parameters. Each parameter has its own distribution; draws
// across parameters and across scenarios are independent.
type Sampler struct {
	dists map[string]Dist
}

// NewSampler builds a Sampler from parameter-name -> distribution specs.
// The map is copied.
func NewSampler(dists map[string]Dist) (*Sampler, error) {
	if len(dists) == 0 {
		return nil, ErrNoDistributions
	}

	cp := make(map[string]Dist, len(dists))
	for k, d := range dists {
		if _, err := rander(d, nil); err != nil {
			return nil, err
		}
		cp[k] = d
	}

	return &Sampler{dists: cp}, nil
}

// Sample draws n scenarios with uniform weight 1/n (SAA weighting) using
// the given seed. The same (sampler spec, n, seed) triple reproduces the
// same Set; without the seed the sequence is not re-iterable.
//
// Errors: ErrBadSampleSize for n <= 0.
func (p *Sampler) Sample(n int, seed uint64) (*Set, error) {
	if n <= 0 {
		return nil, ErrBadSampleSize
	}

	// One shared source: parameter draws are interleaved deterministically
	// in ascending parameter-name order.
	src := rand.NewSource(seed)

	names := make([]string, 0, len(p.dists))
	for k := range p.dists {
		names = append(names, k)
	}
	sort.Strings(names)

	draws := make(map[string]interface{ Rand() float64 }, len(names))
	for _, name := range names {
		r, err := rander(p.dists[name], src)
		if err != nil {
			return nil, err
		}
		draws[name] = r
	}

	params := make([]map[string]float64, n)
	for i := 0; i < n; i++ {
		row := make(map[string]float64, len(names))
		for _, name := range names {
			row[name] = draws[name].Rand()
		}
		params[i] = row
	}

	return Equal(params...)
}

// rander maps a Dist spec onto its distuv sampler. A nil src is used for
// spec validation only.
func rander(d Dist, src rand.Source) (interface{ Rand() float64 }, error) {
	switch d.Family {
	case FamilyNormal:
		if d.B < 0 {
			return nil, ErrBadValue
		}

		return distuv.Normal{Mu: d.A, Sigma: d.B, Src: src}, nil
	case FamilyUniform:
		if d.B < d.A {
			return nil, ErrBadValue
		}

		return distuv.Uniform{Min: d.A, Max: d.B, Src: src}, nil
	case FamilyLogNormal:
		if d.B < 0 {
			return nil, ErrBadValue
		}

		return distuv.LogNormal{Mu: d.A, Sigma: d.B, Src: src}, nil
	case FamilyBernoulli:
		if d.A < 0 || d.A > 1 {
			return nil, ErrBadValue
		}

		return distuv.Bernoulli{P: d.A, Src: src}, nil
	default:
		return nil, ErrUnknownFamily
	}
}
