package rng

import (
	"math/rand/v2"

	"go.uber.org/fx"
)

// Source supplies the uniform draws used by data synthesis. Implementations
// are not required to be safe for concurrent use; generation is sequential.
type Source interface {
	// Float64Between returns a uniform value in [lo, hi). Returns lo when
	// hi <= lo, so a degenerate range is well-defined.
	Float64Between(lo, hi float64) float64
	// IntBetween returns a uniform integer in [lo, hi] inclusive.
	IntBetween(lo, hi int) int
	// IntN returns a uniform integer in [0, n). Returns 0 when n <= 0.
	IntN(n int) int
	// Chance reports true with probability p.
	Chance(p float64) bool
}

// Module exposes the production randomness source to the Fx container.
var Module = fx.Provide(New)

// New returns the production source backed by the process-global
// math/rand/v2 generator. No seeding is performed; runs are not
// reproducible unless a seeded source is injected instead.
func New() Source {
	return system{}
}

type system struct{}

func (system) Float64Between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rand.Float64()*(hi-lo)
}

func (system) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rand.IntN(hi-lo+1)
}

func (system) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

func (system) Chance(p float64) bool {
	return rand.Float64() < p
}

// NewSeeded returns a deterministic source for tests.
func NewSeeded(seed uint64) Source {
	return &seeded{r: rand.New(rand.NewPCG(seed, seed))}
}

type seeded struct {
	r *rand.Rand
}

func (s *seeded) Float64Between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Float64()*(hi-lo)
}

func (s *seeded) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

func (s *seeded) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

func (s *seeded) Chance(p float64) bool {
	return s.r.Float64() < p
}

// Weighted pairs a categorical value with an integer weight.
type Weighted struct {
	Value  string
	Weight int
}

// PickWeighted draws one value with probability proportional to its weight.
// Zero or negative weights are skipped; an empty or weightless set yields "".
func PickWeighted(src Source, choices []Weighted) string {
	total := 0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total <= 0 {
		return ""
	}
	n := src.IntN(total)
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		if n < c.Weight {
			return c.Value
		}
		n -= c.Weight
	}
	return choices[len(choices)-1].Value
}
