package problem

import (
	"math/rand/v2"
	"time"
)

// Config bounds the generated problem set.
type Config struct {
	// Count is the number of problems per test.
	Count int

	// OperandBound is the exclusive upper bound for drawn operands.
	OperandBound int

	// SumMax is the inclusive upper bound for addition results. Additions
	// exceeding it are discarded and redrawn.
	SumMax int
}

// DefaultConfig returns the standard 10-question test configuration.
func DefaultConfig() Config {
	return Config{
		Count:        10,
		OperandBound: 50,
		SumMax:       50,
	}
}

// Generator produces bounded addition and subtraction problems.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// NewGenerator creates a Generator with a time-seeded source.
func NewGenerator(cfg Config) *Generator {
	seed := uint64(time.Now().UnixNano())
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed>>32)),
	}
}

// Generate returns cfg.Count problems. Every problem satisfies the
// invariants: addition results never exceed SumMax, subtraction operands
// are swapped so the result is never negative.
func (g *Generator) Generate() []Problem {
	out := make([]Problem, 0, g.cfg.Count)
	for len(out) < g.cfg.Count {
		a := g.rng.IntN(g.cfg.OperandBound)
		b := g.rng.IntN(g.cfg.OperandBound)

		if g.rng.IntN(2) == 0 {
			if a+b > g.cfg.SumMax {
				// Out of range: redraw without counting this attempt.
				continue
			}
			out = append(out, Problem{A: a, B: b, Op: OpAdd, Answer: a + b})
			continue
		}

		if a < b {
			a, b = b, a
		}
		out = append(out, Problem{A: a, B: b, Op: OpSub, Answer: a - b})
	}
	return out
}
