package parsweep

import "math/rand"

// Generator produces pseudo-random benchmark datasets. A single Generator
// advances across every size of a run instead of being reseeded per size,
// so a full run is reproducible for a given seed but consecutive datasets
// are drawn from one continuing stream.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a deterministically seeded dataset generator
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns n uniform float64 values in [0, 1)
func (g *Generator) Uniform(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = g.rng.Float64()
	}
	return data
}
