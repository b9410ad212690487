package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by a generator with the given seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// ConstantSampler returns the same value for every dimension
type ConstantSampler struct {
	Value float64
}

// NewConstantSampler creates a sampler that always yields value
func NewConstantSampler(value float64) *ConstantSampler {
	return &ConstantSampler{Value: value}
}

// Get1D returns the constant value
func (c *ConstantSampler) Get1D() float64 {
	return c.Value
}

// Get2D returns the constant value in both dimensions
func (c *ConstantSampler) Get2D() Vec2 {
	return NewVec2(c.Value, c.Value)
}
