package common

import (
	"math"
	"math/rand/v2"
)

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r Range) Valid() bool {
	return r.Min <= r.Max && !math.IsNaN(r.Min) && !math.IsNaN(r.Max)
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Sample draws uniformly from the range. A collapsed range returns Min.
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Chance rolls a Bernoulli trial with probability p.
func Chance(rng *rand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rng.Float64() < p
}

// SampleSphere returns a point uniformly distributed inside a sphere.
func SampleSphere(rng *rand.Rand, radius float64) Vec3 {
	for {
		p := Vec3{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
			Z: rng.Float64()*2 - 1,
		}
		if p.Dot(p) <= 1 {
			return p.Scale(radius)
		}
	}
}

// SampleCircle returns a point uniformly distributed inside a disc.
func SampleCircle(rng *rand.Rand, radius float64) (x, y float64) {
	r := radius * math.Sqrt(rng.Float64())
	theta := rng.Float64() * 2 * math.Pi
	return r * math.Cos(theta), r * math.Sin(theta)
}

// Weighted picks an index with probability proportional to its weight.
func Weighted(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}
	n := rng.IntN(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}
