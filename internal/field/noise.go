package field

import (
	"github.com/ojrac/opensimplex-go"
)

// Noise is a deterministic, continuous 1D noise function with range [-1, 1].
type Noise interface {
	At(x float64) float64
}

// NoiseFunc adapts a plain function to Noise.
type NoiseFunc func(x float64) float64

func (f NoiseFunc) At(x float64) float64 { return f(x) }

// Simplex samples OpenSimplex noise along a fixed row of the 2D field, so
// each seed gives an independent smooth channel.
type Simplex struct {
	noise opensimplex.Noise
	row   float64
}

func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.New(seed), row: 0.5}
}

func (s *Simplex) At(x float64) float64 {
	v := s.noise.Eval2(x, s.row)
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}
