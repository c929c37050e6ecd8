// Package spectrum turns played audio into per-band magnitudes and keeps the
// smoothed band state every visual layer reads from.
package spectrum

import "math"

// Smoother holds the smoothed magnitude and horizontal scroll position of
// every band. Values snap up to fresh input and decay geometrically.
type Smoother struct {
	decay     float64
	bandWidth int
	values    []float64
	xpos      []int
}

func NewSmoother(bands, bandWidth int, decay float64) *Smoother {
	s := &Smoother{
		decay:     decay,
		bandWidth: bandWidth,
		values:    make([]float64, bands),
		xpos:      make([]int, bands),
	}
	for i := range s.xpos {
		s.xpos[i] = (bandWidth + 1) * i
	}
	return s
}

// Update folds raw into the smoothed spectrum and scrolls every band one step
// to the right. Missing raw entries count as silence, extra entries are
// ignored. The returned slice is owned by the Smoother.
func (s *Smoother) Update(raw []float64, viewportWidth float64) []float64 {
	for i := range s.values {
		v := 0.0
		if i < len(raw) {
			v = sanitize(raw[i])
		}
		s.values[i] = math.Max(s.values[i]*s.decay, v)

		s.xpos[i]++
		if float64(s.xpos[i]) > viewportWidth {
			s.xpos[i] = -s.bandWidth
		}
	}
	return s.values
}

func (s *Smoother) Values() []float64 { return s.values }

func (s *Smoother) Positions() []int { return s.xpos }

// Max returns the loudest smoothed band, 0 when silent.
func (s *Smoother) Max() float64 {
	max := 0.0
	for _, v := range s.values {
		if v > max {
			max = v
		}
	}
	return max
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
