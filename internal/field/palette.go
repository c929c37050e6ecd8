package field

import "math/rand/v2"

type RGB struct {
	R, G, B uint8
}

var Black = RGB{}

// Palette holds the line color of every point.
type Palette struct {
	colors []RGB
	rng    *rand.Rand
}

func NewPalette(n int, rng *rand.Rand) *Palette {
	return &Palette{colors: make([]RGB, n), rng: rng}
}

// Recolor redraws the color of every point without a neighbor this frame:
// one in ten turns green-blue, one in ten red-blue, the rest black.
// Connected points keep their color.
func (p *Palette) Recolor(connected []bool) {
	for i := range p.colors {
		if i < len(connected) && connected[i] {
			continue
		}
		switch p.rng.IntN(10) {
		case 1:
			p.colors[i] = RGB{R: 50, G: uint8(100 + p.rng.IntN(50)), B: uint8(50 + p.rng.IntN(75))}
		case 2:
			p.colors[i] = RGB{R: uint8(125 + p.rng.IntN(50)), G: 50, B: uint8(50 + p.rng.IntN(75))}
		default:
			p.colors[i] = Black
		}
	}
}

func (p *Palette) Colors() []RGB { return p.colors }
