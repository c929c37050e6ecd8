// Package field animates the point cloud: noise-driven drift, proximity
// connections and the color of each point's connecting lines.
package field

import (
	"math"
	"math/rand/v2"
)

type Vec2 struct {
	X, Y float64
}

// Params are the fixed shape constants of the cloud.
type Params struct {
	Velocity     float64
	Radius       float64
	VerticalBias float64
	OffsetRange  float64
}

// Field keeps one noise offset per point. Offsets only grow; positions are
// derived from them on every Advance.
type Field struct {
	params    Params
	noiseX    Noise
	noiseY    Noise
	offsets   []Vec2
	positions []Vec2
}

// New places n points at random offsets in [0, OffsetRange).
func New(n int, p Params, noiseX, noiseY Noise, rng *rand.Rand) *Field {
	f := &Field{
		params:    p,
		noiseX:    noiseX,
		noiseY:    noiseY,
		offsets:   make([]Vec2, n),
		positions: make([]Vec2, n),
	}
	for i := range f.offsets {
		f.offsets[i] = Vec2{
			X: rng.Float64() * p.OffsetRange,
			Y: rng.Float64() * p.OffsetRange,
		}
	}
	f.place()
	return f
}

// Advance moves every offset by the same amount, proportional to elapsed
// time, the loudest band and the current speed multiplier. Silence freezes
// the cloud. The returned slice is owned by the Field.
func (f *Field) Advance(dt, maxMagnitude, speed float64) []Vec2 {
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	delta := f.params.Velocity * dt * maxMagnitude * speed
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		delta = 0
	}
	for i := range f.offsets {
		f.offsets[i].X += delta
		f.offsets[i].Y += delta
	}
	f.place()
	return f.positions
}

func (f *Field) Positions() []Vec2 { return f.positions }

func (f *Field) Offsets() []Vec2 { return f.offsets }

func (f *Field) Len() int { return len(f.offsets) }

func (f *Field) place() {
	for i, o := range f.offsets {
		f.positions[i] = Vec2{
			X: f.noiseX.At(o.X) * f.params.Radius,
			Y: f.noiseY.At(o.Y)*f.params.Radius - f.params.VerticalBias,
		}
	}
}
