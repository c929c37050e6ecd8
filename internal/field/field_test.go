package field

import (
	"math"
	"math/rand/v2"
	"testing"
)

var testParams = Params{Velocity: 0.5, Radius: 625, VerticalBias: 50, OffsetRange: 1000}

func newTestField(n int, seed uint64) *Field {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	return New(n, testParams, NoiseFunc(math.Sin), NoiseFunc(math.Cos), rng)
}

func TestNewOffsetsInRange(t *testing.T) {
	f := newTestField(550, 1)
	if f.Len() != 550 {
		t.Fatalf("Len = %d, want 550", f.Len())
	}
	for i, o := range f.Offsets() {
		if o.X < 0 || o.X >= 1000 || o.Y < 0 || o.Y >= 1000 {
			t.Fatalf("offset %d = %+v out of [0, 1000)", i, o)
		}
	}
}

func TestAdvanceDelta(t *testing.T) {
	f := newTestField(4, 2)
	before := append([]Vec2(nil), f.Offsets()...)

	f.Advance(0.1, 0.8, 1.1)

	want := 0.5 * 0.1 * 0.8 * 1.1
	for i, o := range f.Offsets() {
		if math.Abs(o.X-before[i].X-want) > 1e-9 || math.Abs(o.Y-before[i].Y-want) > 1e-9 {
			t.Errorf("point %d moved by (%v, %v), want %v on both axes",
				i, o.X-before[i].X, o.Y-before[i].Y, want)
		}
	}
}

func TestAdvanceFreezesOnSilence(t *testing.T) {
	f := newTestField(16, 3)
	before := append([]Vec2(nil), f.Positions()...)

	for i := 0; i < 10; i++ {
		f.Advance(1.0/60, 0, 1.1)
	}
	for i, p := range f.Positions() {
		if p != before[i] {
			t.Errorf("point %d moved from %+v to %+v during silence", i, before[i], p)
		}
	}
}

func TestAdvanceIgnoresBadDt(t *testing.T) {
	f := newTestField(4, 4)
	before := append([]Vec2(nil), f.Offsets()...)

	f.Advance(-1, 1, 1)
	f.Advance(math.NaN(), 1, 1)

	for i, o := range f.Offsets() {
		if o != before[i] {
			t.Errorf("offset %d changed to %+v", i, o)
		}
	}
}

func TestAdvanceFrameRateIndependent(t *testing.T) {
	coarse := newTestField(8, 5)
	fine := newTestField(8, 5)

	coarse.Advance(1.0/30, 0.6, 0.8)
	fine.Advance(1.0/60, 0.6, 0.8)
	fine.Advance(1.0/60, 0.6, 0.8)

	for i := range coarse.Offsets() {
		c, f := coarse.Offsets()[i], fine.Offsets()[i]
		if math.Abs(c.X-f.X) > 1e-9 || math.Abs(c.Y-f.Y) > 1e-9 {
			t.Errorf("point %d: 30fps %+v, 60fps %+v", i, c, f)
		}
	}
}

func TestPlacement(t *testing.T) {
	rng := rand.New(rand.NewPCG(6, 7))
	half := NoiseFunc(func(float64) float64 { return 0.5 })
	neg := NoiseFunc(func(float64) float64 { return -1 })

	f := New(3, testParams, half, neg, rng)
	for i, p := range f.Advance(0.1, 1, 1) {
		if p.X != 312.5 || p.Y != -675 {
			t.Errorf("point %d = %+v, want {312.5 -675}", i, p)
		}
	}
}

func TestSimplexNoise(t *testing.T) {
	a := NewSimplex(1)
	b := NewSimplex(1)
	c := NewSimplex(2)

	differs := false
	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.37
		v := a.At(x)
		if v < -1 || v > 1 {
			t.Fatalf("At(%v) = %v out of range", x, v)
		}
		if v != b.At(x) {
			t.Fatalf("same seed disagrees at %v", x)
		}
		if v != c.At(x) {
			differs = true
		}
		if d := math.Abs(a.At(x+1e-4) - v); d > 1e-2 {
			t.Errorf("jump of %v at %v", d, x)
		}
	}
	if !differs {
		t.Error("different seeds produced identical channels")
	}
}
