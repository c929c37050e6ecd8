package spectrum

import (
	"math"
	"testing"
)

func TestSmootherAttackAndRelease(t *testing.T) {
	s := NewSmoother(3, 11, 0.92)

	got := s.Update([]float64{0.5, 0.1, 0}, 1000)
	want := []float64{0.5, 0.1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame 1 band %d = %v, want %v", i, got[i], want[i])
		}
	}

	got = s.Update([]float64{0.2, 0.3, 0}, 1000)
	want = []float64{0.5 * 0.92, 0.3, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("frame 2 band %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSmootherLowerBounds(t *testing.T) {
	s := NewSmoother(8, 11, 0.92)
	frames := [][]float64{
		{0.9, 0.1, 0.4, 0, 0.2, 0.7, 0.3, 1},
		{0.1, 0.8, 0.4, 0.05, 0, 0, 0.6, 0.2},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0.3, 0.3, 0.9, 0.9, 0.1, 0.2, 0.1, 0},
	}
	prev := make([]float64, 8)
	for f, raw := range frames {
		got := s.Update(raw, 1000)
		for b := range got {
			if got[b] < prev[b]*0.92-1e-12 {
				t.Errorf("frame %d band %d: %v < decay*prev %v", f, b, got[b], prev[b]*0.92)
			}
			if got[b] < raw[b] {
				t.Errorf("frame %d band %d: %v < raw %v", f, b, got[b], raw[b])
			}
		}
		copy(prev, got)
	}
}

func TestSmootherSilenceDecay(t *testing.T) {
	s := NewSmoother(2, 11, 0.92)
	s.Update([]float64{1, 0.5}, 1000)

	zeros := []float64{0, 0}
	for i := 0; i < 100; i++ {
		s.Update(zeros, 1000)
	}

	want := math.Pow(0.92, 100)
	got := s.Values()
	if math.Abs(got[0]-want) > 1e-12 {
		t.Errorf("band 0 = %v, want %v", got[0], want)
	}
	if math.Abs(got[1]-want*0.5) > 1e-12 {
		t.Errorf("band 1 = %v, want %v", got[1], want*0.5)
	}
	if got[0] <= 0 || got[1] <= 0 {
		t.Error("smoothed value reached zero")
	}
}

func TestSmootherLengthMismatch(t *testing.T) {
	tests := []struct {
		name string
		raw  []float64
		want []float64
	}{
		{"nil", nil, []float64{0, 0, 0}},
		{"short", []float64{0.4}, []float64{0.4, 0, 0}},
		{"long", []float64{0.1, 0.2, 0.3, 0.9, 0.9}, []float64{0.1, 0.2, 0.3}},
		{"malformed", []float64{math.NaN(), math.Inf(1), -0.5}, []float64{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSmoother(3, 11, 0.92)
			got := s.Update(tt.raw, 1000)
			if len(got) != 3 {
				t.Fatalf("len = %d, want 3", len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("band %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSmootherScrollWraps(t *testing.T) {
	s := NewSmoother(3, 11, 0.92)
	if got := s.Positions(); got[0] != 0 || got[1] != 12 || got[2] != 24 {
		t.Fatalf("initial positions = %v, want [0 12 24]", got)
	}

	for i := 0; i < 6; i++ {
		s.Update(nil, 25)
	}
	// band 2 passes 25 on its second step, then climbs from -11
	got := s.Positions()
	if got[0] != 6 {
		t.Errorf("band 0 x = %d, want 6", got[0])
	}
	if got[1] != 18 {
		t.Errorf("band 1 x = %d, want 18", got[1])
	}
	if got[2] != -7 {
		t.Errorf("band 2 x = %d, want -7", got[2])
	}
}

func TestSmootherMax(t *testing.T) {
	s := NewSmoother(4, 11, 0.92)
	if s.Max() != 0 {
		t.Errorf("Max of silent spectrum = %v, want 0", s.Max())
	}
	s.Update([]float64{0.1, 0.7, 0.3, 0.2}, 1000)
	if s.Max() != 0.7 {
		t.Errorf("Max = %v, want 0.7", s.Max())
	}
}
