package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/iburimskiy/sonic-cloud/internal/field"
	"github.com/iburimskiy/sonic-cloud/internal/mode"
	"github.com/iburimskiy/sonic-cloud/internal/playlist"
)

var testBands = BandStyle{Width: 11, MaxHeight: 300, MinHeight: 25}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBandColor(t *testing.T) {
	tests := []struct {
		v    float64
		want color.NRGBA
	}{
		{0, color.NRGBA{R: 100, B: 25, A: 255}},
		{0.2, color.NRGBA{R: 151, B: 25, A: 255}},
		{0.9, color.NRGBA{R: 255, B: 25, A: 255}},
		{0.95, peakColor},
	}
	for _, tt := range tests {
		if got := BandColor(tt.v, testBands); got != tt.want {
			t.Errorf("BandColor(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestDrawBands(t *testing.T) {
	r := NewRecorder(800, 600)
	DrawBands(r, []float64{0.5, 0}, []int{100, 200}, testBands)

	if len(r.Ops) != 4 {
		t.Fatalf("ops = %d, want 4", len(r.Ops))
	}

	top, bottom := r.Ops[0], r.Ops[1]
	if !near(top.X, 700) || !near(top.Y, 0) || !near(top.W, 11) || !near(top.H, 150*0.6+25) {
		t.Errorf("top band = %+v", top)
	}
	if !near(bottom.X, 100) || !near(bottom.Y, 600-175) || !near(bottom.H, 175) {
		t.Errorf("bottom band = %+v", bottom)
	}

	quiet := r.Ops[3]
	if !near(quiet.H, 25) || !near(quiet.Y, 575) {
		t.Errorf("silent band should keep the minimum height: %+v", quiet)
	}
}

func TestDrawBandsMismatchedLengths(t *testing.T) {
	r := NewRecorder(800, 600)
	DrawBands(r, []float64{0.1, 0.2, 0.3}, []int{0}, testBands)
	if len(r.Ops) != 2 {
		t.Errorf("ops = %d, want 2", len(r.Ops))
	}
}

func TestDrawRainbows(t *testing.T) {
	r := NewRecorder(800, 600)
	st := RainbowStyle{InnerRadius: 100, Length: 400, BarWidth: 40, Alpha: 50}
	DrawRainbows(r, []float64{0.5, 0.5, 0.5, 0.5}, st)

	if r.Count(OpRect) != 4 {
		t.Fatalf("rects = %d, want 4", r.Count(OpRect))
	}
	if r.Depth() != 0 {
		t.Errorf("unbalanced push/pop: depth %d", r.Depth())
	}

	for i, op := range r.Ops {
		if !near(op.Angle, 90*float64(i)) {
			t.Errorf("bar %d angle = %v, want %v", i, op.Angle, 90*float64(i))
		}
		if !near(op.W, 200) || !near(op.H, 20) {
			t.Errorf("bar %d size = %vx%v, want 200x20", i, op.W, op.H)
		}
		if op.Color.A != 50 {
			t.Errorf("bar %d alpha = %d, want 50", i, op.Color.A)
		}
	}

	// first bar starts right of center, the quarter-turn one below it
	if !near(r.Ops[0].X, 500) || !near(r.Ops[0].Y, 280) {
		t.Errorf("bar 0 origin = (%v, %v), want (500, 280)", r.Ops[0].X, r.Ops[0].Y)
	}
	if !near(r.Ops[1].X, 420) || !near(r.Ops[1].Y, 400) {
		t.Errorf("bar 1 origin = (%v, %v), want (420, 400)", r.Ops[1].X, r.Ops[1].Y)
	}

	if r.Ops[0].Color.R != 255 || r.Ops[0].Color.G != 0 {
		t.Errorf("bar 0 should be red, got %v", r.Ops[0].Color)
	}
}

func TestDrawPoints(t *testing.T) {
	r := NewRecorder(800, 600)
	positions := []field.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 300, Y: 300}}
	edges := []field.Edge{{I: 0, J: 1}}
	colors := []field.RGB{{R: 50, G: 120, B: 80}, {}, {}}

	DrawPoints(r, positions, edges, colors, mode.Boost)

	if r.Count(OpCircle) != 6 {
		t.Errorf("circles = %d, want 6", r.Count(OpCircle))
	}
	if r.Count(OpLine) != 1 {
		t.Fatalf("lines = %d, want 1", r.Count(OpLine))
	}
	if r.Depth() != 0 {
		t.Errorf("unbalanced push/pop: depth %d", r.Depth())
	}

	rim, dot := r.Ops[0], r.Ops[1]
	if !near(rim.R, 7) || !near(dot.R, 6) {
		t.Errorf("radii = %v, %v, want 7, 6", rim.R, dot.R)
	}
	if !near(dot.X, 400) || !near(dot.Y, 300) {
		t.Errorf("point 0 at (%v, %v), want screen center", dot.X, dot.Y)
	}

	line := r.Ops[len(r.Ops)-1]
	if line.Color != (color.NRGBA{R: 50, G: 120, B: 80, A: 255}) {
		t.Errorf("line color = %v", line.Color)
	}
	if line.LineWidth != 4 {
		t.Errorf("line width = %v, want 4", line.LineWidth)
	}
	if !near(line.X2, 410) {
		t.Errorf("line end x = %v, want 410", line.X2)
	}
}

func TestDrawBackground(t *testing.T) {
	r := NewRecorder(800, 600)
	DrawBackground(r, 120, 255, true)
	if r.Count(OpRect) != 1 || r.Count(OpImage) != 0 {
		t.Errorf("without image: %+v", r.Ops)
	}
	if got := r.Ops[0].Color; got != (color.NRGBA{R: 120, G: 120, B: 120, A: 255}) {
		t.Errorf("gray = %v", got)
	}

	r = NewRecorder(800, 600)
	r.HasImage = true
	DrawBackground(r, 120, 255, true)
	if r.Count(OpImage) != 1 || r.Count(OpRect) != 0 {
		t.Errorf("with image: %+v", r.Ops)
	}

	r = NewRecorder(800, 600)
	r.HasImage = true
	DrawBackground(r, 120, 255, false)
	if r.Count(OpImage) != 0 {
		t.Error("image drawn while background image is hidden")
	}
}

func TestDrawLayers(t *testing.T) {
	st := Style{
		Bands:      testBands,
		Rainbow:    RainbowStyle{InnerRadius: 100, Length: 400, BarWidth: 40, Alpha: 50},
		TrailAlpha: 25,
	}
	f := Frame{
		State:     mode.NewState(playlist.Cursor{}, playlist.Cursor{}, true),
		Energy:    mode.Normal,
		Gray:      200,
		Spectrum:  []float64{0.1, 0.2},
		BandX:     []int{0, 12},
		Positions: []field.Vec2{{}, {X: 5}},
		Edges:     []field.Edge{{I: 0, J: 1}},
		Colors:    []field.RGB{{}, {}},
	}

	r := NewRecorder(800, 600)
	Draw(r, f, st)
	if got := r.Count(OpRect); got != 1+4 {
		t.Errorf("rects = %d, want background + 4 bands", got)
	}
	if r.Count(OpCircle) != 4 || r.Count(OpLine) != 1 {
		t.Errorf("points layer missing: %d circles, %d lines", r.Count(OpCircle), r.Count(OpLine))
	}

	f.State = f.State.Apply(mode.Command{Kind: mode.ToggleRainbows})
	f.State = f.State.Apply(mode.Command{Kind: mode.ToggleBands})
	f.State = f.State.Apply(mode.Command{Kind: mode.ToggleTrails})
	r = NewRecorder(800, 600)
	Draw(r, f, st)
	if r.Count(OpCircle) != 0 {
		t.Error("points drawn while rainbows are shown")
	}
	if got := r.Count(OpRect); got != 1+2 {
		t.Errorf("rects = %d, want background + 2 rainbow bars", got)
	}
	if r.Ops[0].Color.A != 25 {
		t.Errorf("trail background alpha = %d, want 25", r.Ops[0].Color.A)
	}
}
