package render

import (
	"github.com/iburimskiy/sonic-cloud/internal/field"
	"github.com/iburimskiy/sonic-cloud/internal/mode"
)

// Frame is everything one Draw needs. Slices alias the scene's buffers and
// must not be kept past the next update.
type Frame struct {
	State    mode.State
	Energy   mode.Energy
	Gray     uint8
	Spectrum []float64
	BandX    []int

	Positions []field.Vec2
	Edges     []field.Edge
	Colors    []field.RGB
}

type Style struct {
	Bands      BandStyle
	Rainbow    RainbowStyle
	TrailAlpha uint8
}

// Draw renders the layers enabled in f.State: background, bands, points,
// rainbow bars. With trails on the background is translucent so earlier
// frames show through.
func Draw(c Canvas, f Frame, st Style) {
	alpha := uint8(255)
	if f.State.ShowTrails {
		alpha = st.TrailAlpha
	}
	DrawBackground(c, f.Gray, alpha, f.State.ShowBackground)

	if f.State.ShowBands {
		DrawBands(c, f.Spectrum, f.BandX, st.Bands)
	}
	if f.State.ShowPoints {
		DrawPoints(c, f.Positions, f.Edges, f.Colors, f.Energy)
	}
	if f.State.ShowRainbows {
		DrawRainbows(c, f.Spectrum, st.Rainbow)
	}
}
