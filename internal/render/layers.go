package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/sonic-cloud/internal/field"
	"github.com/iburimskiy/sonic-cloud/internal/mode"
)

var (
	peakColor  = color.NRGBA{R: 25, G: 175, B: 150, A: 255}
	pointRim   = color.NRGBA{A: 255}
	pointColor = color.NRGBA{R: 150, B: 50, A: 255}
)

type BandStyle struct {
	Width     float64
	MaxHeight float64
	MinHeight float64
}

// BandColor is red in proportion to the magnitude, or teal once the band
// reaches the peak zone.
func BandColor(v float64, st BandStyle) color.NRGBA {
	if v*st.MaxHeight >= st.MaxHeight-st.MinHeight {
		return peakColor
	}
	return color.NRGBA{R: clampByte(v*255 + 100), B: 25, A: 255}
}

// DrawBands draws every band twice: hanging from the top edge scrolling
// left, and standing on the bottom edge scrolling right.
func DrawBands(c Canvas, spectrum []float64, xpos []int, st BandStyle) {
	w, h := c.Size()
	for i, v := range spectrum {
		if i >= len(xpos) {
			break
		}
		height := v * st.MaxHeight
		x := float64(xpos[i])

		c.SetColor(BandColor(v, st))
		c.FillRect(w-x, 0, st.Width, height*0.6+st.MinHeight)
		c.FillRect(x, h-(height+st.MinHeight), st.Width, height+st.MinHeight)
	}
}

type RainbowStyle struct {
	InnerRadius float64
	Length      float64
	BarWidth    float64
	Alpha       uint8
}

// DrawRainbows fans the bands around the screen center, one hue per band.
func DrawRainbows(c Canvas, spectrum []float64, st RainbowStyle) {
	n := len(spectrum)
	if n == 0 {
		return
	}
	w, h := c.Size()
	for i, v := range spectrum {
		r, g, b := colorful.Hsv(360*float64(i)/float64(n), 1, 1).RGB255()

		c.Push()
		c.Translate(w/2, h/2)
		c.Rotate(360 / float64(n) * float64(i))
		c.SetColor(color.NRGBA{R: r, G: g, B: b, A: st.Alpha})
		c.FillRect(st.InnerRadius, -st.BarWidth/2, v*st.Length, st.BarWidth/2)
		c.Pop()
	}
}

// DrawPoints draws the cloud around the screen center, then one line per
// edge in the color of its lower-indexed point.
func DrawPoints(c Canvas, positions []field.Vec2, edges []field.Edge, colors []field.RGB, e mode.Energy) {
	w, h := c.Size()

	c.Push()
	c.Translate(w/2, h/2)

	for _, p := range positions {
		c.SetColor(pointRim)
		c.FillCircle(p.X, p.Y, e.PointRadius+1)
		c.SetColor(pointColor)
		c.FillCircle(p.X, p.Y, e.PointRadius)
	}

	c.SetLineWidth(e.LineWidth)
	for _, edge := range edges {
		if edge.I >= len(positions) || edge.J >= len(positions) {
			continue
		}
		col := field.Black
		if edge.I < len(colors) {
			col = colors[edge.I]
		}
		c.SetColor(color.NRGBA{R: col.R, G: col.G, B: col.B, A: 255})
		a, b := positions[edge.I], positions[edge.J]
		c.Line(a.X, a.Y, b.X, b.Y)
	}

	c.Pop()
}

// DrawBackground fills the screen with the image tinted to gray, or with
// plain gray when there is no image to show.
func DrawBackground(c Canvas, gray, alpha uint8, useImage bool) {
	w, h := c.Size()
	c.SetColor(color.NRGBA{R: gray, G: gray, B: gray, A: alpha})
	if useImage && c.Image(0, 0, w, h) {
		return
	}
	c.FillRect(0, 0, w, h)
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
