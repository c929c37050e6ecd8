// Package render turns frame state into drawing intents on a Canvas.
package render

import "image/color"

// Canvas is an immediate-mode drawing surface with a transform stack.
// Coordinates are in pixels before the current transform is applied;
// rotation is in degrees, clockwise on screen.
type Canvas interface {
	SetColor(c color.Color)
	SetLineWidth(w float64)

	FillRect(x, y, w, h float64)
	FillCircle(x, y, r float64)
	Line(x1, y1, x2, y2 float64)
	// Image draws the background image stretched over the rect, tinted by
	// the current color. It reports false when no image is loaded.
	Image(x, y, w, h float64) bool

	Push()
	Pop()
	Translate(dx, dy float64)
	Rotate(deg float64)

	Size() (w, h float64)
}
