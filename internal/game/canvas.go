package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// screenCanvas implements render.Canvas on an ebiten image.
type screenCanvas struct {
	dst        *ebiten.Image
	background *ebiten.Image

	clr       color.Color
	lineWidth float32
	geo       ebiten.GeoM
	stack     []ebiten.GeoM

	vs []ebiten.Vertex
	is []uint16
}

func (c *screenCanvas) reset(dst, background *ebiten.Image) {
	c.dst = dst
	c.background = background
	c.clr = color.Black
	c.lineWidth = 1
	c.geo.Reset()
	c.stack = c.stack[:0]
}

func (c *screenCanvas) SetColor(clr color.Color) { c.clr = clr }

func (c *screenCanvas) SetLineWidth(w float64) { c.lineWidth = float32(w) }

func (c *screenCanvas) FillRect(x, y, w, h float64) {
	if c.geo.Element(0, 1) == 0 && c.geo.Element(1, 0) == 0 {
		tx, ty := c.geo.Apply(x, y)
		if h < 0 {
			ty, h = ty+h, -h
		}
		vector.DrawFilledRect(c.dst, float32(tx), float32(ty), float32(w), float32(h), c.clr, false)
		return
	}

	var path vector.Path
	x0, y0 := c.geo.Apply(x, y)
	x1, y1 := c.geo.Apply(x+w, y)
	x2, y2 := c.geo.Apply(x+w, y+h)
	x3, y3 := c.geo.Apply(x, y+h)
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.LineTo(float32(x3), float32(y3))
	path.Close()
	c.fillPath(&path)
}

func (c *screenCanvas) FillCircle(x, y, r float64) {
	cx, cy := c.geo.Apply(x, y)
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), c.clr, true)
}

func (c *screenCanvas) Line(x1, y1, x2, y2 float64) {
	ax, ay := c.geo.Apply(x1, y1)
	bx, by := c.geo.Apply(x2, y2)
	vector.StrokeLine(c.dst, float32(ax), float32(ay), float32(bx), float32(by), c.lineWidth, c.clr, true)
}

func (c *screenCanvas) Image(x, y, w, h float64) bool {
	if c.background == nil {
		return false
	}
	b := c.background.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.geo)

	r, g, bl, a := c.clr.RGBA()
	op.ColorScale.Scale(float32(r)/0xffff, float32(g)/0xffff, float32(bl)/0xffff, float32(a)/0xffff)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(c.background, op)
	return true
}

func (c *screenCanvas) Push() { c.stack = append(c.stack, c.geo) }

func (c *screenCanvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate and Rotate act in the current local frame, so they are applied
// before the accumulated transform.
func (c *screenCanvas) Translate(dx, dy float64) {
	var local ebiten.GeoM
	local.Translate(dx, dy)
	local.Concat(c.geo)
	c.geo = local
}

func (c *screenCanvas) Rotate(deg float64) {
	var local ebiten.GeoM
	local.Rotate(deg * math.Pi / 180)
	local.Concat(c.geo)
	c.geo = local
}

func (c *screenCanvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *screenCanvas) fillPath(path *vector.Path) {
	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])

	r, g, b, a := c.clr.RGBA()
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = float32(r) / 0xffff
		c.vs[i].ColorG = float32(g) / 0xffff
		c.vs[i].ColorB = float32(b) / 0xffff
		c.vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	c.dst.DrawTriangles(c.vs, c.is, whiteSubImage, op)
}
