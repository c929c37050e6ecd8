package render

import (
	"image/color"
	"math"
)

type OpKind int

const (
	OpRect OpKind = iota + 1
	OpCircle
	OpLine
	OpImage
)

// Op is one recorded primitive, in screen coordinates.
type Op struct {
	Kind      OpKind
	Color     color.NRGBA
	LineWidth float64
	// Rect and image: X, Y, W, H of the untransformed rect and Angle the
	// accumulated rotation. Circle: X, Y center and R. Line: X, Y to X2, Y2.
	X, Y, W, H, R float64
	X2, Y2        float64
	Angle         float64
}

type transform struct {
	dx, dy, deg float64
}

// Recorder is a Canvas that keeps every primitive instead of drawing it.
type Recorder struct {
	Width, Height float64
	HasImage      bool
	Ops           []Op

	color     color.NRGBA
	lineWidth float64
	cur       transform
	stack     []transform
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Width: w, Height: h, lineWidth: 1, color: color.NRGBA{A: 255}}
}

func (r *Recorder) SetColor(c color.Color) { r.color = color.NRGBAModel.Convert(c).(color.NRGBA) }

func (r *Recorder) SetLineWidth(w float64) { r.lineWidth = w }

func (r *Recorder) FillRect(x, y, w, h float64) {
	px, py := r.apply(x, y)
	r.Ops = append(r.Ops, Op{Kind: OpRect, Color: r.color, X: px, Y: py, W: w, H: h, Angle: r.cur.deg})
}

func (r *Recorder) FillCircle(x, y, rad float64) {
	px, py := r.apply(x, y)
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Color: r.color, X: px, Y: py, R: rad})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	ax, ay := r.apply(x1, y1)
	bx, by := r.apply(x2, y2)
	r.Ops = append(r.Ops, Op{Kind: OpLine, Color: r.color, LineWidth: r.lineWidth, X: ax, Y: ay, X2: bx, Y2: by})
}

func (r *Recorder) Image(x, y, w, h float64) bool {
	if !r.HasImage {
		return false
	}
	r.Ops = append(r.Ops, Op{Kind: OpImage, Color: r.color, X: x, Y: y, W: w, H: h})
	return true
}

func (r *Recorder) Push() { r.stack = append(r.stack, r.cur) }

func (r *Recorder) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(dx, dy float64) {
	x, y := r.apply(dx, dy)
	r.cur.dx, r.cur.dy = x, y
}

func (r *Recorder) Rotate(deg float64) { r.cur.deg += deg }

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

// Depth is the number of unbalanced Push calls.
func (r *Recorder) Depth() int { return len(r.stack) }

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) apply(x, y float64) (float64, float64) {
	s, c := math.Sincos(r.cur.deg * math.Pi / 180)
	return r.cur.dx + x*c - y*s, r.cur.dy + x*s + y*c
}
