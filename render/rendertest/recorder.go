// Package rendertest provides a render.Surface that records draw calls.
package rendertest

import (
	"fmt"
	"image/color"

	"github.com/automoto/blockfront/render"
)

// Op is one recorded call
type Op struct {
	Kind  string // "text", "rect", "texture", "background", "2d", "3d"
	X, Y  int
	W, H  int
	Text  string
	Align render.Align
	Color color.Color
	Tex   render.TextureID
	Angle float64
	Mode  render.Mode
}

func (o Op) String() string {
	switch o.Kind {
	case "text":
		return fmt.Sprintf("text(%d,%d %q)", o.X, o.Y, o.Text)
	case "rect":
		return fmt.Sprintf("rect(%d,%d %dx%d)", o.X, o.Y, o.W, o.H)
	case "texture":
		return fmt.Sprintf("texture(%s)", o.Tex)
	case "background":
		return fmt.Sprintf("background(%.2f)", o.Angle)
	}
	return o.Kind
}

// Recorder implements render.Surface in memory
type Recorder struct {
	W, H int
	Ops  []Op

	mode      render.Mode
	fontW     int
	fontH     int
	textColor color.Color
}

var _ render.Surface = (*Recorder)(nil)

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h, textColor: color.White}
}

// Reset drops recorded ops, as at the start of a frame
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.mode = render.Mode2D
}

func (r *Recorder) Set2DMode() {
	r.mode = render.Mode2D
	r.Ops = append(r.Ops, Op{Kind: "2d"})
}

func (r *Recorder) Set3DMode() {
	r.mode = render.Mode3D
	r.Ops = append(r.Ops, Op{Kind: "3d"})
}

func (r *Recorder) SetFontSize(w, h int) {
	r.fontW, r.fontH = w, h
}

func (r *Recorder) SetTextColor(c color.Color) {
	r.textColor = c
}

func (r *Recorder) DrawText(x, y int, align render.Align, s string) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, W: r.fontW, H: r.fontH, Text: s, Align: align, Color: r.textColor, Mode: r.mode})
}

func (r *Recorder) DrawTexturedRect(x, y, w, h int, tex render.TextureID) {
	r.Ops = append(r.Ops, Op{Kind: "texture", X: x, Y: y, W: w, H: h, Tex: tex, Mode: r.mode})
}

func (r *Recorder) FillRect(x, y, w, h int, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: x, Y: y, W: w, H: h, Color: c, Mode: r.mode})
}

func (r *Recorder) RenderWorldBackground(angle float64) {
	r.Ops = append(r.Ops, Op{Kind: "background", Angle: angle, Mode: r.mode})
}

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }

// Texts returns the strings drawn, in order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText reports whether s was drawn
func (r *Recorder) HasText(s string) bool {
	for _, t := range r.Texts() {
		if t == s {
			return true
		}
	}
	return false
}

// Find returns the first op of kind
func (r *Recorder) Find(kind string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == kind {
			return op, true
		}
	}
	return Op{}, false
}
