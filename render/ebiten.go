package render

import (
	"image/color"

	"github.com/automoto/blockfront/fonts"
	"github.com/automoto/blockfront/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/font"
)

// Background draws the world panorama
type Background interface {
	Draw(dst *ebiten.Image, angle float64)
}

// EbitenSurface implements Surface on an *ebiten.Image
type EbitenSurface struct {
	target     *ebiten.Image
	background Background
	textures   map[TextureID]*ebiten.Image

	mode      Mode
	font      fonts.FontName
	fontW     int
	fontH     int
	textColor color.Color
}

func NewEbitenSurface(bg Background) *EbitenSurface {
	return &EbitenSurface{
		background: bg,
		textures:   map[TextureID]*ebiten.Image{},
		font:       fonts.Bold,
		fontW:      8,
		fontH:      16,
		textColor:  color.White,
	}
}

// Begin binds the surface to this frame's screen image
func (s *EbitenSurface) Begin(target *ebiten.Image) {
	s.target = target
	s.mode = Mode2D
}

// SetTexture registers img under id
func (s *EbitenSurface) SetTexture(id TextureID, img *ebiten.Image) {
	s.textures[id] = img
}

// LoadTextures builds the textures the title screens draw
func (s *EbitenSurface) LoadTextures(bannerW, bannerH int, title string) {
	s.SetTexture(TextureTitleBanner, newBanner(bannerW, bannerH, title))
}

func (s *EbitenSurface) Set2DMode() { s.mode = Mode2D }
func (s *EbitenSurface) Set3DMode() { s.mode = Mode3D }

func (s *EbitenSurface) SetFontSize(w, h int) {
	s.fontW, s.fontH = w, h
}

func (s *EbitenSurface) SetTextColor(c color.Color) {
	s.textColor = c
}

func (s *EbitenSurface) DrawText(x, y int, align Align, str string) {
	face := s.font.Face(s.fontH)
	sx := s.scaleX()
	w := float64(font.MeasureString(face, str).Ceil()) * sx

	left := float64(x)
	switch align {
	case AlignCenter:
		left -= w / 2
	case AlignRight:
		left -= w
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, 1)
	op.GeoM.Translate(left, float64(y+face.Metrics().Ascent.Ceil()))
	op.ColorScale.ScaleWithColor(s.textColor)
	text.DrawWithOptions(s.target, str, face, op)
}

// scaleX stretches glyphs so the advance tracks the requested cell width
func (s *EbitenSurface) scaleX() float64 {
	if s.fontH == 0 {
		return 1
	}
	return float64(2*s.fontW) / float64(s.fontH)
}

func (s *EbitenSurface) DrawTexturedRect(x, y, w, h int, id TextureID) {
	img, ok := s.textures[id]
	if !ok {
		logger.Warn("texture not loaded", zap.String("texture", string(id)))
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	s.target.DrawImage(img, op)
}

func (s *EbitenSurface) FillRect(x, y, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(s.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *EbitenSurface) RenderWorldBackground(angle float64) {
	if s.mode != Mode3D {
		logger.Debug("world background skipped outside 3D mode")
		return
	}
	if s.background == nil {
		s.target.Fill(color.Black)
		return
	}
	s.background.Draw(s.target, angle)
}

func (s *EbitenSurface) Width() int {
	return s.target.Bounds().Dx()
}

func (s *EbitenSurface) Height() int {
	return s.target.Bounds().Dy()
}

// newBanner draws the title logo: a bevelled plate with the game name
func newBanner(w, h int, title string) *ebiten.Image {
	img := ebiten.NewImage(w, h)

	dark := color.RGBA{R: 60, G: 40, B: 25, A: 255}
	mid := color.RGBA{R: 120, G: 85, B: 50, A: 255}
	light := color.RGBA{R: 95, G: 170, B: 60, A: 255}

	vector.FillRect(img, 0, 0, float32(w), float32(h), dark, false)
	vector.FillRect(img, 4, 4, float32(w-8), float32(h-8), mid, false)
	vector.FillRect(img, 4, 4, float32(w-8), float32(h)/4, light, false)

	face := fonts.Bold.Face(h / 2)
	tw := font.MeasureString(face, title).Ceil()
	m := face.Metrics()
	baseline := (h+m.Ascent.Ceil()-m.Descent.Ceil())/2 + 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64((w-tw)/2+2), float64(baseline+2))
	op.ColorScale.ScaleWithColor(color.Black)
	text.DrawWithOptions(img, title, face, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64((w-tw)/2), float64(baseline))
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(img, title, face, op)

	return img
}
